package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-numeric-input/pkg/controls"
	"github.com/goliatone/go-numeric-input/pkg/model"
	"github.com/goliatone/go-numeric-input/pkg/presets"
)

const (
	DefaultJQueryURL    = "https://code.jquery.com/jquery-3.7.1.min.js"
	DefaultMaskMoneyURL = "https://cdnjs.cloudflare.com/ajax/libs/jquery-maskmoney/3.0.2/jquery.maskMoney.min.js"
	DefaultRuntimeURL   = "/runtime/formgen-numeric.js"

	// Theme asset keys checked before the URLs above.
	AssetJQuery    = "numeric.jquery"
	AssetMaskMoney = "numeric.maskmoney"
	AssetRuntime   = "numeric.runtime"

	// PresetConfigKey names a preset in the component config.
	PresetConfigKey = "preset"
	// PresetHintKey names a preset through UI hints.
	PresetHintKey = "numericPreset"
)

// NumericConfig configures the numeric component.
type NumericConfig struct {
	// Presets resolves preset names. Nil uses the embedded defaults.
	Presets *presets.Store
	// JQueryURL may be set to "-" when the page already loads jQuery.
	JQueryURL    string
	MaskMoneyURL string
	RuntimeURL   string
}

// Normalize fills unset fields with defaults.
func (c NumericConfig) Normalize() NumericConfig {
	if c.Presets == nil {
		if store, err := presets.Default(); err == nil {
			c.Presets = store
		}
	}
	if c.JQueryURL == "" {
		c.JQueryURL = DefaultJQueryURL
	}
	if c.MaskMoneyURL == "" {
		c.MaskMoneyURL = DefaultMaskMoneyURL
	}
	if c.RuntimeURL == "" {
		c.RuntimeURL = DefaultRuntimeURL
	}
	return c
}

// NumericDescriptor returns the numeric component descriptor. Only the first
// cfg value is used.
func NumericDescriptor(cfg ...NumericConfig) Descriptor {
	var base NumericConfig
	if len(cfg) > 0 {
		base = cfg[0]
	}
	base = base.Normalize()

	var scripts []Script
	if base.JQueryURL != "-" {
		scripts = append(scripts, Script{Src: base.JQueryURL, AssetKey: AssetJQuery})
	}
	scripts = append(scripts,
		Script{Src: base.MaskMoneyURL, AssetKey: AssetMaskMoney},
		Script{Src: base.RuntimeURL, AssetKey: AssetRuntime, Defer: true},
	)

	return Descriptor{
		Renderer: numericRenderer(base.Presets),
		Scripts:  scripts,
	}
}

// NumericInputFor builds the numeric control for field. Configuration is
// layered preset, then UI hint precision, then component config.
func NumericInputFor(field model.Field, data ComponentData, store *presets.Store) (*controls.NumericInput, error) {
	input := controls.NewNumericInput(field.Name, field.Label, field.MaxLength)
	baseTextInput(input.TextInput, field, data)

	if name := presetName(field, data.Config); name != "" {
		preset, err := store.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("components: numeric %q: %w", field.Name, err)
		}
		input.Configuration().Overlay(preset)
	}
	if field.UIHints != nil {
		if precision := strings.TrimSpace(field.UIHints["precision"]); precision != "" {
			if err := input.Merge(map[string]any{"precision": precision}); err != nil {
				return nil, fmt.Errorf("components: numeric %q: %w", field.Name, err)
			}
		}
	}
	if len(data.Config) > 0 {
		if err := input.Merge(data.Config); err != nil {
			return nil, fmt.Errorf("components: numeric %q: %w", field.Name, err)
		}
	}
	return input, nil
}

func numericRenderer(store *presets.Store) Renderer {
	return func(buf *bytes.Buffer, field model.Field, data ComponentData) error {
		input, err := NumericInputFor(field, data, store)
		if err != nil {
			return err
		}
		el, err := input.Control()
		if err != nil {
			return fmt.Errorf("components: numeric %q: %w", field.Name, err)
		}
		el.SetAttr("inputmode", "decimal")
		return renderControl(buf, el, field, data, partialNumeric, templatePrefix+"numeric.tmpl")
	}
}

func presetName(field model.Field, config map[string]any) string {
	if name, ok := config[PresetConfigKey].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}
	if field.UIHints != nil {
		return strings.TrimSpace(field.UIHints[PresetHintKey])
	}
	return ""
}
