package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-numeric-input/pkg/controls"
	"github.com/goliatone/go-numeric-input/pkg/element"
	"github.com/goliatone/go-numeric-input/pkg/model"
)

const (
	templatePrefix = "templates/components/"

	partialInput   = "forms.input"
	partialNumeric = "forms.numeric"
)

// NewDefaultRegistry constructs a registry with the built-in input and numeric
// components. The numeric component uses cfg after applying defaults.
func NewDefaultRegistry(cfg ...NumericConfig) *Registry {
	registry := New()
	registry.MustRegister(NameInput, Descriptor{
		Renderer: inputRenderer,
	})
	registry.MustRegister(NameNumeric, NumericDescriptor(cfg...))
	return registry
}

func inputRenderer(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	input := baseTextInput(controls.NewTextInput(field.Name, field.Label, field.MaxLength), field, data)
	el, err := input.Control()
	if err != nil {
		return fmt.Errorf("components: input %q: %w", field.Name, err)
	}
	return renderControl(buf, el, field, data, partialInput, templatePrefix+"input.tmpl")
}

func baseTextInput(input *controls.TextInput, field model.Field, data ComponentData) *controls.TextInput {
	placeholder := field.Placeholder
	if placeholder == "" && field.UIHints != nil {
		placeholder = field.UIHints["placeholder"]
	}
	input.SetPlaceholder(placeholder).SetRequired(field.Required)
	if data.Value != "" {
		input.SetValue(data.Value)
	}
	if field.UIHints != nil {
		if extra := sanitizeClassList(field.UIHints["inputClass"]); extra != "" {
			input.AddClass(extra)
		}
	}
	if len(data.Errors) > 0 {
		input.SetAttribute("aria-invalid", "true")
		input.SetAttribute("aria-describedby", componentControlID(field.Name)+"-errors")
	}
	return input
}

func renderControl(buf *bytes.Buffer, el *element.Element, field model.Field, data ComponentData, partialKey, templateName string) error {
	control, err := el.HTML()
	if err != nil {
		return err
	}
	if data.Template == nil {
		return fmt.Errorf("components: template renderer not configured for %q", templateName)
	}

	resolved := data.Options.PartialFor(partialKey, templateName)
	payload := map[string]any{
		"field":   field,
		"control": control,
		"config":  data.Config,
	}
	if field.UIHints != nil {
		if icon := sanitizeIconMarkup(field.UIHints["icon"]); icon != "" {
			payload["icon"] = icon
		}
	}

	rendered, err := data.Template.RenderTemplate(resolved, payload)
	if err != nil {
		return fmt.Errorf("components: render template %q: %w", resolved, err)
	}
	buf.WriteString(rendered)
	return nil
}
