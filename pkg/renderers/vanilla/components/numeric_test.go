package components

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-numeric-input/pkg/model"
	"github.com/goliatone/go-numeric-input/pkg/numeric"
	"github.com/goliatone/go-numeric-input/pkg/presets"
	"github.com/goliatone/go-numeric-input/pkg/render"
	"github.com/goliatone/go-numeric-input/pkg/render/template/gotemplate"
	theme "github.com/goliatone/go-theme"
)

func newTemplates(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"templates/components/numeric.tmpl": {Data: []byte(`<span class="numeric">{% if icon %}{{ icon|safe }}{% endif %}{{ control|safe }}</span>`)},
		"templates/components/input.tmpl":   {Data: []byte(`{{ control|safe }}`)},
		"custom/numeric.tmpl":               {Data: []byte(`<em>{{ field.name }}</em>{{ control|safe }}`)},
	}), gotemplate.WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func testPresets(t *testing.T) *presets.Store {
	t.Helper()
	store, err := presets.Default()
	if err != nil {
		t.Fatalf("default presets: %v", err)
	}
	return store
}

func TestNumericInputFor_LayersPresetHintAndConfig(t *testing.T) {
	field := model.Field{
		Name:    "price",
		Label:   "Price",
		UIHints: map[string]string{PresetHintKey: "czk", "precision": "1"},
	}
	data := ComponentData{Config: map[string]any{"allowNegative": true}}

	input, err := NumericInputFor(field, data, testPresets(t))
	if err != nil {
		t.Fatalf("numeric input: %v", err)
	}
	cfg := input.Configuration()
	if got := cfg.Precision(); got != 1 {
		t.Fatalf("expected hint precision 1, got %d", got)
	}
	if !cfg.AllowNegative() {
		t.Fatalf("expected config allowNegative to apply")
	}
	if suffix, ok := cfg.Suffix(); !ok || suffix == "" {
		t.Fatalf("expected czk preset suffix, got %q (%v)", suffix, ok)
	}
}

func TestNumericInputFor_ConfigPresetWinsOverHint(t *testing.T) {
	field := model.Field{Name: "total", UIHints: map[string]string{PresetHintKey: "czk"}}
	data := ComponentData{Config: map[string]any{PresetConfigKey: "usd"}}

	input, err := NumericInputFor(field, data, testPresets(t))
	if err != nil {
		t.Fatalf("numeric input: %v", err)
	}
	if prefix, ok := input.Configuration().Prefix(); !ok || prefix != "$" {
		t.Fatalf("expected usd prefix, got %q (%v)", prefix, ok)
	}
}

func TestNumericInputFor_UnknownPreset(t *testing.T) {
	field := model.Field{Name: "total"}
	data := ComponentData{Config: map[string]any{PresetConfigKey: "doubloons"}}

	_, err := NumericInputFor(field, data, testPresets(t))
	if !errors.Is(err, presets.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestNumericInputFor_InvalidConfig(t *testing.T) {
	field := model.Field{Name: "total"}
	data := ComponentData{Config: map[string]any{"precision": "many"}}

	if _, err := NumericInputFor(field, data, nil); err == nil {
		t.Fatalf("expected error for invalid precision")
	}
}

func TestNumericRenderer_EmitsMarkerAndAttributes(t *testing.T) {
	desc := NumericDescriptor(NumericConfig{Presets: testPresets(t)})
	field := model.Field{
		Name:     "amount",
		Label:    "Amount",
		Required: true,
		UIHints:  map[string]string{"icon": `<svg viewBox="0 0 1 1"><path d="M0 0"/></svg><script>alert(1)</script>`},
	}
	data := ComponentData{
		Template: newTemplates(t),
		Config:   map[string]any{"precision": 0, "allowNegative": true},
		Value:    "1200",
		Errors:   []string{"too small"},
	}

	var buf bytes.Buffer
	if err := desc.Renderer(&buf, field, data); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`class="` + numeric.MarkerClass + `"`,
		`data-maskmoney-precision="0"`,
		`data-maskmoney-allow-negative="true"`,
		`data-maskmoney-thousand-separator=" "`,
		`value="1200"`,
		`aria-invalid="true"`,
		`inputmode="decimal"`,
		`<svg`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "data-maskmoney-prefix") || strings.Contains(out, "data-maskmoney-suffix") {
		t.Fatalf("unset affixes must not be exported:\n%s", out)
	}
	if strings.Contains(out, "<script") {
		t.Fatalf("icon markup was not sanitized:\n%s", out)
	}
}

func TestNumericRenderer_UsesThemePartial(t *testing.T) {
	desc := NumericDescriptor()
	field := model.Field{Name: "amount"}
	data := ComponentData{
		Template: newTemplates(t),
		Options: render.RenderOptions{Theme: &theme.RendererConfig{
			Partials: map[string]string{"forms.numeric": "custom/numeric.tmpl"},
		}},
	}

	var buf bytes.Buffer
	if err := desc.Renderer(&buf, field, data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<em>amount</em>") {
		t.Fatalf("expected themed partial, got %q", buf.String())
	}
}

func TestNumericDescriptor_Scripts(t *testing.T) {
	desc := NumericDescriptor(NumericConfig{JQueryURL: "-", RuntimeURL: "/static/numeric.js"})
	if len(desc.Scripts) != 2 {
		t.Fatalf("expected jQuery to be skipped, got %#v", desc.Scripts)
	}
	if desc.Scripts[0].AssetKey != AssetMaskMoney || desc.Scripts[0].Src != DefaultMaskMoneyURL {
		t.Fatalf("unexpected maskMoney script %#v", desc.Scripts[0])
	}
	runtime := desc.Scripts[1]
	if runtime.Src != "/static/numeric.js" || runtime.AssetKey != AssetRuntime || !runtime.Defer {
		t.Fatalf("unexpected runtime script %#v", runtime)
	}
}

func TestInputRenderer_NoNumericAttributes(t *testing.T) {
	desc, ok := NewDefaultRegistry().Descriptor(NameInput)
	if !ok {
		t.Fatalf("input component missing")
	}
	var buf bytes.Buffer
	err := desc.Renderer(&buf, model.Field{Name: "title", UIHints: map[string]string{"inputClass": "wide fg-reserved"}}, ComponentData{Template: newTemplates(t)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "data-maskmoney") || strings.Contains(out, numeric.MarkerClass) {
		t.Fatalf("plain input must not carry numeric markup:\n%s", out)
	}
	if !strings.Contains(out, "wide") || strings.Contains(out, "fg-reserved") {
		t.Fatalf("unexpected classes:\n%s", out)
	}
}

func TestRenderControl_RequiresTemplate(t *testing.T) {
	desc := NumericDescriptor()
	var buf bytes.Buffer
	if err := desc.Renderer(&buf, model.Field{Name: "amount"}, ComponentData{}); err == nil {
		t.Fatalf("expected error without template renderer")
	}
}
