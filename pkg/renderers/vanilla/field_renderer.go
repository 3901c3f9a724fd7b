package vanilla

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-numeric-input/pkg/model"
	"github.com/goliatone/go-numeric-input/pkg/render"
	"github.com/goliatone/go-numeric-input/pkg/render/template"
	"github.com/goliatone/go-numeric-input/pkg/renderers/vanilla/components"
)

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	options   render.RenderOptions

	used []string
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, options render.RenderOptions) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &componentRenderer{
		templates: templates,
		registry:  registry,
		options:   options,
	}
}

func (r *componentRenderer) render(field model.Field) (string, error) {
	componentName := resolveComponentName(field)

	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", componentName, field.Name)
	}

	config, err := parseComponentConfig(stringFromMap(field.Metadata, model.ComponentConfigKey))
	if err != nil {
		return "", fmt.Errorf("parse component config for field %q: %w", field.Name, err)
	}

	errs := r.options.Errors[field.Name]
	data := components.ComponentData{
		Template: r.templates,
		Config:   config,
		Options:  r.options,
		Value:    fieldValue(field, r.options.Values),
		Errors:   errs,
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, field, data); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", componentName, field.Name, err)
	}

	r.markUsed(descriptor.Name)
	return buildFieldMarkup(field, descriptor.Name, control.String(), errs), nil
}

func (r *componentRenderer) markUsed(name string) {
	for _, existing := range r.used {
		if existing == name {
			return
		}
	}
	r.used = append(r.used, name)
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if r.registry == nil || len(r.used) == 0 {
		return nil, nil
	}
	return r.registry.Assets(r.used)
}

// resolveComponentName prefers explicit metadata, then maps currency-like
// numbers and preset hints to the numeric component.
func resolveComponentName(field model.Field) string {
	if name := strings.TrimSpace(field.Component()); name != "" {
		return name
	}
	if strings.TrimSpace(field.UIHints[components.PresetHintKey]) != "" {
		return components.NameNumeric
	}
	switch field.Type {
	case model.FieldTypeNumber, model.FieldTypeInteger:
		switch strings.ToLower(strings.TrimSpace(field.Format)) {
		case "currency", "money", "decimal":
			return components.NameNumeric
		}
	}
	return components.NameInput
}

func fieldValue(field model.Field, values map[string]any) string {
	value, ok := values[field.Name]
	if !ok || value == nil {
		value = field.Default
	}
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func buildFieldMarkup(field model.Field, componentName, control string, errs []string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="formgen-field`)
	if cls := sanitizeClassList(field.UIHints["cssClass"]); cls != "" {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(cls))
	}
	builder.WriteString(`"`)

	if componentName != "" {
		builder.WriteString(` data-component="`)
		builder.WriteString(html.EscapeString(componentName))
		builder.WriteString(`"`)
	}
	builder.WriteString(">\n")

	if shouldRenderLabel(field) {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(componentControlID(field.Name)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(field.Label))
		if field.Required {
			builder.WriteString(` *`)
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if desc := strings.TrimSpace(field.Description); desc != "" {
		builder.WriteString(`    <small class="formgen-field__description">`)
		builder.WriteString(html.EscapeString(desc))
		builder.WriteString("</small>\n")
	}

	if hint := strings.TrimSpace(field.UIHints["helpText"]); hint != "" {
		builder.WriteString(`    <small class="formgen-field__help">`)
		builder.WriteString(html.EscapeString(hint))
		builder.WriteString("</small>\n")
	}

	if len(errs) > 0 {
		builder.WriteString(`    <ul id="`)
		builder.WriteString(html.EscapeString(componentControlID(field.Name)))
		builder.WriteString(`-errors" class="formgen-field__error">`)
		for _, msg := range errs {
			builder.WriteString("<li>")
			builder.WriteString(html.EscapeString(msg))
			builder.WriteString("</li>")
		}
		builder.WriteString("</ul>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func shouldRenderLabel(field model.Field) bool {
	if strings.TrimSpace(field.Label) == "" {
		return false
	}
	return strings.TrimSpace(field.UIHints["hideLabel"]) != "true"
}

func parseComponentConfig(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var cfg map[string]any
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func stringFromMap(values map[string]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(values[key])
}

func componentControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "fg-" + trimmed
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "fg-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
