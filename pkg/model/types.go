// Package model defines the form field description renderers consume. Fields
// name the component that renders them; component-specific configuration
// travels as JSON under Metadata[ComponentConfigKey] while UIHints carries
// renderer directives such as placeholder, helpText, cssClass and icon.
package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

const (
	// ComponentConfigKey holds a JSON object with component configuration.
	ComponentConfigKey = "component.config"
	// ComponentKey overrides the component resolved from the field type.
	ComponentKey = "component"
)

// Field models an individual input inside a generated form.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	MaxLength   int               `json:"maxLength,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// Component returns the explicit component name, if any.
func (f Field) Component() string {
	if f.Metadata == nil {
		return ""
	}
	return f.Metadata[ComponentKey]
}
