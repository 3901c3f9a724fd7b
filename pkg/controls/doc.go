// Package controls provides renderable form controls. TextInput supplies the
// base text input; NumericInput composes it with a numeric.FieldConfiguration
// that augments the rendered element with masking attributes.
package controls
