package controls

import (
	"fmt"

	"github.com/goliatone/go-numeric-input/pkg/element"
	"github.com/goliatone/go-numeric-input/pkg/numeric"
)

// NumericInput is a text input configured for currency/numeric entry. The
// embedded FieldConfiguration exposes the chainable setters directly:
//
//	input := controls.NewNumericInput("price", "Price", 0)
//	input.SetPrecision(0).SetSuffix(" Kč")
type NumericInput struct {
	*TextInput
	numeric.FieldConfiguration
}

var _ Control = (*NumericInput)(nil)

// NewNumericInput creates a numeric input with every option at its default.
func NewNumericInput(name, label string, maxLength int) *NumericInput {
	return &NumericInput{TextInput: NewTextInput(name, label, maxLength)}
}

// Configuration returns the configuration owned by this input.
func (n *NumericInput) Configuration() *numeric.FieldConfiguration {
	return &n.FieldConfiguration
}

// Control renders the base text input and exports the numeric configuration
// onto it.
func (n *NumericInput) Control() (*element.Element, error) {
	el, err := n.TextInput.Control()
	if err != nil {
		return nil, err
	}
	if err := n.FieldConfiguration.Augment(el); err != nil {
		return nil, fmt.Errorf("controls: numeric input %q: %w", n.Name(), err)
	}
	return el, nil
}
