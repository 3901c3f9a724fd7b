// Package numericinput provides a currency/numeric text input for server
// rendered forms. Controls export their masking configuration as
// data-maskmoney-* attributes plus a marker class; the browser runtime in
// RuntimeAssetsFS (or pkg/activator on the server) reads them back and applies
// the masking library.
package numericinput

import (
	"context"

	"github.com/goliatone/go-numeric-input/pkg/controls"
	"github.com/goliatone/go-numeric-input/pkg/model"
	"github.com/goliatone/go-numeric-input/pkg/numeric"
	"github.com/goliatone/go-numeric-input/pkg/render"
	"github.com/goliatone/go-numeric-input/pkg/renderers/vanilla"
)

// FieldConfiguration aliases numeric.FieldConfiguration.
type FieldConfiguration = numeric.FieldConfiguration

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// MarkerClass is the class carried by every numeric control.
const MarkerClass = numeric.MarkerClass

// NewNumericInput creates a numeric control with every option at its default.
func NewNumericInput(name, label string, maxLength int) *controls.NumericInput {
	return controls.NewNumericInput(name, label, maxLength)
}

// RenderFields renders fields with the vanilla renderer. It is the simplest
// entry point for callers that just want HTML output.
func RenderFields(ctx context.Context, fields []model.Field, options RenderOptions, rendererOptions ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(rendererOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, fields, options)
}
