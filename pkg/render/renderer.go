// Package render defines the renderer contract and per-request render options.
package render

import (
	"context"

	"github.com/goliatone/go-numeric-input/pkg/model"
)

// Renderer converts form fields into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, fields []model.Field, options RenderOptions) ([]byte, error)
}
