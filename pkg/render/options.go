package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers use without mutating the
// field definitions.
type RenderOptions struct {
	// Values pre-populates controls keyed by field name.
	Values map[string]any
	// Errors surfaces server-side validation messages keyed by field name.
	// Controls with errors are rendered with aria-invalid and inline messages.
	Errors map[string][]string
	// Theme carries partial overrides (e.g. "forms.numeric") and the asset URL
	// resolver used for component scripts.
	Theme *theme.RendererConfig
	// OmitAssets skips script tags, for callers that include the runtime
	// bundle in their own layout.
	OmitAssets bool
}

// PartialFor returns the theme partial registered under key, or fallback.
func (o RenderOptions) PartialFor(key, fallback string) string {
	if o.Theme == nil || o.Theme.Partials == nil {
		return fallback
	}
	if partial := o.Theme.Partials[key]; partial != "" {
		return partial
	}
	return fallback
}

// AssetURL resolves an asset key through the theme, returning fallback when no
// theme resolver is configured or it yields nothing.
func (o RenderOptions) AssetURL(key, fallback string) string {
	if o.Theme == nil || o.Theme.AssetURL == nil {
		return fallback
	}
	if url := o.Theme.AssetURL(key); url != "" {
		return url
	}
	return fallback
}
