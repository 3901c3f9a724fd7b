package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sort"

	"github.com/goliatone/go-numeric-input/pkg/model"
	"github.com/goliatone/go-numeric-input/pkg/presets"
	"github.com/goliatone/go-numeric-input/pkg/render"
	rendertemplate "github.com/goliatone/go-numeric-input/pkg/render/template"
	gotemplate "github.com/goliatone/go-numeric-input/pkg/render/template/gotemplate"
	"github.com/goliatone/go-numeric-input/pkg/renderers/vanilla/components"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	numeric          components.NumericConfig
	stylesheets      []string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry replaces the default component registry. Preset and script
// options are ignored when a registry is supplied.
func WithRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithPresets sets the preset store used by the numeric component.
func WithPresets(store *presets.Store) Option {
	return func(cfg *config) {
		cfg.numeric.Presets = store
	}
}

// WithMaskLibraryURL overrides the maskMoney script URL.
func WithMaskLibraryURL(url string) Option {
	return func(cfg *config) {
		cfg.numeric.MaskMoneyURL = url
	}
}

// WithJQueryURL overrides the jQuery script URL. Pass "-" when the page
// already provides jQuery.
func WithJQueryURL(url string) Option {
	return func(cfg *config) {
		cfg.numeric.JQueryURL = url
	}
}

// WithRuntimeURL overrides the URL the numeric runtime is served from.
func WithRuntimeURL(url string) Option {
	return func(cfg *config) {
		cfg.numeric.RuntimeURL = url
	}
}

// WithStylesheet appends a stylesheet link emitted ahead of the fields.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href != "" && !slices.Contains(cfg.stylesheets, href) {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	registry    *components.Registry
	stylesheets []string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = components.NewDefaultRegistry(cfg.numeric)
	}

	return &Renderer{
		templates:   renderer,
		registry:    registry,
		stylesheets: cfg.stylesheets,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Registry exposes the component registry backing the renderer.
func (r *Renderer) Registry() *components.Registry {
	return r.registry
}

// Render writes every field through its component and appends the script
// dependencies of the components used, each once.
func (r *Renderer) Render(ctx context.Context, fields []model.Field, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	fieldRenderer := newComponentRenderer(r.templates, r.registry, options)
	markup := make([]string, 0, len(fields))
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := fieldRenderer.render(field)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		markup = append(markup, out)
	}

	payload := map[string]any{
		"fields":      markup,
		"stylesheets": []string{},
		"scripts":     []map[string]any{},
	}
	if !options.OmitAssets {
		stylesheets, scripts := fieldRenderer.assets()
		payload["stylesheets"] = append(slices.Clone(r.stylesheets), stylesheets...)
		payload["scripts"] = scriptPayload(scripts, options)
	}

	result, err := r.templates.RenderTemplate(formTemplate, payload)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func scriptPayload(scripts []components.Script, options render.RenderOptions) []map[string]any {
	out := make([]map[string]any, 0, len(scripts))
	for _, script := range scripts {
		src := script.Src
		if script.AssetKey != "" {
			src = options.AssetURL(script.AssetKey, src)
		}
		if src == "" {
			continue
		}
		kind := script.Type
		if script.Module {
			kind = "module"
		}
		attrs := make([]map[string]string, 0, len(script.Attrs))
		for _, name := range sortedKeys(script.Attrs) {
			attrs = append(attrs, map[string]string{"name": name, "value": script.Attrs[name]})
		}
		out = append(out, map[string]any{
			"src":   src,
			"type":  kind,
			"async": script.Async,
			"defer": script.Defer,
			"attrs": attrs,
		})
	}
	return out
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
