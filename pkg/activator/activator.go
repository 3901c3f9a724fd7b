// Package activator is the server-side counterpart of the browser runtime. It
// finds marker-classed elements in a parsed document, reads their masking
// options and hands each element to a Masker, isolating failures per element.
package activator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goliatone/go-numeric-input/pkg/numeric"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

var (
	ErrNilRoot   = errors.New("activator: root node is nil")
	ErrNilMasker = errors.New("activator: masker is nil")
)

// Masker applies masking to one element.
type Masker interface {
	Mask(ctx context.Context, node *html.Node, options Options) error
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(ctx context.Context, node *html.Node, options Options) error

func (fn MaskerFunc) Mask(ctx context.Context, node *html.Node, options Options) error {
	return fn(ctx, node, options)
}

// Failure records an element that could not be activated.
type Failure struct {
	Index int
	ID    string
	Name  string
	Err   error
}

// Report summarises one activation pass.
type Report struct {
	Found     int
	Activated int
	Failures  []Failure
}

// Err joins the failure errors, or returns nil.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, failure := range r.Failures {
		errs = append(errs, failure.Err)
	}
	return errors.Join(errs...)
}

type Option func(*config)

type config struct {
	logger      zerolog.Logger
	markerClass string
}

// WithLogger routes per-element diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMarkerClass overrides the class used to find controls.
func WithMarkerClass(class string) Option {
	return func(cfg *config) {
		if class = strings.TrimSpace(class); class != "" {
			cfg.markerClass = class
		}
	}
}

func newConfig(options []Option) config {
	cfg := config{
		logger:      zerolog.Nop(),
		markerClass: numeric.MarkerClass,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Activate masks every marker-classed element under root. Elements are
// discovered on each call. A failure on one element is logged and recorded
// in the report without stopping the others; only invalid arguments or a
// cancelled context fail the call.
func Activate(ctx context.Context, root *html.Node, masker Masker, options ...Option) (Report, error) {
	var report Report
	if root == nil {
		return report, ErrNilRoot
	}
	if masker == nil {
		return report, ErrNilMasker
	}
	cfg := newConfig(options)

	nodes := Find(root, cfg.markerClass)
	report.Found = len(nodes)
	for idx, node := range nodes {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("activator: %w", err)
		}
		logger := cfg.logger.With().
			Int("index", idx).
			Str("id", attr(node, "id")).
			Str("name", attr(node, "name")).
			Logger()

		if err := activateOne(ctx, node, masker); err != nil {
			logger.Warn().Err(err).Msg("numeric input activation failed")
			report.Failures = append(report.Failures, Failure{
				Index: idx,
				ID:    attr(node, "id"),
				Name:  attr(node, "name"),
				Err:   err,
			})
			continue
		}
		logger.Debug().Msg("numeric input activated")
		report.Activated++
	}
	return report, nil
}

// ActivateHTML parses r and activates the resulting document. The parsed
// document is returned so callers can render it after masking.
func ActivateHTML(ctx context.Context, r io.Reader, masker Masker, options ...Option) (*html.Node, Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, Report{}, fmt.Errorf("activator: parse html: %w", err)
	}
	report, err := Activate(ctx, doc, masker, options...)
	return doc, report, err
}

func activateOne(ctx context.Context, node *html.Node, masker Masker) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("activator: masker panic: %v", recovered)
		}
	}()

	opts, err := ReadOptions(node)
	if err != nil {
		return err
	}
	return masker.Mask(ctx, node, opts)
}

// Find returns element nodes under root carrying class, in document order.
func Find(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && slices.Contains(strings.Fields(attr(n, "class")), class) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
