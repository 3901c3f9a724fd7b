// Package element models a rendered HTML control as an ordered set of
// attributes and classes. Renderers produce an Element, augmenters add to it,
// and Render serialises it through golang.org/x/net/html.
package element

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a single name/value pair. Order is preserved on render.
type Attr struct {
	Name  string
	Value string
}

// Element is a single HTML element without children. Mutating methods only
// ever add or replace values; nothing on an Element is cleared implicitly.
type Element struct {
	tag     string
	attrs   []Attr
	classes []string
}

// New creates an element with the supplied tag name.
func New(tag string) *Element {
	return &Element{tag: strings.ToLower(strings.TrimSpace(tag))}
}

// Tag returns the element tag name.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.tag
}

// SetAttr sets name to value, replacing an existing value in place so the
// original attribute position is kept. The class attribute is routed through
// AddClass.
func (e *Element) SetAttr(name, value string) *Element {
	name = strings.ToLower(strings.TrimSpace(name))
	if e == nil || name == "" {
		return e
	}
	if name == "class" {
		return e.AddClass(strings.Fields(value)...)
	}
	for idx := range e.attrs {
		if e.attrs[idx].Name == name {
			e.attrs[idx].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// Data sets a data-* attribute. The key is given without the data- prefix.
func (e *Element) Data(key, value string) *Element {
	key = strings.TrimPrefix(strings.TrimSpace(key), "data-")
	if key == "" {
		return e
	}
	return e.SetAttr("data-"+key, value)
}

// Attr looks up an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "class" {
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	}
	for _, attr := range e.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attributes in render order, excluding class.
func (e *Element) Attrs() []Attr {
	if e == nil {
		return nil
	}
	return slices.Clone(e.attrs)
}

// AddClass appends classes that are not yet present.
func (e *Element) AddClass(classes ...string) *Element {
	if e == nil {
		return e
	}
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if slices.Contains(e.classes, token) {
				continue
			}
			e.classes = append(e.classes, token)
		}
	}
	return e
}

// HasClass reports whether class is present.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.classes, strings.TrimSpace(class))
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	return slices.Clone(e.classes)
}

// Clone returns an independent copy.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	return &Element{
		tag:     e.tag,
		attrs:   slices.Clone(e.attrs),
		classes: slices.Clone(e.classes),
	}
}

// Node converts the element into an html.Node. The class attribute, when
// present, is emitted first.
func (e *Element) Node() *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	if len(e.classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(e.classes, " ")})
	}
	for _, attr := range e.attrs {
		node.Attr = append(node.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
	}
	return node
}

// Render writes the element markup to w.
func (e *Element) Render(w io.Writer) error {
	if e == nil || e.tag == "" {
		return fmt.Errorf("element: tag is required")
	}
	if err := html.Render(w, e.Node()); err != nil {
		return fmt.Errorf("element: render %s: %w", e.tag, err)
	}
	return nil
}

// HTML renders the element into a string.
func (e *Element) HTML() (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
