package controls

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-numeric-input/pkg/element"
)

// Augmenter adds attributes or classes to a rendered control element.
type Augmenter interface {
	Augment(el *element.Element) error
}

// AugmenterFunc adapts a function into an Augmenter.
type AugmenterFunc func(el *element.Element) error

// Augment calls the underlying function.
func (fn AugmenterFunc) Augment(el *element.Element) error {
	return fn(el)
}

// Control is the capability set renderers rely on.
type Control interface {
	Name() string
	Label() string
	ID() string
	Control() (*element.Element, error)
}

// TextInput renders an <input type="text">.
type TextInput struct {
	name        string
	label       string
	value       string
	placeholder string
	maxLength   int
	required    bool
	classes     []string
	attrs       []element.Attr
	augmenters  []Augmenter
}

var _ Control = (*TextInput)(nil)

// NewTextInput creates a text input. A maxLength of zero or less omits the
// maxlength attribute.
func NewTextInput(name, label string, maxLength int) *TextInput {
	return &TextInput{
		name:      strings.TrimSpace(name),
		label:     label,
		maxLength: maxLength,
	}
}

// Name returns the form field name.
func (t *TextInput) Name() string { return t.name }

// Label returns the caption.
func (t *TextInput) Label() string { return t.label }

// ID returns the element id derived from the name.
func (t *TextInput) ID() string {
	if t.name == "" {
		return ""
	}
	return "fg-" + t.name
}

// Value returns the current value.
func (t *TextInput) Value() string { return t.value }

// SetValue sets the rendered value.
func (t *TextInput) SetValue(value string) *TextInput {
	t.value = value
	return t
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(value string) *TextInput {
	t.placeholder = value
	return t
}

// SetRequired marks the input as required.
func (t *TextInput) SetRequired(required bool) *TextInput {
	t.required = required
	return t
}

// IsRequired reports whether the input is required.
func (t *TextInput) IsRequired() bool { return t.required }

// SetAttribute sets an extra attribute on the rendered element.
func (t *TextInput) SetAttribute(name, value string) *TextInput {
	t.attrs = append(t.attrs, element.Attr{Name: name, Value: value})
	return t
}

// AddClass appends classes to the rendered element.
func (t *TextInput) AddClass(classes ...string) *TextInput {
	t.classes = append(t.classes, classes...)
	return t
}

// AddAugmenter registers a hook that runs after the base element is built.
// Hooks run in registration order.
func (t *TextInput) AddAugmenter(augmenters ...Augmenter) *TextInput {
	for _, augmenter := range augmenters {
		if augmenter == nil {
			continue
		}
		t.augmenters = append(t.augmenters, augmenter)
	}
	return t
}

// Control builds the element for this input and applies the registered
// augmenters.
func (t *TextInput) Control() (*element.Element, error) {
	if t.name == "" {
		return nil, fmt.Errorf("controls: text input name is required")
	}

	el := element.New("input").
		SetAttr("type", "text").
		SetAttr("name", t.name).
		SetAttr("id", t.ID())
	if t.maxLength > 0 {
		el.SetAttr("maxlength", strconv.Itoa(t.maxLength))
	}
	if t.placeholder != "" {
		el.SetAttr("placeholder", t.placeholder)
	}
	if t.required {
		el.SetAttr("required", "")
		el.SetAttr("aria-required", "true")
	}
	if t.value != "" {
		el.SetAttr("value", t.value)
	}
	el.AddClass(t.classes...)
	for _, attr := range t.attrs {
		el.SetAttr(attr.Name, attr.Value)
	}

	for _, augmenter := range t.augmenters {
		if err := augmenter.Augment(el); err != nil {
			return nil, fmt.Errorf("controls: augment %q: %w", t.name, err)
		}
	}
	return el, nil
}
