package numeric

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-numeric-input/pkg/element"
)

const (
	// DataPrefix namespaces every exported attribute. Elements carry them as
	// data-maskmoney-<key>.
	DataPrefix = "maskmoney-"
	// MarkerClass selects elements for client-side activation. It carries no
	// styling.
	MarkerClass = "formgen-numeric-input"
)

// Attribute keys, without the data- and DataPrefix namespaces.
const (
	KeyPrecision         = "precision"
	KeyThousandSeparator = "thousand-separator"
	KeyDecimalSeparator  = "decimal-separator"
	KeyPrefix            = "prefix"
	KeySuffix            = "suffix"
	KeyAffixesStay       = "affixes-stay"
	KeyAllowZero         = "allow-zero"
	KeyAllowNegative     = "allow-negative"
)

// Keys lists every attribute key in export order.
var Keys = []string{
	KeyPrecision,
	KeyThousandSeparator,
	KeyDecimalSeparator,
	KeyAffixesStay,
	KeyAllowZero,
	KeyAllowNegative,
	KeyPrefix,
	KeySuffix,
}

// AttributeName returns the full element attribute name for key.
func AttributeName(key string) string {
	return "data-" + DataPrefix + key
}

// Attribute is one exported key/value pair. Key excludes the namespaces; use
// Name for the element attribute name.
type Attribute struct {
	Key   string
	Value string
}

// Name returns the element attribute name.
func (a Attribute) Name() string {
	return AttributeName(a.Key)
}

// Attributes projects the resolved configuration onto wire attributes. The six
// defaulted options are always present; prefix and suffix only when set.
func (c *FieldConfiguration) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(Keys))
	attrs = append(attrs,
		Attribute{Key: KeyPrecision, Value: strconv.Itoa(c.Precision())},
		Attribute{Key: KeyThousandSeparator, Value: c.ThousandSeparator()},
		Attribute{Key: KeyDecimalSeparator, Value: c.DecimalSeparator()},
		Attribute{Key: KeyAffixesStay, Value: strconv.FormatBool(c.AffixesStay())},
		Attribute{Key: KeyAllowZero, Value: strconv.FormatBool(c.AllowZero())},
		Attribute{Key: KeyAllowNegative, Value: strconv.FormatBool(c.AllowNegative())},
	)
	if prefix, ok := c.Prefix(); ok {
		attrs = append(attrs, Attribute{Key: KeyPrefix, Value: prefix})
	}
	if suffix, ok := c.Suffix(); ok {
		attrs = append(attrs, Attribute{Key: KeySuffix, Value: suffix})
	}
	return attrs
}

// AttributeMap returns Attributes keyed by full element attribute name.
func (c *FieldConfiguration) AttributeMap() map[string]string {
	attrs := c.Attributes()
	out := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		out[attr.Name()] = attr.Value
	}
	return out
}

// Augment applies MarkerClass and the exported attributes to el. Existing
// attributes and classes are left in place.
func (c *FieldConfiguration) Augment(el *element.Element) error {
	if el == nil {
		return fmt.Errorf("numeric: element is nil")
	}
	el.AddClass(MarkerClass)
	for _, attr := range c.Attributes() {
		el.SetAttr(attr.Name(), attr.Value)
	}
	return nil
}
