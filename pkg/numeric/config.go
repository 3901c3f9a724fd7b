package numeric

const (
	DefaultPrecision         = 2
	DefaultThousandSeparator = " "
	DefaultDecimalSeparator  = ","
	DefaultAffixesStay       = true
	DefaultAllowZero         = true
	DefaultAllowNegative     = false
)

// FieldConfiguration stores masking overrides for a single control. The zero
// value has nothing set and resolves every option to its default. Values are
// never validated; whatever is set is exported verbatim.
type FieldConfiguration struct {
	precision         Optional[int]
	thousandSeparator Optional[string]
	decimalSeparator  Optional[string]
	prefix            Optional[string]
	suffix            Optional[string]
	affixesStay       Optional[bool]
	allowZero         Optional[bool]
	allowNegative     Optional[bool]
}

// NewFieldConfiguration returns an empty configuration.
func NewFieldConfiguration() *FieldConfiguration {
	return &FieldConfiguration{}
}

// Resolved is a snapshot of effective values. Prefix and Suffix are nil when
// no override was set.
type Resolved struct {
	Precision         int     `json:"precision"`
	ThousandSeparator string  `json:"thousandSeparator"`
	DecimalSeparator  string  `json:"decimalSeparator"`
	Prefix            *string `json:"prefix,omitempty"`
	Suffix            *string `json:"suffix,omitempty"`
	AffixesStay       bool    `json:"affixesStay"`
	AllowZero         bool    `json:"allowZero"`
	AllowNegative     bool    `json:"allowNegative"`
}

// SetPrecision sets the number of digits after the decimal separator.
func (c *FieldConfiguration) SetPrecision(value int) *FieldConfiguration {
	c.precision.Set(value)
	return c
}

// Precision returns the decimal precision.
func (c *FieldConfiguration) Precision() int {
	return c.precision.Or(DefaultPrecision)
}

// SetThousandSeparator sets the digit grouping separator.
func (c *FieldConfiguration) SetThousandSeparator(value string) *FieldConfiguration {
	c.thousandSeparator.Set(value)
	return c
}

// ThousandSeparator returns the digit grouping separator.
func (c *FieldConfiguration) ThousandSeparator() string {
	return c.thousandSeparator.Or(DefaultThousandSeparator)
}

// SetDecimalSeparator sets the fraction separator.
func (c *FieldConfiguration) SetDecimalSeparator(value string) *FieldConfiguration {
	c.decimalSeparator.Set(value)
	return c
}

// DecimalSeparator returns the fraction separator.
func (c *FieldConfiguration) DecimalSeparator() string {
	return c.decimalSeparator.Or(DefaultDecimalSeparator)
}

// SetPrefix sets the leading affix. An empty string is a valid prefix.
func (c *FieldConfiguration) SetPrefix(value string) *FieldConfiguration {
	c.prefix.Set(value)
	return c
}

// HasPrefix reports whether a prefix was set.
func (c *FieldConfiguration) HasPrefix() bool {
	return c.prefix.IsSet()
}

// ClearPrefix removes the prefix so none is exported.
func (c *FieldConfiguration) ClearPrefix() *FieldConfiguration {
	c.prefix.Unset()
	return c
}

// Prefix returns the prefix and whether one was set.
func (c *FieldConfiguration) Prefix() (string, bool) {
	return c.prefix.Get()
}

// SetSuffix sets the trailing affix. An empty string is a valid suffix.
func (c *FieldConfiguration) SetSuffix(value string) *FieldConfiguration {
	c.suffix.Set(value)
	return c
}

// HasSuffix reports whether a suffix was set.
func (c *FieldConfiguration) HasSuffix() bool {
	return c.suffix.IsSet()
}

// ClearSuffix removes the suffix so none is exported.
func (c *FieldConfiguration) ClearSuffix() *FieldConfiguration {
	c.suffix.Unset()
	return c
}

// Suffix returns the suffix and whether one was set.
func (c *FieldConfiguration) Suffix() (string, bool) {
	return c.suffix.Get()
}

// SetAffixesStay controls whether affixes remain visible while editing.
// Calling it without arguments turns the option on.
func (c *FieldConfiguration) SetAffixesStay(enabled ...bool) *FieldConfiguration {
	c.affixesStay.Set(flag(enabled))
	return c
}

// AffixesStay reports whether affixes remain visible while editing.
func (c *FieldConfiguration) AffixesStay() bool {
	return c.affixesStay.Or(DefaultAffixesStay)
}

// SetAllowZero controls whether zero is accepted. Calling it without
// arguments turns the option on.
func (c *FieldConfiguration) SetAllowZero(enabled ...bool) *FieldConfiguration {
	c.allowZero.Set(flag(enabled))
	return c
}

// AllowZero reports whether zero is accepted.
func (c *FieldConfiguration) AllowZero() bool {
	return c.allowZero.Or(DefaultAllowZero)
}

// SetAllowNegative controls whether negative values are accepted. Calling it
// without arguments turns the option on.
func (c *FieldConfiguration) SetAllowNegative(enabled ...bool) *FieldConfiguration {
	c.allowNegative.Set(flag(enabled))
	return c
}

// AllowNegative reports whether negative values are accepted.
func (c *FieldConfiguration) AllowNegative() bool {
	return c.allowNegative.Or(DefaultAllowNegative)
}

// Resolve returns the effective values.
func (c *FieldConfiguration) Resolve() Resolved {
	resolved := Resolved{
		Precision:         c.Precision(),
		ThousandSeparator: c.ThousandSeparator(),
		DecimalSeparator:  c.DecimalSeparator(),
		AffixesStay:       c.AffixesStay(),
		AllowZero:         c.AllowZero(),
		AllowNegative:     c.AllowNegative(),
	}
	if prefix, ok := c.Prefix(); ok {
		resolved.Prefix = &prefix
	}
	if suffix, ok := c.Suffix(); ok {
		resolved.Suffix = &suffix
	}
	return resolved
}

// Clone returns an independent copy.
func (c *FieldConfiguration) Clone() *FieldConfiguration {
	if c == nil {
		return NewFieldConfiguration()
	}
	clone := *c
	return &clone
}

// Overlay copies every override set on other onto c. Options other leaves
// unset keep their current state on c.
func (c *FieldConfiguration) Overlay(other *FieldConfiguration) *FieldConfiguration {
	if other == nil {
		return c
	}
	if v, ok := other.precision.Get(); ok {
		c.precision.Set(v)
	}
	if v, ok := other.thousandSeparator.Get(); ok {
		c.thousandSeparator.Set(v)
	}
	if v, ok := other.decimalSeparator.Get(); ok {
		c.decimalSeparator.Set(v)
	}
	if v, ok := other.prefix.Get(); ok {
		c.prefix.Set(v)
	}
	if v, ok := other.suffix.Get(); ok {
		c.suffix.Set(v)
	}
	if v, ok := other.affixesStay.Get(); ok {
		c.affixesStay.Set(v)
	}
	if v, ok := other.allowZero.Get(); ok {
		c.allowZero.Set(v)
	}
	if v, ok := other.allowNegative.Get(); ok {
		c.allowNegative.Set(v)
	}
	return c
}

func flag(values []bool) bool {
	if len(values) == 0 {
		return true
	}
	return values[0]
}
