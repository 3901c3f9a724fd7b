package activator

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-numeric-input/pkg/numeric"
	"golang.org/x/net/html"
)

// Options are the masking options read from one element, named after the
// masking library. Nil fields had no attribute and are left to the masker's
// own defaults.
type Options struct {
	Precision     *int    `json:"precision,omitempty"`
	Thousands     *string `json:"thousands,omitempty"`
	Decimal       *string `json:"decimal,omitempty"`
	Prefix        *string `json:"prefix,omitempty"`
	Suffix        *string `json:"suffix,omitempty"`
	AffixesStay   *bool   `json:"affixesStay,omitempty"`
	AllowZero     *bool   `json:"allowZero,omitempty"`
	AllowNegative *bool   `json:"allowNegative,omitempty"`
}

// ReadOptions reads the data-maskmoney-* attributes of node. A malformed
// precision or boolean value is an error.
func ReadOptions(node *html.Node) (Options, error) {
	var opts Options
	if node == nil {
		return opts, ErrNilRoot
	}

	attrs := make(map[string]string, len(node.Attr))
	for _, attr := range node.Attr {
		attrs[attr.Key] = attr.Val
	}
	lookup := func(key string) (string, bool) {
		value, ok := attrs[numeric.AttributeName(key)]
		return value, ok
	}

	if raw, ok := lookup(numeric.KeyPrecision); ok {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, fmt.Errorf("activator: %s: %w", numeric.AttributeName(numeric.KeyPrecision), err)
		}
		opts.Precision = &value
	}
	opts.Thousands = stringOption(lookup(numeric.KeyThousandSeparator))
	opts.Decimal = stringOption(lookup(numeric.KeyDecimalSeparator))
	opts.Prefix = stringOption(lookup(numeric.KeyPrefix))
	opts.Suffix = stringOption(lookup(numeric.KeySuffix))

	for _, target := range []struct {
		key string
		dst **bool
	}{
		{numeric.KeyAffixesStay, &opts.AffixesStay},
		{numeric.KeyAllowZero, &opts.AllowZero},
		{numeric.KeyAllowNegative, &opts.AllowNegative},
	} {
		raw, ok := lookup(target.key)
		if !ok {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return Options{}, fmt.Errorf("activator: %s: %w", numeric.AttributeName(target.key), err)
		}
		*target.dst = &value
	}
	return opts, nil
}

// Configuration converts the options back into a field configuration. Nil
// options stay unset.
func (o Options) Configuration() *numeric.FieldConfiguration {
	cfg := numeric.NewFieldConfiguration()
	if o.Precision != nil {
		cfg.SetPrecision(*o.Precision)
	}
	if o.Thousands != nil {
		cfg.SetThousandSeparator(*o.Thousands)
	}
	if o.Decimal != nil {
		cfg.SetDecimalSeparator(*o.Decimal)
	}
	if o.Prefix != nil {
		cfg.SetPrefix(*o.Prefix)
	}
	if o.Suffix != nil {
		cfg.SetSuffix(*o.Suffix)
	}
	if o.AffixesStay != nil {
		cfg.SetAffixesStay(*o.AffixesStay)
	}
	if o.AllowZero != nil {
		cfg.SetAllowZero(*o.AllowZero)
	}
	if o.AllowNegative != nil {
		cfg.SetAllowNegative(*o.AllowNegative)
	}
	return cfg
}

func stringOption(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}
