package numeric

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type option int

const (
	optionPrecision option = iota
	optionThousandSeparator
	optionDecimalSeparator
	optionPrefix
	optionSuffix
	optionAffixesStay
	optionAllowZero
	optionAllowNegative
)

// keyLookup maps normalised keys (lowercase, no separators) to options. Data
// model names, wire keys and maskMoney option names are all accepted.
var keyLookup = map[string]option{
	"precision":         optionPrecision,
	"thousandseparator": optionThousandSeparator,
	"thousands":         optionThousandSeparator,
	"decimalseparator":  optionDecimalSeparator,
	"decimal":           optionDecimalSeparator,
	"prefix":            optionPrefix,
	"suffix":            optionSuffix,
	"affixesstay":       optionAffixesStay,
	"allowzero":         optionAllowZero,
	"allownegative":     optionAllowNegative,
}

// FromMap builds a configuration from decoded JSON/YAML. Only keys present in
// raw are set.
func FromMap(raw map[string]any) (*FieldConfiguration, error) {
	cfg := NewFieldConfiguration()
	if err := cfg.Merge(raw); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromJSON decodes a JSON object into a configuration.
func FromJSON(data []byte) (*FieldConfiguration, error) {
	if strings.TrimSpace(string(data)) == "" {
		return NewFieldConfiguration(), nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("numeric: decode json: %w", err)
	}
	return FromMap(raw)
}

// Merge applies the recognised keys in raw on top of c. Unknown keys are
// ignored. Values of the wrong type, or two keys naming the same option
// (thousands and thousandSeparator), return an error naming the key and leave
// c untouched.
func (c *FieldConfiguration) Merge(raw map[string]any) error {
	if len(raw) == 0 {
		return nil
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	staged := c.Clone()
	seen := make(map[option]string, len(keys))
	for _, key := range keys {
		opt, ok := keyLookup[normaliseKey(key)]
		if !ok {
			continue
		}
		if first, dup := seen[opt]; dup {
			return fmt.Errorf("numeric: %s: conflicts with %s", key, first)
		}
		seen[opt] = key
		if err := staged.apply(opt, raw[key]); err != nil {
			return fmt.Errorf("numeric: %s: %w", key, err)
		}
	}
	*c = *staged
	return nil
}

func (c *FieldConfiguration) apply(opt option, value any) error {
	switch opt {
	case optionPrecision:
		v, err := toInt(value)
		if err != nil {
			return err
		}
		c.SetPrecision(v)
	case optionThousandSeparator, optionDecimalSeparator, optionPrefix, optionSuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		switch opt {
		case optionThousandSeparator:
			c.SetThousandSeparator(v)
		case optionDecimalSeparator:
			c.SetDecimalSeparator(v)
		case optionPrefix:
			c.SetPrefix(v)
		default:
			c.SetSuffix(v)
		}
	case optionAffixesStay, optionAllowZero, optionAllowNegative:
		v, err := toBool(value)
		if err != nil {
			return err
		}
		switch opt {
		case optionAffixesStay:
			c.SetAffixesStay(v)
		case optionAllowZero:
			c.SetAllowZero(v)
		default:
			c.SetAllowNegative(v)
		}
	}
	return nil
}

func normaliseKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case '-', '_', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v.String())
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", value)
	}
}

func floatToInt(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("expected integer, got %v", v)
	}
	return int(v), nil
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", value)
	}
}
