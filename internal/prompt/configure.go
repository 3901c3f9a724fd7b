// Package prompt builds a numeric field configuration interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-numeric-input/pkg/numeric"
	"github.com/goliatone/go-numeric-input/pkg/presets"
)

const noPreset = "(none)"

// Configure walks the user through every option. Options answered with their
// current value stay unset so the result only carries real overrides.
func Configure(ctx context.Context, driver PromptDriver, store *presets.Store) (*numeric.FieldConfiguration, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	cfg := numeric.NewFieldConfiguration()

	if names := store.Names(); len(names) > 0 {
		options := append([]string{noPreset}, names...)
		idx, err := driver.Select(ctx, SelectConfig{
			Message: "Start from a preset?",
			Options: options,
		})
		if err != nil {
			return nil, err
		}
		if idx > 0 {
			preset, err := store.Lookup(options[idx])
			if err != nil {
				return nil, err
			}
			cfg.Overlay(preset)
		}
	}

	precision, err := driver.Input(ctx, InputConfig{
		Message:   "Precision (decimal places)",
		Default:   strconv.Itoa(cfg.Precision()),
		Validator: validatePrecision,
	})
	if err != nil {
		return nil, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(precision))
	if err != nil {
		return nil, fmt.Errorf("prompt: precision: %w", err)
	}
	if value != cfg.Precision() {
		cfg.SetPrecision(value)
	}

	thousands, err := driver.Input(ctx, InputConfig{Message: "Thousand separator", Default: cfg.ThousandSeparator()})
	if err != nil {
		return nil, err
	}
	if thousands != cfg.ThousandSeparator() {
		cfg.SetThousandSeparator(thousands)
	}

	decimal, err := driver.Input(ctx, InputConfig{Message: "Decimal separator", Default: cfg.DecimalSeparator()})
	if err != nil {
		return nil, err
	}
	if decimal != cfg.DecimalSeparator() {
		cfg.SetDecimalSeparator(decimal)
	}

	if err := askAffix(ctx, driver, "prefix", cfg.Prefix, func(v string) { cfg.SetPrefix(v) }, func() { cfg.ClearPrefix() }); err != nil {
		return nil, err
	}
	if err := askAffix(ctx, driver, "suffix", cfg.Suffix, func(v string) { cfg.SetSuffix(v) }, func() { cfg.ClearSuffix() }); err != nil {
		return nil, err
	}

	for _, flag := range []struct {
		message string
		current bool
		set     func(bool)
	}{
		{"Keep prefix/suffix visible when the field loses focus?", cfg.AffixesStay(), func(v bool) { cfg.SetAffixesStay(v) }},
		{"Allow zero?", cfg.AllowZero(), func(v bool) { cfg.SetAllowZero(v) }},
		{"Allow negative values?", cfg.AllowNegative(), func(v bool) { cfg.SetAllowNegative(v) }},
	} {
		answer, err := driver.Confirm(ctx, ConfirmConfig{Message: flag.message, Default: flag.current})
		if err != nil {
			return nil, err
		}
		if answer != flag.current {
			flag.set(answer)
		}
	}

	return cfg, nil
}

func askAffix(ctx context.Context, driver PromptDriver, name string, current func() (string, bool), set func(string), unset func()) error {
	value, has := current()
	want, err := driver.Confirm(ctx, ConfirmConfig{Message: "Use a " + name + "?", Default: has})
	if err != nil {
		return err
	}
	if !want {
		// A declined affix may still come from the chosen preset.
		if has {
			unset()
		}
		return nil
	}
	answer, err := driver.Input(ctx, InputConfig{Message: strings.ToUpper(name[:1]) + name[1:], Default: value})
	if err != nil {
		return err
	}
	if !has || answer != value {
		set(answer)
	}
	return nil
}

func validatePrecision(raw string) error {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("precision must be a whole number")
	}
	if value < 0 {
		return fmt.Errorf("precision must not be negative")
	}
	return nil
}
