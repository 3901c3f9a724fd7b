package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-numeric-input/pkg/numeric"
	"github.com/goliatone/go-numeric-input/pkg/presets"
)

type stubDriver struct {
	inputs   []string
	confirms []bool
	selects  []int

	messages []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if len(s.inputs) == 0 {
		return cfg.Default, nil
	}
	out := s.inputs[0]
	s.inputs = s.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if len(s.confirms) == 0 {
		return cfg.Default, nil
	}
	out := s.confirms[0]
	s.confirms = s.confirms[1:]
	return out, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	if len(s.selects) == 0 {
		return cfg.DefaultIndex, nil
	}
	out := s.selects[0]
	s.selects = s.selects[1:]
	return out, nil
}

func (s *stubDriver) Info(context.Context, string) error { return nil }

func TestConfigure_DefaultsLeaveEverythingUnset(t *testing.T) {
	cfg, err := Configure(context.Background(), &stubDriver{}, nil)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if got := len(cfg.Attributes()); got != 6 {
		t.Fatalf("expected 6 attributes, got %d", got)
	}
	if cfg.HasPrefix() || cfg.HasSuffix() {
		t.Fatalf("affixes must stay unset")
	}
}

func TestConfigure_Answers(t *testing.T) {
	driver := &stubDriver{
		// precision, thousands, decimal, prefix value
		inputs: []string{"0", ".", ",", "$"},
		// use prefix, use suffix, affixesStay, allowZero, allowNegative
		confirms: []bool{true, false, false, true, true},
	}
	cfg, err := Configure(context.Background(), driver, nil)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if cfg.Precision() != 0 || cfg.ThousandSeparator() != "." {
		t.Fatalf("unexpected numbers %+v", cfg.Resolve())
	}
	if prefix, ok := cfg.Prefix(); !ok || prefix != "$" {
		t.Fatalf("expected prefix $, got %q (%v)", prefix, ok)
	}
	if cfg.HasSuffix() || cfg.AffixesStay() || !cfg.AllowNegative() {
		t.Fatalf("unexpected flags %+v", cfg.Resolve())
	}
}

func TestConfigure_PresetSelection(t *testing.T) {
	store, err := presets.Default()
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	names := store.Names()
	czk := -1
	for i, name := range names {
		if name == "czk" {
			czk = i + 1
		}
	}
	if czk < 0 {
		t.Fatalf("czk preset missing from %v", names)
	}

	cfg, err := Configure(context.Background(), &stubDriver{selects: []int{czk}}, store)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if suffix, ok := cfg.Suffix(); !ok || suffix != " Kč" {
		t.Fatalf("expected czk suffix, got %q (%v)", suffix, ok)
	}
}

func TestConfigure_DecliningPresetSuffixClearsIt(t *testing.T) {
	store, err := presets.Default()
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	czk := -1
	for i, name := range store.Names() {
		if name == "czk" {
			czk = i + 1
		}
	}
	if czk < 0 {
		t.Fatalf("czk preset missing from %v", store.Names())
	}

	driver := &stubDriver{
		selects: []int{czk},
		// use prefix, use suffix
		confirms: []bool{false, false},
	}
	cfg, err := Configure(context.Background(), driver, store)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if cfg.HasSuffix() {
		suffix, _ := cfg.Suffix()
		t.Fatalf("expected suffix to be cleared, got %q", suffix)
	}
	if _, ok := cfg.AttributeMap()[numeric.AttributeName(numeric.KeySuffix)]; ok {
		t.Fatalf("suffix attribute still exported")
	}
	if cfg.Precision() != 2 {
		t.Fatalf("expected the rest of the preset to survive, got %+v", cfg.Resolve())
	}
}

func TestConfigure_InvalidPrecision(t *testing.T) {
	_, err := Configure(context.Background(), &stubDriver{inputs: []string{"-1"}}, nil)
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestConfigure_NilDriver(t *testing.T) {
	if _, err := Configure(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("other")
	if !errors.Is(translateSurveyErr(other), other) {
		t.Fatalf("unexpected translation")
	}
}
