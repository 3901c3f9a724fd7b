package numeric

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-numeric-input/pkg/element"
)

func TestAttributes_DefaultsEmitSixUnconditional(t *testing.T) {
	got := NewFieldConfiguration().Attributes()

	want := []Attribute{
		{Key: KeyPrecision, Value: "2"},
		{Key: KeyThousandSeparator, Value: " "},
		{Key: KeyDecimalSeparator, Value: ","},
		{Key: KeyAffixesStay, Value: "true"},
		{Key: KeyAllowZero, Value: "true"},
		{Key: KeyAllowNegative, Value: "false"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributes_PrecisionZeroAllowNegativeNoPrefix(t *testing.T) {
	attrs := NewFieldConfiguration().
		SetPrecision(0).
		SetAllowNegative(true).
		AttributeMap()

	if _, ok := attrs["data-maskmoney-prefix"]; ok {
		t.Fatalf("prefix must be omitted when unset: %#v", attrs)
	}
	if got := attrs["data-maskmoney-allow-negative"]; got != "true" {
		t.Fatalf("allow-negative: want true, got %q", got)
	}
	if got := attrs["data-maskmoney-precision"]; got != "0" {
		t.Fatalf("precision: want 0, got %q", got)
	}
	if len(attrs) != 6 {
		t.Fatalf("expected 6 attributes, got %d: %#v", len(attrs), attrs)
	}
}

func TestAttributes_AffixesPresentWhenSet(t *testing.T) {
	attrs := NewFieldConfiguration().
		SetPrefix("first").
		SetPrefix("").
		SetSuffix(" EUR").
		AttributeMap()

	prefix, ok := attrs["data-maskmoney-prefix"]
	if !ok || prefix != "" {
		t.Fatalf("expected empty prefix attribute, got %q (%v)", prefix, ok)
	}
	if got := attrs["data-maskmoney-suffix"]; got != " EUR" {
		t.Fatalf("suffix: want %q, got %q", " EUR", got)
	}
	if len(attrs) != 8 {
		t.Fatalf("expected 8 attributes, got %d", len(attrs))
	}
}

func TestAugment_AddsWithoutClearing(t *testing.T) {
	el := element.New("input").
		SetAttr("name", "amount").
		SetAttr("data-maskmoney-precision", "9").
		AddClass("form-control")

	cfg := NewFieldConfiguration().SetPrecision(1)
	if err := cfg.Augment(el); err != nil {
		t.Fatalf("augment: %v", err)
	}

	if !el.HasClass("form-control") || !el.HasClass(MarkerClass) {
		t.Fatalf("unexpected classes: %#v", el.Classes())
	}
	if got, _ := el.Attr("name"); got != "amount" {
		t.Fatalf("existing attribute lost: %q", got)
	}
	if got, _ := el.Attr("data-maskmoney-precision"); got != "1" {
		t.Fatalf("precision attribute: want 1, got %q", got)
	}
}

func TestAugment_Idempotent(t *testing.T) {
	cfg := NewFieldConfiguration().SetSuffix(" Kč")
	el := element.New("input")

	if err := cfg.Augment(el); err != nil {
		t.Fatalf("augment: %v", err)
	}
	first, err := el.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := cfg.Augment(el); err != nil {
		t.Fatalf("augment: %v", err)
	}
	second, err := el.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output\nfirst:  %s\nsecond: %s", first, second)
	}
	if diff := cmp.Diff(cfg.Attributes(), cfg.Attributes()); diff != "" {
		t.Fatalf("attributes differ between calls:\n%s", diff)
	}
}

func TestAugment_NilElement(t *testing.T) {
	if err := NewFieldConfiguration().Augment(nil); err == nil {
		t.Fatalf("expected error for nil element")
	}
}
