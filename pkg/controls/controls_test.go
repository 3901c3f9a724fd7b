package controls

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-numeric-input/pkg/element"
	"github.com/goliatone/go-numeric-input/pkg/numeric"
)

func TestTextInput_Control(t *testing.T) {
	input := NewTextInput("title", "Title", 64).
		SetPlaceholder("Name it").
		SetRequired(true).
		SetValue("Hello").
		AddClass("form-control")

	el, err := input.Control()
	if err != nil {
		t.Fatalf("control: %v", err)
	}

	want := []element.Attr{
		{Name: "type", Value: "text"},
		{Name: "name", Value: "title"},
		{Name: "id", Value: "fg-title"},
		{Name: "maxlength", Value: "64"},
		{Name: "placeholder", Value: "Name it"},
		{Name: "required", Value: ""},
		{Name: "aria-required", Value: "true"},
		{Name: "value", Value: "Hello"},
	}
	if diff := cmp.Diff(want, el.Attrs()); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
	if !el.HasClass("form-control") {
		t.Fatalf("expected class to be applied")
	}
}

func TestTextInput_AugmenterErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	input := NewTextInput("title", "", 0).AddAugmenter(AugmenterFunc(func(*element.Element) error {
		return boom
	}))

	_, err := input.Control()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped augmenter error, got %v", err)
	}
}

func TestTextInput_RequiresName(t *testing.T) {
	if _, err := NewTextInput(" ", "", 0).Control(); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestNumericInput_ControlExportsConfiguration(t *testing.T) {
	input := NewNumericInput("price", "Price", 0)
	input.SetPrecision(0).SetAllowNegative()
	input.AddClass("form-control")

	el, err := input.Control()
	if err != nil {
		t.Fatalf("control: %v", err)
	}

	if !el.HasClass(numeric.MarkerClass) || !el.HasClass("form-control") {
		t.Fatalf("unexpected classes: %#v", el.Classes())
	}
	if got, _ := el.Attr("data-maskmoney-precision"); got != "0" {
		t.Fatalf("precision: got %q", got)
	}
	if got, _ := el.Attr("data-maskmoney-allow-negative"); got != "true" {
		t.Fatalf("allow-negative: got %q", got)
	}
	if _, ok := el.Attr("data-maskmoney-prefix"); ok {
		t.Fatalf("prefix must be omitted")
	}
	if got, _ := el.Attr("type"); got != "text" {
		t.Fatalf("base attributes missing: %#v", el.Attrs())
	}
}

func TestNumericInput_InstancesAreIndependent(t *testing.T) {
	first := NewNumericInput("net", "Net", 0)
	second := NewNumericInput("gross", "Gross", 0)

	first.SetPrecision(4).SetPrefix("$")

	if second.Precision() != numeric.DefaultPrecision || second.HasPrefix() {
		t.Fatalf("configuration leaked between controls: %+v", second.Resolve())
	}

	firstEl, err := first.Control()
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	secondEl, err := second.Control()
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	if got, _ := firstEl.Attr("data-maskmoney-precision"); got != "4" {
		t.Fatalf("first precision: %q", got)
	}
	if got, _ := secondEl.Attr("data-maskmoney-precision"); got != "2" {
		t.Fatalf("second precision: %q", got)
	}
}

func TestNumericInput_RenderedMarkup(t *testing.T) {
	input := NewNumericInput("amount", "Amount", 0)
	input.SetSuffix(" Kč")

	el, err := input.Control()
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	out, err := el.HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	for _, fragment := range []string{
		`class="formgen-numeric-input"`,
		`data-maskmoney-suffix=" Kč"`,
		`data-maskmoney-thousand-separator=" "`,
		`data-maskmoney-decimal-separator=","`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %s in %s", fragment, out)
		}
	}
}
