package activator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-numeric-input/pkg/controls"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

func renderControls(t *testing.T, inputs ...*controls.NumericInput) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("<form>")
	for _, input := range inputs {
		el, err := input.Control()
		if err != nil {
			t.Fatalf("control: %v", err)
		}
		markup, err := el.HTML()
		if err != nil {
			t.Fatalf("html: %v", err)
		}
		b.WriteString(markup)
	}
	b.WriteString(`<input type="text" name="plain"></form>`)
	return b.String()
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestActivateHTML_ReadsEachControl(t *testing.T) {
	price := controls.NewNumericInput("price", "Price", 0)
	price.SetPrecision(0).SetAllowNegative()
	total := controls.NewNumericInput("total", "Total", 0)
	total.SetSuffix(" Kč").SetThousandSeparator(".")

	recorder := &Recorder{}
	_, report, err := ActivateHTML(context.Background(), strings.NewReader(renderControls(t, price, total)), recorder)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if report.Found != 2 || report.Activated != 2 || len(report.Failures) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}

	want := []Call{
		{ID: "fg-price", Name: "price", Options: Options{
			Precision:     intPtr(0),
			Thousands:     strPtr(" "),
			Decimal:       strPtr(","),
			AffixesStay:   boolPtr(true),
			AllowZero:     boolPtr(true),
			AllowNegative: boolPtr(true),
		}},
		{ID: "fg-total", Name: "total", Options: Options{
			Precision:     intPtr(2),
			Thousands:     strPtr("."),
			Decimal:       strPtr(","),
			Suffix:        strPtr(" Kč"),
			AffixesStay:   boolPtr(true),
			AllowZero:     boolPtr(true),
			AllowNegative: boolPtr(false),
		}},
	}
	if diff := cmp.Diff(want, recorder.Calls()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestActivate_AbsentPrefixStaysNil(t *testing.T) {
	markup := `<input class="formgen-numeric-input" data-maskmoney-suffix=" €">`
	recorder := &Recorder{}
	if _, _, err := ActivateHTML(context.Background(), strings.NewReader(markup), recorder); err != nil {
		t.Fatalf("activate: %v", err)
	}
	calls := recorder.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected one call, got %d", len(calls))
	}
	opts := calls[0].Options
	if opts.Prefix != nil {
		t.Fatalf("expected nil prefix, got %q", *opts.Prefix)
	}
	if opts.Precision != nil || opts.AllowZero != nil {
		t.Fatalf("absent attributes must stay nil: %+v", opts)
	}
	if opts.Suffix == nil || *opts.Suffix != " €" {
		t.Fatalf("expected suffix, got %v", opts.Suffix)
	}
}

func TestActivate_MalformedPrecisionSkipsOnlyThatElement(t *testing.T) {
	markup := `
<input id="a" class="formgen-numeric-input" data-maskmoney-precision="two">
<input id="b" class="formgen-numeric-input" data-maskmoney-precision="1">
<input id="c" class="formgen-numeric-input" data-maskmoney-allow-zero="maybe">`

	var logs bytes.Buffer
	recorder := &Recorder{}
	_, report, err := ActivateHTML(context.Background(), strings.NewReader(markup), recorder,
		WithLogger(zerolog.New(&logs)))
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if report.Activated != 1 || len(report.Failures) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Failures[0].ID != "a" || report.Failures[1].ID != "c" {
		t.Fatalf("unexpected failures %+v", report.Failures)
	}
	if calls := recorder.Calls(); len(calls) != 1 || calls[0].ID != "b" {
		t.Fatalf("expected only b to be masked, got %+v", calls)
	}
	if report.Err() == nil {
		t.Fatalf("expected joined error")
	}
	if !strings.Contains(logs.String(), "numeric input activation failed") {
		t.Fatalf("expected failure to be logged, got %q", logs.String())
	}
}

func TestActivate_PanicIsIsolated(t *testing.T) {
	markup := `
<input id="first" class="formgen-numeric-input">
<input id="second" class="formgen-numeric-input">
<input id="third" class="formgen-numeric-input">`

	var masked []string
	masker := MaskerFunc(func(_ context.Context, node *html.Node, _ Options) error {
		id := attr(node, "id")
		switch id {
		case "first":
			panic("boom")
		case "third":
			return errors.New("library missing")
		}
		masked = append(masked, id)
		return nil
	})

	_, report, err := ActivateHTML(context.Background(), strings.NewReader(markup), masker)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if diff := cmp.Diff([]string{"second"}, masked); diff != "" {
		t.Fatalf("masked mismatch (-want +got):\n%s", diff)
	}
	if len(report.Failures) != 2 || !strings.Contains(report.Failures[0].Err.Error(), "boom") {
		t.Fatalf("unexpected failures %+v", report.Failures)
	}
}

func TestActivate_Arguments(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<p></p>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := Activate(context.Background(), nil, &Recorder{}); !errors.Is(err, ErrNilRoot) {
		t.Fatalf("expected ErrNilRoot, got %v", err)
	}
	if _, err := Activate(context.Background(), doc, nil); !errors.Is(err, ErrNilMasker) {
		t.Fatalf("expected ErrNilMasker, got %v", err)
	}

	report, err := Activate(context.Background(), doc, &Recorder{})
	if err != nil || report.Found != 0 {
		t.Fatalf("expected empty pass, got %+v, %v", report, err)
	}
}

func TestActivate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	markup := `<input class="formgen-numeric-input">`
	_, _, err := ActivateHTML(ctx, strings.NewReader(markup), &Recorder{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestActivate_CustomMarkerClass(t *testing.T) {
	markup := `<input class="money" data-maskmoney-precision="0"><input class="formgen-numeric-input">`
	recorder := &Recorder{}
	_, report, err := ActivateHTML(context.Background(), strings.NewReader(markup), recorder, WithMarkerClass("money"))
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if report.Found != 1 {
		t.Fatalf("expected one element, got %d", report.Found)
	}
}

func TestActivate_RediscoversOnEachCall(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div id="root"></div>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	recorder := &Recorder{}
	if report, _ := Activate(context.Background(), doc, recorder); report.Found != 0 {
		t.Fatalf("expected no elements yet")
	}

	input := controls.NewNumericInput("late", "Late", 0)
	el, err := input.Control()
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	var root *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, "id") == "root" {
			root = n
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	if root == nil {
		t.Fatalf("root element missing")
	}
	root.AppendChild(el.Node())

	report, err := Activate(context.Background(), doc, recorder)
	if err != nil || report.Activated != 1 {
		t.Fatalf("expected late control to be activated, got %+v, %v", report, err)
	}
}
