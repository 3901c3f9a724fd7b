package activator

import (
	"context"
	"sync"

	"golang.org/x/net/html"
)

// Call is one recorded masker invocation.
type Call struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Options Options `json:"options"`
}

// Recorder is a Masker that records its invocations. It backs the CLI inspect
// command and tests.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ Masker = (*Recorder)(nil)

func (r *Recorder) Mask(_ context.Context, node *html.Node, options Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{
		ID:      attr(node, "id"),
		Name:    attr(node, "name"),
		Options: options,
	})
	return nil
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}
