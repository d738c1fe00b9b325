package app

import (
	"encoding/json"
	"sync"

	"github.com/dkeye/Signal/internal/core"
)

// fakeConn records every frame it is handed, decoded, so scenario tests
// can assert on whole events instead of raw bytes.
type fakeConn struct {
	id core.ConnID

	mu     sync.Mutex
	events []map[string]any
	closed bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: core.ConnID(id)}
}

func (f *fakeConn) ID() core.ConnID { return f.id }

func (f *fakeConn) TrySend(fr core.Frame) error {
	var ev map[string]any
	if err := json.Unmarshal(fr, &ev); err != nil {
		return err
	}
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeConn) all() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, len(f.events))
	copy(out, f.events)
	return out
}

func (f *fakeConn) ofType(typ string) []map[string]any {
	var out []map[string]any
	for _, ev := range f.all() {
		if ev["type"] == typ {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeConn) reset() {
	f.mu.Lock()
	f.events = nil
	f.mu.Unlock()
}
