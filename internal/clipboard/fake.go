package clipboard

import (
	"context"
	"sync"
)

// Fake records copies in memory. It is meant for tests.
type Fake struct {
	mu     sync.Mutex
	copies [][]byte
	Err    error // Returned by Copy when set
}

// Name returns the backend name
func (f *Fake) Name() string {
	return "fake"
}

// Copy records a copy of text
func (f *Fake) Copy(_ context.Context, text []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.copies = append(f.copies, append([]byte(nil), text...))
	return nil
}

// Copies returns every recorded copy as a string
func (f *Fake) Copies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.copies))
	for i, c := range f.copies {
		out[i] = string(c)
	}
	return out
}
