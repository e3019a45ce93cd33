package generate

import (
	"context"
	"sync"
)

// Fake is a deterministic Generator for tests and offline runs.
// It records every prompt it receives.
type Fake struct {
	Reply string
	Err   error

	mu      sync.Mutex
	prompts []string
}

func (f *Fake) Model() string {
	return "fake"
}

func (f *Fake) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// Prompts returns the prompts received so far.
func (f *Fake) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// CallCount returns how many times Generate was invoked.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
