package llm

import (
	"context"
	"time"
)

// timeoutGenerator bounds every call to the wrapped generator with a
// per-call deadline. The core retry bounds already cap total work; the
// deadline keeps a hung backend from blocking a run indefinitely.
type timeoutGenerator struct {
	inner   Generator
	timeout time.Duration
}

// WithTimeout wraps gen so that each GenerateLine call is bounded by
// timeout. A non-positive timeout returns gen unchanged.
func WithTimeout(gen Generator, timeout time.Duration) Generator {
	if timeout <= 0 {
		return gen
	}
	return &timeoutGenerator{inner: gen, timeout: timeout}
}

func (t *timeoutGenerator) GenerateLine(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.GenerateLine(ctx, prompt, params)
}

func (t *timeoutGenerator) Close() error {
	return t.inner.Close()
}
