// Package model talks to the hosted language model that answers themed
// palette requests. The rest of the service only sees Invoker: prompt in,
// completion text out.
package model

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"
)

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("model: empty completion")

// Invoker sends a single user-turn prompt and returns the completion text.
type Invoker interface {
	Invoke(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

func (f InvokerFunc) Invoke(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return f(ctx, prompt, maxTokens)
}

// Throttled bounds how fast the whole process calls the provider,
// independently of per-client limits. Callers wait for a token until
// their context expires.
type Throttled struct {
	next Invoker
	lim  *rate.Limiter
}

// NewThrottled wraps next with a token bucket of rps and burst. A non-positive
// rps returns next unchanged.
func NewThrottled(next Invoker, rps float64, burst int) Invoker {
	if rps <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}
	return &Throttled{next: next, lim: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (t *Throttled) Invoke(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := t.lim.Wait(ctx); err != nil {
		return "", fmt.Errorf("model: throttled: %w", err)
	}
	return t.next.Invoke(ctx, prompt, maxTokens)
}
