package themes

import (
	"errors"
	"fmt"
	"time"
)

// Messages returned to API clients.
const (
	MsgInvalidTheme = "Invalid theme. Please provide a theme string (max 100 characters)."
	MsgRateLimited  = "Rate limit exceeded. Please try again later."
	MsgFallback     = "AI generation failed, showing random colors"
)

var (
	// ErrInvalidTheme rejects a theme that is empty or too long.
	ErrInvalidTheme = errors.New("themes: invalid theme")

	// ErrRateLimited rejects a client over its request budget.
	ErrRateLimited = errors.New("themes: rate limit exceeded")
)

// RateLimitError carries how long the client should wait.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%v (retry after %s)", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// FormatError means the model answered but not with a usable palette.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("themes: invalid model output: %s: %v", e.Reason, e.Err)
	}
	return "themes: invalid model output: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }
