// Package themes answers themed palette requests: it validates the theme,
// applies the per-client rate limit, asks the model for five colors and
// checks its reply. Once a request is admitted it always yields a palette;
// model failures turn into a random fallback palette.
package themes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"palette-api/internal/model"
	"palette-api/internal/palette"
	"palette-api/internal/ratelimit"
	"palette-api/internal/ui"
)

// MaxThemeLength is the longest accepted theme, in characters.
const MaxThemeLength = 100

// DefaultTimeout bounds a model call when none is configured.
const DefaultTimeout = 10 * time.Second

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// Result is the single response shape of the service. Fallback marks a
// degraded answer whose colors are random.
type Result struct {
	Success  bool            `json:"success"`
	Colors   palette.Palette `json:"colors"`
	Theme    string          `json:"theme"`
	Error    string          `json:"error,omitempty"`
	Fallback bool            `json:"fallback,omitempty"`
}

// Config tunes a Service. Zero values pick defaults.
type Config struct {
	MaxTokens int
	Timeout   time.Duration
}

// Service generates themed palettes.
type Service struct {
	model     model.Invoker
	limiter   Limiter
	random    func() palette.Palette
	maxTokens int
	timeout   time.Duration
}

// NewService wires the model and limiter. A nil limiter admits every request.
func NewService(inv model.Invoker, limiter Limiter, cfg Config) *Service {
	s := &Service{
		model:     inv,
		limiter:   limiter,
		random:    palette.Random,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
	if s.maxTokens <= 0 {
		s.maxTokens = model.DefaultMaxTokens
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	return s
}

// ValidateTheme checks theme is 1 to MaxThemeLength characters as received
// and not only whitespace. The theme is returned unchanged.
func ValidateTheme(theme string) (string, error) {
	n := utf8.RuneCountInString(theme)
	if n == 0 || n > MaxThemeLength || strings.TrimSpace(theme) == "" {
		return "", ErrInvalidTheme
	}
	return theme, nil
}

// Generate answers a themed palette request from clientID.
//
// It returns ErrInvalidTheme or a *RateLimitError before the model is
// called. After that it never fails: model and format errors produce a
// fallback Result.
func (s *Service) Generate(ctx context.Context, theme, clientID string) (Result, error) {
	theme, err := ValidateTheme(theme)
	if err != nil {
		MetricRequestsTotal.WithLabelValues(OutcomeInvalid).Inc()
		return Result{}, err
	}

	if s.limiter != nil {
		dec, err := s.limiter.Allow(ctx, clientID)
		switch {
		case err != nil:
			// backend errors admit the request
			ui.LogStatus("warning", "Rate limiter unavailable, admitting request: "+err.Error())
		case !dec.Allowed:
			MetricRequestsTotal.WithLabelValues(OutcomeRateLimited).Inc()
			return Result{}, &RateLimitError{RetryAfter: dec.RetryAfter}
		}
	}

	ui.LogStatus("info", "Generating palette for theme: "+theme)

	colors, err := s.ask(ctx, theme)
	if err != nil {
		ui.LogStatus("error", "Error generating themed palette: "+err.Error())
		MetricRequestsTotal.WithLabelValues(OutcomeFallback).Inc()
		return s.fallback(theme), nil
	}

	MetricRequestsTotal.WithLabelValues(OutcomeSuccess).Inc()
	return Result{Success: true, Colors: colors, Theme: theme}, nil
}

// ask invokes the model and turns its reply into a palette. The call is
// detached from the caller's cancellation and bounded by the timeout.
func (s *Service) ask(ctx context.Context, theme string) (palette.Palette, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.model.Invoke(ctx, model.ThemePrompt(theme), s.maxTokens)
	MetricModelDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		MetricModelErrorsTotal.WithLabelValues("transport").Inc()
		return palette.Palette{}, err
	}
	ui.LogDebug("Model response: " + text)

	colors, err := ParseReply(text)
	if err != nil {
		MetricModelErrorsTotal.WithLabelValues("format").Inc()
		return palette.Palette{}, err
	}
	return colors, nil
}

type reply struct {
	Colors []string `json:"colors"`
	Theme  string   `json:"theme"`
}

// ParseReply extracts the JSON object from raw model text and checks that
// it holds exactly five hex colors.
func ParseReply(text string) (palette.Palette, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return palette.Palette{}, &FormatError{Reason: "no JSON object", Err: err}
	}

	var r reply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return palette.Palette{}, &FormatError{Reason: "unparseable JSON", Err: err}
	}
	if r.Colors == nil {
		return palette.Palette{}, &FormatError{Reason: "missing colors"}
	}

	p, err := palette.FromSlice(r.Colors)
	if err != nil {
		return palette.Palette{}, &FormatError{Reason: "invalid colors", Err: err}
	}
	return p, nil
}

func (s *Service) fallback(theme string) Result {
	return Result{
		Success:  false,
		Colors:   s.random(),
		Theme:    theme,
		Error:    MsgFallback,
		Fallback: true,
	}
}

// IsFormatError reports whether err came from an unusable model reply.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
