// Package llm provides the model client used by the blueprint stages: a
// small Caller interface, concrete clients for the supported providers, and
// composable middleware for retries, rate limiting, caching, and logging.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrInvalidJSON is returned when a model reply is empty or not valid JSON.
var ErrInvalidJSON = errors.New("llm: invalid JSON from model")

// Request is one structured-output call. Input is serialized as indented
// JSON into the user message so prior stage results stay readable to the
// model. MaxTokens caps the reply; zero uses the client default.
type Request struct {
	Prompt    string
	Input     any
	MaxTokens int
}

// Caller is the minimal surface a blueprint stage needs from a model.
type Caller interface {
	Name() string
	GenerateJSON(ctx context.Context, req Request) (json.RawMessage, error)
	Close() error
}

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

type ctxKeyStage struct{}

// WithStage tags the context with the blueprint stage issuing the call so
// middleware can attribute requests.
func WithStage(ctx context.Context, stage string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKeyStage{}, stage)
}

// StageFrom returns the stage tag set by WithStage, or "" when absent.
func StageFrom(ctx context.Context) string {
	if ctx != nil {
		if v := ctx.Value(ctxKeyStage{}); v != nil {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}
