package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"archsmith/internal/tester"
)

// flaky fails n times before succeeding.
type flaky struct {
	failures int
	calls    int
	err      error
}

func (f *flaky) Name() string { return "flaky" }
func (f *flaky) Close() error { return nil }
func (f *flaky) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return json.RawMessage(`{}`), nil
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	inner := &flaky{failures: 2, err: errors.New("upstream 500")}
	cli := Wrap(inner, Retry(3, time.Millisecond))

	raw, err := cli.GenerateJSON(context.Background(), Request{Prompt: "p"})
	tester.NoErr(t, err)
	tester.Eq(t, string(raw), `{}`)
	tester.Eq(t, inner.calls, 3)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flaky{failures: 10, err: errors.New("upstream 500")}
	cli := Wrap(inner, Retry(2, time.Millisecond))

	_, err := cli.GenerateJSON(context.Background(), Request{Prompt: "p"})
	tester.Err(t, err)
	tester.Eq(t, inner.calls, 2)
}

func TestRetryShortCircuitsPermanentError(t *testing.T) {
	inner := &flaky{failures: 10, err: NewPermanentError(errors.New("context too long"))}
	cli := Wrap(inner, Retry(5, time.Millisecond))

	_, err := cli.GenerateJSON(context.Background(), Request{Prompt: "p"})
	var pErr *PermanentError
	tester.True(t, errors.As(err, &pErr))
	tester.Eq(t, inner.calls, 1)
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	inner := &flaky{failures: 10, err: errors.New("upstream 500")}
	cli := Wrap(inner, Retry(5, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cli.GenerateJSON(ctx, Request{Prompt: "p"})
	tester.ErrIs(t, err, context.Canceled)
	tester.Eq(t, inner.calls, 1)
}
