package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-logr/logr"

	"archsmith/internal/tester"
)

// tagging prepends its tag to the prompt so wrap order is observable.
type tagging struct {
	next Caller
	tag  string
}

func (c *tagging) Name() string { return c.next.Name() }
func (c *tagging) Close() error { return c.next.Close() }
func (c *tagging) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	r.Prompt = c.tag + r.Prompt
	return c.next.GenerateJSON(ctx, r)
}

func TestWrapAppliesLeftToRight(t *testing.T) {
	inner := NewFakeCaller()
	outer := func(tag string) Middleware {
		return func(next Caller) Caller { return &tagging{next: next, tag: tag} }
	}
	cli := Wrap(inner, outer("A"), outer("B"))

	_, err := cli.GenerateJSON(context.Background(), Request{Prompt: "p"})
	tester.NoErr(t, err)
	tester.Eq(t, inner.Calls[0].Prompt, "ABp")
}

func TestRateLimitBurstThenCancel(t *testing.T) {
	inner := NewFakeCaller()
	cli := Wrap(inner, RateLimit(0.5, 2))
	t.Cleanup(func() { _ = cli.Close() })

	ctx := context.Background()
	// Burst capacity admits the first two calls without waiting.
	_, err := cli.GenerateJSON(ctx, Request{Prompt: "p"})
	tester.NoErr(t, err)
	_, err = cli.GenerateJSON(ctx, Request{Prompt: "p"})
	tester.NoErr(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = cli.GenerateJSON(canceled, Request{Prompt: "p"})
	tester.ErrIs(t, err, context.Canceled)
	tester.Eq(t, len(inner.Calls), 2)
}

func TestWithLoggingPassesThrough(t *testing.T) {
	inner := NewFakeCaller()
	cli := Wrap(inner, WithLogging(logr.Discard()))

	ctx := WithStage(context.Background(), "database")
	raw, err := cli.GenerateJSON(ctx, Request{Prompt: "p"})
	tester.NoErr(t, err)
	tester.True(t, len(raw) > 0)
	tester.Eq(t, inner.Calls[0].Stage, "database")
}

func TestFakeCallerStagePayloadsDecode(t *testing.T) {
	fake := NewFakeCaller()
	for _, stage := range []string{"requirements", "database", "api", "frontend", "deployment"} {
		raw, err := fake.GenerateJSON(WithStage(context.Background(), stage), Request{Prompt: "p"})
		tester.NoErr(t, err, stage)
		var scratch map[string]any
		tester.NoErr(t, json.Unmarshal(raw, &scratch), stage)
		tester.True(t, len(scratch) > 0, stage)
	}
}
