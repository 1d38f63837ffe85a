package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-logr/logr"
)

// Middleware decorates a Caller to inject cross-cutting concerns
// (rate limiting, retries, logging).
type Middleware func(Caller) Caller

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Caller, mws ...Middleware) Caller {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// RateLimit limits request rate using a token-bucket limiter.
// If rps <= 0, the limiter is effectively disabled.
func RateLimit(rps float64, burst int) Middleware {
	return func(next Caller) Caller {
		rl := newRPSLimiter(rps, burst) // nil when disabled
		return &rateLimited{next: next, rl: rl}
	}
}

type rateLimited struct {
	next Caller
	rl   *rpsLimiter
}

func (c *rateLimited) Name() string { return c.next.Name() }
func (c *rateLimited) Close() error {
	c.rl.Stop()
	return c.next.Close()
}

func (c *rateLimited) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	if err := c.rl.Acquire(ctx); err != nil {
		return nil, err
	}
	return c.next.GenerateJSON(ctx, r)
}

// WithTimeout caps each call at d. A non-positive d disables the cap.
func WithTimeout(d time.Duration) Middleware {
	return func(next Caller) Caller {
		return &timed{next: next, d: d}
	}
}

type timed struct {
	next Caller
	d    time.Duration
}

func (t *timed) Name() string { return t.next.Name() }
func (t *timed) Close() error { return t.next.Close() }

func (t *timed) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	if t.d <= 0 {
		return t.next.GenerateJSON(ctx, r)
	}
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.GenerateJSON(ctx, r)
}

// WithLogging logs request sizes and failures, attributed to the stage tag
// carried by the context.
func WithLogging(log logr.Logger) Middleware {
	return func(next Caller) Caller {
		return &logging{next: next, log: log}
	}
}

type logging struct {
	next Caller
	log  logr.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	in, _ := json.Marshal(r.Input)
	l.log.V(1).Info("model request", "client", l.next.Name(), "stage", StageFrom(ctx), "bytes", len(r.Prompt)+len(in))
	raw, err := l.next.GenerateJSON(ctx, r)
	if err != nil {
		l.log.Error(err, "model request failed", "client", l.next.Name(), "stage", StageFrom(ctx))
		return nil, err
	}
	l.log.V(1).Info("model response", "client", l.next.Name(), "stage", StageFrom(ctx), "bytes", len(raw))
	return raw, nil
}
