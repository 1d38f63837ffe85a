package llm

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// WithCache memoizes successful responses keyed by the full request, so
// rerunning an unchanged idea within the TTL skips the paid model call.
// maxEntries <= 0 disables caching.
func WithCache(maxEntries int, ttl time.Duration) Middleware {
	return func(next Caller) Caller {
		if maxEntries <= 0 {
			return next
		}
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		return &cached{
			next:    next,
			entries: expirable.NewLRU[string, json.RawMessage](maxEntries, nil, ttl),
		}
	}
}

type cached struct {
	next    Caller
	entries *expirable.LRU[string, json.RawMessage]
}

func (c *cached) Name() string { return c.next.Name() }
func (c *cached) Close() error { return c.next.Close() }

func (c *cached) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	key, ok := cacheKey(c.next.Name(), StageFrom(ctx), r)
	if !ok {
		return c.next.GenerateJSON(ctx, r)
	}
	if raw, hit := c.entries.Get(key); hit {
		return raw, nil
	}
	raw, err := c.next.GenerateJSON(ctx, r)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, raw)
	return raw, nil
}

func cacheKey(client, stage string, r Request) (string, bool) {
	in, err := json.Marshal(r.Input)
	if err != nil {
		return "", false
	}
	h := sha256.New()
	h.Write([]byte(client))
	h.Write([]byte{0})
	h.Write([]byte(stage))
	h.Write([]byte{0})
	h.Write([]byte(r.Prompt))
	h.Write([]byte{0})
	h.Write(in)
	var tokens [8]byte
	binary.LittleEndian.PutUint64(tokens[:], uint64(r.MaxTokens))
	h.Write(tokens[:])
	return hex.EncodeToString(h.Sum(nil)), true
}
