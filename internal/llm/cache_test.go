package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReusesIdenticalRequests(t *testing.T) {
	fake := NewFakeCaller()
	fake.Responses["requirements"] = json.RawMessage(`{"cached": true}`)
	caller := Wrap(fake, WithCache(16, time.Minute))

	ctx := WithStage(context.Background(), "requirements")
	req := Request{Prompt: "analyze", Input: map[string]string{"idea": "dog sitting"}, MaxTokens: 512}

	first, err := caller.GenerateJSON(ctx, req)
	require.NoError(t, err)
	second, err := caller.GenerateJSON(ctx, req)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Len(t, fake.Calls, 1, "second call must be served from cache")
}

func TestCacheKeySeparatesStagesAndInputs(t *testing.T) {
	fake := NewFakeCaller()
	caller := Wrap(fake, WithCache(16, time.Minute))

	req := Request{Prompt: "analyze", Input: "idea one", MaxTokens: 512}
	_, err := caller.GenerateJSON(WithStage(context.Background(), "requirements"), req)
	require.NoError(t, err)
	_, err = caller.GenerateJSON(WithStage(context.Background(), "database"), req)
	require.NoError(t, err)

	other := Request{Prompt: "analyze", Input: "idea two", MaxTokens: 512}
	_, err = caller.GenerateJSON(WithStage(context.Background(), "database"), other)
	require.NoError(t, err)

	assert.Len(t, fake.Calls, 3)
}

func TestCacheSkipsFailures(t *testing.T) {
	fake := NewFakeCaller()
	fake.Err = errors.New("model unavailable")
	caller := Wrap(fake, WithCache(16, time.Minute))

	ctx := WithStage(context.Background(), "requirements")
	req := Request{Prompt: "analyze", Input: "some idea", MaxTokens: 512}

	_, err := caller.GenerateJSON(ctx, req)
	require.Error(t, err)

	fake.Err = nil
	_, err = caller.GenerateJSON(ctx, req)
	require.NoError(t, err)
	_, err = caller.GenerateJSON(ctx, req)
	require.NoError(t, err)

	assert.Len(t, fake.Calls, 2, "failure must not be cached, success must be")
}

func TestCacheDisabledIsPassthrough(t *testing.T) {
	fake := NewFakeCaller()
	caller := Wrap(fake, WithCache(0, time.Minute))

	ctx := WithStage(context.Background(), "requirements")
	req := Request{Prompt: "analyze", Input: "some idea", MaxTokens: 512}
	for i := 0; i < 3; i++ {
		_, err := caller.GenerateJSON(ctx, req)
		require.NoError(t, err)
	}
	assert.Len(t, fake.Calls, 3)
}
