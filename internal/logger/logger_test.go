package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("development") })

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithUserEmail(ctx, "a@x.com")

	CtxInfo(ctx, "hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-1", entry["user_id"])
	assert.Equal(t, "a@x.com", entry["user_email"])
	assert.Equal(t, "v", entry["k"])
}

func TestFromContext_EmptyContext(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("development") })

	CtxWarn(context.Background(), "plain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.NotContains(t, entry, "request_id")
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestInit_DevelopmentEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("development", &buf)
	t.Cleanup(func() { Init("development") })

	Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	InitWithWriter("production", &buf)
	Debug("hidden")
	assert.Empty(t, buf.String())
}
