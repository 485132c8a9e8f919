package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := WithContext(context.Background(), New(cfg))
	ctx = WithComponent(ctx, "router")
	FromContext(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "router", entry["component"])
	assert.Equal(t, "hello", entry["message"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://mail.proton.me", TruncateURL("https://mail.proton.me", 60))
	assert.Equal(t, "https://...", TruncateURL("https://mail.proton.me/u/0/inbox", 11))
	assert.Equal(t, "abcdef", TruncateURL("abcdef", 2))
}
