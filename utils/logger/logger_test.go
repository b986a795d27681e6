package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"email", "a@b.co", "password", "hunter22", "Token", "abc", "dangling"})

	assert.Equal(t, []interface{}{"email", "a@b.co", "password", "[REDACTED]", "Token", "[REDACTED]", "dangling"}, out)
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := NewNop().With("request_id", "r-1")
	l.Debug("presigned", "document_id", 1)
	l.Info("hello", "path", "/api/users")
	l.Error("boom", "password", "x")
	l.Sync()
}

func TestLevelMethodsWriteRedactedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := (&Logger{sugar: zap.New(core).Sugar()}).With("secret", "s3")

	l.Debug("Issued presigned download URL", "document_id", 7, "token", "abc")
	l.Warn("slow query", "ms", 250)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["document_id"])
	assert.Equal(t, "[REDACTED]", fields["token"])
	assert.Equal(t, "[REDACTED]", fields["secret"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "slow query", entries[1].Message)
}
