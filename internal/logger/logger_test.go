package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every log entry contains the role.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decodeEntry(t, &buf)["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", &buf, zerolog.DebugLevel)
	assert.Equal(t, "func", zerolog.CallerFieldName)

	l.Info().Msg("where")
	fn, ok := decodeEntry(t, &buf)["func"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(fn, "TestNewLogger_CallerFieldName"), fn)
}

// TestNewLogger_RespectsLevel verifies that entries below the level are dropped.
func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", &buf, zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
}

func TestNewClientLogger_WritesToDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cftunnel")

	l := NewClientLogger("cli", dir, "debug")
	l.Debug().Str("step", "tunnel").Msg("created")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"step":"tunnel"`)
	assert.Contains(t, string(data), `"role":"cli"`)
}

func TestNewClientLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := NewClientLogger("cli", t.TempDir(), "chatty")
	defer l.Close()
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewClientLogger_UnwritableDirDiscards(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	l := NewClientLogger("cli", filepath.Join(blocker, "sub"), "info")
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
	assert.NoError(t, l.Close())
}

// TestClose_Idempotent verifies that Close can be called repeatedly.
func TestClose_Idempotent(t *testing.T) {
	l := NewClientLogger("cli", t.TempDir(), "info")
	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
	assert.NoError(t, Nop().Close())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf, zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

// TestFromContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role", &buf, zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
}
