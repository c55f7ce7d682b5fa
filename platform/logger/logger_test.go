package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Tests swap the global logger and therefore run sequentially.

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	mu.Lock()
	prev := globalLogger
	globalLogger = &logger{zapLogger: zap.New(core)}
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		globalLogger = prev
		mu.Unlock()
	})
	return logs
}

func TestInit(t *testing.T) {
	t.Cleanup(SetNopLogger)

	require.NoError(t, Init("debug", true))
	require.NoError(t, Init(" warn ", false))
	assert.Error(t, Init("loud", false))
}

func TestRunIDField(t *testing.T) {
	logs := observe(t)

	ctx := WithRunID(context.Background(), "run-42")
	Info(ctx, "📦 Adding furniture items...", Int("count", 2))
	Warn(context.Background(), "no run id")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "run-42", entries[0].ContextMap()["run_id"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])
	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}

func TestWith(t *testing.T) {
	logs := observe(t)

	l := With(String("collection", "furniture"))
	l.Error(context.Background(), "failed", ErrorF(assert.AnError))

	entries := logs.FilterMessage("failed").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "furniture", entries[0].ContextMap()["collection"])
	assert.Equal(t, assert.AnError.Error(), entries[0].ContextMap()["error"])
}
