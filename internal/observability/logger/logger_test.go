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

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestFrom_FallsBackToSingleton(t *testing.T) {
	require.NotNil(t, From(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	require.NotNil(t, From(nil))
}

func TestToContext_ScopedLoggerIsReturned(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	scoped := zap.New(core).With(RequestID("abc"))

	ctx := ToContext(context.Background(), scoped)
	From(ctx).Info("hola", RecordID(7))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.EqualValues(t, 7, fields["record_id"])
}

func TestFromWithFields_AddsToScopedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core).With(RequestID("req-1")))

	FromWithFields(ctx, Layer("service"), Op("Update")).Info("record updated")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "service", fields["layer"])
	assert.Equal(t, "Update", fields["op"])
}

func TestWith_UsesSingleton(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Set(prev) })

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	With(Component("main")).Info("listening")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "main", entries[0].ContextMap()["component"])
}
