package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stringer string

func (s stringer) String() string {
	return string(s)
}

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Zap(zap.New(core))

	ctx := with(context.Background(), DEBUG, "singly", "list")
	l.Log(ctx, "done",
		String("value", "Bailey"),
		Int("size", 1),
		Bool("removed", true),
		Duration("latency", time.Second),
		Error(errors.New("oops")),
		Stringer("rendering", stringer("head ->|||")),
		Any("any", 42),
	)
	l.Log(WithLevel(ctx, QUIET), "quiet")
	l.Log(WithLevel(context.Background(), WARN), "unnamed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	require.Equal(t, "singly.list", entries[0].LoggerName)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "done", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "Bailey", fields["value"])
	require.Equal(t, int64(1), fields["size"])
	require.Equal(t, true, fields["removed"])
	require.Equal(t, time.Second, fields["latency"])
	require.Equal(t, "oops", fields["error"])
	require.Equal(t, "head ->|||", fields["rendering"])

	require.Empty(t, entries[1].LoggerName)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestZapLevel(t *testing.T) {
	for _, tt := range []struct {
		lvl Level
		exp zapcore.Level
	}{
		{lvl: TRACE, exp: zapcore.DebugLevel},
		{lvl: DEBUG, exp: zapcore.DebugLevel},
		{lvl: INFO, exp: zapcore.InfoLevel},
		{lvl: WARN, exp: zapcore.WarnLevel},
		{lvl: ERROR, exp: zapcore.ErrorLevel},
		{lvl: FATAL, exp: zapcore.ErrorLevel},
	} {
		t.Run(tt.lvl.String(), func(t *testing.T) {
			require.Equal(t, tt.exp, zapLevel(tt.lvl))
		})
	}
}
