package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(1984, time.April, 4, 0, 0, 0, 0, time.UTC)

func TestColoring(t *testing.T) {
	for _, tt := range []struct {
		l   *defaultLogger
		exp string
	}{
		{
			l: Default(nil, WithClock(clockwork.NewFakeClockAt(testTime)), WithColoring()),
			exp: "\u001B[31m1984-04-04 00:00:00.000 \u001B[0m\u001B[101mERROR\u001B[0m\u001B[31m 'test.scope' => message\u001B[0m", //nolint:lll
		},
		{
			l:   Default(nil, WithClock(clockwork.NewFakeClockAt(testTime))),
			exp: "1984-04-04 00:00:00.000 ERROR 'test.scope' => message",
		},
	} {
		t.Run("", func(t *testing.T) {
			require.Equal(t, tt.exp, tt.l.format([]string{"test", "scope"}, "message", ERROR))
		})
	}
}

func TestDefaultLog(t *testing.T) {
	var buf bytes.Buffer
	l := Default(&buf,
		WithClock(clockwork.NewFakeClockAt(testTime)),
		WithMinLevel(DEBUG),
	)

	ctx := with(context.Background(), DEBUG, "singly", "list")
	l.Log(ctx, "done",
		String("value", "Bailey"),
		Int("size", 1),
		Bool("removed", true),
		Error(errors.New("oops")),
	)
	l.Log(WithLevel(ctx, TRACE), "skipped")
	l.Log(WithLevel(ctx, INFO), "plain")

	require.Equal(t, ""+
		`1984-04-04 00:00:00.000 DEBUG 'singly.list' => done {"value":"Bailey","size":"1","removed":"true","error":"oops"}`+"\n"+
		`1984-04-04 00:00:00.000 INFO 'singly.list' => plain`+"\n",
		buf.String(),
	)
}

func TestFromString(t *testing.T) {
	for _, tt := range []struct {
		s   string
		exp Level
	}{
		{s: "trace", exp: TRACE},
		{s: "DEBUG", exp: DEBUG},
		{s: "Info", exp: INFO},
		{s: "warn", exp: WARN},
		{s: "error", exp: ERROR},
		{s: "fatal", exp: FATAL},
		{s: "quiet", exp: QUIET},
		{s: "unknown", exp: QUIET},
	} {
		t.Run(tt.s, func(t *testing.T) {
			require.Equal(t, tt.exp, FromString(tt.s))
			if tt.exp != QUIET {
				require.Equal(t, tt.exp, FromString(tt.exp.String()))
			}
		})
	}
}

func TestNamesFromContext(t *testing.T) {
	ctx := WithNames(context.Background(), "a")
	ctx1 := WithNames(ctx, "b")
	ctx2 := WithNames(ctx, "c")
	require.Equal(t, []string{"a"}, NamesFromContext(ctx))
	require.Equal(t, []string{"a", "b"}, NamesFromContext(ctx1))
	require.Equal(t, []string{"a", "c"}, NamesFromContext(ctx2))
	require.Equal(t, []string{}, NamesFromContext(context.Background()))
	require.Equal(t, TRACE, LevelFromContext(context.Background()))
}
