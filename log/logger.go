package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/learnstructures/singly/internal/xstring"
)

const (
	dateLayout = "2006-01-02 15:04:05.000"
)

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*defaultLogger)(nil)

// Option configures the Default logger
type Option interface {
	applySimpleOption(l *defaultLogger)
}

// Default returns text logger writing lines like
//
//	2006-01-02 15:04:05.000 INFO 'singly.list' => message {"key":"value"}
func Default(w io.Writer, opts ...Option) *defaultLogger {
	l := &defaultLogger{
		coloring: false,
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applySimpleOption(l)
		}
	}

	return l
}

type defaultLogger struct {
	mu       sync.Mutex
	coloring bool
	minLevel Level
	clock    clockwork.Clock
	w        io.Writer
}

func (l *defaultLogger) format(namespace []string, msg string, logLevel Level) string {
	b := xstring.Buffer()
	defer b.Free()
	if l.coloring {
		b.WriteString(logLevel.Color())
	}
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	lvl := logLevel.String()
	if l.coloring {
		b.WriteString(colorReset)
		b.WriteString(logLevel.BoldColor())
	}
	b.WriteString(lvl)
	if l.coloring {
		b.WriteString(colorReset)
		b.WriteString(logLevel.Color())
	}
	b.WriteString(" '")
	for i, name := range namespace {
		if i != 0 {
			b.WriteByte('.')
		}
		b.WriteString(name)
	}
	b.WriteString("' => ")
	b.WriteString(msg)
	if l.coloring {
		b.WriteString(colorReset)
	}

	return b.String()
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}

	line := l.format(
		NamesFromContext(ctx),
		l.appendFields(msg, fields...),
		lvl,
	) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.w, line)
}

func (l *defaultLogger) appendFields(msg string, fields ...Field) string {
	if len(fields) == 0 {
		return msg
	}
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString(msg)
	b.WriteString(" {")
	for i := range fields {
		if i != 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, `%q:%q`, fields[i].Key(), fields[i].String())
	}
	b.WriteByte('}')

	return b.String()
}
