package log

import (
	"github.com/jonboulle/clockwork"
)

var (
	_ Option = coloringOption(false)
	_ Option = minLevelOption(INFO)
	_ Option = clockOption{}
)

type coloringOption bool

func (coloring coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = bool(coloring)
}

func WithColoring() coloringOption {
	return true
}

type minLevelOption Level

func (level minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(level)
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}

type clockOption struct {
	clock clockwork.Clock
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	if o.clock != nil {
		l.clock = o.clock
	}
}

// WithClock replaces the wall clock used for timestamps
func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}
