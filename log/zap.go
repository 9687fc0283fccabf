package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts zap.Logger to Logger. Names from context become the zap logger name.
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl >= QUIET {
		return
	}

	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}

	ce := l.Check(zapLevel(lvl), msg)
	if ce == nil {
		return
	}

	ce.Write(zapFields(fields)...)
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	default:
		// zap fatal level exits the process
		return zapcore.ErrorLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case IntType:
			zf = append(zf, zap.Int(f.Key(), f.IntValue()))
		case StringType:
			zf = append(zf, zap.String(f.Key(), f.StringValue()))
		case BoolType:
			zf = append(zf, zap.Bool(f.Key(), f.BoolValue()))
		case DurationType:
			zf = append(zf, zap.Duration(f.Key(), f.DurationValue()))
		case ErrorType:
			zf = append(zf, zap.NamedError(f.Key(), f.ErrorValue()))
		case StringerType:
			zf = append(zf, zap.Stringer(f.Key(), f.Stringer()))
		default:
			zf = append(zf, zap.Any(f.Key(), f.AnyValue()))
		}
	}

	return zf
}
