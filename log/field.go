package log

import (
	"fmt"
	"time"

	"github.com/learnstructures/singly/internal/kv"
)

type (
	Field = kv.KeyValue
)

const (
	IntType      = kv.IntType
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	ErrorType    = kv.ErrorType
	AnyType      = kv.AnyType
	StringerType = kv.StringerType
)

func String(k, v string) Field {
	return kv.String(k, v)
}

func Int(k string, v int) Field {
	return kv.Int(k, v)
}

func Bool(k string, v bool) Field {
	return kv.Bool(k, v)
}

func Duration(k string, v time.Duration) Field {
	return kv.Duration(k, v)
}

func NamedError(k string, v error) Field {
	return kv.NamedError(k, v)
}

func Error(v error) Field {
	return kv.Error(v)
}

func Any(k string, v interface{}) Field {
	return kv.Any(k, v)
}

func Stringer(k string, v fmt.Stringer) Field {
	return kv.Stringer(k, v)
}

func latencyField(start time.Time) Field {
	return Duration("latency", time.Since(start))
}

func appendFieldByCondition(condition bool, ifTrueField Field, fields ...Field) []Field {
	if condition {
		fields = append(fields, ifTrueField)
	}

	return fields
}
