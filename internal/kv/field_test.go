package kv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stringerTest string

func (s stringerTest) String() string {
	return string(s)
}

func TestField_String(t *testing.T) {
	for _, tt := range []struct {
		f     KeyValue
		want  string
		panic bool
	}{
		{f: Int("int", 1), want: "1"},
		{f: String("string", "test"), want: "test"},
		{f: Bool("bool", true), want: "true"},
		{f: Duration("duration", time.Hour), want: time.Hour.String()},
		{f: NamedError("named_error", errors.New("named error")), want: "named error"},
		{f: Error(errors.New("error")), want: "error"},
		{f: Error(nil), want: "<nil>"},
		{f: Any("any_int", 1), want: "1"},
		{f: Any("any_string", "any string"), want: "any string"},
		{f: Any("any_nil", nil), want: "<nil>"},
		{f: Any("any_string_ptr", func(v string) *string { return &v }("string pointer")), want: "*string(string pointer)"}, //nolint:lll
		{f: Any("any_string_nil", (*string)(nil)), want: "<nil>"},
		{f: Stringer("stringer", stringerTest("stringerTest")), want: "stringerTest"},
		{f: Stringer("nil_stringer", nil), want: "<nil>"},
		{f: KeyValue{ftype: InvalidType, key: "invalid"}, panic: true},
	} {
		t.Run(tt.f.key, func(t *testing.T) {
			if tt.panic {
				require.Panics(t, func() { _ = tt.f.String() })

				return
			}
			require.Equal(t, tt.want, tt.f.String())
		})
	}
}

func TestField_AnyValue(t *testing.T) {
	for _, tt := range []struct {
		name string
		f    KeyValue
		want interface{}
	}{
		{name: "int", f: Int("any", 1), want: 1},
		{name: "string", f: String("any", "any string"), want: "any string"},
		{name: "bool", f: Bool("any", true), want: true},
		{name: "duration", f: Duration("any", time.Second), want: time.Second},
		{name: "error", f: Error(errors.New("error")), want: errors.New("error")},
		{name: "namedError", f: NamedError("any", nil), want: nil},
		{name: "stringer", f: Stringer("any", stringerTest("stringerTest")), want: stringerTest("stringerTest")},
		{name: "any_int", f: Any("any", 1), want: 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.f.AnyValue())
		})
	}
}

func TestField_GetterPanicsOnTypeMismatch(t *testing.T) {
	require.Panics(t, func() {
		_ = String("k", "v").IntValue()
	})
	require.Equal(t, "string", StringType.String())
	require.Equal(t, "invalid", FieldType(100).String())
}
