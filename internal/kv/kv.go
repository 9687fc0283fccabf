package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// KeyValue represents typed log field (a key-value pair). Adapters should determine
// KeyValue's type based on Type and use the corresponding getter method to retrieve
// the value:
//
//	switch f.Type() {
//	case kv.IntType:
//		var i int = f.IntValue()
//		// handle int value
//	case kv.StringType:
//		var s string = f.StringValue()
//		// handle string value
//	//...
//	}
//
// Getter methods must not be called with fields of other types.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

// Type returns type of the KeyValue
func (f KeyValue) Type() FieldType {
	return f.ftype
}

// Key returns the KeyValue's key
func (f KeyValue) Key() string {
	return f.key
}

// StringValue is a value getter for fields with StringType type
func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

// IntValue is a value getter for fields with IntType type
func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

// BoolValue is a value getter for fields with BoolType type
func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

// DurationValue is a value getter for fields with DurationType type
func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Nanosecond * time.Duration(f.vint)
}

// ErrorValue is a value getter for fields with ErrorType type
func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(error)

	return val
}

// AnyValue is a value getter for fields with AnyType type
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case AnyType:
		return f.vany
	case IntType:
		return f.IntValue()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case ErrorType:
		return f.ErrorValue()
	case StringerType:
		return f.Stringer()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// Stringer is a value getter for fields with StringerType type
func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(fmt.Stringer)

	return val
}

// Panics on type mismatch
func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// Returns default string representation of KeyValue value.
// It should be used by adapters that don't support f.Type directly.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case ErrorType:
		if f.vany == nil || f.vany.(error) == nil { //nolint:forcetypeassert
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}
		if v := reflect.ValueOf(f.vany); v.Type().Kind() == reflect.Ptr {
			if v.IsNil() {
				return "<nil>"
			}

			return v.Type().String() + "(" + fmt.Sprint(v.Elem()) + ")"
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		return f.Stringer().String()
	default:
		return fmt.Sprint(f.AnyValue())
	}
}

// String constructs KeyValue with StringType
func String(k, v string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   k,
		vstr:  v,
	}
}

// Int constructs KeyValue with IntType
func Int(k string, v int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   k,
		vint:  int64(v),
	}
}

// Bool constructs KeyValue with BoolType
func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  vint,
	}
}

// Duration constructs KeyValue with DurationType
func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

// NamedError constructs KeyValue with ErrorType
func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

// Error is the same as NamedError("error", value)
func Error(value error) KeyValue {
	return NamedError("error", value)
}

// Any constructs untyped KeyValue.
func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

// Stringer constructs KeyValue with StringerType. If value is nil,
// resulting KeyValue will be of AnyType instead of StringerType.
func Stringer(key string, value fmt.Stringer) KeyValue {
	if value == nil {
		return Any(key, nil)
	}

	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}
