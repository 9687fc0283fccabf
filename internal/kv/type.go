package kv

// FieldType indicates type info about the KeyValue. This enum might be extended in future releases.
// Even if that happens, it should not break the adapters which support only the known types.
type FieldType int

const (
	// Special type used by adapters to indicate badly typed fields
	InvalidType FieldType = iota
	IntType
	StringType
	BoolType
	DurationType
	ErrorType
	// Corresponds to interface{}
	AnyType

	StringerType

	endType
)

var fieldTypeStrings = []string{
	"invalid",
	"int",
	"string",
	"bool",
	"time.Duration",
	"error",
	"interface{}",
	"fmt.Stringer",
}

func (ft FieldType) String() (typeName string) {
	if ft < InvalidType || ft >= endType {
		return fieldTypeStrings[InvalidType]
	}

	return fieldTypeStrings[ft]
}
