package scenario

// Op names a list operation of a step
type Op string

const (
	OpAddFirst     = Op("addFirst")
	OpAddLast      = Op("addLast")
	OpSetFirst     = Op("setFirst")
	OpRemoveFirst  = Op("removeFirst")
	OpRemoveLast   = Op("removeLast")
	OpRemove       = Op("remove")
	OpContains     = Op("contains")
	OpIndexOf      = Op("indexOf")
	OpFirst        = Op("first")
	OpLast         = Op("last")
	OpInsertBefore = Op("insertBefore")
	OpSize         = Op("size")
	OpValues       = Op("values")
	OpString       = Op("string")
	OpClear        = Op("clear")
)

// result is the kind of value an operation returns
type result int

const (
	resultNone result = iota
	resultBool
	resultInt
	resultString
	// resultOptional is a string which may be absent (empty list)
	resultOptional
	resultValues
)

var ops = map[Op]result{
	OpAddFirst:     resultNone,
	OpAddLast:      resultNone,
	OpSetFirst:     resultNone,
	OpRemoveFirst:  resultOptional,
	OpRemoveLast:   resultOptional,
	OpRemove:       resultBool,
	OpContains:     resultBool,
	OpIndexOf:      resultInt,
	OpFirst:        resultOptional,
	OpLast:         resultOptional,
	OpInsertBefore: resultBool,
	OpSize:         resultInt,
	OpValues:       resultValues,
	OpString:       resultString,
	OpClear:        resultInt,
}
