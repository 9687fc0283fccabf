package stack

type Caller interface {
	FunctionID() string
}

var (
	_ Caller = functionID("")
	_ Caller = call{}
)

type functionID string

func (id functionID) FunctionID() string {
	return string(id)
}

// FunctionID returns the static id when it is set, otherwise the caller of FunctionID
func FunctionID(id string) Caller {
	if id != "" {
		return functionID(id)
	}

	return Call(1)
}
