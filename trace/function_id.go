package trace

import "github.com/learnstructures/singly/internal/stack"

// default behavior is not to generate functionID in traces
var skipFunctionID = true

func FunctionID(depth int) string {
	if skipFunctionID {
		return ""
	}

	return stack.Record(depth+1, stack.Lambda(false), stack.FileName(false))
}

func EnableFunctionID() {
	skipFunctionID = false
}
