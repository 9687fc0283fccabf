package trace

import (
	"context"
	"fmt"
)

type (
	// Scenario specified trace of scenario runner activity.
	Scenario struct {
		OnRun  func(ScenarioRunStartInfo) func(ScenarioRunDoneInfo)
		OnStep func(ScenarioStepStartInfo) func(ScenarioStepDoneInfo)
	}

	ScenarioRunStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		ID      string
		Name    string
	}
	ScenarioRunDoneInfo struct {
		Steps int
		Error error
	}
	ScenarioStepStartInfo struct {
		Context *context.Context
		Call    call
		ID      string
		Index   int
		Op      string
	}
	ScenarioStepDoneInfo struct {
		// List renders the list after the step. It must not be kept after the hook returns.
		List  fmt.Stringer
		Error error
	}
)
