package trace

import (
	"context"
	"fmt"
)

// scenarioComposeOptions is a holder of options
type scenarioComposeOptions struct {
	panicCallback func(e interface{})
}

// ScenarioComposeOption specified Scenario compose option
type ScenarioComposeOption func(o *scenarioComposeOptions)

// WithScenarioPanicCallback specified behavior on panic
func WithScenarioPanicCallback(cb func(e interface{})) ScenarioComposeOption {
	return func(o *scenarioComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Scenario which has functional fields composed both from t and x.
func (t *Scenario) Compose(x *Scenario, opts ...ScenarioComposeOption) *Scenario {
	var ret Scenario
	options := scenarioComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnRun
		h2 := x.OnRun
		ret.OnRun = func(s ScenarioRunStartInfo) func(ScenarioRunDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ScenarioRunDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d ScenarioRunDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnStep
		h2 := x.OnStep
		ret.OnStep = func(s ScenarioStepStartInfo) func(ScenarioStepDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ScenarioStepDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d ScenarioStepDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}

	return &ret
}

func (t *Scenario) onRun(s ScenarioRunStartInfo) func(ScenarioRunDoneInfo) {
	fn := t.OnRun
	if fn == nil {
		return func(ScenarioRunDoneInfo) {}
	}
	res := fn(s)
	if res == nil {
		return func(ScenarioRunDoneInfo) {}
	}

	return res
}

func (t *Scenario) onStep(s ScenarioStepStartInfo) func(ScenarioStepDoneInfo) {
	fn := t.OnStep
	if fn == nil {
		return func(ScenarioStepDoneInfo) {}
	}
	res := fn(s)
	if res == nil {
		return func(ScenarioStepDoneInfo) {}
	}

	return res
}

func ScenarioOnRun(t *Scenario, c *context.Context, call call, id, name string) func(steps int, _ error) {
	var p ScenarioRunStartInfo
	p.Context = c
	p.Call = call
	p.ID = id
	p.Name = name
	res := t.onRun(p)

	return func(steps int, e error) {
		var p ScenarioRunDoneInfo
		p.Steps = steps
		p.Error = e
		res(p)
	}
}

func ScenarioOnStep(t *Scenario, c *context.Context, call call, id string, index int, op string) func(list fmt.Stringer, _ error) {
	var p ScenarioStepStartInfo
	p.Context = c
	p.Call = call
	p.ID = id
	p.Index = index
	p.Op = op
	res := t.onStep(p)

	return func(list fmt.Stringer, e error) {
		var p ScenarioStepDoneInfo
		p.List = list
		p.Error = e
		res(p)
	}
}
