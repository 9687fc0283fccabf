package log

import (
	"context"
	"time"

	"github.com/learnstructures/singly/trace"
)

// Scenario makes trace.Scenario with logging events from details
func Scenario(l Logger, d trace.Detailer) (t trace.Scenario) {
	t.OnRun = func(info trace.ScenarioRunStartInfo) func(trace.ScenarioRunDoneInfo) {
		if d.Details()&trace.ScenarioRunEvents == 0 {
			return nil
		}
		ctx := with(contextOf(info.Context), INFO, "singly", "scenario", "run")
		id := info.ID
		name := info.Name
		l.Log(WithLevel(ctx, DEBUG), "start",
			String("id", id),
			String("name", name),
		)
		start := time.Now()

		return func(info trace.ScenarioRunDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "done",
					String("id", id),
					String("name", name),
					Int("steps", info.Steps),
					latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, ERROR), "failed",
					Error(info.Error),
					String("id", id),
					String("name", name),
					Int("steps", info.Steps),
					latencyField(start),
				)
			}
		}
	}
	t.OnStep = func(info trace.ScenarioStepStartInfo) func(trace.ScenarioStepDoneInfo) {
		if d.Details()&trace.ScenarioStepEvents == 0 {
			return nil
		}
		ctx := with(contextOf(info.Context), TRACE, "singly", "scenario", "step")
		id := info.ID
		index := info.Index
		op := info.Op
		l.Log(ctx, "start",
			String("id", id),
			Int("index", index),
			String("op", op),
		)

		return func(info trace.ScenarioStepDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "done",
					String("id", id),
					Int("index", index),
					String("op", op),
					Stringer("list", info.List),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "mismatch",
					NamedError("reason", info.Error),
					String("id", id),
					Int("index", index),
					String("op", op),
					Stringer("list", info.List),
				)
			}
		}
	}

	return t
}

func contextOf(ctx *context.Context) context.Context {
	if ctx == nil || *ctx == nil {
		return context.Background()
	}

	return *ctx
}
