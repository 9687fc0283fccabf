package log

import (
	"context"
	"time"

	"github.com/learnstructures/singly/trace"
)

// List makes trace.List with logging events from details
func List(l Logger, d trace.Detailer) (t trace.List) {
	t.OnInsert = func(info trace.ListInsertStartInfo) func(trace.ListInsertDoneInfo) {
		if d.Details()&trace.ListInsertEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "singly", "list", "insert")
		position := info.Position
		value := info.Value
		anchor := info.Anchor
		l.Log(ctx, "start",
			String("position", string(position)),
			Any("value", value),
		)
		start := time.Now()

		return func(info trace.ListInsertDoneInfo) {
			if info.Inserted {
				l.Log(WithLevel(ctx, DEBUG), "done",
					String("position", string(position)),
					Any("value", value),
					Int("size", info.Size),
					latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, DEBUG), "anchor not found",
					Any("value", value),
					Any("anchor", anchor),
					Bool("inserted", false),
					Int("size", info.Size),
				)
			}
		}
	}
	t.OnRemove = func(info trace.ListRemoveStartInfo) func(trace.ListRemoveDoneInfo) {
		if d.Details()&trace.ListRemoveEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "singly", "list", "remove")
		position := info.Position
		l.Log(ctx, "start",
			appendFieldByCondition(position == trace.ListPositionValue,
				Any("value", info.Value),
				String("position", string(position)),
			)...,
		)
		start := time.Now()

		return func(info trace.ListRemoveDoneInfo) {
			if info.Removed {
				l.Log(WithLevel(ctx, DEBUG), "done",
					String("position", string(position)),
					Any("value", info.Value),
					Int("size", info.Size),
					latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, DEBUG), "nothing removed",
					String("position", string(position)),
					Bool("removed", false),
					Int("size", info.Size),
				)
			}
		}
	}
	t.OnClear = func(info trace.ListClearStartInfo) func(trace.ListClearDoneInfo) {
		if d.Details()&trace.ListClearEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "singly", "list", "clear")
		l.Log(ctx, "start",
			Int("size", info.Size),
		)

		return func(info trace.ListClearDoneInfo) {
			l.Log(WithLevel(ctx, DEBUG), "done",
				Int("removed", info.Removed),
			)
		}
	}

	return t
}
