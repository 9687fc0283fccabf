package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/learnstructures/singly/trace"
)

func TestScenario(t *testing.T) {
	r := &recorder{}
	s := Scenario(r, trace.ScenarioEvents)

	ctx := WithNames(context.Background(), "cli")
	onDone := trace.ScenarioOnRun(&s, &ctx, nil, "id-1", "remove head")
	trace.ScenarioOnStep(&s, &ctx, nil, "id-1", 0, "addFirst")(stringer("head ->Bailey -> |||"), nil)
	trace.ScenarioOnStep(&s, &ctx, nil, "id-1", 1, "size")(stringer("head ->Bailey -> |||"), errors.New("size mismatch"))
	onDone(2, errors.New("failed"))

	require.Len(t, r.records, 6)

	require.Equal(t, DEBUG, r.records[0].level)
	require.Equal(t, "cli.singly.scenario.run", r.records[0].names)
	require.Equal(t, "remove head", r.records[0].fields["name"])

	require.Equal(t, TRACE, r.records[2].level)
	require.Equal(t, "done", r.records[2].msg)
	require.Equal(t, "head ->Bailey -> |||", r.records[2].fields["list"])

	require.Equal(t, WARN, r.records[4].level)
	require.Equal(t, "mismatch", r.records[4].msg)
	require.Equal(t, "size mismatch", r.records[4].fields["reason"])

	require.Equal(t, ERROR, r.records[5].level)
	require.Equal(t, "failed", r.records[5].msg)
	require.Equal(t, "2", r.records[5].fields["steps"])
}

func TestScenarioNilContext(t *testing.T) {
	r := &recorder{}
	s := Scenario(r, trace.ScenarioRunEvents)

	trace.ScenarioOnRun(&s, nil, nil, "id-2", "empty")(0, nil)
	trace.ScenarioOnStep(&s, nil, nil, "id-2", 0, "size")(stringer("head ->|||"), nil)

	require.Len(t, r.records, 2)
	require.Equal(t, "singly.scenario.run", r.records[1].names)
	require.Equal(t, INFO, r.records[1].level)
}
