package log

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/learnstructures/singly/trace"
)

type record struct {
	level  Level
	names  string
	msg    string
	fields map[string]string
}

type recorder struct {
	mu      sync.Mutex
	records []record
}

func (r *recorder) Log(ctx context.Context, msg string, fields ...Field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ff := make(map[string]string, len(fields))
	for _, f := range fields {
		ff[f.Key()] = f.String()
	}
	r.records = append(r.records, record{
		level:  LevelFromContext(ctx),
		names:  strings.Join(NamesFromContext(ctx), "."),
		msg:    msg,
		fields: ff,
	})
}

func TestList(t *testing.T) {
	r := &recorder{}
	l := List(r, trace.ListEvents)

	trace.ListOnInsert(&l, nil, trace.ListPositionAfter, "Pug", "Bailey")(true, 2)
	trace.ListOnInsert(&l, nil, trace.ListPositionAfter, "Pug", "Bob")(false, 2)
	trace.ListOnRemove(&l, nil, trace.ListPositionValue, "Mimi")("Mimi", true, 1)
	trace.ListOnRemove(&l, nil, trace.ListPositionFirst, nil)(nil, false, 0)
	trace.ListOnClear(&l, nil, 3)(3)

	require.Len(t, r.records, 10)

	require.Equal(t, TRACE, r.records[0].level)
	require.Equal(t, "singly.list.insert", r.records[0].names)
	require.Equal(t, "start", r.records[0].msg)
	require.Equal(t, "after", r.records[0].fields["position"])

	require.Equal(t, DEBUG, r.records[1].level)
	require.Equal(t, "done", r.records[1].msg)
	require.Equal(t, "2", r.records[1].fields["size"])
	require.Contains(t, r.records[1].fields, "latency")

	require.Equal(t, "anchor not found", r.records[3].msg)
	require.Equal(t, "Bob", r.records[3].fields["anchor"])
	require.Equal(t, "false", r.records[3].fields["inserted"])

	require.Equal(t, "singly.list.remove", r.records[4].names)
	require.Equal(t, "Mimi", r.records[4].fields["value"])
	require.Equal(t, "done", r.records[5].msg)
	require.NotContains(t, r.records[6].fields, "value")
	require.Equal(t, "nothing removed", r.records[7].msg)
	require.Equal(t, "false", r.records[7].fields["removed"])

	require.Equal(t, "singly.list.clear", r.records[9].names)
	require.Equal(t, "3", r.records[9].fields["removed"])
}

func TestListDetails(t *testing.T) {
	r := &recorder{}
	l := List(r, trace.ListRemoveEvents)

	trace.ListOnInsert(&l, nil, trace.ListPositionFirst, "Bailey", nil)(true, 1)
	trace.ListOnClear(&l, nil, 1)(1)
	require.Empty(t, r.records)

	trace.ListOnRemove(&l, nil, trace.ListPositionLast, nil)("Bailey", true, 0)
	require.Len(t, r.records, 2)
}

func TestListWithDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	l := List(Default(&buf, WithMinLevel(TRACE)), trace.DetailsAll)

	trace.ListOnInsert(&l, nil, trace.ListPositionFirst, "Bailey", nil)(true, 1)
	require.Contains(t, buf.String(), `TRACE 'singly.list.insert' => start {"position":"first","value":"Bailey"}`)
	require.Contains(t, buf.String(), `DEBUG 'singly.list.insert' => done {"position":"first","value":"Bailey","size":"1","latency":`)
}
