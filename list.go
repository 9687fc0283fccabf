package singly

import (
	"fmt"

	"github.com/learnstructures/singly/internal/stack"
	"github.com/learnstructures/singly/internal/xstring"
	"github.com/learnstructures/singly/trace"
)

type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked list of comparable values.
//
// The zero value is an empty list ready to use.
// List is not safe for concurrent use.
type List[T comparable] struct {
	head *node[T]
	size int

	trace *trace.List
}

var noTrace = &trace.List{}

// New returns an empty list
func New[T comparable](opts ...Option) *List[T] {
	options := options{
		trace: &trace.List{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return &List[T]{
		trace: options.trace,
	}
}

// From returns a list holding values in the same order
func From[T comparable](values []T, opts ...Option) *List[T] {
	l := New[T](opts...)
	var last *node[T]
	for _, v := range values {
		n := &node[T]{value: v}
		if last == nil {
			l.head = n
		} else {
			last.next = n
		}
		last = n
		l.size++
	}

	return l
}

func (l *List[T]) tracer() *trace.List {
	if l.trace == nil {
		return noTrace
	}

	return l.trace
}

func (l *List[T]) addFirst(n *node[T]) {
	n.next = l.head
	l.head = n
	l.size++
}

// tail returns the last node or nil when the list is empty
func (l *List[T]) tail() *node[T] {
	n := l.head
	if n == nil {
		return nil
	}
	for n.next != nil {
		n = n.next
	}

	return n
}

// previous returns the node linked to n.
// It returns nil for the head and for nodes out of the chain.
func (l *List[T]) previous(n *node[T]) *node[T] {
	if n == nil || n == l.head {
		return nil
	}
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.next == n {
			return cur
		}
	}

	return nil
}

func (l *List[T]) find(v T) *node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return n
		}
	}

	return nil
}

// unlink relinks the predecessor of n to its successor, n must be in the chain
func (l *List[T]) unlink(n *node[T]) {
	if n == l.head {
		l.head = n.next
	} else {
		l.previous(n).next = n.next
	}
	n.next = nil
	l.size--
}

// insertDone reports the end of an insertion, it is a no-op without OnInsert hook
type insertDone struct {
	done func(inserted bool, size int)
}

func (l *List[T]) onInsert(fn string, position trace.ListPosition, v, anchor T, hasAnchor bool) insertDone {
	t := l.tracer()
	if t.OnInsert == nil {
		return insertDone{}
	}
	var a interface{}
	if hasAnchor {
		a = anchor
	}

	return insertDone{done: trace.ListOnInsert(t, stack.FunctionID(fn), position, v, a)}
}

func (d insertDone) call(inserted bool, size int) {
	if d.done != nil {
		d.done(inserted, size)
	}
}

// removeDone reports the end of a removal, it is a no-op without OnRemove hook
type removeDone[T comparable] struct {
	done func(value interface{}, removed bool, size int)
}

func (l *List[T]) onRemove(fn string, position trace.ListPosition, v T, hasValue bool) removeDone[T] {
	t := l.tracer()
	if t.OnRemove == nil {
		return removeDone[T]{}
	}
	var value interface{}
	if hasValue {
		value = v
	}

	return removeDone[T]{done: trace.ListOnRemove(t, stack.FunctionID(fn), position, value)}
}

func (d removeDone[T]) call(v T, removed bool, size int) {
	switch {
	case d.done == nil:
	case removed:
		d.done(v, true, size)
	default:
		d.done(nil, false, size)
	}
}

// AddFirst inserts v at the head of the list
func (l *List[T]) AddFirst(v T) {
	var zero T
	onDone := l.onInsert("github.com/learnstructures/singly.(*List).AddFirst",
		trace.ListPositionFirst, v, zero, false,
	)
	l.addFirst(&node[T]{value: v})
	onDone.call(true, l.size)
}

// AddLast appends v after the tail of the list.
// It walks the whole chain to find the tail.
func (l *List[T]) AddLast(v T) {
	var zero T
	onDone := l.onInsert("github.com/learnstructures/singly.(*List).AddLast",
		trace.ListPositionLast, v, zero, false,
	)
	n := &node[T]{value: v}
	if last := l.tail(); last == nil {
		l.addFirst(n)
	} else {
		last.next = n
		l.size++
	}
	onDone.call(true, l.size)
}

// SetFirst links a new head node holding v in front of the chain.
// The previous head stays in the list, so the size grows by one.
func (l *List[T]) SetFirst(v T) {
	var zero T
	onDone := l.onInsert("github.com/learnstructures/singly.(*List).SetFirst",
		trace.ListPositionFirst, v, zero, false,
	)
	l.addFirst(&node[T]{value: v})
	onDone.call(true, l.size)
}

// InsertBefore finds the first node holding before and links a new node
// holding v right after it. It reports false and leaves the list untouched
// when no node holds before.
//
// Note the new node becomes the successor of the matched node.
func (l *List[T]) InsertBefore(v, before T) bool {
	onDone := l.onInsert("github.com/learnstructures/singly.(*List).InsertBefore",
		trace.ListPositionAfter, v, before, true,
	)
	anchor := l.find(before)
	if anchor == nil {
		onDone.call(false, l.size)

		return false
	}
	anchor.next = &node[T]{value: v, next: anchor.next}
	l.size++
	onDone.call(true, l.size)

	return true
}

// RemoveFirst unlinks the head and returns its value.
// It returns false if the list is empty.
func (l *List[T]) RemoveFirst() (v T, ok bool) {
	onDone := l.onRemove("github.com/learnstructures/singly.(*List).RemoveFirst",
		trace.ListPositionFirst, v, false,
	)
	n := l.head
	if n == nil {
		onDone.call(v, false, l.size)

		return v, false
	}
	l.unlink(n)
	onDone.call(n.value, true, l.size)

	return n.value, true
}

// RemoveLast unlinks the tail and returns its value.
// It returns false if the list is empty.
func (l *List[T]) RemoveLast() (v T, ok bool) {
	onDone := l.onRemove("github.com/learnstructures/singly.(*List).RemoveLast",
		trace.ListPositionLast, v, false,
	)
	n := l.tail()
	if n == nil {
		onDone.call(v, false, l.size)

		return v, false
	}
	l.unlink(n)
	onDone.call(n.value, true, l.size)

	return n.value, true
}

// Remove unlinks the first node holding v.
// It reports false and leaves the list untouched when no node holds v.
func (l *List[T]) Remove(v T) bool {
	onDone := l.onRemove("github.com/learnstructures/singly.(*List).Remove",
		trace.ListPositionValue, v, true,
	)
	n := l.find(v)
	if n == nil {
		onDone.call(v, false, l.size)

		return false
	}
	l.unlink(n)
	onDone.call(n.value, true, l.size)

	return true
}

// Contains reports whether some node holds v.
//
// Asking an empty list for the zero value of T reports true: the empty
// list is treated as holding "no value".
func (l *List[T]) Contains(v T) bool {
	var zero T
	if v == zero && l.head == nil {
		return true
	}

	return l.find(v) != nil
}

// IndexOf returns the position of the first node holding v counting from
// the head, or -1 if there is no such node. The zero value of T is never
// found.
func (l *List[T]) IndexOf(v T) int {
	var zero T
	if v == zero {
		return -1
	}
	idx := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return idx
		}
		idx++
	}

	return -1
}

// First returns the head value, false if the list is empty
func (l *List[T]) First() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}

	return l.head.value, true
}

// Last returns the tail value, false if the list is empty
func (l *List[T]) Last() (v T, ok bool) {
	n := l.tail()
	if n == nil {
		return v, false
	}

	return n.value, true
}

// Size returns the number of nodes in O(1)
func (l *List[T]) Size() int {
	return l.size
}

// Range calls f for each value from head to tail until f returns false
func (l *List[T]) Range(f func(idx int, v T) bool) {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		if !f(idx, n.value) {
			return
		}
		idx++
	}
}

// Values returns a copy of the values from head to tail
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

// Clear drops all nodes and returns how many were removed
func (l *List[T]) Clear() (removed int) {
	var onDone func(removed int)
	if t := l.tracer(); t.OnClear != nil {
		onDone = trace.ListOnClear(t,
			stack.FunctionID("github.com/learnstructures/singly.(*List).Clear"),
			l.size,
		)
	}
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
		removed++
	}
	l.size = 0
	if onDone != nil {
		onDone(removed)
	}

	return removed
}

// String renders the chain as `head ->a -> b -> |||`
func (l *List[T]) String() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString("head ->")
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(b, n.value)
		b.WriteString(" -> ")
	}
	b.WriteString("|||")

	return b.String()
}
