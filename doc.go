// Package singly implements a singly linked list.
//
// A List owns a chain of nodes starting at the head, each node owns its
// successor. All positional and value lookups walk the chain from the head,
// so only AddFirst, SetFirst, RemoveFirst, First and Size run in constant time.
//
// Absence is reported with ordinary return values: (zero, false) for
// accessors on an empty list, false for failed removals and insertions,
// -1 for IndexOf misses.
package singly
