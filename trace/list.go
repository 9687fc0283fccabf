package trace

type (
	// List specified trace of singly linked list mutations.
	// Lookups are not traced.
	List struct {
		OnInsert func(ListInsertStartInfo) func(ListInsertDoneInfo)
		OnRemove func(ListRemoveStartInfo) func(ListRemoveDoneInfo)
		OnClear  func(ListClearStartInfo) func(ListClearDoneInfo)
	}

	// ListPosition names the place of the chain an operation works on
	ListPosition string

	ListInsertStartInfo struct {
		Call     call
		Position ListPosition
		Value    any
		// Anchor is set only for ListPositionAfter
		Anchor any
	}
	ListInsertDoneInfo struct {
		Inserted bool
		Size     int
	}
	ListRemoveStartInfo struct {
		Call     call
		Position ListPosition
		// Value is set only for ListPositionValue
		Value any
	}
	ListRemoveDoneInfo struct {
		Value   any
		Removed bool
		Size    int
	}
	ListClearStartInfo struct {
		Call call
		Size int
	}
	ListClearDoneInfo struct {
		Removed int
	}
)

const (
	ListPositionFirst = ListPosition("first")
	ListPositionLast  = ListPosition("last")
	ListPositionAfter = ListPosition("after")
	ListPositionValue = ListPosition("value")
)
