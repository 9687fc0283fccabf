package trace

// listComposeOptions is a holder of options
type listComposeOptions struct {
	panicCallback func(e interface{})
}

// ListComposeOption specified List compose option
type ListComposeOption func(o *listComposeOptions)

// WithListPanicCallback specified behavior on panic
func WithListPanicCallback(cb func(e interface{})) ListComposeOption {
	return func(o *listComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new List which has functional fields composed both from t and x.
func (t *List) Compose(x *List, opts ...ListComposeOption) *List {
	var ret List
	options := listComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnInsert
		h2 := x.OnInsert
		ret.OnInsert = func(s ListInsertStartInfo) func(ListInsertDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListInsertDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d ListInsertDoneInfo) {
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
		h1 := t.OnRemove
		h2 := x.OnRemove
		ret.OnRemove = func(s ListRemoveStartInfo) func(ListRemoveDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListRemoveDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d ListRemoveDoneInfo) {
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
		h1 := t.OnClear
		h2 := x.OnClear
		ret.OnClear = func(s ListClearStartInfo) func(ListClearDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListClearDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d ListClearDoneInfo) {
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

func (t *List) onInsert(s ListInsertStartInfo) func(ListInsertDoneInfo) {
	fn := t.OnInsert
	if fn == nil {
		return func(ListInsertDoneInfo) {}
	}
	res := fn(s)
	if res == nil {
		return func(ListInsertDoneInfo) {}
	}

	return res
}

func (t *List) onRemove(s ListRemoveStartInfo) func(ListRemoveDoneInfo) {
	fn := t.OnRemove
	if fn == nil {
		return func(ListRemoveDoneInfo) {}
	}
	res := fn(s)
	if res == nil {
		return func(ListRemoveDoneInfo) {}
	}

	return res
}

func (t *List) onClear(s ListClearStartInfo) func(ListClearDoneInfo) {
	fn := t.OnClear
	if fn == nil {
		return func(ListClearDoneInfo) {}
	}
	res := fn(s)
	if res == nil {
		return func(ListClearDoneInfo) {}
	}

	return res
}

func ListOnInsert(t *List, call call, position ListPosition, value, anchor any) func(inserted bool, size int) {
	var p ListInsertStartInfo
	p.Call = call
	p.Position = position
	p.Value = value
	p.Anchor = anchor
	res := t.onInsert(p)

	return func(inserted bool, size int) {
		var p ListInsertDoneInfo
		p.Inserted = inserted
		p.Size = size
		res(p)
	}
}

func ListOnRemove(t *List, call call, position ListPosition, value any) func(value any, removed bool, size int) {
	var p ListRemoveStartInfo
	p.Call = call
	p.Position = position
	p.Value = value
	res := t.onRemove(p)

	return func(value any, removed bool, size int) {
		var p ListRemoveDoneInfo
		p.Value = value
		p.Removed = removed
		p.Size = size
		res(p)
	}
}

func ListOnClear(t *List, call call, size int) func(removed int) {
	var p ListClearStartInfo
	p.Call = call
	p.Size = size
	res := t.onClear(p)

	return func(removed int) {
		var p ListClearDoneInfo
		p.Removed = removed
		res(p)
	}
}
