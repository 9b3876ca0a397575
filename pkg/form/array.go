package form

// Array is a variable-length list of nodes addressed by position. Items are
// appended at and removed from the tail; positions are not stable identities.
type Array struct {
	items  []Node
	status Status

	parent     container
	valueSubs  listeners[[]any]
	statusSubs listeners[Status]
}

// NewArray creates an Array holding items.
func NewArray(items ...Node) *Array {
	a := &Array{}
	for _, item := range items {
		if item == nil {
			continue
		}
		item.setParent(a)
		a.items = append(a.items, item)
	}
	a.status = aggregateStatus(a.items)
	return a
}

// Len returns the number of items.
func (a *Array) Len() int { return len(a.items) }

// At returns the item at idx.
func (a *Array) At(idx int) (Node, bool) {
	if idx < 0 || idx >= len(a.items) {
		return nil, false
	}
	return a.items[idx], true
}

// Items returns a copy of the item slice.
func (a *Array) Items() []Node {
	return append([]Node(nil), a.items...)
}

// Push appends item.
func (a *Array) Push(item Node) {
	if item == nil {
		return
	}
	item.setParent(a)
	a.items = append(a.items, item)
	a.childChanged(true)
}

// RemoveAt removes the item at idx.
func (a *Array) RemoveAt(idx int) {
	if idx < 0 || idx >= len(a.items) {
		return
	}
	removed := a.items[idx]
	a.items = append(a.items[:idx:idx], a.items[idx+1:]...)
	closeNode(removed)
	removed.setParent(nil)
	a.childChanged(true)
}

// Clear removes every item.
func (a *Array) Clear() {
	if len(a.items) == 0 {
		return
	}
	for _, item := range a.items {
		closeNode(item)
		item.setParent(nil)
	}
	a.items = nil
	a.childChanged(true)
}

// Value returns the items' values.
func (a *Array) Value() any { return a.Values() }

// Values returns a fresh slice of item values.
func (a *Array) Values() []any {
	out := make([]any, len(a.items))
	for i, item := range a.items {
		out[i] = item.Value()
	}
	return out
}

// Status returns the aggregate status.
func (a *Array) Status() Status { return a.status }

// Valid reports whether every item is valid. An empty array is valid.
func (a *Array) Valid() bool { return a.status == StatusValid }

// Touched reports whether any item was touched.
func (a *Array) Touched() bool { return anyTouched(a.items) }

// MarkAsTouched marks every item as touched.
func (a *Array) MarkAsTouched() {
	for _, item := range a.items {
		item.MarkAsTouched()
	}
}

// MarkAllAsTouched marks every descendant as touched.
func (a *Array) MarkAllAsTouched() {
	for _, item := range a.items {
		item.MarkAllAsTouched()
	}
}

// Subscribe registers fn for value changes in the array or its items.
func (a *Array) Subscribe(fn func(values []any)) (unsubscribe func()) {
	return a.valueSubs.add(fn)
}

// SubscribeStatus registers fn for aggregate status changes.
func (a *Array) SubscribeStatus(fn func(status Status)) (unsubscribe func()) {
	return a.statusSubs.add(fn)
}

func (a *Array) childChanged(valueChanged bool) {
	previous := a.status
	a.status = aggregateStatus(a.items)
	if valueChanged {
		a.valueSubs.emit(a.Values())
	}
	if valueChanged || previous != a.status {
		a.statusSubs.emit(a.status)
	}
	if a.parent != nil {
		a.parent.childChanged(valueChanged)
	}
}

func (a *Array) dispatcher() Dispatcher {
	if a.parent != nil {
		return a.parent.dispatcher()
	}
	return directDispatch
}

func (a *Array) setParent(parent container) { a.parent = parent }

func closeNode(node Node) {
	switch typed := node.(type) {
	case *Control:
		typed.Close()
	case *Group:
		typed.Close()
	case *Array:
		for _, item := range typed.items {
			closeNode(item)
		}
	}
}
