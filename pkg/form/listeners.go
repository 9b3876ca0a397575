package form

// listeners is an ordered subscription list. Callbacks run in registration
// order; a callback may unsubscribe itself or others while being notified.
type listeners[T any] struct {
	next    int
	entries []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	l.next++
	id := l.next
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return func() {
		for i, entry := range l.entries {
			if entry.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners[T]) emit(value T) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := append([]listener[T](nil), l.entries...)
	for _, entry := range snapshot {
		entry.fn(value)
	}
}
