package form

// Status is the validation status of a node.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	StatusPending Status = "PENDING"
)

// Node is implemented by Control, Group and Array.
type Node interface {
	// Value returns the node's current value: the raw value for a Control,
	// map[string]any for a Group and []any for an Array.
	Value() any
	Status() Status
	Valid() bool
	Touched() bool
	MarkAsTouched()
	MarkAllAsTouched()

	setParent(parent container)
}

// container is the parent side of the tree wiring.
type container interface {
	// childChanged recalculates the container's status; when valueChanged is
	// true it also publishes the container's value.
	childChanged(valueChanged bool)
	dispatcher() Dispatcher
}

// Dispatcher runs fn in the context that owns the form tree.
type Dispatcher func(fn func())

func directDispatch(fn func()) { fn() }

func aggregateStatus(children []Node) Status {
	invalid := false
	for _, child := range children {
		switch child.Status() {
		case StatusPending:
			return StatusPending
		case StatusInvalid:
			invalid = true
		}
	}
	if invalid {
		return StatusInvalid
	}
	return StatusValid
}

func anyTouched(children []Node) bool {
	for _, child := range children {
		if child.Touched() {
			return true
		}
	}
	return false
}
