package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Group is an ordered mapping of names to child nodes.
type Group struct {
	order    []string
	controls map[string]Node
	status   Status

	parent     container
	dispatch   Dispatcher
	valueSubs  listeners[map[string]any]
	statusSubs listeners[Status]
}

// Entry pairs a child node with its name for NewGroup.
type Entry struct {
	Name string
	Node Node
}

// NewGroup creates a Group holding entries in the given order.
func NewGroup(entries ...Entry) *Group {
	g := &Group{
		controls: make(map[string]Node, len(entries)),
	}
	for _, entry := range entries {
		g.attach(entry.Name, entry.Node)
	}
	g.status = aggregateStatus(g.children())
	return g
}

// Add appends a named child, replacing an existing child of the same name
// in place. The group's status and value subscribers are updated.
func (g *Group) Add(name string, node Node) {
	g.attach(name, node)
	g.childChanged(true)
}

func (g *Group) attach(name string, node Node) {
	if node == nil || strings.TrimSpace(name) == "" {
		return
	}
	if _, exists := g.controls[name]; !exists {
		g.order = append(g.order, name)
	}
	g.controls[name] = node
	node.setParent(g)
}

// Names returns the child names in declaration order.
func (g *Group) Names() []string {
	return append([]string(nil), g.order...)
}

// Child returns the direct child with the given name.
func (g *Group) Child(name string) (Node, bool) {
	node, ok := g.controls[name]
	return node, ok
}

// Get resolves a dotted path such as "additionalPassengers.0.name".
func (g *Group) Get(path string) (Node, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	var current Node = g
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case *Group:
			next, ok := node.controls[segment]
			if !ok {
				return nil, false
			}
			current = next
		case *Array:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return nil, false
			}
			next, ok := node.At(idx)
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

// Control resolves path and asserts the result is a *Control.
func (g *Group) Control(path string) (*Control, error) {
	node, ok := g.Get(path)
	if !ok {
		return nil, fmt.Errorf("form: no control at %q", path)
	}
	control, ok := node.(*Control)
	if !ok {
		return nil, fmt.Errorf("form: %q is not a control", path)
	}
	return control, nil
}

// Value returns Values as any.
func (g *Group) Value() any { return g.Values() }

// Values returns a fresh map of every child's value.
func (g *Group) Values() map[string]any {
	out := make(map[string]any, len(g.order))
	for _, name := range g.order {
		out[name] = g.controls[name].Value()
	}
	return out
}

// Status returns the aggregate status.
func (g *Group) Status() Status { return g.status }

// Valid reports whether every child is valid.
func (g *Group) Valid() bool { return g.status == StatusValid }

// Touched reports whether any child was touched.
func (g *Group) Touched() bool { return anyTouched(g.children()) }

// MarkAsTouched marks every direct child as touched.
func (g *Group) MarkAsTouched() {
	for _, child := range g.children() {
		child.MarkAsTouched()
	}
}

// MarkAllAsTouched marks every descendant as touched.
func (g *Group) MarkAllAsTouched() {
	for _, child := range g.children() {
		child.MarkAllAsTouched()
	}
}

// Subscribe registers fn for value changes anywhere below the group.
func (g *Group) Subscribe(fn func(values map[string]any)) (unsubscribe func()) {
	return g.valueSubs.add(fn)
}

// SubscribeStatus registers fn for aggregate status changes.
func (g *Group) SubscribeStatus(fn func(status Status)) (unsubscribe func()) {
	return g.statusSubs.add(fn)
}

// SetDispatcher installs the function asynchronous results are delivered
// through. Only meaningful on a root group.
func (g *Group) SetDispatcher(d Dispatcher) {
	g.dispatch = d
}

// Walk visits every Control below the group with its dotted path, in
// declaration order.
func (g *Group) Walk(fn func(path string, control *Control)) {
	walk("", g, fn)
}

// Close cancels every in-flight asynchronous check below the group.
func (g *Group) Close() {
	g.Walk(func(_ string, control *Control) { control.Close() })
}

func walk(prefix string, node Node, fn func(string, *Control)) {
	switch typed := node.(type) {
	case *Control:
		fn(prefix, typed)
	case *Group:
		for _, name := range typed.order {
			walk(joinPath(prefix, name), typed.controls[name], fn)
		}
	case *Array:
		for i, item := range typed.items {
			walk(joinPath(prefix, strconv.Itoa(i)), item, fn)
		}
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func (g *Group) children() []Node {
	out := make([]Node, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.controls[name])
	}
	return out
}

func (g *Group) childChanged(valueChanged bool) {
	previous := g.status
	g.status = aggregateStatus(g.children())
	if valueChanged {
		g.valueSubs.emit(g.Values())
	}
	if valueChanged || previous != g.status {
		g.statusSubs.emit(g.status)
	}
	if g.parent != nil {
		g.parent.childChanged(valueChanged)
	}
}

func (g *Group) dispatcher() Dispatcher {
	if g.dispatch != nil {
		return g.dispatch
	}
	if g.parent != nil {
		return g.parent.dispatcher()
	}
	return directDispatch
}

func (g *Group) setParent(parent container) { g.parent = parent }
