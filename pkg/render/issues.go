package render

import (
	"github.com/goliatone/go-bookform/pkg/form"
	"github.com/goliatone/go-bookform/pkg/validation"
)

// Issue describes one failing control.
type Issue struct {
	Path    string            `json:"path" yaml:"path"`
	Kinds   []validation.Kind `json:"kinds" yaml:"kinds"`
	Message string            `json:"message" yaml:"message"`
}

// Issues lists every touched, failing control below root in declaration
// order, with the message Catalog.Message would show for it.
func (c Catalog) Issues(root *form.Group) []Issue {
	if root == nil {
		return nil
	}
	var out []Issue
	root.Walk(func(path string, control *form.Control) {
		msg := c.Message(control)
		if msg == "" {
			return
		}
		out = append(out, Issue{
			Path:    path,
			Kinds:   control.Errors().Kinds(),
			Message: msg,
		})
	})
	return out
}

// FieldState is a row of the status report.
type FieldState struct {
	Path    string      `json:"path" yaml:"path"`
	Value   any         `json:"value" yaml:"value"`
	Status  form.Status `json:"status" yaml:"status"`
	Message string      `json:"message,omitempty" yaml:"message,omitempty"`
}

// States reports every control below root regardless of the touched flag.
// Messages are selected as if every control had been touched.
func (c Catalog) States(root *form.Group) []FieldState {
	if root == nil {
		return nil
	}
	var out []FieldState
	root.Walk(func(path string, control *form.Control) {
		state := FieldState{
			Path:   path,
			Value:  control.Value(),
			Status: control.Status(),
		}
		if control.Status() == form.StatusInvalid {
			state.Message = c.For(control.Errors())
			if state.Message == "" {
				state.Message = c.fallback()
			}
		}
		out = append(out, state)
	})
	return out
}
