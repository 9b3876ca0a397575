package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-bookform/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetConfirm  = "confirm"
	WidgetSelect   = "select"
	WidgetSearch   = "search-select"
	WidgetRepeater = "repeater"
	WidgetGroup    = "group"
	WidgetInput    = "input"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit
// Metadata["widget"] hint is honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate records the resolved widget in Metadata["widget"] for every field
// of form, descending into nested fields and array items. Existing hints are
// kept.
func (r *Registry) Decorate(form *model.FormModel) error {
	if r == nil || form == nil {
		return nil
	}
	form.Fields = r.decorateFields(form.Fields)
	return nil
}

func (r *Registry) decorateFields(fields []model.Field) []model.Field {
	if len(fields) == 0 {
		return fields
	}
	decorated := make([]model.Field, len(fields))
	for idx, field := range fields {
		decorated[idx] = r.decorateField(field)
	}
	return decorated
}

func (r *Registry) decorateField(field model.Field) model.Field {
	if widget, ok := r.Resolve(field); ok && widget != "" {
		metadata := make(map[string]string, len(field.Metadata)+1)
		for k, v := range field.Metadata {
			metadata[k] = v
		}
		if metadata["widget"] == "" {
			metadata["widget"] = widget
		}
		field.Metadata = metadata
	}

	if field.Items != nil {
		item := r.decorateField(*field.Items)
		field.Items = &item
	}
	if len(field.Nested) > 0 {
		field.Nested = r.decorateFields(field.Nested)
	}
	return field
}

func explicitWidget(field model.Field) string {
	if field.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(field.Metadata["widget"])
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetRepeater, 100, func(field model.Field) bool {
		return field.Type == model.FieldTypeArray
	})

	r.Register(WidgetGroup, 95, func(field model.Field) bool {
		return field.Type == model.FieldTypeObject
	})

	r.Register(WidgetConfirm, 90, func(field model.Field) bool {
		return field.Type == model.FieldTypeBoolean
	})

	// x-formgen options name a catalog the form supplies at runtime.
	r.Register(WidgetSearch, 80, func(field model.Field) bool {
		return field.Metadata != nil && strings.TrimSpace(field.Metadata["options"]) != ""
	})

	r.Register(WidgetSelect, 70, func(field model.Field) bool {
		return len(field.Enum) > 0
	})

	r.Register(WidgetInput, 0, func(model.Field) bool { return true })
}
