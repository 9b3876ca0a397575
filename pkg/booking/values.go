package booking

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	pkgmodel "github.com/goliatone/go-bookform/pkg/model"
)

// ErrTooManyPassengers reports more passenger entries than the passengers
// field allows for.
var ErrTooManyPassengers = errors.New("booking: more additional passengers than the passenger count allows")

// Apply writes a decoded document (JSON or YAML) into the form. Top-level
// values go first in registry order so the passengers count sizes the
// sub-list before its entries are filled. Every control is marked as
// touched afterwards so messages show for whatever is still wrong.
func (b *BookingForm) Apply(values map[string]any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}

	known := make(map[string]bool, len(b.model.Fields))
	for _, field := range b.model.Fields {
		known[field.Name] = true
	}
	var unknown []string
	for key := range values {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownPath, strings.Join(unknown, ", "))
	}

	for _, field := range b.model.Fields {
		raw, ok := values[field.Name]
		if !ok || field.Type == pkgmodel.FieldTypeArray {
			continue
		}
		control, err := b.control(field.Name)
		if err != nil {
			return err
		}
		control.SetValue(coerce(field, raw))
	}

	if raw, ok := values[FieldAdditionalPassengers]; ok && raw != nil {
		entries, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("booking: %s must be a list, got %T", FieldAdditionalPassengers, raw)
		}
		if len(entries) > b.passengers.Len() {
			return fmt.Errorf("%w: got %d, room for %d", ErrTooManyPassengers, len(entries), b.passengers.Len())
		}
		for i, entry := range entries {
			if err := b.applyPassenger(i, entry); err != nil {
				return err
			}
		}
	}

	b.root.MarkAllAsTouched()
	return nil
}

func (b *BookingForm) applyPassenger(idx int, entry any) error {
	values, ok := entry.(map[string]any)
	if !ok {
		return fmt.Errorf("booking: passenger %d must be a mapping, got %T", idx+1, entry)
	}
	for key := range values {
		if _, ok := fieldByName(b.passenger.Nested, key); !ok {
			return fmt.Errorf("%w: %s.%d.%s", ErrUnknownPath, FieldAdditionalPassengers, idx, key)
		}
	}
	for _, field := range b.passenger.Nested {
		raw, ok := values[field.Name]
		if !ok {
			continue
		}
		control, err := b.control(fmt.Sprintf("%s.%d.%s", FieldAdditionalPassengers, idx, field.Name))
		if err != nil {
			return err
		}
		control.SetValue(coerce(field, raw))
	}
	return nil
}

func fieldByName(fields []pkgmodel.Field, name string) (pkgmodel.Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return pkgmodel.Field{}, false
}

// coerce maps decoded values onto what the controls hold when edited
// interactively: booleans for checkboxes, text for everything else.
func coerce(field pkgmodel.Field, raw any) any {
	switch field.Type {
	case pkgmodel.FieldTypeBoolean:
		switch typed := raw.(type) {
		case bool:
			return typed
		case string:
			if parsed, err := strconv.ParseBool(strings.TrimSpace(typed)); err == nil {
				return parsed
			}
		}
		return raw
	}
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return typed
	case time.Time:
		return typed.Format(time.DateOnly)
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(typed)
	default:
		return raw
	}
}
