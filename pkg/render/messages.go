package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-bookform/pkg/form"
	"github.com/goliatone/go-bookform/pkg/validation"
)

// FallbackKind keys the message used when a failed kind has no catalog entry.
const FallbackKind validation.Kind = "fallback"

// Catalog maps a failed kind to its message. Entries may carry a single %s
// verb which receives the failed rule's limit.
type Catalog map[validation.Kind]string

// DefaultCatalog holds the English messages.
func DefaultCatalog() Catalog {
	return Catalog{
		validation.KindRequired:     "This field is required",
		validation.KindRequiredTrue: "You must accept the conditions",
		validation.KindEmail:        "Invalid email format",
		validation.KindMinLength:    "Minimum %s characters",
		validation.KindMaxLength:    "Maximum %s characters",
		validation.KindMin:          "Minimum value is %s",
		validation.KindMax:          "Maximum value is %s",
		validation.KindPattern:      "Invalid format",
		validation.KindEmailExists:  "This email is already registered",
		FallbackKind:                "Validation error",
	}
}

// Merge returns a copy of c with overrides applied. Empty overrides are
// ignored.
func (c Catalog) Merge(overrides map[string]string) Catalog {
	out := make(Catalog, len(c)+len(overrides))
	for kind, msg := range c {
		out[kind] = msg
	}
	for key, msg := range overrides {
		key = strings.TrimSpace(key)
		if key == "" || strings.TrimSpace(msg) == "" {
			continue
		}
		out[validation.Kind(key)] = msg
	}
	return out
}

// For returns the single highest-priority message for errs, or "" when errs
// is empty.
func (c Catalog) For(errs validation.Errors) string {
	kinds := errs.Kinds()
	if len(kinds) == 0 {
		return ""
	}
	kind := kinds[0]
	template, ok := c[kind]
	if !ok {
		return c.fallback()
	}
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, errs[kind].LimitString())
}

// Message returns the message for control, or "" unless the control is both
// touched and failing. Pending controls have no message.
func (c Catalog) Message(control *form.Control) string {
	if control == nil || !control.Touched() || control.Status() != form.StatusInvalid {
		return ""
	}
	if msg := c.For(control.Errors()); msg != "" {
		return msg
	}
	return c.fallback()
}

func (c Catalog) fallback() string {
	if msg, ok := c[FallbackKind]; ok {
		return msg
	}
	return DefaultCatalog()[FallbackKind]
}
