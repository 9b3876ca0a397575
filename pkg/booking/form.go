package booking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-bookform/pkg/form"
	pkgmodel "github.com/goliatone/go-bookform/pkg/model"
	"github.com/goliatone/go-bookform/pkg/render"
	"github.com/goliatone/go-bookform/pkg/validation"
)

// BookingForm is the booking form with its derived state.
type BookingForm struct {
	mu  sync.Mutex
	cfg config

	model      pkgmodel.FormModel
	passenger  pkgmodel.Field
	builder    nodeBuilder
	root       *form.Group
	email      *form.Control
	passengers *form.Array

	search   string
	filtered []string
	price    float64

	// settled is closed and replaced whenever the email status changes.
	settled chan struct{}
	closed  bool
}

// New builds a BookingForm from the embedded registry, or the document set
// with WithDocument.
func New(opts ...Option) (*BookingForm, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	doc := DefaultDocument()
	if cfg.document != nil {
		doc = *cfg.document
	}
	model, err := LoadModel(context.Background(), doc)
	if err != nil {
		return nil, err
	}

	b := &BookingForm{
		cfg:      cfg,
		model:    model,
		filtered: FilterDestinations(cfg.destinations, ""),
		settled:  make(chan struct{}),
	}
	b.builder = nodeBuilder{
		async: map[string]form.AsyncValidator{
			AsyncEmailExists: NewEmailChecker(cfg.clock, cfg.emailDelay, cfg.registered),
		},
		options: []form.ControlOption{form.WithControlLogger(cfg.logger)},
	}

	root, err := b.builder.group(model.Fields)
	if err != nil {
		return nil, fmt.Errorf("booking: build form: %w", err)
	}
	b.root = root
	b.email, _ = root.Control(FieldEmail)
	arrayField, _ := model.Field(FieldAdditionalPassengers)
	b.passenger = *arrayField.Items
	node, _ := root.Child(FieldAdditionalPassengers)
	b.passengers, _ = node.(*form.Array)
	if b.email == nil || b.passengers == nil {
		return nil, fmt.Errorf("%w: %q or %q has the wrong shape", ErrFieldMissing, FieldEmail, FieldAdditionalPassengers)
	}
	count, err := root.Control(FieldPassengers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFieldMissing, err)
	}

	root.SetDispatcher(b.dispatch)
	count.Subscribe(func(value any) {
		b.adjustPassengers(validation.IntegerOrZero(value))
	})
	root.Subscribe(func(values map[string]any) {
		b.price = Price(b.cfg.rates, values[FieldTravelClass], values[FieldPassengers])
	})
	b.email.SubscribeStatus(func(status form.Status) {
		if status == form.StatusPending {
			b.cfg.logger.Debug("booking: email check started")
		}
		close(b.settled)
		b.settled = make(chan struct{})
	})
	return b, nil
}

// dispatch runs asynchronous results under the form's lock. Results that
// arrive after Close are dropped.
func (b *BookingForm) dispatch(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	fn()
}

// Model returns the registry the form was built from.
func (b *BookingForm) Model() pkgmodel.FormModel {
	return b.model
}

// SetValue writes value into the control at path, for example "email" or
// "additionalPassengers.0.name".
func (b *BookingForm) SetValue(path string, value any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	control, err := b.control(path)
	if err != nil {
		return err
	}
	control.SetValue(value)
	return nil
}

// MarkTouched flags the control at path as interacted with.
func (b *BookingForm) MarkTouched(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	control, err := b.control(path)
	if err != nil {
		return err
	}
	control.MarkAsTouched()
	return nil
}

// MarkAllAsTouched flags every control, including passenger sub-fields.
func (b *BookingForm) MarkAllAsTouched() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.root.MarkAllAsTouched()
}

// Value returns the value at path: a raw value for controls, a map for
// groups and a slice for the passenger list.
func (b *BookingForm) Value(path string) (any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	node, ok := b.root.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return node.Value(), nil
}

// Status returns the aggregate status of the form.
func (b *BookingForm) Status() form.Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root.Status()
}

// FieldStatus returns the status of the control at path.
func (b *BookingForm) FieldStatus(path string) (form.Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	node, ok := b.root.Get(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return node.Status(), nil
}

// Valid reports aggregate validity. A pending email check counts as not
// valid.
func (b *BookingForm) Valid() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root.Valid()
}

// Message returns the error message for path, or "" when the control is
// untouched, valid, pending or unknown.
func (b *BookingForm) Message(path string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	control, err := b.control(path)
	if err != nil {
		return ""
	}
	return b.cfg.messages.Message(control)
}

// IsFieldInvalid reports whether path is both invalid and touched.
func (b *BookingForm) IsFieldInvalid(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	node, ok := b.root.Get(path)
	return ok && node.Status() == form.StatusInvalid && node.Touched()
}

// Issues lists every touched, failing control.
func (b *BookingForm) Issues() []render.Issue {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.messages.Issues(b.root)
}

// States reports every control with its status, touched or not.
func (b *BookingForm) States() []render.FieldState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.messages.States(b.root)
}

// Paths lists every control path in declaration order.
func (b *BookingForm) Paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	b.root.Walk(func(path string, _ *form.Control) { out = append(out, path) })
	return out
}

// SetSearch replaces the destination search text and recomputes the
// filtered view.
func (b *BookingForm) SetSearch(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.search = text
	b.filtered = FilterDestinations(b.cfg.destinations, text)
}

// Destinations returns the full catalog.
func (b *BookingForm) Destinations() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.cfg.destinations...)
}

// FilteredDestinations returns the destinations matching the current
// search.
func (b *BookingForm) FilteredDestinations() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string{}, b.filtered...)
}

// TotalPrice returns the price derived from the last form change.
func (b *BookingForm) TotalPrice() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.price
}

// PassengerCount is the leading integer of the passengers field, 0 when it
// is not a number.
func (b *BookingForm) PassengerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	node, _ := b.root.Child(FieldPassengers)
	return validation.IntegerOrZero(node.Value())
}

// AdditionalPassengers returns the length of the passenger sub-list.
func (b *BookingForm) AdditionalPassengers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.passengers.Len()
}

// AdjustPassengers resizes the passenger sub-list to count-1 entries,
// appending fresh groups or trimming from the tail.
func (b *BookingForm) AdjustPassengers(count int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.adjustPassengers(count)
}

func (b *BookingForm) adjustPassengers(count int) {
	needed := count - 1
	current := b.passengers.Len()
	if needed <= 0 {
		b.passengers.Clear()
	} else {
		for i := current; i < needed; i++ {
			group, err := b.builder.group(b.passenger.Nested)
			if err != nil {
				// The item definition compiled once in New; it cannot fail here.
				b.cfg.logger.Error("booking: build passenger", slog.Any("error", err))
				return
			}
			b.passengers.Push(group)
		}
		for i := current; i > needed; i-- {
			b.passengers.RemoveAt(i - 1)
		}
	}
	if b.passengers.Len() != current {
		b.cfg.logger.Debug("booking: passengers adjusted",
			slog.Int("count", count),
			slog.Int("from", current),
			slog.Int("to", b.passengers.Len()),
		)
	}
}

// EmailValidating reports whether the email check is in flight.
func (b *BookingForm) EmailValidating() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.email.Pending()
}

// WaitIdle blocks until no email check is pending, the form is closed or
// ctx is done.
func (b *BookingForm) WaitIdle(ctx context.Context) error {
	for {
		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			return ErrClosed
		}
		if !b.email.Pending() {
			b.mu.Unlock()
			return nil
		}
		settled := b.settled
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-settled:
		}
	}
}

// Close cancels a pending email check. Later results are ignored and
// mutating calls fail with ErrClosed.
func (b *BookingForm) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.root.Close()
	close(b.settled)
	b.settled = make(chan struct{})
}

func (b *BookingForm) control(path string) (*form.Control, error) {
	control, err := b.root.Control(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPath, err)
	}
	return control, nil
}
