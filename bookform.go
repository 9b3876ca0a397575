// Package bookform is the quick-start surface of the booking form: build a
// form, or check a decoded booking in one call.
package bookform

import (
	"context"

	"github.com/goliatone/go-bookform/pkg/booking"
	pkgopenapi "github.com/goliatone/go-bookform/pkg/openapi"
	"github.com/goliatone/go-bookform/pkg/render"
)

// Option aliases booking.Option so callers configuring Check need a single
// import.
type Option = booking.Option

// Submission aliases booking.Submission.
type Submission = booking.Submission

// Result is the outcome of Check.
type Result struct {
	Valid      bool                `json:"valid" yaml:"valid"`
	Submission *Submission         `json:"submission,omitempty" yaml:"submission,omitempty"`
	Receipt    *render.Receipt     `json:"-" yaml:"-"`
	Issues     []render.Issue      `json:"issues,omitempty" yaml:"issues,omitempty"`
	States     []render.FieldState `json:"-" yaml:"-"`
}

// New exposes the booking form constructor from the top-level module.
func New(options ...Option) (*booking.BookingForm, error) {
	return booking.New(options...)
}

// Check fills a fresh form with values, waits for the email check and
// submits. An invalid booking is reported through Result, not as an error;
// errors are reserved for unusable input, a cancelled ctx or a broken
// registry.
func Check(ctx context.Context, values map[string]any, options ...Option) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := booking.New(options...)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	if err := f.Apply(values); err != nil {
		return Result{}, err
	}
	if err := f.WaitIdle(ctx); err != nil {
		return Result{}, err
	}

	submission, ok := f.Submit()
	if !ok {
		return Result{Issues: f.Issues(), States: f.States()}, nil
	}
	receipt := f.Receipt(submission)
	return Result{
		Valid:      true,
		Submission: &submission,
		Receipt:    &receipt,
		States:     f.States(),
	}, nil
}

// CheckDocument is Check against the form declared by doc instead of the
// embedded registry.
func CheckDocument(ctx context.Context, doc pkgopenapi.Document, values map[string]any, options ...Option) (Result, error) {
	return Check(ctx, values, append(options, booking.WithDocument(doc))...)
}
