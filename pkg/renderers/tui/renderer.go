package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-bookform/pkg/booking"
	"github.com/goliatone/go-bookform/pkg/form"
	"github.com/goliatone/go-bookform/pkg/model"
	"github.com/goliatone/go-bookform/pkg/widgets"
)

// ErrTooManyAttempts is returned when a field keeps failing validation past
// the configured attempt limit.
var ErrTooManyAttempts = errors.New("tui: too many invalid answers")

// optionsDestinations marks a field whose choices come from the destination
// catalog rather than an enum.
const optionsDestinations = "destinations"

// Renderer runs an interactive booking session against a BookingForm.
type Renderer struct {
	driver      PromptDriver
	widgets     *widgets.Registry
	theme       Theme
	maxAttempts int
}

// New constructs a renderer with the survey driver unless one is supplied.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		theme: Theme{ErrorPrefix: "! "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	if r.widgets == nil {
		r.widgets = widgets.NewRegistry()
	}
	return r, nil
}

// Fill prompts for every field in registry order, re-asking until each
// answer is valid, then confirms and submits. Passenger sub-fields are asked
// once per additional passenger.
func (r *Renderer) Fill(ctx context.Context, f *booking.BookingForm) (booking.Submission, error) {
	if ctx == nil {
		return booking.Submission{}, errors.New("tui: context is required")
	}
	if f == nil {
		return booking.Submission{}, errors.New("tui: booking form is nil")
	}

	for _, field := range f.Model().Fields {
		if err := ctx.Err(); err != nil {
			return booking.Submission{}, err
		}
		if widget, _ := r.widgets.Resolve(field); widget == widgets.WidgetRepeater {
			if err := r.promptRepeated(ctx, f, field); err != nil {
				return booking.Submission{}, err
			}
			continue
		}
		if err := r.promptField(ctx, f, field, field.Name, field.Label); err != nil {
			return booking.Submission{}, err
		}
	}

	if err := r.info(ctx, fmt.Sprintf("Total price: %.2f EUR", f.TotalPrice())); err != nil {
		return booking.Submission{}, err
	}
	confirmed, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit booking?", Default: true})
	if err != nil {
		return booking.Submission{}, err
	}
	if !confirmed {
		return booking.Submission{}, ErrDeclined
	}

	if err := f.WaitIdle(ctx); err != nil {
		return booking.Submission{}, err
	}
	submission, ok := f.Submit()
	if !ok {
		f.MarkAllAsTouched()
		for _, issue := range f.Issues() {
			_ = r.fail(ctx, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
		}
		return booking.Submission{}, ErrNotSubmitted
	}
	return submission, nil
}

func (r *Renderer) promptRepeated(ctx context.Context, f *booking.BookingForm, field model.Field) error {
	if field.Items == nil {
		return nil
	}
	for i := 0; i < f.AdditionalPassengers(); i++ {
		for _, nested := range field.Items.Nested {
			path := fmt.Sprintf("%s.%d.%s", field.Name, i, nested.Name)
			label := fmt.Sprintf("Passenger %d: %s", i+2, nested.Label)
			if err := r.promptField(ctx, f, nested, path, label); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, f *booking.BookingForm, field model.Field, path, label string) error {
	for attempt := 1; ; attempt++ {
		value, err := r.ask(ctx, f, field, path, label)
		if err != nil {
			return err
		}
		if err := f.SetValue(path, value); err != nil {
			return err
		}
		if err := f.MarkTouched(path); err != nil {
			return err
		}

		if status, _ := f.FieldStatus(path); status == form.StatusPending {
			if err := r.info(ctx, fmt.Sprintf("Checking %s...", strings.ToLower(label))); err != nil {
				return err
			}
			if err := f.WaitIdle(ctx); err != nil {
				return err
			}
		}

		msg := f.Message(path)
		if msg == "" {
			return nil
		}
		if err := r.fail(ctx, fmt.Sprintf("%s: %s", label, msg)); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, path)
		}
	}
}

func (r *Renderer) ask(ctx context.Context, f *booking.BookingForm, field model.Field, path, label string) (any, error) {
	current, _ := f.Value(path)

	widget, _ := r.widgets.Resolve(field)
	switch widget {
	case widgets.WidgetConfirm:
		def, _ := current.(bool)
		return r.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: def,
			Help:    field.Description,
		})
	case widgets.WidgetSearch:
		if field.Metadata["options"] != optionsDestinations {
			return nil, fmt.Errorf("tui: unknown option catalog %q on %s", field.Metadata["options"], path)
		}
		return r.askDestination(ctx, f, field, label)
	case widgets.WidgetSelect:
		options := enumOptions(field.Enum)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: indexOf(options, fmt.Sprint(current)),
			Help:         field.Description,
		})
		if err != nil {
			return nil, err
		}
		return optionAt(options, idx)
	default:
		def, _ := current.(string)
		return r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: def,
			Help:    field.Description,
		})
	}
}

// askDestination narrows the catalog with a search prompt before offering
// the matches.
func (r *Renderer) askDestination(ctx context.Context, f *booking.BookingForm, field model.Field, label string) (any, error) {
	for {
		search, err := r.driver.Input(ctx, InputConfig{
			Message: "Search destinations",
			Help:    "Leave empty to list every destination",
		})
		if err != nil {
			return nil, err
		}
		f.SetSearch(strings.TrimSpace(search))
		options := f.FilteredDestinations()
		if len(options) == 0 {
			if err := r.fail(ctx, fmt.Sprintf("No destinations match %q", search)); err != nil {
				return nil, err
			}
			continue
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:  label,
			Options:  options,
			Help:     field.Description,
			PageSize: len(options),
		})
		if err != nil {
			return nil, err
		}
		return optionAt(options, idx)
	}
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) fail(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func enumOptions(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, fmt.Sprint(value))
	}
	return out
}

func optionAt(options []string, idx int) (string, error) {
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("tui: option %d out of range", idx)
	}
	return options[idx], nil
}
