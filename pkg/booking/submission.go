package booking

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-bookform/pkg/render"
)

// Submission is the snapshot produced by an accepted Submit.
type Submission struct {
	Reference string         `json:"reference" yaml:"reference"`
	CreatedAt time.Time      `json:"createdAt" yaml:"createdAt"`
	Total     float64        `json:"total" yaml:"total"`
	Values    map[string]any `json:"values" yaml:"values"`
}

// Submit returns the sanitised value snapshot when the form is valid and
// passes it to every SubmitHandler. It returns false, and does nothing
// else, while any field is invalid or the email check is pending.
//
// Markup is stripped from every string in Submission.Values, so a field
// holding HTML reads differently there than through Value or Snapshot. The
// form itself keeps the raw input.
func (b *BookingForm) Submit() (Submission, bool) {
	b.mu.Lock()
	if b.closed || !b.root.Valid() {
		status := b.root.Status()
		b.mu.Unlock()
		b.cfg.logger.Debug("booking: submission blocked", slog.String("status", string(status)))
		return Submission{}, false
	}

	reference := uuid.NewString()
	if b.cfg.reference != nil {
		reference = b.cfg.reference()
	}
	submission := Submission{
		Reference: reference,
		CreatedAt: b.cfg.clock.Now().UTC(),
		Total:     b.price,
		Values:    render.SanitizeValues(b.snapshot()),
	}
	handlers := append([]SubmitHandler(nil), b.cfg.onSubmit...)
	b.mu.Unlock()

	b.cfg.logger.Info("booking: submitted",
		slog.String("reference", submission.Reference),
		slog.Float64("total", submission.Total),
	)
	for _, handler := range handlers {
		handler(submission)
	}
	return submission, true
}

// Snapshot returns the current values with the passenger list as
// []map[string]any.
func (b *BookingForm) Snapshot() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *BookingForm) snapshot() map[string]any {
	values := b.root.Values()
	items, _ := values[FieldAdditionalPassengers].([]any)
	passengers := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if group, ok := item.(map[string]any); ok {
			passengers = append(passengers, group)
		}
	}
	values[FieldAdditionalPassengers] = passengers
	return values
}

// Receipt lays the submission out in registry order for rendering.
func (b *BookingForm) Receipt(s Submission) render.Receipt {
	receipt := render.Receipt{
		Reference: s.Reference,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		Total:     s.Total,
	}
	for _, field := range b.model.Fields {
		if field.Name == FieldAdditionalPassengers {
			continue
		}
		receipt.Lines = append(receipt.Lines, render.ReceiptLine{
			Label: field.Label,
			Value: displayValue(s.Values[field.Name]),
		})
	}
	if passengers, ok := s.Values[FieldAdditionalPassengers].([]map[string]any); ok && len(passengers) > 0 {
		receipt.Passengers = passengers
	}
	return receipt
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
