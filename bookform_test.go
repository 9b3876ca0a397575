package bookform

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bookform/pkg/booking"
)

func validValues() map[string]any {
	return map[string]any{
		"fullName":      "Ana López",
		"dni":           "X1234567L",
		"email":         "new@user.com",
		"phone":         "712345678",
		"birthDate":     "1990-01-01",
		"destination":   "Sevilla",
		"departureDate": "2026-07-01",
		"returnDate":    "2026-07-10",
		"tripType":      "one-way",
		"travelClass":   "Tourist",
		"passengers":    3,
		"terms":         true,
		"additionalPassengers": []any{
			map[string]any{"name": "Luis", "age": 40, "relationship": "partner"},
			map[string]any{"name": "Eva", "age": 9, "relationship": "child"},
		},
	}
}

func TestCheckAcceptsValidBooking(t *testing.T) {
	result, err := Check(context.Background(), validValues(),
		booking.WithEmailDelay(0),
		booking.WithReferenceFunc(func() string { return "BK-1" }),
	)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Valid || result.Submission == nil || result.Receipt == nil {
		t.Fatalf("expected accepted booking, got %+v", result)
	}
	if result.Submission.Reference != "BK-1" || result.Submission.Total != 300 {
		t.Fatalf("unexpected submission %+v", result.Submission)
	}
	if len(result.Receipt.Passengers) != 2 {
		t.Fatalf("expected two passengers on the receipt, got %d", len(result.Receipt.Passengers))
	}
}

func TestCheckReportsIssues(t *testing.T) {
	values := validValues()
	values["email"] = "admin@travel.com"
	values["phone"] = "512345678"

	result, err := Check(context.Background(), values, booking.WithEmailDelay(0))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.Valid || result.Submission != nil {
		t.Fatalf("expected rejected booking")
	}
	got := map[string]string{}
	for _, issue := range result.Issues {
		got[issue.Path] = issue.Message
	}
	want := map[string]string{
		"email": "This email is already registered",
		"phone": "Invalid format",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckDocumentUsesLoadedRegistry(t *testing.T) {
	raw, err := fs.ReadFile(os.DirFS("pkg/booking"), "booking.yaml")
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}
	path := filepath.Join(t.TempDir(), "booking.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
	doc, err := LoadDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	result, err := CheckDocument(context.Background(), doc, validValues(), booking.WithEmailDelay(0))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid booking, issues: %+v", result.Issues)
	}
}

func TestEmbeddedTemplatesExposeReceipt(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "receipt.tpl"); err != nil {
		t.Fatalf("expected receipt template: %v", err)
	}
}
