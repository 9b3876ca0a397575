package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeText(t *testing.T) {
	tests := map[string]string{
		"  Ana López ":                   "Ana López",
		"<b>Ana</b>":                     "Ana",
		"O'Brien & Sons":                 "O'Brien & Sons",
		"<script>alert(1)</script>Marta": "Marta",
		"":                               "",
	}
	for in, want := range tests {
		if got := SanitizeText(in); got != want {
			t.Errorf("SanitizeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeValuesCopiesNestedData(t *testing.T) {
	passengers := []map[string]any{{"name": "<i>Leo</i>", "age": 7}}
	in := map[string]any{
		"fullName":             "<em>Ana</em>",
		"terms":                true,
		"additionalPassengers": passengers,
	}
	got := SanitizeValues(in)
	want := map[string]any{
		"fullName":             "Ana",
		"terms":                true,
		"additionalPassengers": []map[string]any{{"name": "Leo", "age": 7}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitized values mismatch (-want +got):\n%s", diff)
	}
	if passengers[0]["name"] != "<i>Leo</i>" {
		t.Fatalf("input was mutated")
	}
}
