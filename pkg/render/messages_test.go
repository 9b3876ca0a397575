package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bookform/pkg/form"
	"github.com/goliatone/go-bookform/pkg/validation"
)

func TestCatalogForPicksHighestPriority(t *testing.T) {
	catalog := DefaultCatalog()
	tests := []struct {
		name string
		errs validation.Errors
		want string
	}{
		{name: "empty", errs: nil, want: ""},
		{
			name: "required beats pattern",
			errs: validation.Errors{
				validation.KindPattern:  validation.MustPattern(`\d+`),
				validation.KindRequired: validation.Required(),
			},
			want: "This field is required",
		},
		{
			name: "min length quotes limit",
			errs: validation.Errors{
				validation.KindMinLength: validation.MinLength(3),
				validation.KindPattern:   validation.MustPattern(`[a-z]+`),
			},
			want: "Minimum 3 characters",
		},
		{
			name: "max value",
			errs: validation.Errors{validation.KindMax: validation.Max(10)},
			want: "Maximum value is 10",
		},
		{
			name: "email exists",
			errs: validation.Errors{validation.KindEmailExists: {Kind: validation.KindEmailExists}},
			want: "This email is already registered",
		},
		{
			name: "unknown kind falls back",
			errs: validation.Errors{"custom": {Kind: "custom"}},
			want: "Validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.For(tt.errs); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCatalogMessageRequiresTouched(t *testing.T) {
	catalog := DefaultCatalog()
	control := form.NewControl("", form.WithRules(validation.Required()))
	if msg := catalog.Message(control); msg != "" {
		t.Fatalf("expected no message while untouched, got %q", msg)
	}
	control.MarkAsTouched()
	if msg := catalog.Message(control); msg != "This field is required" {
		t.Fatalf("unexpected message %q", msg)
	}
	control.SetValue("ok")
	if msg := catalog.Message(control); msg != "" {
		t.Fatalf("expected no message once valid, got %q", msg)
	}
}

func TestCatalogMerge(t *testing.T) {
	catalog := DefaultCatalog().Merge(map[string]string{
		"required": "Obligatorio",
		"pattern":  "  ",
	})
	if got := catalog.For(validation.Errors{validation.KindRequired: validation.Required()}); got != "Obligatorio" {
		t.Fatalf("override not applied: %q", got)
	}
	if got := catalog.For(validation.Errors{validation.KindPattern: validation.MustPattern("x")}); got != "Invalid format" {
		t.Fatalf("blank override should be ignored: %q", got)
	}
}

func TestIssuesAndStates(t *testing.T) {
	name := form.NewControl("", form.WithRules(validation.Required()))
	age := form.NewControl("200", form.WithRules(validation.Max(120)))
	root := form.NewGroup(
		form.Entry{Name: "name", Node: name},
		form.Entry{Name: "passengers", Node: form.NewArray(form.NewGroup(form.Entry{Name: "age", Node: age}))},
	)
	catalog := DefaultCatalog()

	if issues := catalog.Issues(root); len(issues) != 0 {
		t.Fatalf("expected no issues before touch, got %+v", issues)
	}

	root.MarkAllAsTouched()
	want := []Issue{
		{Path: "name", Kinds: []validation.Kind{validation.KindRequired}, Message: "This field is required"},
		{Path: "passengers.0.age", Kinds: []validation.Kind{validation.KindMax}, Message: "Maximum value is 120"},
	}
	if diff := cmp.Diff(want, catalog.Issues(root)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	name.SetValue("Ana")
	states := catalog.States(root)
	wantStates := []FieldState{
		{Path: "name", Value: "Ana", Status: form.StatusValid},
		{Path: "passengers.0.age", Value: "200", Status: form.StatusInvalid, Message: "Maximum value is 120"},
	}
	if diff := cmp.Diff(wantStates, states); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
}
