package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bookform/pkg/model"
	"github.com/goliatone/go-bookform/pkg/validation"
)

func TestRuleCheck(t *testing.T) {
	t.Parallel()

	fullName := validation.MustPattern(`^[a-zA-ZÀ-ÿ\s]+$`)
	dni := validation.MustPattern(`(?i)^(\d{8}[A-Z]|[XYZ]\d{7}[A-Z])$`)
	phone := validation.MustPattern(`^[679]\d{8}$`)

	cases := []struct {
		name  string
		rule  validation.Rule
		value any
		want  bool
	}{
		{"required empty string", validation.Required(), "", false},
		{"required nil", validation.Required(), nil, false},
		{"required whitespace", validation.Required(), " ", true},
		{"required false is set", validation.Required(), false, true},
		{"requiredTrue true", validation.RequiredTrue(), true, true},
		{"requiredTrue false", validation.RequiredTrue(), false, false},
		{"requiredTrue string", validation.RequiredTrue(), "true", false},
		{"minLength short", validation.MinLength(3), "Al", false},
		{"minLength inclusive", validation.MinLength(3), "Ana", true},
		{"minLength runes", validation.MinLength(3), "Añó", true},
		{"minLength skips empty", validation.MinLength(3), "", true},
		{"maxLength inclusive", validation.MaxLength(3), "abc", true},
		{"maxLength long", validation.MaxLength(3), "abcd", false},
		{"min below", validation.Min(1), "0", false},
		{"min inclusive", validation.Min(1), 1, true},
		{"min non numeric passes", validation.Min(1), "abc", true},
		{"max above", validation.Max(10), "11", false},
		{"max inclusive float", validation.Max(120), 120.0, true},
		{"max leading number", validation.Max(10), "12 people", false},
		{"pattern name accents", fullName, "José Álvarez", true},
		{"pattern name digits", fullName, "R2D2", false},
		{"pattern dni", dni, "12345678Z", true},
		{"pattern dni lower", dni, "12345678z", true},
		{"pattern nie", dni, "X1234567L", true},
		{"pattern dni short", dni, "1234567Z", false},
		{"pattern phone", phone, "612345678", true},
		{"pattern phone prefix", phone, "512345678", false},
		{"pattern phone partial", phone, "6123456789", false},
		{"pattern skips empty", phone, "", true},
		{"email ok", validation.Email(), "new@user.com", true},
		{"email missing at", validation.Email(), "new.user.com", false},
		{"email bad domain", validation.Email(), "new@-user.com", false},
		{"email skips empty", validation.Email(), "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.rule.Check(tc.value); got != tc.want {
				t.Fatalf("Check(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestPatternAnchorsUnanchoredExpressions(t *testing.T) {
	t.Parallel()

	rule := validation.MustPattern(`\d{3}`)
	if !rule.Check("123") {
		t.Fatalf("expected full match to pass")
	}
	if rule.Check("1234") {
		t.Fatalf("expected partial match to fail")
	}
}

func TestPatternAlternationMustMatchWholeValue(t *testing.T) {
	t.Parallel()

	rule := validation.MustPattern(`^a|b$`)
	for value, want := range map[string]bool{"a": true, "b": true, "axx": false, "xxb": false} {
		if got := rule.Check(value); got != want {
			t.Fatalf("Check(%q) = %v, want %v", value, got, want)
		}
	}

	dni := validation.MustPattern(`(?i)^(\d{8}[A-Z]|[XYZ]\d{7}[A-Z])$`)
	if !dni.Check("12345678z") || dni.Check("12345678zz") {
		t.Fatalf("flagged pattern lost its full-match behaviour")
	}
}

func TestPatternRejectsInvalidExpression(t *testing.T) {
	t.Parallel()

	if _, err := validation.Pattern("([a-z"); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := validation.Pattern("  "); err == nil {
		t.Fatalf("expected error for empty pattern")
	}
}

func TestEvaluateReportsKindsInPriorityOrder(t *testing.T) {
	t.Parallel()

	rules := []validation.Rule{
		validation.MustPattern(`^[a-z]+$`),
		validation.MinLength(5),
		validation.Required(),
	}

	errs := validation.Evaluate(rules, "AB")
	want := []validation.Kind{validation.KindMinLength, validation.KindPattern}
	if diff := cmp.Diff(want, errs.Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if got := errs[validation.KindMinLength].LimitString(); got != "5" {
		t.Fatalf("expected limit 5, got %q", got)
	}

	if errs := validation.Evaluate(rules, "abcdef"); errs != nil {
		t.Fatalf("expected no errors, got %v", errs.Kinds())
	}

	errs = validation.Evaluate(rules, "")
	if diff := cmp.Diff([]validation.Kind{validation.KindRequired}, errs.Kinds()); diff != "" {
		t.Fatalf("empty value kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeCombinesErrorSets(t *testing.T) {
	t.Parallel()

	if validation.Merge(nil, nil) != nil {
		t.Fatalf("expected nil for empty merge")
	}
	merged := validation.Merge(
		validation.Errors{validation.KindEmail: validation.Email()},
		validation.Errors{validation.KindEmailExists: {Kind: validation.KindEmailExists}},
	)
	want := []validation.Kind{validation.KindEmail, validation.KindEmailExists}
	if diff := cmp.Diff(want, merged.Kinds()); diff != "" {
		t.Fatalf("merged kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberAndIntegerCoercion(t *testing.T) {
	t.Parallel()

	ints := map[string]struct {
		value any
		want  int
		ok    bool
	}{
		"plain":    {"3", 3, true},
		"spaces":   {"  4", 4, true},
		"suffix":   {"3 people", 3, true},
		"float":    {"3.9", 3, true},
		"negative": {"-2", -2, true},
		"letters":  {"abc", 0, false},
		"empty":    {"", 0, false},
		"number":   {float64(5), 5, true},
		"bool":     {true, 0, false},
	}
	for name, tc := range ints {
		got, ok := validation.Integer(tc.value)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: Integer(%v) = (%d, %v), want (%d, %v)", name, tc.value, got, ok, tc.want, tc.ok)
		}
	}

	if n, ok := validation.Number("12.5kg"); !ok || n != 12.5 {
		t.Fatalf("Number(12.5kg) = (%v, %v)", n, ok)
	}
	if _, ok := validation.Number("kg"); ok {
		t.Fatalf("expected kg to be non-numeric")
	}
	if validation.IntegerOrZero("abc") != 0 {
		t.Fatalf("expected zero for non-numeric input")
	}
}

func TestCompileFromModel(t *testing.T) {
	t.Parallel()

	field := model.Field{
		Name:     "passengers",
		Required: true,
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "1"}},
			{Kind: model.ValidationRuleMax, Params: map[string]string{"value": "10"}},
		},
	}
	rules, err := validation.Compile(field)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	kinds := make([]validation.Kind, 0, len(rules))
	for _, rule := range rules {
		kinds = append(kinds, rule.Kind)
	}
	want := []validation.Kind{validation.KindRequired, validation.KindMin, validation.KindMax}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("compiled kinds mismatch (-want +got):\n%s", diff)
	}
	if rules[2].Limit != 10 {
		t.Fatalf("expected max limit 10, got %v", rules[2].Limit)
	}

	_, err = validation.Compile(model.Field{
		Name:        "broken",
		Validations: []model.ValidationRule{{Kind: "unknown"}},
	})
	if err == nil {
		t.Fatalf("expected error for unsupported rule")
	}
}
