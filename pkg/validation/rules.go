package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind tags a validation rule. Failed rules are reported by Kind.
type Kind string

const (
	KindRequired     Kind = "required"
	KindRequiredTrue Kind = "requiredTrue"
	KindEmail        Kind = "email"
	KindMinLength    Kind = "minLength"
	KindMaxLength    Kind = "maxLength"
	KindMin          Kind = "min"
	KindMax          Kind = "max"
	KindPattern      Kind = "pattern"
	// KindEmailExists is produced by the asynchronous email check, never by
	// a synchronous Rule.
	KindEmailExists Kind = "emailExists"
)

// Priority lists every known kind in message priority order.
var Priority = []Kind{
	KindRequired,
	KindRequiredTrue,
	KindEmail,
	KindMinLength,
	KindMaxLength,
	KindMin,
	KindMax,
	KindPattern,
	KindEmailExists,
}

// Rule is a compiled synchronous rule. Limit carries the bound for the
// length and numeric kinds; Expr carries the source of a pattern.
type Rule struct {
	Kind  Kind
	Limit float64
	Expr  string

	re *regexp.Regexp
}

// Required fails on nil, "" and empty slices.
func Required() Rule { return Rule{Kind: KindRequired} }

// RequiredTrue fails unless the value is boolean true.
func RequiredTrue() Rule { return Rule{Kind: KindRequiredTrue} }

// Email fails when a non-empty value is not shaped like an address.
func Email() Rule { return Rule{Kind: KindEmail} }

// MinLength fails when a non-empty value is shorter than n.
func MinLength(n int) Rule { return Rule{Kind: KindMinLength, Limit: float64(n)} }

// MaxLength fails when a value is longer than n.
func MaxLength(n int) Rule { return Rule{Kind: KindMaxLength, Limit: float64(n)} }

// Min fails when a numeric value is below n.
func Min(n float64) Rule { return Rule{Kind: KindMin, Limit: n} }

// Max fails when a numeric value is above n.
func Max(n float64) Rule { return Rule{Kind: KindMax, Limit: n} }

// Pattern compiles expr into a rule that requires a full match. Every
// expression is wrapped in ^(?:...)$, so alternations such as ^a|b$ still
// have to match the whole value.
func Pattern(expr string) (Rule, error) {
	source := strings.TrimSpace(expr)
	if source == "" {
		return Rule{}, fmt.Errorf("validation: empty pattern")
	}
	re, err := regexp.Compile("^(?:" + source + ")$")
	if err != nil {
		return Rule{}, fmt.Errorf("validation: pattern %q: %w", expr, err)
	}
	return Rule{Kind: KindPattern, Expr: source, re: re}, nil
}

// MustPattern is Pattern that panics on invalid expressions.
func MustPattern(expr string) Rule {
	rule, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return rule
}

// Check reports whether value satisfies the rule. Every kind except
// required and requiredTrue passes on empty values, and numeric bounds pass
// on values that are not numbers.
func (r Rule) Check(value any) bool {
	switch r.Kind {
	case KindRequired:
		return !IsEmpty(value)
	case KindRequiredTrue:
		b, ok := value.(bool)
		return ok && b
	}

	if IsEmpty(value) {
		return true
	}

	switch r.Kind {
	case KindEmail:
		return IsEmail(stringify(value))
	case KindMinLength:
		n, ok := Length(value)
		return !ok || float64(n) >= r.Limit
	case KindMaxLength:
		n, ok := Length(value)
		return !ok || float64(n) <= r.Limit
	case KindMin:
		n, ok := Number(value)
		return !ok || n >= r.Limit
	case KindMax:
		n, ok := Number(value)
		return !ok || n <= r.Limit
	case KindPattern:
		if r.re == nil {
			return true
		}
		return r.re.MatchString(stringify(value))
	default:
		return true
	}
}

// Errors maps each failed kind to the rule that failed, so messages can
// quote the rule's limit.
type Errors map[Kind]Rule

// Has reports whether kind failed.
func (e Errors) Has(kind Kind) bool {
	_, ok := e[kind]
	return ok
}

// Kinds returns the failed kinds in priority order; unknown kinds follow in
// lexical order.
func (e Errors) Kinds() []Kind {
	if len(e) == 0 {
		return nil
	}
	out := make([]Kind, 0, len(e))
	known := make(map[Kind]struct{}, len(Priority))
	for _, kind := range Priority {
		known[kind] = struct{}{}
		if e.Has(kind) {
			out = append(out, kind)
		}
	}
	var extra []string
	for kind := range e {
		if _, ok := known[kind]; !ok {
			extra = append(extra, string(kind))
		}
	}
	sort.Strings(extra)
	for _, kind := range extra {
		out = append(out, Kind(kind))
	}
	return out
}

// Merge returns a new Errors holding the entries of both sets. Nil when
// both are empty.
func Merge(sets ...Errors) Errors {
	var out Errors
	for _, set := range sets {
		for kind, rule := range set {
			if out == nil {
				out = make(Errors)
			}
			out[kind] = rule
		}
	}
	return out
}

// Evaluate runs every rule against value and returns the failures, or nil
// when all pass.
func Evaluate(rules []Rule, value any) Errors {
	var errs Errors
	for _, rule := range rules {
		if rule.Check(value) {
			continue
		}
		if errs == nil {
			errs = make(Errors, 1)
		}
		if _, dup := errs[rule.Kind]; !dup {
			errs[rule.Kind] = rule
		}
	}
	return errs
}

// LimitString renders the rule's limit without a trailing ".0".
func (r Rule) LimitString() string {
	return strconv.FormatFloat(r.Limit, 'f', -1, 64)
}
