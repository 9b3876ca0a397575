package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-bookform/pkg/model"
)

// Compile turns a model field's declared constraints into runtime rules.
// Field.Required becomes the leading required rule.
func Compile(field model.Field) ([]Rule, error) {
	var rules []Rule
	if field.Required {
		rules = append(rules, Required())
	}
	for _, declared := range field.Validations {
		rule, err := compileRule(declared)
		if err != nil {
			return nil, fmt.Errorf("validation: field %q: %w", field.Name, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MustCompile is Compile that panics, for embedded definitions.
func MustCompile(field model.Field) []Rule {
	rules, err := Compile(field)
	if err != nil {
		panic(err)
	}
	return rules
}

func compileRule(declared model.ValidationRule) (Rule, error) {
	switch declared.Kind {
	case model.ValidationRuleRequiredTrue:
		return RequiredTrue(), nil
	case model.ValidationRuleEmail:
		return Email(), nil
	case model.ValidationRulePattern:
		return Pattern(declared.Params["pattern"])
	case model.ValidationRuleMinLength, model.ValidationRuleMaxLength, model.ValidationRuleMin, model.ValidationRuleMax:
		raw := strings.TrimSpace(declared.Params["value"])
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: invalid limit %q", declared.Kind, raw)
		}
		return Rule{Kind: Kind(declared.Kind), Limit: limit}, nil
	default:
		return Rule{}, fmt.Errorf("unsupported rule %q", declared.Kind)
	}
}
