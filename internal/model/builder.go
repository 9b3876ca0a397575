package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	pkgopenapi "github.com/goliatone/go-bookform/pkg/openapi"
)

const extensionNamespace = "x-formgen"

// Builder converts OpenAPI operations into form models.
type Builder struct{}

// New creates a Builder.
func New() *Builder {
	return &Builder{}
}

// Build transforms an OpenAPI operation into a FormModel. Only the request
// body is considered.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if err := validateOperation(op); err != nil {
		return FormModel{}, err
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
	}
	if op.Summary != "" {
		form.Metadata = map[string]string{"summary": op.Summary}
	}

	fields, err := b.fieldsFromSchema(op.RequestBody)
	if err != nil {
		return FormModel{}, err
	}
	form.Fields = fields
	return form, nil
}

func (b *Builder) fieldsFromSchema(schema pkgopenapi.Schema) ([]Field, error) {
	if len(schema.Properties) == 0 {
		return nil, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := orderedPropertyNames(schema)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		_, isRequired := required[name]
		field, err := b.fieldFromSchema(name, schema.Properties[name], isRequired)
		if err != nil {
			return nil, fmt.Errorf("model builder: field %q: %w", name, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (b *Builder) fieldFromSchema(name string, schema pkgopenapi.Schema, required bool) (Field, error) {
	field := Field{
		Name:        name,
		Type:        fieldType(schema.Type),
		Format:      schema.Format,
		Required:    required,
		Label:       humanize(name),
		Description: schema.Description,
		Default:     schema.Default,
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}

	field.Validations = validationRules(schema)
	ext := formgenExtension(schema.Extensions)
	if truthy(ext["requiredTrue"]) {
		field.Validations = append([]ValidationRule{{Kind: ValidationRuleRequiredTrue}}, field.Validations...)
	}
	field.AsyncValidators = stringList(ext["asyncValidators"])
	field.Metadata = scalarMetadata(ext)

	switch field.Type {
	case FieldTypeObject:
		nested, err := b.fieldsFromSchema(schema)
		if err != nil {
			return Field{}, err
		}
		field.Nested = nested
	case FieldTypeArray:
		if schema.Items == nil {
			return Field{}, errArrayItemsMissing
		}
		item, err := b.fieldFromSchema("item", *schema.Items, false)
		if err != nil {
			return Field{}, err
		}
		field.Items = &item
	}
	return field, nil
}

func validationRules(schema pkgopenapi.Schema) []ValidationRule {
	var rules []ValidationRule
	if schema.Format == "email" {
		rules = append(rules, ValidationRule{Kind: ValidationRuleEmail})
	}
	if schema.MinLength != nil {
		rules = append(rules, numericRule(ValidationRuleMinLength, float64(*schema.MinLength)))
	}
	if schema.MaxLength != nil {
		rules = append(rules, numericRule(ValidationRuleMaxLength, float64(*schema.MaxLength)))
	}
	if schema.Minimum != nil {
		rules = append(rules, numericRule(ValidationRuleMin, *schema.Minimum))
	}
	if schema.Maximum != nil {
		rules = append(rules, numericRule(ValidationRuleMax, *schema.Maximum))
	}
	if schema.Pattern != "" {
		rules = append(rules, ValidationRule{
			Kind:   ValidationRulePattern,
			Params: map[string]string{"pattern": schema.Pattern},
		})
	}
	return rules
}

func numericRule(kind string, value float64) ValidationRule {
	return ValidationRule{
		Kind:   kind,
		Params: map[string]string{"value": strconv.FormatFloat(value, 'f', -1, 64)},
	}
}

func orderedPropertyNames(schema pkgopenapi.Schema) []string {
	seen := make(map[string]struct{}, len(schema.Properties))
	names := make([]string, 0, len(schema.Properties))
	for _, name := range stringList(formgenExtension(schema.Extensions)["order"]) {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	var rest []string
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func fieldType(raw string) FieldType {
	switch FieldType(raw) {
	case FieldTypeInteger, FieldTypeNumber, FieldTypeBoolean, FieldTypeArray, FieldTypeObject:
		return FieldType(raw)
	default:
		return FieldTypeString
	}
}

func formgenExtension(ext map[string]any) map[string]any {
	if len(ext) == 0 {
		return nil
	}
	out := make(map[string]any)
	if nested, ok := ext[extensionNamespace].(map[string]any); ok {
		for k, v := range nested {
			out[k] = v
		}
	}
	for key, value := range ext {
		if trimmed := strings.TrimPrefix(key, extensionNamespace+"-"); trimmed != key && trimmed != "" {
			out[trimmed] = value
		}
	}
	return out
}

func scalarMetadata(ext map[string]any) map[string]string {
	out := make(map[string]string)
	for key, value := range ext {
		switch typed := value.(type) {
		case string:
			out[key] = typed
		case bool:
			out[key] = strconv.FormatBool(typed)
		case float64:
			out[key] = strconv.FormatFloat(typed, 'f', -1, 64)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringList(value any) []string {
	switch typed := value.(type) {
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		return append([]string(nil), typed...)
	case string:
		if strings.TrimSpace(typed) == "" {
			return nil
		}
		return []string{strings.TrimSpace(typed)}
	default:
		return nil
	}
}

func truthy(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(typed)
		return err == nil && parsed
	default:
		return false
	}
}

// humanize turns camelCase property names into labels ("fullName" -> "Full name").
func humanize(name string) string {
	if name == "" {
		return ""
	}
	var builder strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			builder.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			builder.WriteRune(' ')
			builder.WriteRune(unicode.ToLower(r))
		case r == '_' || r == '-':
			builder.WriteRune(' ')
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
