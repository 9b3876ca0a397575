package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

const (
	ValidationRuleRequiredTrue = "requiredTrue"
	ValidationRuleEmail        = "email"
	ValidationRuleMin          = "min"
	ValidationRuleMax          = "max"
	ValidationRuleMinLength    = "minLength"
	ValidationRuleMaxLength    = "maxLength"
	ValidationRulePattern      = "pattern"
)

// ValidationRule represents a single validation constraint applied to a field.
// Numeric bounds and length limits encode their threshold in
// Params["value"]; pattern rules preserve the expression in
// Params["pattern"]. The required constraint is carried by Field.Required.
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside the form.
type Field struct {
	Name            string            `json:"name"`
	Type            FieldType         `json:"type"`
	Format          string            `json:"format,omitempty"`
	Required        bool              `json:"required"`
	Label           string            `json:"label,omitempty"`
	Description     string            `json:"description,omitempty"`
	Default         any               `json:"default,omitempty"`
	Enum            []any             `json:"enum,omitempty"`
	Nested          []Field           `json:"nested,omitempty"`
	Items           *Field            `json:"items,omitempty"`
	Validations     []ValidationRule  `json:"validations,omitempty"`
	AsyncValidators []string          `json:"asyncValidators,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation consumed by the form runtime.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the top-level field with the given name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
