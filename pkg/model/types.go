package model

import internalmodel "github.com/goliatone/go-bookform/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
	FieldTypeArray   = internalmodel.FieldTypeArray
	FieldTypeObject  = internalmodel.FieldTypeObject
)

const (
	ValidationRuleRequiredTrue = internalmodel.ValidationRuleRequiredTrue
	ValidationRuleEmail        = internalmodel.ValidationRuleEmail
	ValidationRuleMin          = internalmodel.ValidationRuleMin
	ValidationRuleMax          = internalmodel.ValidationRuleMax
	ValidationRuleMinLength    = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength    = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern      = internalmodel.ValidationRulePattern
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
