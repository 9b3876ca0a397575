package booking

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goliatone/go-bookform/pkg/form"
	pkgmodel "github.com/goliatone/go-bookform/pkg/model"
	pkgopenapi "github.com/goliatone/go-bookform/pkg/openapi"
	"github.com/goliatone/go-bookform/pkg/validation"
)

// OperationID names the operation whose request body declares the form.
const OperationID = "createBooking"

// Field names the booking logic depends on.
const (
	FieldEmail                = "email"
	FieldTravelClass          = "travelClass"
	FieldPassengers           = "passengers"
	FieldAdditionalPassengers = "additionalPassengers"
)

// AsyncEmailExists is the asynchronous validator name the registry uses for
// the registered-email check.
const AsyncEmailExists = "emailExists"

//go:embed booking.yaml
var bookingDocument []byte

// DefaultDocument returns the embedded registry document.
func DefaultDocument() pkgopenapi.Document {
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("booking.yaml"), bookingDocument)
}

// LoadModel parses doc and returns the booking form model. It fails when
// the fields the booking logic relies on are missing.
func LoadModel(ctx context.Context, doc pkgopenapi.Document) (pkgmodel.FormModel, error) {
	model, err := pkgmodel.FromDocument(ctx, doc, OperationID, pkgopenapi.WithReferenceResolution(true))
	if err != nil {
		return pkgmodel.FormModel{}, fmt.Errorf("booking: load registry: %w", err)
	}
	for _, name := range []string{FieldEmail, FieldTravelClass, FieldPassengers} {
		if _, ok := model.Field(name); !ok {
			return pkgmodel.FormModel{}, fmt.Errorf("%w: %q", ErrFieldMissing, name)
		}
	}
	field, ok := model.Field(FieldAdditionalPassengers)
	if !ok || field.Type != pkgmodel.FieldTypeArray || field.Items == nil {
		return pkgmodel.FormModel{}, fmt.Errorf("%w: %q must be an array of objects", ErrFieldMissing, FieldAdditionalPassengers)
	}
	return model, nil
}

// nodeBuilder turns registry fields into form nodes.
type nodeBuilder struct {
	async   map[string]form.AsyncValidator
	options []form.ControlOption
}

func (b nodeBuilder) build(field pkgmodel.Field) (form.Node, error) {
	switch field.Type {
	case pkgmodel.FieldTypeArray:
		return form.NewArray(), nil
	case pkgmodel.FieldTypeObject:
		return b.group(field.Nested)
	}

	rules, err := validation.Compile(field)
	if err != nil {
		return nil, err
	}
	opts := append([]form.ControlOption{form.WithRules(rules...)}, b.options...)
	for _, name := range field.AsyncValidators {
		validator, ok := b.async[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q on field %q", ErrUnknownAsyncValidator, name, field.Name)
		}
		opts = append(opts, form.WithAsyncValidator(validator))
	}
	return form.NewControl(initialValue(field), opts...), nil
}

func (b nodeBuilder) group(fields []pkgmodel.Field) (*form.Group, error) {
	entries := make([]form.Entry, 0, len(fields))
	for _, field := range fields {
		node, err := b.build(field)
		if err != nil {
			return nil, err
		}
		entries = append(entries, form.Entry{Name: field.Name, Node: node})
	}
	return form.NewGroup(entries...), nil
}

// initialValue is the declared default, or "" for fields without one.
func initialValue(field pkgmodel.Field) any {
	if field.Default != nil {
		return field.Default
	}
	return ""
}
