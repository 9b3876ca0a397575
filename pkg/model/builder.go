package model

import (
	"context"
	"fmt"

	internalmodel "github.com/goliatone/go-bookform/internal/model"
	"github.com/goliatone/go-bookform/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-bookform/pkg/openapi"
)

// FromDocument parses doc and builds the form model for operationID.
func FromDocument(ctx context.Context, doc pkgopenapi.Document, operationID string, options ...pkgopenapi.ParserOption) (FormModel, error) {
	ops, err := parser.New(pkgopenapi.NewParserOptions(options...)).Operations(ctx, doc)
	if err != nil {
		return FormModel{}, err
	}
	op, ok := ops[operationID]
	if !ok {
		return FormModel{}, fmt.Errorf("model: operation %q not found in %s", operationID, doc.Location())
	}
	return internalmodel.New().Build(op)
}
