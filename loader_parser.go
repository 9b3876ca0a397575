package bookform

import (
	"context"

	internalParser "github.com/goliatone/go-bookform/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-bookform/pkg/openapi"
)

// LoadDocument reads an OpenAPI document declaring the booking form from
// disk. Pass the result to WithDocument to replace the embedded registry.
func LoadDocument(ctx context.Context, path string) (pkgopenapi.Document, error) {
	return pkgopenapi.Load(ctx, nil, pkgopenapi.SourceFromFile(path))
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}
