package openapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFromFileAndFS(t *testing.T) {
	raw := []byte("openapi: 3.0.3\n")
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(context.Background(), nil, SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if doc.Location() != path || string(doc.Raw()) != string(raw) {
		t.Fatalf("unexpected document %q %q", doc.Location(), doc.Raw())
	}

	files := fstest.MapFS{"booking.yaml": {Data: raw}}
	doc, err = Load(context.Background(), files, SourceFromFS("booking.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if doc.Source().Kind() != SourceKindFS {
		t.Fatalf("unexpected source kind %q", doc.Source().Kind())
	}

	if _, err := Load(context.Background(), nil, SourceFromFS("booking.yaml")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
	if _, err := Load(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error without source")
	}
}

func TestSchemaCloneIsDeep(t *testing.T) {
	minimum := 1.0
	original := Schema{
		Type:       "object",
		Required:   []string{"name"},
		Properties: map[string]Schema{"name": {Type: "string", Enum: []any{"a"}}},
		Items:      &Schema{Type: "string"},
		Minimum:    &minimum,
		Extensions: map[string]any{"x-formgen": map[string]any{"order": []any{"name"}}},
	}
	cloned := original.Clone()
	if diff := cmp.Diff(original, cloned); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}

	cloned.Required[0] = "other"
	cloned.Properties["name"] = Schema{Type: "integer"}
	cloned.Items.Type = "integer"
	if original.Required[0] != "name" || original.Properties["name"].Type != "string" || original.Items.Type != "string" {
		t.Fatalf("clone shares state with the original")
	}
}

func TestSchemaValidate(t *testing.T) {
	if err := (Schema{}).Validate(); err == nil {
		t.Fatalf("expected error for schema without type or ref")
	}
	if err := (Schema{Type: "array"}).Validate(); err == nil {
		t.Fatalf("expected error for array without items")
	}
	if err := (Schema{Ref: "#/components/schemas/Trip"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
