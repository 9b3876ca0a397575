package render

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/goliatone/go-bookform/pkg/render/template"
	"github.com/goliatone/go-bookform/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// ReceiptTemplate is the template name Receipts render.
const ReceiptTemplate = "receipt"

// TemplatesFS exposes the embedded templates so callers can copy and extend
// them before pointing WithReceiptDir at their own directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// ReceiptLine is one labelled value on a receipt.
type ReceiptLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Receipt is the view model of a confirmed booking.
type Receipt struct {
	Reference  string           `json:"reference"`
	CreatedAt  string           `json:"created_at"`
	Lines      []ReceiptLine    `json:"lines"`
	Passengers []map[string]any `json:"passengers"`
	Total      float64          `json:"total"`
}

// Receipts renders Receipt values through a template engine.
type Receipts struct {
	engine template.TemplateRenderer
}

// ReceiptOption configures Receipts.
type ReceiptOption func(*receiptConfig)

type receiptConfig struct {
	engine  template.TemplateRenderer
	baseDir string
}

// WithReceiptEngine renders through engine instead of the embedded templates.
func WithReceiptEngine(engine template.TemplateRenderer) ReceiptOption {
	return func(cfg *receiptConfig) {
		cfg.engine = engine
	}
}

// WithReceiptDir loads templates from dir first, falling back to the
// embedded receipt.
func WithReceiptDir(dir string) ReceiptOption {
	return func(cfg *receiptConfig) {
		cfg.baseDir = dir
	}
}

// NewReceipts builds a receipt renderer.
func NewReceipts(opts ...ReceiptOption) (*Receipts, error) {
	cfg := &receiptConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.engine != nil {
		return &Receipts{engine: cfg.engine}, nil
	}

	engineOpts := []pongo.Option{pongo.WithFS(TemplatesFS())}
	if cfg.baseDir != "" {
		engineOpts = append(engineOpts, pongo.WithBaseDir(cfg.baseDir))
	}
	engine, err := pongo.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("render: receipt engine: %w", err)
	}
	return &Receipts{engine: engine}, nil
}

// Render writes receipt to w and returns the rendered text.
func (r *Receipts) Render(w io.Writer, receipt Receipt) (string, error) {
	var out []io.Writer
	if w != nil {
		out = append(out, w)
	}
	text, err := r.engine.Render(ReceiptTemplate, receipt, out...)
	if err != nil {
		return "", fmt.Errorf("render: receipt: %w", err)
	}
	return text, nil
}
