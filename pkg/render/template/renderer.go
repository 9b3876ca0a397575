package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template strings.
// Rendered output is returned and, when writers are given, copied to each.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
