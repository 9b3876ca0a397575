package bookform

import (
	"io/fs"

	"github.com/goliatone/go-bookform/pkg/render"
)

// EmbeddedTemplates exposes the built-in receipt templates so callers can
// reuse or extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
