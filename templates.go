package wordcipher

import (
	"io/fs"

	"github.com/goliatone/go-wordcipher/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML report template so callers can
// copy or extend it and pass the result back through html.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
