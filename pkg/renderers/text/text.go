// Package text renders decode results in the canonical line format: each
// segment's matches one per line, followed by a separator line.
package text

import (
	"bytes"
	"context"
	"strings"

	"github.com/goliatone/go-wordcipher/pkg/model"
	"github.com/goliatone/go-wordcipher/pkg/render"
)

// Name is the registry key for the text renderer.
const Name = "text"

// Renderer writes plain text.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render joins every segment's words with newlines and closes the block with
// the separator on its own line. A segment without matches therefore renders
// as an empty line followed by the separator.
func (r *Renderer) Render(ctx context.Context, result model.Result, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sep := options.SeparatorOrDefault()

	var buf bytes.Buffer
	for _, seg := range result.Segments {
		buf.WriteString(strings.Join(seg.Words, "\n"))
		buf.WriteByte('\n')
		buf.WriteString(sep)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
