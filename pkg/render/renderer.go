package render

import (
	"context"

	"github.com/goliatone/go-wordcipher/pkg/model"
)

// Renderer converts a decode Result into bytes (plain text, HTML, YAML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, result model.Result, options RenderOptions) ([]byte, error)
}
