// Package yaml renders decode results as a YAML report.
package yaml

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wordcipher/pkg/model"
	"github.com/goliatone/go-wordcipher/pkg/render"
)

// Name is the registry key for the YAML renderer.
const Name = "yaml"

// Renderer writes YAML documents.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the YAML renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/yaml"
}

type report struct {
	Title    string          `yaml:"title,omitempty"`
	Segments []segmentReport `yaml:"segments"`
}

type segmentReport struct {
	Index      int               `yaml:"index"`
	Offset     int               `yaml:"offset"`
	Encoded    string            `yaml:"encoded"`
	Metadata   string            `yaml:"metadata"`
	Constraint *model.Constraint `yaml:"constraint,omitempty"`
	Words      []string          `yaml:"words"`
}

// Render encodes the result. Constraints are included only when requested.
func (r *Renderer) Render(ctx context.Context, result model.Result, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := report{
		Title:    options.Title,
		Segments: make([]segmentReport, 0, len(result.Segments)),
	}
	for _, seg := range result.Segments {
		entry := segmentReport{
			Index:    seg.Segment.Index,
			Offset:   seg.Segment.Offset,
			Encoded:  seg.Segment.Encoded,
			Metadata: seg.Segment.Metadata,
			Words:    seg.Words,
		}
		if entry.Words == nil {
			entry.Words = []string{}
		}
		if options.IncludeConstraints {
			constraint := seg.Constraint
			entry.Constraint = &constraint
		}
		doc.Segments = append(doc.Segments, entry)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("yaml renderer: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml renderer: encode: %w", err)
	}
	return buf.Bytes(), nil
}
