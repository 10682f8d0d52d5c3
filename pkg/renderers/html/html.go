// Package html renders decode results as a standalone HTML report using an
// embedded pongo2 template. Dictionary words are untrusted input and pass
// through a bluemonday strict policy before reaching the page.
package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-wordcipher/pkg/model"
	"github.com/goliatone/go-wordcipher/pkg/render"
)

// Name is the registry key for the HTML renderer.
const Name = "html"

const (
	reportTemplate = "report.html"
	defaultTitle   = "Decoded puzzle"
)

//go:embed templates/*.html
var embedded embed.FS

// TemplatesFS returns the embedded template bundle.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Option configures the renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	policy    *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate bundle that must contain report.html.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithPolicy overrides the sanitiser applied to words.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer produces the HTML report.
type Renderer struct {
	mu       sync.Mutex
	template *pongo2.Template
	policy   *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New parses the report template and returns the renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templates: TemplatesFS(),
		policy:    bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("wordcipher", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: parse %s: %w", reportTemplate, err)
	}
	return &Renderer{template: tmpl, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type segmentView struct {
	Index    int
	Encoded  string
	Metadata string
	Words    []string
}

// Render executes the report template.
func (r *Renderer) Render(ctx context.Context, result model.Result, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = defaultTitle
	}

	segments := make([]segmentView, 0, len(result.Segments))
	for _, seg := range result.Segments {
		view := segmentView{
			Index:    seg.Segment.Index,
			Encoded:  seg.Segment.Encoded,
			Metadata: seg.Segment.Metadata,
		}
		for _, word := range seg.Words {
			if clean := r.policy.Sanitize(word); clean != "" {
				view.Words = append(view.Words, clean)
			}
		}
		segments = append(segments, view)
	}

	var buf bytes.Buffer
	r.mu.Lock()
	err := r.template.ExecuteWriter(pongo2.Context{
		"title":    title,
		"segments": segments,
	}, &buf)
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute: %w", err)
	}
	return buf.Bytes(), nil
}
