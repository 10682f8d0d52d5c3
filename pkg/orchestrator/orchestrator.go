package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-wordcipher/internal/source/loader"
	"github.com/goliatone/go-wordcipher/pkg/dictionary"
	"github.com/goliatone/go-wordcipher/pkg/engine"
	"github.com/goliatone/go-wordcipher/pkg/metadata"
	"github.com/goliatone/go-wordcipher/pkg/model"
	"github.com/goliatone/go-wordcipher/pkg/render"
	"github.com/goliatone/go-wordcipher/pkg/renderers/html"
	"github.com/goliatone/go-wordcipher/pkg/renderers/text"
	"github.com/goliatone/go-wordcipher/pkg/renderers/yaml"
	"github.com/goliatone/go-wordcipher/pkg/segment"
	"github.com/goliatone/go-wordcipher/pkg/source"
)

const defaultRendererName = text.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader used for puzzle and dictionary
// sources.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithTokenizer injects a tokenizer, typically one built over a custom cipher
// alphabet.
func WithTokenizer(tokenizer *segment.Tokenizer) Option {
	return func(o *Orchestrator) {
		o.tokenizer = tokenizer
	}
}

// WithMetadataDecoder injects the decoder applied to each segment's metadata.
func WithMetadataDecoder(decoder *metadata.Decoder) Option {
	return func(o *Orchestrator) {
		o.decoder = decoder
	}
}

// WithMatcher injects the constraint matcher.
func WithMatcher(matcher *engine.Matcher) Option {
	return func(o *Orchestrator) {
		o.matcher = matcher
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the structured logger. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates a decode run from puzzle text to rendered output.
// It applies defaults (text renderer, built-in alphabets, filesystem/HTTP
// loader) while remaining open to dependency injection.
type Orchestrator struct {
	loader          source.Loader
	tokenizer       *segment.Tokenizer
	decoder         *metadata.Decoder
	matcher         *engine.Matcher
	registry        *render.Registry
	defaultRenderer string
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of a single decode run.
type Request struct {
	// Text is the puzzle text supplied inline. Ignored when Puzzle is set.
	Text string

	// Puzzle identifies where the puzzle text lives.
	Puzzle source.Source

	// Dictionary supplies the candidate words directly, bypassing the loader.
	Dictionary *dictionary.Dictionary

	// DictionarySource identifies a newline-delimited word list. Used when
	// Dictionary is nil.
	DictionarySource source.Source

	// Renderer names the renderer Generate uses. If empty, the orchestrator
	// falls back to the configured default renderer.
	Renderer string

	// RenderOptions is handed to the renderer untouched.
	RenderOptions render.RenderOptions
}

// Decode resolves the request inputs and matches every segment of the puzzle
// against the dictionary, in puzzle order. The first error aborts the run and
// no partial result is returned.
func (o *Orchestrator) Decode(ctx context.Context, req Request) (model.Result, error) {
	if ctx == nil {
		return model.Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Result{}, err
	}
	if err := o.ready(); err != nil {
		return model.Result{}, err
	}

	started := time.Now()
	logger := o.logger.With(zap.String("run_id", uuid.NewString()))

	puzzle, err := o.resolvePuzzle(ctx, req)
	if err != nil {
		return model.Result{}, err
	}
	dict, err := o.resolveDictionary(ctx, req)
	if err != nil {
		return model.Result{}, err
	}

	segments, err := o.tokenizer.Tokenize(puzzle)
	if err != nil {
		return model.Result{}, fmt.Errorf("orchestrator: tokenize puzzle: %w", err)
	}
	logger.Debug("puzzle tokenized",
		zap.Int("segments", len(segments)),
		zap.Int("dictionary_words", dict.Len()),
	)

	result := model.Result{Segments: make([]model.SegmentResult, 0, len(segments))}
	matches := 0
	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return model.Result{}, err
		}

		constraint, err := o.decoder.Decode(seg.Metadata)
		if err != nil {
			return model.Result{}, fmt.Errorf("orchestrator: segment %d: %w", seg.Index, metadataOffset(err, seg))
		}

		match, err := o.matcher.Match(constraint, seg.Encoded, dict)
		if err != nil {
			return model.Result{}, fmt.Errorf("orchestrator: segment %d: %w", seg.Index, err)
		}

		logger.Debug("segment decoded",
			zap.Int("segment", seg.Index),
			zap.String("encoded", seg.Encoded),
			zap.Int("word_value", constraint.WordValue),
			zap.Int("average", constraint.Average),
			zap.Int("first_value", constraint.FirstValue),
			zap.Int("lowest_value", constraint.LowestValue),
			zap.Int("size", constraint.Size),
			zap.Int("min_second", match.Stats.MinSecond),
			zap.Int("matches", match.Stats.Matched),
			zap.Any("rejected", match.Stats.Rejected),
		)

		matches += len(match.Words)
		result.Segments = append(result.Segments, model.SegmentResult{
			Segment:    seg,
			Constraint: constraint,
			Words:      match.Words,
		})
	}

	logger.Info("decode complete",
		zap.Int("segments", len(result.Segments)),
		zap.Int("matches", matches),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

// Generate runs Decode and renders the result with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(); err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	result, err := o.Decode(ctx, req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, result, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Registry exposes the renderer registry so callers can list the available
// output formats.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) ready() error {
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

func (o *Orchestrator) resolvePuzzle(ctx context.Context, req Request) (string, error) {
	if req.Puzzle == nil {
		if req.Text == "" {
			return "", errors.New("orchestrator: puzzle text or source is required")
		}
		return req.Text, nil
	}
	doc, err := o.loader.Load(ctx, req.Puzzle)
	if err != nil {
		return "", fmt.Errorf("orchestrator: load puzzle: %w", err)
	}
	return doc.Text(), nil
}

func (o *Orchestrator) resolveDictionary(ctx context.Context, req Request) (dictionary.Dictionary, error) {
	if req.Dictionary != nil {
		return *req.Dictionary, nil
	}
	if req.DictionarySource == nil {
		return dictionary.Dictionary{}, errors.New("orchestrator: dictionary or dictionary source is required")
	}
	dict, err := dictionary.Load(ctx, o.loader, req.DictionarySource)
	if err != nil {
		return dictionary.Dictionary{}, fmt.Errorf("orchestrator: load dictionary: %w", err)
	}
	return dict, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// metadataOffset places a metadata error at the byte where the bracketed
// block starts in the puzzle text.
func metadataOffset(err error, seg model.Segment) error {
	var decodeErr *model.Error
	if !errors.As(err, &decodeErr) || decodeErr.Offset >= 0 {
		return err
	}
	return decodeErr.WithOffset(seg.Offset + len(seg.Encoded) + 1)
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions())
	}
	if o.tokenizer == nil {
		o.tokenizer = segment.Default()
	}
	if o.decoder == nil {
		o.decoder = metadata.NewDecoder(nil)
	}
	if o.matcher == nil {
		o.matcher = engine.New()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry(text.New(), yaml.New())
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
