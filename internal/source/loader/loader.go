package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-wordcipher/pkg/source"
)

// Loader implements source.Loader by delegating to file, fs.FS, HTTP, or
// in-memory strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
}

// Ensure the implementation satisfies the public interface.
var _ source.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options source.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxBytes:  options.MaxBytes,
	}
}

// Load fetches the payload behind src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src source.Source) (source.Document, error) {
	if src == nil {
		return source.Document{}, errors.New("source loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return source.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case source.KindFile:
		data, err = loadFile(ctx, src.Location(), l.maxBytes)
	case source.KindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location(), l.maxBytes)
	case source.KindURL:
		if !l.allowHTTP {
			return source.Document{}, errors.New("source loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	case source.KindReader, source.KindInline:
		content, ok := src.(source.Content)
		if !ok {
			return source.Document{}, fmt.Errorf("source loader: %s source %q carries no content", src.Kind(), src.Location())
		}
		data, err = loadReader(ctx, content.Reader(), l.maxBytes)
	default:
		err = fmt.Errorf("source loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return source.Document{}, fmt.Errorf("source loader: %s: %w", src.Location(), err)
	}

	return source.NewDocument(src, data)
}
