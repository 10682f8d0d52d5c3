package wordcipher

import (
	internalLoader "github.com/goliatone/go-wordcipher/internal/source/loader"
	"github.com/goliatone/go-wordcipher/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
