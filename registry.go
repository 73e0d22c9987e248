package titlecase

import (
	"errors"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// TaggerLoader builds the tagger for one model variant. It is called at
// most once per variant and successful load.
type TaggerLoader func(variant ModelVariant) (Tagger, error)

// Registry owns the initialized tagger of each model variant. Taggers are
// created on first use and kept for the lifetime of the registry;
// concurrent first requests for one variant share a single load.
type Registry struct {
	loader  TaggerLoader
	taggers cmap.ConcurrentMap[string, Tagger]
	group   singleflight.Group
	logger  zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report model loads.
func WithRegistryLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns an empty registry that builds taggers with loader.
func NewRegistry(loader TaggerLoader, opts ...RegistryOption) *Registry {
	r := &Registry{
		loader:  loader,
		taggers: cmap.New[Tagger](),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LexicalLoader loads the built-in LexicalTagger from the embedded data.
func LexicalLoader(variant ModelVariant) (Tagger, error) {
	return LoadLexicalTagger(dataFS, variant)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(LexicalLoader)
})

// DefaultRegistry returns the process-wide registry over the built-in
// lexical tagger.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Get returns the tagger for variant, loading it on first use. A failed load
// is not cached; the error is a *TaggerError.
func (r *Registry) Get(variant ModelVariant) (Tagger, error) {
	key := string(variant)
	if t, ok := r.taggers.Get(key); ok {
		return t, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		// Another caller may have finished loading between Get and Do.
		if t, ok := r.taggers.Get(key); ok {
			return t, nil
		}
		start := time.Now()
		t, err := r.loader(variant)
		if err == nil && t == nil {
			err = errors.New("loader returned no tagger")
		}
		if err != nil {
			r.logger.Error().Err(err).Str("model", key).Msg("tagger load failed")
			return nil, &TaggerError{Variant: variant, Op: "load", Err: err}
		}
		r.taggers.Set(key, t)
		r.logger.Debug().Str("model", key).Dur("took", time.Since(start)).Msg("tagger loaded")
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Tagger), nil
}

// Loaded returns the variants whose tagger is already initialized.
func (r *Registry) Loaded() []ModelVariant {
	var out []ModelVariant
	for _, v := range ModelVariants {
		if r.taggers.Has(string(v)) {
			out = append(out, v)
		}
	}
	return out
}
