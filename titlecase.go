// Package titlecase converts free-text titles to headline case following the
// Chicago Manual of Style, for bibliographic and citation tooling.
//
// A title is normalized, split on spaces, tagged with parts of speech and
// classified word by word; a Style then decides the casing of each word:
//
//	s, err := titlecase.TitleCase("county business patterns (cbp)")
//	// s == "County Business Patterns (CBP)"
//
// Tagging is delegated to a Tagger. The built-in LexicalTagger comes in four
// model variants that are loaded lazily and cached in a Registry.
package titlecase

import (
	"fmt"
	"sync"
)

// Caser holds a configuration and cases titles with it. It is immutable and
// safe for concurrent use.
type Caser struct {
	settings settings
}

// New returns a Caser configured by opts on top of the defaults: built-in
// lexicons, the Large model from the default registry and the Chicago style.
func New(opts ...Option) *Caser {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Caser{settings: s}
}

var defaultCaser = sync.OnceValue(func() *Caser {
	return New()
})

// TitleCase cases title with the default Caser.
func TitleCase(title string, opts ...Option) (string, error) {
	return defaultCaser().TitleCase(title, opts...)
}

// TitleCase returns title in headline case. opts apply to this call only.
// An empty or blank title gives "" and no error. Tagger failures are
// returned as *TaggerError.
func (c *Caser) TitleCase(title string, opts ...Option) (string, error) {
	s := c.with(opts)

	t, cl, err := s.classify(title)
	if err != nil || len(t) == 0 {
		return "", err
	}
	out, err := s.style.Render(t, cl)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("model", s.model.String()).
		Str("style", s.style.Name()).
		Int("words", len(t)).
		Str("result", out).
		Msg("title cased")
	return out, nil
}

// Classify returns the classified words of title without rendering them.
func (c *Caser) Classify(title string, opts ...Option) (Title, error) {
	t, _, err := c.with(opts).classify(title)
	return t, err
}

func (c *Caser) with(opts []Option) settings {
	s := c.settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) classify(title string) (Title, *Classifier, error) {
	normalized := Normalize(title)
	if normalized == "" {
		return nil, nil, nil
	}
	if !s.model.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownModel, string(s.model))
	}

	tagger, err := s.registry.Get(s.model)
	if err != nil {
		return nil, nil, err
	}
	cl := NewClassifier(s.lex, tagger, s.model)
	t, err := cl.ClassifyText(normalized)
	if err != nil {
		return nil, nil, err
	}
	return t, cl, nil
}
