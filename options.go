package titlecase

import "github.com/rs/zerolog"

// settings is the configuration of one TitleCase call.
type settings struct {
	lex      *Lexicons
	model    ModelVariant
	style    Style
	registry *Registry
	logger   zerolog.Logger
}

func defaultSettings() settings {
	return settings{
		lex:      DefaultLexicons(),
		model:    DefaultModel,
		style:    Chicago{},
		registry: DefaultRegistry(),
		logger:   zerolog.Nop(),
	}
}

// Option configures a Caser or a single TitleCase call. Options are applied
// in order, so a later lexicon option builds on the result of earlier ones.
type Option func(*settings)

// WithLexicons replaces the lexicons wholesale. A nil lex is ignored.
func WithLexicons(lex *Lexicons) Option {
	return func(s *settings) {
		if lex != nil {
			s.lex = lex
		}
	}
}

// WithAcronyms replaces the acronym allow-list.
func WithAcronyms(words ...string) Option {
	return func(s *settings) {
		s.lex = s.lex.WithAcronyms(words...)
	}
}

// WithExtraAcronyms adds words to the acronym allow-list.
func WithExtraAcronyms(words ...string) Option {
	return func(s *settings) {
		s.lex = s.lex.WithExtraAcronyms(words...)
	}
}

// WithSpecialWords replaces the special-spelling map. Keys are matched
// case-insensitively.
func WithSpecialWords(words map[string]string) Option {
	return func(s *settings) {
		s.lex = s.lex.WithSpecialWords(words)
	}
}

// WithExtraSpecialWords adds entries to the special-spelling map.
func WithExtraSpecialWords(words map[string]string) Option {
	return func(s *settings) {
		s.lex = s.lex.WithExtraSpecialWords(words)
	}
}

// WithModel selects the tagger variant.
func WithModel(v ModelVariant) Option {
	return func(s *settings) {
		s.model = v
	}
}

// WithStyle selects the rendering style. A nil style is ignored.
func WithStyle(style Style) Option {
	return func(s *settings) {
		if style != nil {
			s.style = style
		}
	}
}

// WithRegistry sets the registry taggers are taken from. A nil r is
// ignored.
func WithRegistry(r *Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
