package titlecase

import (
	"sync/atomic"
)

// stubTagger tags from a fixed map, "NN" otherwise.
type stubTagger struct {
	tags  map[string]string
	err   error
	short bool // return one tag too few
	calls atomic.Int32
}

func (s *stubTagger) Tokenize(text string) []string {
	return WhitespaceTokenize(text)
}

func (s *stubTagger) Tag(tokens []string) ([]string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	tags := make([]string, len(tokens))
	for i, tok := range tokens {
		tag, ok := s.tags[tok]
		if !ok {
			tag = "NN"
		}
		tags[i] = tag
	}
	if s.short && len(tags) > 0 {
		tags = tags[:len(tags)-1]
	}
	return tags, nil
}

// stubRegistry serves tagger for every variant.
func stubRegistry(tagger Tagger) *Registry {
	return NewRegistry(func(ModelVariant) (Tagger, error) {
		return tagger, nil
	})
}

func stubClassifier(tags map[string]string) *Classifier {
	return NewClassifier(DefaultLexicons(), &stubTagger{tags: tags}, Large)
}
