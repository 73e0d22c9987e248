package titlecase

// TaggedWord is one token of a title together with its tag and the features
// derived from it. It is built once by the Classifier and never modified.
type TaggedWord struct {
	// Word is the normalized token, punctuation included.
	Word string `json:"word"`
	// Tag is the Penn Treebank tag assigned by the tagger.
	Tag string `json:"tag"`

	Acronym                  bool `json:"acronym,omitempty"`
	PluralAcronym            bool `json:"plural_acronym,omitempty"`
	Article                  bool `json:"article,omitempty"`
	CoordinatingConjunction  bool `json:"coordinating_conjunction,omitempty"`
	SubordinatingConjunction bool `json:"subordinating_conjunction,omitempty"`
	Preposition              bool `json:"preposition,omitempty"`
	Proper                   bool `json:"proper,omitempty"`
	Prefix                   bool `json:"prefix,omitempty"`
	Hyphenated               bool `json:"hyphenated,omitempty"`
	FirstWord                bool `json:"first_word,omitempty"`
	LastWord                 bool `json:"last_word,omitempty"`
	AfterPunctuation         bool `json:"after_punctuation,omitempty"`
	FirstWordOfParenthetical bool `json:"first_word_of_parenthetical,omitempty"`
}

// Bare returns the word with all punctuation removed.
func (w TaggedWord) Bare() string {
	return Bare(w.Word)
}

// PunctuationOnly reports whether the word has no letters or digits.
func (w TaggedWord) PunctuationOnly() bool {
	return IsPunctuationOnly(w.Word)
}

// Minor reports whether the word belongs to a class that headline styles
// lowercase: articles, coordinating conjunctions and prepositions.
func (w TaggedWord) Minor() bool {
	return w.Article || w.CoordinatingConjunction || w.Preposition
}

// Title is a classified title, one TaggedWord per token in order.
type Title []TaggedWord

// Words returns the tokens of t.
func (t Title) Words() []string {
	out := make([]string, len(t))
	for i, w := range t {
		out[i] = w.Word
	}
	return out
}
