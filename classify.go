package titlecase

import (
	"fmt"
	"strings"
)

// sentinel stands in for the word before the first token. It ends in a
// letter, so the first token is never flagged AfterPunctuation.
const sentinel = "SENTINEL"

// sentenceEnds are the endings that make the next word start a new phrase.
var sentenceEnds = []string{":", "?", "!", ".", "--", "-"}

// Classifier tags tokens and derives the per-word features of a Title.
// It is immutable and safe for concurrent use.
type Classifier struct {
	lex     *Lexicons
	tagger  Tagger
	variant ModelVariant
}

// NewClassifier returns a classifier over lex and tagger. variant is only
// used to label tagger errors.
func NewClassifier(lex *Lexicons, tagger Tagger, variant ModelVariant) *Classifier {
	return &Classifier{lex: lex, tagger: tagger, variant: variant}
}

// Lexicons returns the lexicons the classifier consults.
func (c *Classifier) Lexicons() *Lexicons {
	return c.lex
}

// ClassifyText tokenizes an already normalized title and classifies it.
func (c *Classifier) ClassifyText(text string) (Title, error) {
	return c.Classify(c.tagger.Tokenize(text))
}

// Classify tags tokens and computes the features of every word. The hyphen
// resolver calls it again on the fragments of a compound.
func (c *Classifier) Classify(tokens []string) (Title, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	tags, err := c.tagger.Tag(tokens)
	if err != nil {
		return nil, &TaggerError{Variant: c.variant, Op: "tag", Err: err}
	}
	if len(tags) != len(tokens) {
		return nil, &TaggerError{
			Variant: c.variant,
			Op:      "tag",
			Err:     fmt.Errorf("got %d tags for %d tokens", len(tags), len(tokens)),
		}
	}

	title := make(Title, len(tokens))
	for i, tok := range tokens {
		prev := sentinel
		if i > 0 {
			prev = tokens[i-1]
		}
		title[i] = c.classifyWord(tok, tags[i], prev, i, len(tokens))
	}
	return title, nil
}

// classifyWord derives the features of one token. Every feature depends only
// on the token, its tag, the previous token and the lexicons.
func (c *Classifier) classifyWord(word, tag, prev string, idx, n int) TaggedWord {
	return TaggedWord{
		Word:                     word,
		Tag:                      tag,
		Acronym:                  c.lex.IsAcronym(word),
		PluralAcronym:            c.lex.IsPluralAcronym(word),
		Article:                  c.lex.IsArticle(word),
		CoordinatingConjunction:  tag == TagCoordinatingConjunction,
		SubordinatingConjunction: tag == TagPreposition && !c.lex.IsPreposition(word),
		Preposition:              c.lex.IsPreposition(word),
		Proper:                   tag == TagProperNoun || tag == TagProperNounPlural,
		Prefix:                   c.lex.IsPrefix(word),
		Hyphenated:               isHyphenated(word),
		FirstWord:                idx == 0,
		LastWord:                 idx == n-1,
		AfterPunctuation:         isAfterPunctuation(prev),
		FirstWordOfParenthetical: strings.HasPrefix(word, "(") || strings.HasPrefix(word, "{"),
	}
}

// isHyphenated reports a hyphen anywhere but in the last position; a
// trailing hyphen does not make a compound.
func isHyphenated(word string) bool {
	return strings.Contains(word, "-") && !strings.HasSuffix(word, "-")
}

func isAfterPunctuation(prev string) bool {
	for _, end := range sentenceEnds {
		if strings.HasSuffix(prev, end) {
			return true
		}
	}
	return false
}
