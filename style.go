package titlecase

import "strings"

// Style renders a classified title into its final casing. Chicago is the only
// implementation; other headline styles plug in here without touching the
// classifier.
type Style interface {
	Name() string
	// Render cases every word of title and joins them with single spaces.
	// c is used to re-classify the fragments of hyphenated words.
	Render(title Title, c *Classifier) (string, error)
}

// Chicago implements the headline style of the Chicago Manual of Style.
type Chicago struct{}

func (Chicago) Name() string { return "chicago" }

// Render implements Style.
func (s Chicago) Render(title Title, c *Classifier) (string, error) {
	out := make([]string, len(title))
	for i, w := range title {
		cased, err := s.caseWord(w, c)
		if err != nil {
			return "", err
		}
		out[i] = cased
	}
	return strings.Join(out, " "), nil
}

// caseWord applies the rules in order; a later rule overrides an earlier one.
func (Chicago) caseWord(w TaggedWord, c *Classifier) (string, error) {
	word := w.Word
	cased := word

	// Separators such as "-" or "--" only go through the special-word step.
	if !w.PunctuationOnly() {
		if w.Minor() {
			cased = Lowercase(word)
		} else {
			cased = Capitalize(word)
		}

		if w.FirstWord || w.LastWord || w.AfterPunctuation {
			cased = Capitalize(word)
		}
		if w.FirstWordOfParenthetical {
			cased = Capitalize(word)
		}
		if w.Acronym {
			cased = Uppercase(word)
		}
		if w.PluralAcronym {
			cased = UppercasePluralAcronym(word)
		}
		if w.Hyphenated {
			resolved, err := ResolveHyphenated(c, word)
			if err != nil {
				return "", err
			}
			cased = resolved
		}
	}

	return replaceSpecial(c.lex, cased), nil
}

// replaceSpecial swaps in the canonical spelling of a special word. A match
// on the word without its surrounding punctuation keeps that punctuation:
// "(iphone)" becomes "(iPhone)".
func replaceSpecial(lex *Lexicons, word string) string {
	if s, ok := lex.Special(word); ok {
		return s
	}
	lead, core, trail := trimPunct(word)
	if core == "" || core == word {
		return word
	}
	if s, ok := lex.Special(core); ok {
		return lead + s + trail
	}
	return word
}
