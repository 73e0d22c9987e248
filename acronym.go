package titlecase

import (
	"regexp"
	"strings"
)

// vowels counts "y" so that words such as "spy" or "by" are not taken for
// acronyms.
const vowels = "aeiouy"

// reOrdinal matches numeric ordinals, which have no vowel but are words.
var reOrdinal = regexp.MustCompile(`^[0-9]+(st|nd|rd|th)$`)

// IsAcronym reports whether word should be rendered fully uppercase. There is
// no reliable test, so several heuristics are combined; any one suffices:
//
//  1. the bare form is in the acronym allow-list;
//  2. the bare form has no vowel and is not a known vowel-less word
//     ("cwm") or an ordinal ("21st");
//  3. the word contains "&" or "/" ("k&r", "a/b");
//  4. the word is wrapped in parentheses and has at most four letters,
//     since a short parenthetical in a title is almost always a gloss
//     such as "(cbp)";
//  5. the bare form has two letters and is not a valid two-letter word.
//     "us" is not on that list, so it reads as the country.
func (l *Lexicons) IsAcronym(word string) bool {
	bare := Bare(word)
	if bare == "" {
		return false
	}
	n := len([]rune(bare))

	switch {
	case l.acronyms.has(bare):
		return true
	case !strings.ContainsAny(bare, vowels) && !l.noVowel.has(bare) && !reOrdinal.MatchString(bare):
		return true
	case strings.ContainsAny(word, "&/"):
		return true
	case betweenParentheses(word) && n <= 4:
		return true
	case n == 2 && !l.twoLetter.has(bare):
		return true
	}
	return false
}

// IsPluralAcronym reports whether word is the plural of an acronym, like
// "ngos" for "ngo": the word ends in "s" (ignoring trailing punctuation)
// and removing its last "s" leaves a word that IsAcronym accepts. Three-letter
// words such as "has" or "his" stay words only because their stem is in the
// two-letter word list.
func (l *Lexicons) IsPluralAcronym(word string) bool {
	_, core, _ := trimPunct(word)
	if !strings.HasSuffix(core, "s") {
		return false
	}
	i := strings.LastIndex(word, "s")
	return l.IsAcronym(word[:i] + word[i+1:])
}

func betweenParentheses(word string) bool {
	return strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")")
}
