package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of a raw title: NFC-composed,
// trimmed, with every run of whitespace collapsed to a single space, and
// lowercased. An empty or all-whitespace title normalizes to "".
func Normalize(title string) string {
	title = norm.NFC.String(title)
	title = strings.Join(strings.Fields(title), " ")
	// cases.Caser is stateful, so a fresh one is built per call.
	return cases.Lower(language.English).String(title)
}

// isPunct reports whether r counts as punctuation when computing bare
// forms. Symbols such as "&", "$" and "+" are included.
func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Bare removes every punctuation and symbol rune from word.
func Bare(word string) string {
	return strings.Map(func(r rune) rune {
		if isPunct(r) {
			return -1
		}
		return r
	}, word)
}

// IsPunctuationOnly reports whether word has no letters or digits at all,
// e.g. a stray "-" or "--" used as a separator.
func IsPunctuationOnly(word string) bool {
	return Bare(word) == ""
}

// trimPunct splits word into leading punctuation, core and trailing
// punctuation.
func trimPunct(word string) (lead, core, trail string) {
	core = strings.TrimLeftFunc(word, isPunct)
	lead = word[:len(word)-len(core)]
	trimmed := strings.TrimRightFunc(core, isPunct)
	trail = core[len(trimmed):]
	return lead, trimmed, trail
}

// Capitalize upper-cases the first rune of word that is not punctuation,
// leaving the rest untouched, so "(the" becomes "(The". A leading digit is
// left as is and stops the scan: "19th" stays "19th".
func Capitalize(word string) string {
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		if isPunct(r) {
			i += size
			continue
		}
		up := unicode.ToTitle(r)
		if up == r {
			return word
		}
		return word[:i] + string(up) + word[i+size:]
	}
	return word
}

// Lowercase lowercases word.
func Lowercase(word string) string {
	return cases.Lower(language.English).String(word)
}

// Uppercase uppercases word.
func Uppercase(word string) string {
	return cases.Upper(language.English).String(word)
}

// UppercasePluralAcronym uppercases the parts of word before and after its
// last "s" and keeps that "s" lowercase: "ngos" becomes "NGOs" and
// "ngos)" becomes "NGOs)".
func UppercasePluralAcronym(word string) string {
	i := strings.LastIndex(word, "s")
	if i < 0 {
		return Uppercase(word)
	}
	return Uppercase(word[:i]) + "s" + Uppercase(word[i+1:])
}
