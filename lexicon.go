package titlecase

import (
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"
)

// set is an immutable-by-convention string set. Sets are shared between
// Lexicons values and must never be written to after construction.
type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

func (s set) union(words ...string) set {
	out := make(set, len(s)+len(words))
	for w := range s {
		out[w] = struct{}{}
	}
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// sorted lists s in natural order, so "mp3" comes before "mp10".
func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	return out
}

// Lexicons holds the word lists consulted by the classifier and the acronym
// detector. A Lexicons value is never modified after construction: the With
// methods return a copy carrying the change.
type Lexicons struct {
	articles     set
	prepositions set
	acronyms     set
	twoLetter    set
	prefixes     set
	noVowel      set

	// special maps a lowercase key to its canonical spelling.
	special map[string]string
}

var defaultLexicons = sync.OnceValue(func() *Lexicons {
	l, err := LoadLexicons(dataFS)
	if err != nil {
		panic("titlecase: embedded lexicons: " + err.Error())
	}
	return l
})

// DefaultLexicons returns the built-in lexicons. The value is loaded once
// per process and shared; it is safe for concurrent use.
func DefaultLexicons() *Lexicons {
	return defaultLexicons()
}

// IsArticle reports exact membership in the article list.
func (l *Lexicons) IsArticle(word string) bool { return l.articles.has(word) }

// IsPreposition reports exact membership in the preposition list.
func (l *Lexicons) IsPreposition(word string) bool { return l.prepositions.has(word) }

// IsPrefix reports whether word is a bound prefix such as "anti" or "non".
func (l *Lexicons) IsPrefix(word string) bool { return l.prefixes.has(word) }

// IsTwoLetterWord reports whether word is a valid English two-letter word.
func (l *Lexicons) IsTwoLetterWord(word string) bool { return l.twoLetter.has(word) }

// IsKnownAcronym reports whether the bare form is in the acronym allow-list.
func (l *Lexicons) IsKnownAcronym(bare string) bool { return l.acronyms.has(bare) }

// Special returns the canonical spelling registered for key, which is
// matched case-insensitively.
func (l *Lexicons) Special(key string) (string, bool) {
	s, ok := l.special[strings.ToLower(key)]
	return s, ok
}

// Acronyms returns the acronym allow-list in natural order.
func (l *Lexicons) Acronyms() []string { return l.acronyms.sorted() }

// SpecialWords returns a copy of the special-spelling map.
func (l *Lexicons) SpecialWords() map[string]string {
	out := make(map[string]string, len(l.special))
	for k, v := range l.special {
		out[k] = v
	}
	return out
}

func (l *Lexicons) clone() *Lexicons {
	c := *l
	return &c
}

// WithAcronyms returns a copy whose acronym allow-list is exactly words.
func (l *Lexicons) WithAcronyms(words ...string) *Lexicons {
	c := l.clone()
	c.acronyms = newSet(foldWords(words)...)
	return c
}

// WithExtraAcronyms returns a copy whose acronym allow-list also holds words.
func (l *Lexicons) WithExtraAcronyms(words ...string) *Lexicons {
	c := l.clone()
	c.acronyms = l.acronyms.union(foldWords(words)...)
	return c
}

// WithSpecialWords returns a copy whose special map is exactly words.
// Keys are case-folded; values are kept verbatim.
func (l *Lexicons) WithSpecialWords(words map[string]string) *Lexicons {
	c := l.clone()
	c.special = make(map[string]string, len(words))
	for k, v := range words {
		c.special[strings.ToLower(k)] = v
	}
	return c
}

// WithExtraSpecialWords returns a copy whose special map also holds words,
// overriding existing keys.
func (l *Lexicons) WithExtraSpecialWords(words map[string]string) *Lexicons {
	c := l.clone()
	c.special = l.SpecialWords()
	for k, v := range words {
		c.special[strings.ToLower(k)] = v
	}
	return c
}

func foldWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
