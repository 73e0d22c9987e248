package titlecase

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Tagger splits a normalized title into tokens and assigns each token a
// Penn Treebank part-of-speech tag. Implementations must be safe for
// concurrent use once constructed.
type Tagger interface {
	// Tokenize splits text on single space characters only; hyphens,
	// slashes and punctuation never split a token.
	Tokenize(text string) []string
	// Tag returns exactly one tag per token, in order.
	Tag(tokens []string) ([]string, error)
}

// Tags the classifier distinguishes. Every other tag is treated alike.
const (
	TagCoordinatingConjunction = "CC"
	TagPreposition             = "IN"
	TagProperNoun              = "NNP"
	TagProperNounPlural        = "NNPS"
)

// WhitespaceTokenize splits text on single spaces. It is the tokenizer every
// Tagger is expected to use.
func WhitespaceTokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

// LexicalTagger is a dictionary-and-suffix tagger built from the data files.
// The tiers are cumulative:
//
//	sm   closed-class words and suffix heuristics
//	md   + proper-noun gazetteer (places, peoples, languages, faiths)
//	lg   + larger gazetteer and plural proper nouns via stemming
//	trf  + multi-word names and a contextual correction pass
type LexicalTagger struct {
	variant ModelVariant

	// closed maps closed-class words to their tag.
	closed map[string]string
	// proper holds the gazetteer entries.
	proper set
	// properStems holds the Snowball stems of proper, for NNPS (lg and up).
	properStems set
	// names holds multi-word proper names (trf).
	names [][]string
}

// LoadLexicalTagger builds the tagger for variant from the data files in
// fsys (see DataFS).
func LoadLexicalTagger(fsys fs.FS, variant ModelVariant) (*LexicalTagger, error) {
	tier := variant.tier()
	if tier < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, string(variant))
	}

	t := &LexicalTagger{
		variant: variant,
		closed:  make(map[string]string),
		proper:  set{},
	}
	if err := loadClosedClass(fsys, closedClassFile, t.closed); err != nil {
		return nil, err
	}

	var gazetteer []string
	if tier >= Medium.tier() {
		words, err := loadWordList(fsys, properMDFile)
		if err != nil {
			return nil, err
		}
		gazetteer = append(gazetteer, words...)
	}
	if tier >= Large.tier() {
		words, err := loadWordList(fsys, properLGFile)
		if err != nil {
			return nil, err
		}
		gazetteer = append(gazetteer, words...)
	}
	t.proper = newSet(foldWords(gazetteer)...)

	if tier >= Large.tier() {
		t.properStems = set{}
		for w := range t.proper {
			t.properStems[stem(w)] = struct{}{}
		}
	}
	if tier >= Transformer.tier() {
		names, err := loadNames(fsys, namesTRFFile)
		if err != nil {
			return nil, err
		}
		t.names = names
	}
	return t, nil
}

// Variant returns the model variant the tagger was built for.
func (t *LexicalTagger) Variant() ModelVariant {
	return t.variant
}

// Tokenize implements Tagger.
func (t *LexicalTagger) Tokenize(text string) []string {
	return WhitespaceTokenize(text)
}

// Tag implements Tagger. It never fails.
func (t *LexicalTagger) Tag(tokens []string) ([]string, error) {
	forms := make([]string, len(tokens))
	tags := make([]string, len(tokens))
	for i, tok := range tokens {
		forms[i] = lookupForm(tok)
		tags[i] = t.tagWord(strings.ToLower(tok), forms[i])
	}
	if t.names != nil {
		t.tagNames(forms, tags)
		t.reinforce(forms, tags)
	}
	return tags, nil
}

// lookupForm is the lowercase token without surrounding punctuation or a
// possessive ending.
func lookupForm(token string) string {
	_, core, _ := trimPunct(strings.ToLower(token))
	core = strings.TrimSuffix(core, "'s")
	core = strings.TrimSuffix(core, "’s")
	return core
}

func (t *LexicalTagger) tagWord(raw, form string) string {
	if tag, ok := t.closed[raw]; ok {
		return tag
	}
	if form == "" {
		return "SYM"
	}
	if tag, ok := t.closed[form]; ok {
		return tag
	}
	if t.proper.has(form) {
		return TagProperNoun
	}
	if t.properStems != nil && strings.HasSuffix(form, "s") && t.properStems.has(stem(form)) {
		return TagProperNounPlural
	}
	return suffixTag(form)
}

// tagNames marks every token of a known multi-word name as a proper noun.
func (t *LexicalTagger) tagNames(forms, tags []string) {
	for i := 0; i < len(forms); i++ {
		for _, name := range t.names {
			if !matchesAt(forms, i, name) {
				continue
			}
			for k := range name {
				tags[i+k] = TagProperNoun
			}
			i += len(name) - 1
			break
		}
	}
}

func matchesAt(forms []string, i int, name []string) bool {
	if i+len(name) > len(forms) {
		return false
	}
	for k, w := range name {
		if forms[i+k] != w {
			return false
		}
	}
	return true
}

// reinforce retags a verb form that follows a determiner or possessive as a
// noun: "the running", "their making".
func (t *LexicalTagger) reinforce(forms, tags []string) {
	for i := 1; i < len(tags); i++ {
		if tags[i-1] != "DT" && tags[i-1] != "PRP$" {
			continue
		}
		if _, ok := t.closed[forms[i]]; ok {
			continue
		}
		if strings.HasPrefix(tags[i], "VB") {
			tags[i] = "NN"
		}
	}
}

func stem(word string) string {
	s, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return s
}

func suffixTag(w string) string {
	if unicode.IsDigit([]rune(w)[0]) {
		return "CD"
	}
	switch {
	case strings.HasSuffix(w, "ly"):
		return "RB"
	case strings.HasSuffix(w, "ing"):
		return "VBG"
	case strings.HasSuffix(w, "ed"):
		return "VBN"
	case hasAnySuffix(w, "tion", "sion", "ment", "ness", "ity", "ship"):
		return "NN"
	case hasAnySuffix(w, "ous", "ful", "ive", "able", "ible", "al", "ic", "less"):
		return "JJ"
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return "NNS"
	}
	return "NN"
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}
