package titlecase

import "strings"

var (
	musicalNotes     = newSet("a", "b", "c", "d", "e", "f", "g")
	musicalModifiers = newSet("sharp", "flat")
)

// ResolveHyphenated cases a hyphenated compound. The fragments are classified
// as a title of their own, then:
//
//   - the first fragment is always capitalized;
//   - a later fragment is lowercased when it is an article, coordinating
//     conjunction or preposition ("Out-of-Fashion"), when it follows a bound
//     prefix ("Anti-intellectual"), or when it is "sharp" or "flat" after
//     a note name ("E-flat");
//   - a proper-noun fragment is capitalized regardless ("Non-English").
//
// Acronym rules do not apply to fragments.
func ResolveHyphenated(c *Classifier, word string) (string, error) {
	fragments, err := c.Classify(strings.Split(word, "-"))
	if err != nil {
		return "", err
	}

	out := make([]string, len(fragments))
	for i := range fragments {
		out[i] = caseFragment(fragments, i)
	}
	return strings.Join(out, "-"), nil
}

func caseFragment(fragments Title, i int) string {
	frag := fragments[i]
	w := frag.Word

	cased := Capitalize(w)
	if i > 0 {
		prev := fragments[i-1]
		switch {
		case frag.Minor():
			cased = w
		case prev.Prefix:
			cased = w
		case musicalModifiers.has(frag.Bare()) && musicalNotes.has(prev.Bare()):
			cased = w
		}
		if frag.Proper {
			cased = Capitalize(w)
		}
	}
	return cased
}
