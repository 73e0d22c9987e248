package titlecase

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed data
var embedded embed.FS

// dataFS is the embedded data directory, rooted so that paths read
// "articles.txt" and "tagger/closed.txt".
var dataFS = func() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}()

// Data file names, relative to the data directory.
const (
	articlesFile       = "articles.txt"
	prepositionsFile   = "prepositions.txt"
	acronymsFile       = "acronyms.txt"
	twoLetterWordsFile = "two_letter_words.txt"
	prefixesFile       = "prefixes.txt"
	noVowelWordsFile   = "no_vowel_words.txt"
	specialFile        = "special.txt"

	closedClassFile = "tagger/closed.txt"
	properMDFile    = "tagger/proper_md.txt"
	properLGFile    = "tagger/proper_lg.txt"
	namesTRFFile    = "tagger/names_trf.txt"
)

// DataFS returns the embedded lexicon data, for callers that want to copy
// or extend the built-in files.
func DataFS() fs.FS {
	return dataFS
}

// LoadLexicons reads the lexicon files from fsys. All word-list files must be
// present; each holds one entry per line, blank lines and lines starting
// with "!" are ignored.
func LoadLexicons(fsys fs.FS) (*Lexicons, error) {
	l := &Lexicons{}

	lists := []struct {
		name string
		dst  *set
	}{
		{articlesFile, &l.articles},
		{prepositionsFile, &l.prepositions},
		{acronymsFile, &l.acronyms},
		{twoLetterWordsFile, &l.twoLetter},
		{prefixesFile, &l.prefixes},
		{noVowelWordsFile, &l.noVowel},
	}
	for _, list := range lists {
		words, err := loadWordList(fsys, list.name)
		if err != nil {
			return nil, err
		}
		*list.dst = newSet(foldWords(words)...)
	}

	special, err := loadWordList(fsys, specialFile)
	if err != nil {
		return nil, err
	}
	l.special = make(map[string]string, len(special))
	for _, w := range special {
		l.special[strings.ToLower(w)] = w
	}
	return l, nil
}

// scanData calls fn for every significant line of the named file.
func scanData(fsys fs.FS, name string, fn func(lineNo int, line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// loadWordList reads a file holding one word per line.
func loadWordList(fsys fs.FS, name string) ([]string, error) {
	var words []string
	err := scanData(fsys, name, func(lineNo int, line string) error {
		if strings.ContainsAny(line, " \t") {
			return &ParseError{Path: name, Line: lineNo, Message: fmt.Sprintf("expected a single word, got %q", line)}
		}
		words = append(words, line)
		return nil
	})
	return words, err
}

// loadClosedClass reads "word TAG" lines into dst. The first entry for a
// word wins.
func loadClosedClass(fsys fs.FS, name string, dst map[string]string) error {
	return scanData(fsys, name, func(lineNo int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return &ParseError{Path: name, Line: lineNo, Message: fmt.Sprintf("expected \"word TAG\", got %q", line)}
		}
		word := strings.ToLower(fields[0])
		if _, ok := dst[word]; !ok {
			dst[word] = fields[1]
		}
		return nil
	})
}

// loadNames reads multi-word names, one per line, as lowercase word
// sequences.
func loadNames(fsys fs.FS, name string) ([][]string, error) {
	var names [][]string
	err := scanData(fsys, name, func(lineNo int, line string) error {
		words := strings.Fields(strings.ToLower(line))
		if len(words) < 2 {
			return &ParseError{Path: name, Line: lineNo, Message: fmt.Sprintf("expected at least two words, got %q", line)}
		}
		names = append(names, words)
		return nil
	})
	return names, err
}
