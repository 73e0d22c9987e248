package titlecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFeatures(t *testing.T) {
	c := stubClassifier(map[string]string{
		"and":     TagCoordinatingConjunction,
		"because": TagPreposition,
		"of":      TagPreposition,
		"italy":   TagProperNoun,
	})
	tokens := []string{"investment", "equations:", "an", "(integrative)", "framework", "and", "because", "of", "italy", "anti", "e-flat", "non-"}

	title, err := c.Classify(tokens)
	require.NoError(t, err)
	require.Len(t, title, len(tokens))

	first := title[0]
	assert.True(t, first.FirstWord)
	assert.False(t, first.AfterPunctuation)
	assert.False(t, first.LastWord)

	an := title[2]
	assert.True(t, an.Article)
	assert.True(t, an.AfterPunctuation)
	assert.True(t, an.Minor())

	paren := title[3]
	assert.True(t, paren.FirstWordOfParenthetical)
	assert.False(t, paren.Acronym)

	and := title[5]
	assert.True(t, and.CoordinatingConjunction)
	assert.False(t, and.Preposition)

	because := title[6]
	assert.True(t, because.SubordinatingConjunction)
	assert.False(t, because.Preposition)
	assert.False(t, because.Minor())

	of := title[7]
	assert.True(t, of.Preposition)
	assert.False(t, of.SubordinatingConjunction)

	assert.True(t, title[8].Proper)
	assert.True(t, title[9].Prefix)
	assert.True(t, title[10].Hyphenated)

	last := title[11]
	assert.False(t, last.Hyphenated, "a trailing hyphen is not a compound")
	assert.False(t, last.Prefix)
	assert.True(t, last.LastWord)
}

func TestClassifyAfterPunctuation(t *testing.T) {
	c := stubClassifier(nil)
	title, err := c.Classify([]string{"war", "--", "what", "is", "it", "good", "for?", "nothing"})
	require.NoError(t, err)

	assert.True(t, title[1].PunctuationOnly())
	assert.True(t, title[2].AfterPunctuation)
	assert.False(t, title[3].AfterPunctuation)
	assert.True(t, title[7].AfterPunctuation)
}

func TestClassifyOpenersAndEnds(t *testing.T) {
	c := stubClassifier(nil)
	tokens := []string{"{braces}", "wow!", "the", "end.", "of", "(it", "all"}
	title, err := c.Classify(tokens)
	require.NoError(t, err)

	tests := []struct {
		word             string
		parenthetical    bool
		afterPunctuation bool
	}{
		{"{braces}", true, false},
		{"wow!", false, false},
		{"the", false, true},
		{"end.", false, false},
		{"of", false, true},
		{"(it", true, false},
		{"all", false, false},
	}
	for i, tt := range tests {
		require.Equal(t, tt.word, title[i].Word)
		assert.Equal(t, tt.parenthetical, title[i].FirstWordOfParenthetical, tt.word)
		assert.Equal(t, tt.afterPunctuation, title[i].AfterPunctuation, tt.word)
	}
}

func TestClassifyEmpty(t *testing.T) {
	tagger := &stubTagger{}
	c := NewClassifier(DefaultLexicons(), tagger, Large)

	title, err := c.Classify(nil)
	require.NoError(t, err)
	assert.Empty(t, title)
	assert.Zero(t, tagger.calls.Load())
}

func TestClassifyTaggerMisaligned(t *testing.T) {
	c := NewClassifier(DefaultLexicons(), &stubTagger{short: true}, Medium)
	_, err := c.Classify([]string{"a", "title"})

	var te *TaggerError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, Medium, te.Variant)
	assert.Equal(t, "tag", te.Op)
}

func TestClassifyText(t *testing.T) {
	c := stubClassifier(nil)
	title, err := c.ClassifyText("the e-flat concerto")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "e-flat", "concerto"}, title.Words())
	assert.Same(t, DefaultLexicons(), c.Lexicons())
}
