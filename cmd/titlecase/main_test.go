package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/titlecase"
)

func TestRunArgs(t *testing.T) {
	cli := &CLI{Title: []string{"the", "e-flat", "concerto"}}
	var out bytes.Buffer
	require.NoError(t, cli.run(strings.NewReader("ignored\n"), &out, zerolog.Nop()))
	assert.Equal(t, "The E-flat Concerto\n", out.String())
}

func TestRunStdin(t *testing.T) {
	cli := &CLI{Model: "sm"}
	in := strings.NewReader("fbi files\n\nanti-intellectual pursuits\n")
	var out bytes.Buffer
	require.NoError(t, cli.run(in, &out, zerolog.Nop()))
	assert.Equal(t, "FBI Files\n\nAnti-intellectual Pursuits\n", out.String())
}

func TestRunAcronymsAndConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titlecase.toml")
	require.NoError(t, os.WriteFile(path, []byte("acronyms = [\"mla\"]\n"), 0o644))

	cli := &CLI{Config: path, Acronym: []string{"apa"}, Title: []string{"mla or apa style"}}
	var out bytes.Buffer
	require.NoError(t, cli.run(strings.NewReader(""), &out, zerolog.Nop()))
	assert.Equal(t, "MLA or APA Style\n", out.String())
}

func TestRunExplain(t *testing.T) {
	cli := &CLI{Explain: true}
	var out bytes.Buffer
	require.NoError(t, cli.run(strings.NewReader("the e-flat concerto\n\n"), &out, zerolog.Nop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[]", lines[1])

	var words []titlecase.TaggedWord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &words))
	require.Len(t, words, 3)
	assert.Equal(t, "the", words[0].Word)
	assert.Equal(t, "DT", words[0].Tag)
	assert.True(t, words[0].Article)
	assert.True(t, words[1].Hyphenated)
	assert.True(t, words[2].LastWord)
	assert.Contains(t, lines[0], `"first_word":true`)
}

func TestRunBadModel(t *testing.T) {
	cli := &CLI{Model: "xl", Title: []string{"a title"}}
	err := cli.run(strings.NewReader(""), &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorIs(t, err, titlecase.ErrUnknownModel)
}

func TestParseFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("titlecase"))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"-m", "trf", "-a", "ngo", "-a", "nih", "-v", "the", "ngos"})
	require.NoError(t, err)
	assert.Equal(t, "trf", cli.Model)
	assert.Equal(t, []string{"ngo", "nih"}, cli.Acronym)
	assert.True(t, cli.Verbose)
	assert.Equal(t, []string{"the", "ngos"}, cli.Title)
}
