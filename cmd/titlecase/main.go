// Command titlecase prints titles in Chicago headline case.
//
// Usage:
//
//	titlecase [flags] TITLE...      case the words given as arguments
//	titlecase [flags] < titles.txt  case one title per input line
//	titlecase -x TITLE...           show how each word was classified
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/cours-de-latin/titlecase"
)

// CLI defines the command-line interface.
type CLI struct {
	Model   string   `short:"m" help:"Tagger model variant: sm, md, lg or trf. Overrides the config file; lg when neither sets it."`
	Config  string   `short:"c" type:"existingfile" help:"TOML file with acronym and special-word overrides."`
	Acronym []string `short:"a" help:"Additional acronym; may be repeated."`
	Explain bool     `short:"x" help:"Print the classification of every word as JSON instead of the cased title."`
	Verbose bool     `short:"v" help:"Log debug output to stderr."`
	Title   []string `arg:"" optional:"" help:"Title to case. Reads one title per line from stdin when omitted."`
}

func (c *CLI) options() ([]titlecase.Option, error) {
	var opts []titlecase.Option
	if c.Config != "" {
		cfg, err := titlecase.LoadConfig(c.Config)
		if err != nil {
			return nil, err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfgOpts...)
	}

	if c.Model != "" {
		model, err := titlecase.ParseModelVariant(c.Model)
		if err != nil {
			return nil, err
		}
		opts = append(opts, titlecase.WithModel(model))
	}
	if len(c.Acronym) > 0 {
		opts = append(opts, titlecase.WithExtraAcronyms(c.Acronym...))
	}
	return opts, nil
}

func (c *CLI) run(in io.Reader, out io.Writer, logger zerolog.Logger) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	registry := titlecase.NewRegistry(titlecase.LexicalLoader, titlecase.WithRegistryLogger(logger))
	caser := titlecase.New(append(opts, titlecase.WithRegistry(registry), titlecase.WithLogger(logger))...)

	emit := func(title string) error {
		s, err := caser.TitleCase(title)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	}
	if c.Explain {
		enc := json.NewEncoder(out)
		emit = func(title string) error {
			t, err := caser.Classify(title)
			if err != nil {
				return err
			}
			if t == nil {
				t = titlecase.Title{}
			}
			return enc.Encode(t)
		}
	}

	if len(c.Title) > 0 {
		return emit(strings.Join(c.Title, " "))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := emit(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("titlecase"),
		kong.Description("Convert titles to Chicago Manual of Style headline case."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(cli.run(os.Stdin, os.Stdout, newLogger(cli.Verbose)))
}
