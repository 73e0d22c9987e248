package titlecase

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of the lexicon and model options:
//
//	model = "lg"
//	acronyms = ["ngo", "nih"]
//	replace_acronyms = false
//
//	[special]
//	ebay = "eBay"
type Config struct {
	Model           string            `toml:"model"`
	Acronyms        []string          `toml:"acronyms"`
	ReplaceAcronyms bool              `toml:"replace_acronyms"`
	Special         map[string]string `toml:"special"`
	ReplaceSpecial  bool              `toml:"replace_special"`
}

// LoadConfig reads a TOML config file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML config document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, &ConfigError{Message: "unknown key\n" + strict.String(), Err: err}
		}
		return nil, &ConfigError{Message: err.Error(), Err: err}
	}
	return &cfg, nil
}

// Options converts the config into Options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Model != "" {
		v, err := ParseModelVariant(c.Model)
		if err != nil {
			return nil, &ConfigError{Field: "model", Message: err.Error(), Err: err}
		}
		opts = append(opts, WithModel(v))
	}
	if c.ReplaceAcronyms {
		opts = append(opts, WithAcronyms(c.Acronyms...))
	} else if len(c.Acronyms) > 0 {
		opts = append(opts, WithExtraAcronyms(c.Acronyms...))
	}
	if c.ReplaceSpecial {
		opts = append(opts, WithSpecialWords(c.Special))
	} else if len(c.Special) > 0 {
		opts = append(opts, WithExtraSpecialWords(c.Special))
	}
	return opts, nil
}
