package titlecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
model = "small"
acronyms = ["mla"]

[special]
ebay-like = "eBay-like"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titlecase.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "small", cfg.Model)
	assert.Equal(t, []string{"mla"}, cfg.Acronyms)
	assert.Equal(t, map[string]string{"ebay-like": "eBay-like"}, cfg.Special)

	opts, err := cfg.Options()
	require.NoError(t, err)

	got, err := TitleCase("the mla handbook for ebay-like sites", opts...)
	require.NoError(t, err)
	assert.Equal(t, "The MLA Handbook for eBay-like Sites", got)

	// Extra entries keep the built-in lists.
	got, err = TitleCase("the fbi and the iphone", opts...)
	require.NoError(t, err)
	assert.Equal(t, "The FBI and the iPhone", got)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigReplace(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
acronyms = ["mla"]
replace_acronyms = true
replace_special = true
`))
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)

	got, err := TitleCase("the mla and the fbi on my iphone", opts...)
	require.NoError(t, err)
	assert.Equal(t, "The MLA and the Fbi on My Iphone", got)
}

func TestParseConfigUnknownKey(t *testing.T) {
	_, err := ParseConfig([]byte(`acronym = ["mla"]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "unknown key")
}

func TestParseConfigSyntax(t *testing.T) {
	_, err := ParseConfig([]byte(`model = `))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigBadModel(t *testing.T) {
	cfg, err := ParseConfig([]byte(`model = "xl"`))
	require.NoError(t, err)

	_, err = cfg.Options()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrUnknownModel)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "model", ce.Field)
}
