package titlecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelVariant(t *testing.T) {
	tests := []struct {
		in   string
		want ModelVariant
	}{
		{"sm", Small},
		{"Small", Small},
		{"en_core_web_md", Medium},
		{"", Large},
		{" lg ", Large},
		{"trf", Transformer},
		{"en_core_web_trf", Transformer},
		{"transformer", Transformer},
	}
	for _, tt := range tests {
		got, err := ParseModelVariant(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseModelVariant("xl")
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestModelVariantValid(t *testing.T) {
	for _, v := range ModelVariants {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, ModelVariant("xl").Valid())
	assert.Equal(t, Large, DefaultModel)
	assert.Equal(t, "trf", Transformer.String())
}
