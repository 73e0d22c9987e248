package titlecase

import (
	"fmt"
	"strings"
)

// ModelVariant selects the tagger model. Larger variants cost more to
// initialize and tag more accurately; the casing rules are the same for
// all of them.
type ModelVariant string

const (
	Small       ModelVariant = "sm"
	Medium      ModelVariant = "md"
	Large       ModelVariant = "lg"
	Transformer ModelVariant = "trf"
)

// DefaultModel is the variant used when none is selected.
const DefaultModel = Large

// ModelVariants lists every variant from cheapest to most accurate.
var ModelVariants = []ModelVariant{Small, Medium, Large, Transformer}

// tier is the position of v in ModelVariants, or -1.
func (v ModelVariant) tier() int {
	for i, m := range ModelVariants {
		if m == v {
			return i
		}
	}
	return -1
}

// Valid reports whether v is one of the known variants.
func (v ModelVariant) Valid() bool {
	return v.tier() >= 0
}

func (v ModelVariant) String() string {
	return string(v)
}

// ParseModelVariant accepts the short names ("sm"), the long names
// ("small") and the package-style names ("en_core_web_sm").
func ParseModelVariant(s string) (ModelVariant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "en_core_web_")
	switch name {
	case "sm", "small":
		return Small, nil
	case "md", "medium":
		return Medium, nil
	case "lg", "large", "":
		return Large, nil
	case "trf", "transformer":
		return Transformer, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}
