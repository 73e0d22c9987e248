package titlecase

import (
	"errors"
	"fmt"
)

var (
	// ErrTaggerUnavailable reports that the grammatical tagger could not be
	// initialized or failed while tagging. There is no fallback tagging.
	ErrTaggerUnavailable = errors.New("tagger unavailable")
	// ErrUnknownModel reports a model variant name that is not recognised.
	ErrUnknownModel = errors.New("unknown model variant")
	// ErrInvalidConfig reports an unusable configuration value.
	ErrInvalidConfig = errors.New("invalid config")
)

// TaggerError wraps a failure of the tagger for one model variant.
// errors.Is(err, ErrTaggerUnavailable) holds for every TaggerError.
type TaggerError struct {
	Variant ModelVariant // Variant whose tagger failed
	Op      string       // "load" or "tag"
	Err     error        // Underlying error, if any
}

func (e *TaggerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tagger %s: %s: %v", e.Variant, e.Op, e.Err)
	}
	return fmt.Sprintf("tagger %s: %s failed", e.Variant, e.Op)
}

func (e *TaggerError) Unwrap() error {
	return e.Err
}

// Is makes every TaggerError match ErrTaggerUnavailable.
func (e *TaggerError) Is(target error) bool {
	return target == ErrTaggerUnavailable
}

// ParseError represents a malformed line in a lexicon data file.
type ParseError struct {
	Path    string // File being parsed
	Line    int    // 1-based line number, 0 if unknown
	Message string // Error details
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Message)
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string // Configuration key that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigError match ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
