package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrSourceNotFound indicates the manifest source does not resolve to a readable file
	ErrSourceNotFound = errors.New("manifest source not found")

	// ErrMalformedConfig indicates the source exists but is not a valid manifest
	ErrMalformedConfig = errors.New("malformed manifest")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, .json, or .toml)")

	// ErrNullValue indicates a null the output format cannot represent
	ErrNullValue = errors.New("null value cannot be encoded")
)

// FieldError reports a recognized key whose value has the wrong shape.
type FieldError struct {
	Key      string
	Index    int // element index within a sequence, -1 for the key itself
	Expected string
	Got      any
}

func (e *FieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s[%d]: expected %s, got %s", ErrMalformedConfig, e.Key, e.Index, e.Expected, typeName(e.Got))
	}
	return fmt.Sprintf("%v: %s: expected %s, got %s", ErrMalformedConfig, e.Key, e.Expected, typeName(e.Got))
}

func (e *FieldError) Unwrap() error {
	return ErrMalformedConfig
}

func newFieldError(key string, index int, expected string, got any) *FieldError {
	return &FieldError{
		Key:      key,
		Index:    index,
		Expected: expected,
		Got:      got,
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
