package manifest

import (
	"fmt"
	"reflect"
)

// Canonical keys of the recognized manifest fields
const (
	KeyContentPatterns = "contentPatterns"
	KeyContent         = "content"
	KeyTheme           = "theme"
	KeyPlugins         = "plugins"
)

// Manifest is the loaded, immutable build tool configuration.
// All accessors return copies; a Manifest is never mutated after construction.
type Manifest struct {
	contentPatterns []string
	themeExtensions map[string]any
	plugins         []any
}

// New creates a manifest from caller supplied values. Inputs are deep-copied
// and nil values are replaced by empty defaults. Nested maps and slices of
// any type are stored as map[string]any and []any, the shapes the loader
// produces, so no caller container stays reachable.
func New(contentPatterns []string, themeExtensions map[string]any, plugins []any) *Manifest {
	m := &Manifest{
		contentPatterns: make([]string, len(contentPatterns)),
		themeExtensions: copyMap(themeExtensions),
		plugins:         copySlice(plugins),
	}
	copy(m.contentPatterns, contentPatterns)
	return m
}

// Empty returns a manifest with every field at its empty default
func Empty() *Manifest {
	return New(nil, nil, nil)
}

// Scaffold returns the starter manifest written by `stylecfg init`
func Scaffold() *Manifest {
	return New(
		[]string{
			"./templates/**/*.html",
			"./**/templates/**/*.html",
			"./static/src/**/*.{js,jsx,ts,tsx}",
		},
		map[string]any{"extend": map[string]any{}},
		nil,
	)
}

// ContentPatterns returns the glob patterns locating candidate source files
func (m *Manifest) ContentPatterns() []string {
	out := make([]string, len(m.contentPatterns))
	copy(out, m.contentPatterns)
	return out
}

// ThemeExtensions returns the opaque theme extension mapping
func (m *Manifest) ThemeExtensions() map[string]any {
	return copyMap(m.themeExtensions)
}

// Plugins returns the ordered plugin references
func (m *Manifest) Plugins() []any {
	return copySlice(m.plugins)
}

// Fields returns the recognized fields under their canonical keys
func (m *Manifest) Fields() map[string]any {
	patterns := make([]any, len(m.contentPatterns))
	for i, p := range m.contentPatterns {
		patterns[i] = p
	}
	return map[string]any{
		KeyContentPatterns: patterns,
		KeyTheme:           copyMap(m.themeExtensions),
		KeyPlugins:         copySlice(m.plugins),
	}
}

// Equal reports field-wise equality, order-preserving for sequences
func (m *Manifest) Equal(other *Manifest) bool {
	if m == nil || other == nil {
		return m == other
	}
	return reflect.DeepEqual(m.contentPatterns, other.contentPatterns) &&
		reflect.DeepEqual(m.themeExtensions, other.themeExtensions) &&
		reflect.DeepEqual(m.plugins, other.plugins)
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copySlice(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case nil, string, bool, int, int64, uint64, float64:
		return v
	case map[string]any:
		return copyMap(t)
	case []any:
		return copySlice(t)
	case []byte:
		return append([]byte(nil), t...)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = copyValue(iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = copyValue(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}
