package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Format is a manifest serialization format
type Format string

// Supported formats
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromExt maps a file extension to its format (case-insensitive)
func FormatFromExt(ext string) (Format, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %w: %q", ErrMalformedConfig, ErrUnsupportedExt, ext)
	}
}

// ParseFormat parses a format name such as "yaml" or "json"
func ParseFormat(name string) (Format, error) {
	return FormatFromExt("." + strings.TrimPrefix(name, "."))
}

// MarshalJSON encodes the recognized fields under their canonical keys
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Fields())
}

// MarshalYAML encodes the recognized fields under their canonical keys.
// Integral floats are written as 1.0 so they decode back as floats.
func (m *Manifest) MarshalYAML() (any, error) {
	return yamlValue(m.Fields()), nil
}

func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = yamlValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = yamlValue(item)
		}
		return out
	case float64:
		if math.IsInf(t, 0) || t != math.Trunc(t) {
			return t
		}
		value := strconv.FormatFloat(t, 'e', -1, 64)
		if math.Abs(t) < 1e15 {
			value = strconv.FormatFloat(t, 'f', 1, 64)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: value}
	default:
		return v
	}
}

// nullPath returns the location of the first null within v
func nullPath(path string, v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return path, true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if p, ok := nullPath(joinPath(path, k), t[k]); ok {
				return p, true
			}
		}
	case []any:
		for i, item := range t {
			if p, ok := nullPath(fmt.Sprintf("%s[%d]", path, i), item); ok {
				return p, true
			}
		}
	}
	return "", false
}

// Encode writes the manifest to w in the given format
func Encode(w io.Writer, m *Manifest, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode yaml manifest: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode json manifest: %w", err)
		}
		return nil
	case FormatTOML:
		fields := m.Fields()
		if p, ok := nullPath("", fields); ok {
			return fmt.Errorf("encode toml manifest: %w: TOML has no null (at %s)", ErrNullValue, p)
		}
		if err := toml.NewEncoder(w).Encode(fields); err != nil {
			return fmt.Errorf("encode toml manifest: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExt, format)
	}
}

// Write atomically replaces path with the encoded manifest.
// The format is taken from the file extension.
func Write(path string, m *Manifest) error {
	format, err := FormatFromExt(filepath.Ext(path))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m, format); err != nil {
		return err
	}

	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest file: %w", err)
	}
	return nil
}
