package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/stylecfg/internal/utils"
)

// DefaultFileNames are tried in order by Find
var DefaultFileNames = []string{
	"stylecfg.yaml",
	"stylecfg.yml",
	"stylecfg.json",
	"stylecfg.toml",
}

// Loader loads and validates manifest files
type Loader struct {
	logger *utils.Logger
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithLogger sets the logger used for debug events
func WithLogger(logger *utils.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger.WithComponent("manifest")
		}
	}
}

// NewLoader creates a new manifest loader
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: utils.NewNopLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		// a directory or unreadable file does not resolve to a readable manifest
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}

	l.logger.Debug().Str("source", path).Int("bytes", len(data)).Msg("Loading manifest")

	m, err := l.LoadFromBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Find returns the first default manifest file present in dir
func (l *Loader) Find(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no %s in %s", ErrSourceNotFound, strings.Join(DefaultFileNames, ", "), dir)
}

// LoadDir discovers and loads the manifest in dir
func (l *Loader) LoadDir(dir string) (*Manifest, error) {
	path, err := l.Find(dir)
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

// LoadFromBytes parses a manifest from raw bytes; ext selects the format
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Manifest, error) {
	format, err := FormatFromExt(ext)
	if err != nil {
		return nil, err
	}

	raw, err := l.decode(data, format)
	if err != nil {
		return nil, err
	}

	return l.build(raw)
}

func (l *Loader) decode(data []byte, format Format) (map[string]any, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		doc = table
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedConfig)
	}

	switch t := doc.(type) {
	case map[string]any:
		return t, nil
	case map[any]any:
		// non-string top-level keys can never name a recognized field
		raw := make(map[string]any, len(t))
		var skipped []string
		for k, v := range t {
			if key, ok := k.(string); ok {
				raw[key] = v
			} else {
				skipped = append(skipped, fmt.Sprint(k))
			}
		}
		sort.Strings(skipped)
		l.logger.Debug().Strs("keys", skipped).Msg("Ignoring non-string manifest keys")
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: top level must be a mapping, got %s", ErrMalformedConfig, typeName(doc))
	}
}

func (l *Loader) build(raw map[string]any) (*Manifest, error) {
	m := &Manifest{
		contentPatterns: []string{},
		themeExtensions: map[string]any{},
		plugins:         []any{},
	}

	contentKey := KeyContentPatterns
	content, hasPatterns := present(raw, KeyContentPatterns)
	if alias, hasAlias := present(raw, KeyContent); hasAlias {
		if hasPatterns {
			return nil, fmt.Errorf("%w: both %q and %q are set", ErrMalformedConfig, KeyContentPatterns, KeyContent)
		}
		content, hasPatterns, contentKey = alias, true, KeyContent
	}
	if hasPatterns {
		value, err := normalize(contentKey, content)
		if err != nil {
			return nil, err
		}
		patterns, err := stringSequence(contentKey, value)
		if err != nil {
			return nil, err
		}
		m.contentPatterns = patterns
	}

	if theme, ok := present(raw, KeyTheme); ok {
		value, err := normalize(KeyTheme, theme)
		if err != nil {
			return nil, err
		}
		mapping, isMap := value.(map[string]any)
		if !isMap {
			return nil, newFieldError(KeyTheme, -1, "mapping", value)
		}
		m.themeExtensions = mapping
	}

	if plugins, ok := present(raw, KeyPlugins); ok {
		value, err := normalize(KeyPlugins, plugins)
		if err != nil {
			return nil, err
		}
		seq, isSeq := value.([]any)
		if !isSeq {
			return nil, newFieldError(KeyPlugins, -1, "sequence", value)
		}
		m.plugins = seq
	}

	if ignored := unrecognizedKeys(raw); len(ignored) > 0 {
		l.logger.Debug().Strs("keys", ignored).Msg("Ignoring unrecognized manifest keys")
	}
	if len(m.contentPatterns) == 0 {
		l.logger.Debug().Msg("Manifest has no content patterns")
	}

	return m, nil
}

// present returns the value of key, treating an explicit null as absent
func present(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func stringSequence(key string, v any) ([]string, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, newFieldError(key, -1, "sequence of strings", v)
	}
	out := make([]string, len(seq))
	for i, item := range seq {
		s, ok := item.(string)
		if !ok {
			return nil, newFieldError(key, i, "string", item)
		}
		out[i] = s
	}
	return out, nil
}

func unrecognizedKeys(raw map[string]any) []string {
	var keys []string
	for k := range raw {
		switch k {
		case KeyContentPatterns, KeyContent, KeyTheme, KeyPlugins:
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// normalize converts decoder specific containers within a recognized field
// into map[string]any and []any, rejecting mappings with non-string keys.
func normalize(path string, v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			n, err := normalize(joinPath(path, k), item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: mapping key %v is not a string", ErrMalformedConfig, path, k)
			}
			n, err := normalize(joinPath(path, key), item)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			n, err := normalize(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			n, err := normalize(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
