package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	m := Empty()

	require.NotNil(t, m)
	assert.Equal(t, []string{}, m.ContentPatterns())
	assert.Equal(t, map[string]any{}, m.ThemeExtensions())
	assert.Equal(t, []any{}, m.Plugins())
}

func TestNew_CopiesInputs(t *testing.T) {
	patterns := []string{"./a/**/*.html"}
	theme := map[string]any{"extend": map[string]any{"colors": "red"}}
	plugins := []any{"forms"}

	m := New(patterns, theme, plugins)

	patterns[0] = "changed"
	theme["extend"].(map[string]any)["colors"] = "blue"
	plugins[0] = "typography"

	assert.Equal(t, []string{"./a/**/*.html"}, m.ContentPatterns())
	assert.Equal(t, map[string]any{"extend": map[string]any{"colors": "red"}}, m.ThemeExtensions())
	assert.Equal(t, []any{"forms"}, m.Plugins())
}

func TestNew_CopiesTypedContainers(t *testing.T) {
	screens := []string{"sm", "md"}
	colors := map[string]string{"brand": "#0ea5e9"}
	options := map[string][]string{"variants": {"hover"}}

	m := New(nil,
		map[string]any{"extend": map[string]any{"screens": screens, "colors": colors}},
		[]any{options},
	)

	screens[0] = "xl"
	colors["brand"] = "red"
	options["variants"][0] = "focus"

	want := map[string]any{"extend": map[string]any{
		"screens": []any{"sm", "md"},
		"colors":  map[string]any{"brand": "#0ea5e9"},
	}}
	if diff := cmp.Diff(want, m.ThemeExtensions()); diff != "" {
		t.Errorf("ThemeExtensions() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []any{map[string]any{"variants": []any{"hover"}}}, m.Plugins())

	loaded, err := NewLoader().LoadFromBytes([]byte(`
theme:
  extend:
    screens: [sm, md]
    colors:
      brand: "#0ea5e9"
plugins:
  - variants: [hover]
`), ".yaml")
	require.NoError(t, err)
	assert.True(t, m.Equal(loaded))
}

func TestAccessors_ReturnCopies(t *testing.T) {
	m := Scaffold()

	patterns := m.ContentPatterns()
	patterns[0] = "mutated"
	theme := m.ThemeExtensions()
	theme["extend"].(map[string]any)["spacing"] = 4
	theme["added"] = true
	plugins := m.Plugins()
	_ = append(plugins, "extra")

	assert.Equal(t, "./templates/**/*.html", m.ContentPatterns()[0])
	assert.Equal(t, map[string]any{"extend": map[string]any{}}, m.ThemeExtensions())
	assert.Empty(t, m.Plugins())
}

func TestManifest_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    *Manifest
		b    *Manifest
		want bool
	}{
		{"both empty", Empty(), Empty(), true},
		{"nil and nil", nil, nil, true},
		{"nil and empty", nil, Empty(), false},
		{"same scaffold", Scaffold(), Scaffold(), true},
		{
			name: "pattern order matters",
			a:    New([]string{"a", "b"}, nil, nil),
			b:    New([]string{"b", "a"}, nil, nil),
			want: false,
		},
		{
			name: "plugin differs",
			a:    New(nil, nil, []any{"forms"}),
			b:    New(nil, nil, []any{"typography"}),
			want: false,
		},
		{
			name: "theme differs",
			a:    New(nil, map[string]any{"extend": map[string]any{}}, nil),
			b:    New(nil, nil, nil),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestManifest_Fields(t *testing.T) {
	m := New(
		[]string{"./templates/**/*.html"},
		map[string]any{"extend": map[string]any{}},
		[]any{"forms", map[string]any{"name": "typography"}},
	)

	want := map[string]any{
		"contentPatterns": []any{"./templates/**/*.html"},
		"theme":           map[string]any{"extend": map[string]any{}},
		"plugins":         []any{"forms", map[string]any{"name": "typography"}},
	}
	if diff := cmp.Diff(want, m.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestScaffold(t *testing.T) {
	m := Scaffold()

	assert.Len(t, m.ContentPatterns(), 3)
	assert.Contains(t, m.ContentPatterns(), "./**/templates/**/*.html")
	assert.Contains(t, m.ThemeExtensions(), "extend")
	assert.Empty(t, m.Plugins())
}
