package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeThemes(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
		want []string
	}{
		{"none", map[string]any{}, nil},
		{"null theme", map[string]any{"theme": nil}, nil},
		{"singular", map[string]any{"theme": "nord"}, []string{"nord"}},
		{"trimmed", map[string]any{"theme": "  nord "}, []string{"nord"}},
		{"plural", map[string]any{"themes": []any{"github-dark", "github-light"}}, []string{"github-dark", "github-light"}},
		{"typed plural", map[string]any{"themes": []string{"a", "b", "c"}}, []string{"a", "b", "c"}},
		{"string under themes", map[string]any{"themes": "dracula"}, []string{"dracula"}},
		{"empty plural", map[string]any{"themes": []any{}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			themes, err := decodeThemes("ec", tt.opts)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, themes)
				return
			}
			names := make([]string, 0, len(themes))
			for _, th := range themes {
				assert.False(t, th.Embedded())
				names = append(names, th.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDecodeEmbeddedTheme(t *testing.T) {
	themes, err := decodeThemes("ec", map[string]any{
		"themes": []any{
			"github-light",
			map[string]any{
				"name":   "midnight",
				"type":   "dark",
				"colors": map[string]any{"editor.background": "#000000", "editor.foreground": "#ffffff"},
				"tokenColors": []any{
					map[string]any{"name": "Comments", "scope": []any{"comment", "punctuation.definition.comment"}, "settings": map[string]any{"fontStyle": "italic bold"}},
					map[string]any{"scope": "string", "settings": map[string]any{"foreground": "#00ff00"}},
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, themes, 2)

	assert.False(t, themes[0].Embedded())
	th := themes[1]
	assert.True(t, th.Embedded())
	assert.Equal(t, "midnight", th.Name)
	assert.Equal(t, ThemeDark, th.Type)
	assert.Equal(t, "#000000", th.Colors["editor.background"])
	require.Len(t, th.TokenColors, 2)
	assert.Equal(t, []string{"comment", "punctuation.definition.comment"}, th.TokenColors[0].Scope)
	assert.Equal(t, []string{"string"}, th.TokenColors[1].Scope)
	assert.Equal(t, "#00ff00", th.TokenColors[1].Settings.Foreground)
}

func TestDecodeThemeInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
		path string
	}{
		{"both keys", map[string]any{"theme": "a", "themes": []any{"b"}}, "ec.theme"},
		{"number", map[string]any{"theme": 7}, "ec.theme"},
		{"bool themes", map[string]any{"themes": true}, "ec.themes"},
		{"nested sequence", map[string]any{"themes": []any{[]any{"a"}}}, "ec.themes[0]"},
		{"embedded without name", map[string]any{"theme": map[string]any{"type": "dark"}}, "ec.theme.name"},
		{"bad type", map[string]any{"themes": []any{map[string]any{"name": "x", "type": "dim"}}}, "ec.themes[0].type"},
		{"empty color", map[string]any{"theme": map[string]any{"name": "x", "colors": map[string]any{"editor.background": ""}}}, "ec.theme.colors.editor.background"},
		{"empty scope", map[string]any{"theme": map[string]any{"name": "x", "tokenColors": []any{map[string]any{"scope": []any{""}}}}}, "ec.theme.tokenColors[0].scope[0]"},
		{"bad font style", map[string]any{"theme": map[string]any{"name": "x", "tokenColors": []any{map[string]any{"scope": "comment", "settings": map[string]any{"fontStyle": "oblique"}}}}}, "ec.theme.tokenColors[0].settings.fontStyle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeThemes("ec", tt.opts)
			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid, "got %v", err)
			assert.Equal(t, tt.path, invalid.Path)
		})
	}
}
