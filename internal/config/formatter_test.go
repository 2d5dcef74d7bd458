package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteFormatterRaw() map[string]any {
	return map[string]any{
		"plugins": []any{"prettier-plugin-astro", "prettier-plugin-tailwindcss"},
		"overrides": []any{
			map[string]any{"files": "*.astro", "options": map[string]any{"parser": "astro"}},
		},
		"printWidth": 110,
	}
}

func TestLoadFormatter(t *testing.T) {
	f, err := LoadFormatter(siteFormatterRaw())
	require.NoError(t, err)

	assert.Equal(t, []string{"prettier-plugin-astro", "prettier-plugin-tailwindcss"}, f.Plugins)
	assert.Equal(t, 110, f.PrintWidth)
	assert.Equal(t, 2, f.TabWidth)
	assert.True(t, f.Semi)
	assert.Equal(t, "all", f.TrailingComma)
	require.Len(t, f.Overrides, 1)
	assert.Equal(t, []string{"*.astro"}, f.Overrides[0].Files)
	assert.Equal(t, "astro", f.Overrides[0].Options.Parser)
}

func TestLoadFormatterDefaults(t *testing.T) {
	f, err := LoadFormatter(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFormatterConfig(), *f)

	f, err = LoadFormatter(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, DefaultFormatterConfig(), *f)
}

func TestFormatterParserFor(t *testing.T) {
	raw := siteFormatterRaw()
	raw["overrides"] = []any{
		map[string]any{"files": "*.astro", "options": map[string]any{"parser": "astro"}},
		map[string]any{"files": []any{"*.md", "docs/**"}, "excludeFiles": "CHANGELOG.md", "options": map[string]any{"parser": "markdown"}},
		map[string]any{"files": "src/pages/*.astro", "options": map[string]any{"parser": "html"}},
		map[string]any{"files": "*.json", "options": map[string]any{"tabWidth": 4}},
	}
	f, err := LoadFormatter(raw)
	require.NoError(t, err)

	assert.Equal(t, "astro", f.ParserFor("src/components/Card.astro"))
	assert.Equal(t, "html", f.ParserFor("src/pages/index.astro"))
	assert.Equal(t, "markdown", f.ParserFor("README.md"))
	assert.Equal(t, "", f.ParserFor("CHANGELOG.md"))
	assert.Equal(t, "", f.ParserFor("package.json"))
	assert.Equal(t, "astro", f.ParserFor(`src\components\Nav.astro`))
}

func TestLoadFormatterInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(map[string]any)
		path   string
	}{
		{"zero print width", func(m map[string]any) { m["printWidth"] = 0 }, "printWidth"},
		{"negative tab width", func(m map[string]any) { m["tabWidth"] = -2 }, "tabWidth"},
		{"fractional print width", func(m map[string]any) { m["printWidth"] = 110.9 }, "printWidth"},
		{"fractional override tab width", func(m map[string]any) {
			m["overrides"] = []any{map[string]any{"files": "*.md", "options": map[string]any{"tabWidth": 2.5}}}
		}, "overrides[0].options.tabWidth"},
		{"trailing comma", func(m map[string]any) { m["trailingComma"] = "always" }, "trailingComma"},
		{"end of line", func(m map[string]any) { m["endOfLine"] = "windows" }, "endOfLine"},
		{"duplicate plugin", func(m map[string]any) {
			m["plugins"] = []any{"prettier-plugin-astro", "prettier-plugin-astro"}
		}, "plugins[1]"},
		{"empty plugin", func(m map[string]any) { m["plugins"] = []any{"prettier-plugin-astro", ""} }, "plugins[1]"},
		{"plugin parser without plugin", func(m map[string]any) { m["plugins"] = []any{"prettier-plugin-tailwindcss"} }, "overrides[0].options.parser"},
		{"unknown parser", func(m map[string]any) {
			m["overrides"] = []any{map[string]any{"files": "*.x", "options": map[string]any{"parser": "cobol"}}}
		}, "overrides[0].options.parser"},
		{"override without files", func(m map[string]any) {
			m["overrides"] = []any{map[string]any{"options": map[string]any{"semi": false}}}
		}, "overrides[0].files"},
		{"bad glob", func(m map[string]any) {
			m["overrides"] = []any{map[string]any{"files": "[*.astro", "options": map[string]any{}}}
		}, "overrides[0].files[0]"},
		{"override print width", func(m map[string]any) {
			m["overrides"] = []any{map[string]any{"files": "*.md", "options": map[string]any{"printWidth": 0}}}
		}, "overrides[0].options.printWidth"},
		{"override end of line", func(m map[string]any) {
			m["overrides"] = []any{map[string]any{"files": "*.md", "options": map[string]any{"endOfLine": "mac"}}}
		}, "overrides[0].options.endOfLine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := siteFormatterRaw()
			tt.modify(raw)
			_, err := LoadFormatter(raw)
			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid, "got %v", err)
			assert.Equal(t, tt.path, invalid.Path)
		})
	}
}

func TestLoadFormatterUnknownOverrideOption(t *testing.T) {
	raw := siteFormatterRaw()
	raw["overrides"] = []any{map[string]any{"files": "*.astro", "options": map[string]any{"parser": "astro", "astroAllowShorthand": true}}}

	_, err := LoadFormatter(raw)
	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "overrides[0].options", unknown.Path)
	assert.Equal(t, "astroAllowShorthand", unknown.Key)
}
