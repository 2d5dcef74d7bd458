package config

import (
	"strings"
)

var fontStyles = map[string]bool{
	"italic": true, "bold": true, "underline": true, "strikethrough": true,
}

// decodeThemes extracts `theme`/`themes` from opts and returns the canonical
// theme sequence. A single theme (under either key) is wrapped into a
// one-element sequence; an empty result means the highlighter defaults apply.
func decodeThemes(path string, opts map[string]any) ([]Theme, error) {
	single, hasSingle := opts["theme"]
	plural, hasPlural := opts["themes"]
	if hasSingle && hasPlural {
		return nil, invalidValue(joinPath(path, "theme"), nil, "theme and themes are mutually exclusive")
	}

	var items []any
	listPath := joinPath(path, "themes")
	switch {
	case hasSingle && single != nil:
		items = []any{single}
	case hasPlural && plural != nil:
		seq, ok := asSequence(plural)
		if !ok {
			if !isThemeValue(plural) {
				return nil, invalidValue(listPath, plural, "expected a sequence of theme names or theme objects")
			}
			seq = []any{plural}
		}
		items = seq
	}
	if len(items) == 0 {
		return nil, nil
	}

	themes := make([]Theme, 0, len(items))
	for i, item := range items {
		itemPath := indexPath(listPath, i)
		if hasSingle {
			itemPath = joinPath(path, "theme")
		}
		th, err := decodeTheme(itemPath, item)
		if err != nil {
			return nil, err
		}
		themes = append(themes, th)
	}
	return themes, nil
}

func isThemeValue(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	_, ok := asMap(v)
	return ok
}

func decodeTheme(path string, v any) (Theme, error) {
	if name, ok := v.(string); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return Theme{}, invalidValue(path, v, "theme name must not be empty")
		}
		return Theme{Name: name}, nil
	}
	m, ok := asMap(v)
	if !ok {
		return Theme{}, invalidValue(path, v, "expected a theme name or a theme object")
	}
	var th Theme
	if err := decodeStrict(path, m, &th); err != nil {
		return Theme{}, err
	}
	return th, validateTheme(path, th)
}

func validateTheme(path string, th Theme) error {
	if strings.TrimSpace(th.Name) == "" {
		return invalidValue(joinPath(path, "name"), nil, "embedded themes require a name")
	}
	switch th.Type {
	case "", ThemeDark, ThemeLight:
	default:
		return invalidValue(joinPath(path, "type"), string(th.Type), "expected dark or light")
	}
	for key, color := range th.Colors {
		if strings.TrimSpace(color) == "" {
			return invalidValue(joinPath(joinPath(path, "colors"), key), color, "color must not be empty")
		}
	}
	for i, tc := range th.TokenColors {
		tcPath := indexPath(joinPath(path, "tokenColors"), i)
		if err := requireNonEmpty(joinPath(tcPath, "scope"), tc.Scope); err != nil {
			return err
		}
		for _, style := range strings.Fields(tc.Settings.FontStyle) {
			if !fontStyles[style] {
				return invalidValue(joinPath(tcPath, "settings.fontStyle"), tc.Settings.FontStyle,
					"expected a space separated list of italic, bold, underline, strikethrough")
			}
		}
	}
	return nil
}
