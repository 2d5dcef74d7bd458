package config

import (
	"path"
	"slices"
	"strings"
)

var builtinParsers = []string{
	"angular", "babel", "css", "flow", "graphql", "html", "json", "json5",
	"jsonc", "less", "markdown", "mdx", "scss", "typescript", "vue", "yaml",
}

// pluginParsers maps parsers contributed by plugins to the plugin providing them.
var pluginParsers = map[string]string{
	"astro":  "prettier-plugin-astro",
	"svelte": "prettier-plugin-svelte",
}

var (
	trailingCommas = []string{"all", "es5", "none"}
	endOfLines     = []string{"lf", "crlf", "cr", "auto"}
)

// LoadFormatter validates a standalone formatter configuration and applies
// defaults for omitted settings. A nil mapping yields the defaults.
func LoadFormatter(raw map[string]any) (*FormatterConfig, error) {
	return decodeFormatter("", raw)
}

func decodeFormatter(p string, raw map[string]any) (*FormatterConfig, error) {
	f := DefaultFormatterConfig()
	if raw == nil {
		return &f, nil
	}
	if err := decodeStrict(p, raw, &f); err != nil {
		return nil, err
	}
	if err := validateFormatter(p, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validateFormatter(p string, f *FormatterConfig) error {
	pluginsPath := joinPath(p, "plugins")
	if err := requireNonEmpty(pluginsPath, f.Plugins); err != nil {
		return err
	}
	for i, plugin := range f.Plugins {
		if slices.Index(f.Plugins, plugin) != i {
			return invalidValue(indexPath(pluginsPath, i), plugin, "plugin listed more than once")
		}
	}
	if err := validatePositive(joinPath(p, "printWidth"), f.PrintWidth); err != nil {
		return err
	}
	if err := validatePositive(joinPath(p, "tabWidth"), f.TabWidth); err != nil {
		return err
	}
	if err := validateOneOf(joinPath(p, "trailingComma"), f.TrailingComma, trailingCommas); err != nil {
		return err
	}
	if err := validateOneOf(joinPath(p, "endOfLine"), f.EndOfLine, endOfLines); err != nil {
		return err
	}
	for i, o := range f.Overrides {
		if err := validateOverride(indexPath(joinPath(p, "overrides"), i), o, f.Plugins); err != nil {
			return err
		}
	}
	return nil
}

func validateOverride(p string, o FormatterOverride, plugins []string) error {
	if len(o.Files) == 0 {
		return invalidValue(joinPath(p, "files"), nil, "at least one file pattern is required")
	}
	for _, key := range []string{"files", "excludeFiles"} {
		patterns := o.Files
		if key == "excludeFiles" {
			patterns = o.ExcludeFiles
		}
		for i, pattern := range patterns {
			if _, err := path.Match(pattern, ""); err != nil || strings.TrimSpace(pattern) == "" {
				return invalidValue(indexPath(joinPath(p, key), i), pattern, "expected a glob pattern")
			}
		}
	}

	op := joinPath(p, "options")
	opts := o.Options
	if opts.Parser != "" {
		if err := validateParser(joinPath(op, "parser"), opts.Parser, plugins); err != nil {
			return err
		}
	}
	if opts.PrintWidth != nil {
		if err := validatePositive(joinPath(op, "printWidth"), *opts.PrintWidth); err != nil {
			return err
		}
	}
	if opts.TabWidth != nil {
		if err := validatePositive(joinPath(op, "tabWidth"), *opts.TabWidth); err != nil {
			return err
		}
	}
	if opts.TrailingComma != nil {
		if err := validateOneOf(joinPath(op, "trailingComma"), *opts.TrailingComma, trailingCommas); err != nil {
			return err
		}
	}
	if opts.EndOfLine != nil {
		if err := validateOneOf(joinPath(op, "endOfLine"), *opts.EndOfLine, endOfLines); err != nil {
			return err
		}
	}
	return nil
}

func validateParser(p, parser string, plugins []string) error {
	if slices.Contains(builtinParsers, parser) {
		return nil
	}
	plugin, ok := pluginParsers[parser]
	if !ok {
		return invalidValue(p, parser, "unknown parser")
	}
	if !slices.Contains(plugins, plugin) {
		return invalidValue(p, parser, "parser is provided by %s, which is not listed in plugins", plugin)
	}
	return nil
}

func validatePositive(p string, v int) error {
	if v <= 0 {
		return invalidValue(p, v, "must be greater than zero")
	}
	return nil
}

func validateOneOf(p, v string, allowed []string) error {
	if !slices.Contains(allowed, v) {
		return invalidValue(p, v, "expected one of %s", strings.Join(allowed, ", "))
	}
	return nil
}

// ParserFor returns the parser forced on filename by the overrides, or ""
// when the formatter should infer it. Later overrides take precedence.
func (f *FormatterConfig) ParserFor(filename string) string {
	parser := ""
	for _, o := range f.Overrides {
		if o.Options.Parser != "" && o.matches(filename) {
			parser = o.Options.Parser
		}
	}
	return parser
}

// matches reports whether the override applies to filename. Patterns are
// matched against both the slash-separated path and its base name.
func (o FormatterOverride) matches(filename string) bool {
	filename = strings.ReplaceAll(filename, "\\", "/")
	return matchAny(o.Files, filename) && !matchAny(o.ExcludeFiles, filename)
}

func matchAny(patterns []string, filename string) bool {
	base := path.Base(filename)
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, filename); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
