package config

import (
	"strings"

	"git.home.luguber.info/inful/siteconf/internal/foundation"
)

// integrationKinds resolves the identifiers an author may use, including the
// package names the integrations are published under.
var integrationKinds = foundation.NewNormalizer(map[string]IntegrationKind{
	"expressiveCode":        IntegrationExpressiveCode,
	"expressive-code":       IntegrationExpressiveCode,
	"astro-expressive-code": IntegrationExpressiveCode,
	"mdx":                   IntegrationMDX,
	"@astrojs/mdx":          IntegrationMDX,
	"react":                 IntegrationReact,
	"@astrojs/react":        IntegrationReact,
	"tailwind":              IntegrationTailwind,
	"@astrojs/tailwind":     IntegrationTailwind,
}, "")

// integrationDecoder decodes, defaults and validates the options of one kind.
type integrationDecoder func(path string, opts map[string]any) (Integration, error)

var integrationDecoders = map[IntegrationKind]integrationDecoder{
	IntegrationExpressiveCode: decodeExpressiveCode,
	IntegrationMDX:            decodeMDX,
	IntegrationReact:          decodeReact,
	IntegrationTailwind:       decodeTailwind,
}

func decodeIntegrations(path string, v any) ([]Integration, error) {
	if v == nil {
		return nil, nil
	}
	seq, ok := asSequence(v)
	if !ok {
		return nil, invalidValue(path, v, "expected a sequence of integrations")
	}
	out := make([]Integration, 0, len(seq))
	for i, item := range seq {
		in, err := decodeIntegration(indexPath(path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func decodeIntegration(path string, v any) (Integration, error) {
	m, ok := asMap(v)
	if !ok {
		return Integration{}, invalidValue(path, v, "expected an integration mapping with a name")
	}
	name, err := requireName(path, m)
	if err != nil {
		return Integration{}, err
	}
	kind, ok := integrationKinds.Lookup(name)
	if !ok {
		return Integration{}, invalidValue(joinPath(path, "name"), name,
			"unknown integration (known: %s)", strings.Join(integrationKinds.Accepted(), ", "))
	}
	return integrationDecoders[kind](path, without(m, "name"))
}

// requireName returns the non-empty string under "name".
func requireName(path string, m map[string]any) (string, error) {
	raw, ok := m["name"]
	if !ok {
		return "", invalidValue(joinPath(path, "name"), nil, "name is required")
	}
	name, ok := raw.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", invalidValue(joinPath(path, "name"), raw, "expected a non-empty identifier")
	}
	return name, nil
}

func decodeExpressiveCode(path string, opts map[string]any) (Integration, error) {
	themes, err := decodeThemes(path, opts)
	if err != nil {
		return Integration{}, err
	}
	o := defaultExpressiveCodeOptions()
	if err := decodeStrict(path, without(opts, "theme", "themes"), &o); err != nil {
		return Integration{}, err
	}
	o.Themes = themes
	if err := validateExpressiveCode(path, &o); err != nil {
		return Integration{}, err
	}
	return Integration{Kind: IntegrationExpressiveCode, ExpressiveCode: &o}, nil
}

func validateExpressiveCode(path string, o *ExpressiveCodeOptions) error {
	if s := o.StyleOverrides; s != nil {
		fields := map[string]string{
			"codeFontFamily": s.CodeFontFamily,
			"uiFontFamily":   s.UIFontFamily,
			"codeFontSize":   s.CodeFontSize,
			"borderRadius":   s.BorderRadius,
		}
		for _, key := range []string{"codeFontFamily", "uiFontFamily", "codeFontSize", "borderRadius"} {
			if v := fields[key]; v != "" && strings.TrimSpace(v) == "" {
				return invalidValue(joinPath(path, "styleOverrides."+key), v, "must not be blank")
			}
		}
	}
	// WCAG contrast ratios range from 1:1 to 21:1; 0 disables the adjustment.
	if c := o.MinSyntaxHighlightingColorContrast; c != nil && (*c < 0 || *c > 21) {
		return invalidValue(joinPath(path, "minSyntaxHighlightingColorContrast"), *c, "expected a contrast ratio between 0 and 21")
	}
	return nil
}

func decodeMDX(path string, opts map[string]any) (Integration, error) {
	o := defaultMDXOptions()
	if raw, ok := opts["syntaxHighlight"]; ok {
		hl, err := decodeSyntaxHighlight(joinPath(path, "syntaxHighlight"), raw)
		if err != nil {
			return Integration{}, err
		}
		o.SyntaxHighlight = hl
	}
	if err := decodeStrict(path, without(opts, "syntaxHighlight"), &o); err != nil {
		return Integration{}, err
	}
	if err := requireNonEmpty(joinPath(path, "remarkPlugins"), o.RemarkPlugins); err != nil {
		return Integration{}, err
	}
	if err := requireNonEmpty(joinPath(path, "rehypePlugins"), o.RehypePlugins); err != nil {
		return Integration{}, err
	}
	return Integration{Kind: IntegrationMDX, MDX: &o}, nil
}

// decodeSyntaxHighlight accepts "shiki", "prism" or false.
func decodeSyntaxHighlight(path string, raw any) (SyntaxHighlighter, error) {
	switch v := raw.(type) {
	case bool:
		if !v {
			return SyntaxHighlightNone, nil
		}
	case string:
		switch SyntaxHighlighter(strings.ToLower(strings.TrimSpace(v))) {
		case SyntaxHighlightShiki:
			return SyntaxHighlightShiki, nil
		case SyntaxHighlightPrism:
			return SyntaxHighlightPrism, nil
		}
	}
	return "", invalidValue(path, raw, "expected shiki, prism or false")
}

func decodeReact(path string, opts map[string]any) (Integration, error) {
	o := defaultReactOptions()
	if err := decodeStrict(path, opts, &o); err != nil {
		return Integration{}, err
	}
	if err := requireNonEmpty(joinPath(path, "include"), o.Include); err != nil {
		return Integration{}, err
	}
	if err := requireNonEmpty(joinPath(path, "exclude"), o.Exclude); err != nil {
		return Integration{}, err
	}
	return Integration{Kind: IntegrationReact, React: &o}, nil
}

func decodeTailwind(path string, opts map[string]any) (Integration, error) {
	o := defaultTailwindOptions()
	if err := decodeStrict(path, opts, &o); err != nil {
		return Integration{}, err
	}
	if o.ConfigFile != "" && strings.TrimSpace(o.ConfigFile) == "" {
		return Integration{}, invalidValue(joinPath(path, "configFile"), o.ConfigFile, "must not be blank")
	}
	return Integration{Kind: IntegrationTailwind, Tailwind: &o}, nil
}
