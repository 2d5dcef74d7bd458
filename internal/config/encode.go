package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Raw returns the canonical raw form of the configuration: canonical
// identifiers, `themes` always a sequence and only the adapter fields that
// were set. Loading the result yields an equal configuration.
func (c *SiteConfiguration) Raw() map[string]any {
	out := map[string]any{}
	if c.Integrations != nil {
		seq := make([]any, 0, len(c.Integrations))
		for _, in := range c.Integrations {
			seq = append(seq, in.Raw())
		}
		out[keyIntegrations] = seq
	}
	if a, ok := c.Adapter.Get(); ok {
		out[keyAdapter] = a.Raw()
	}
	if c.Formatter != nil {
		out[keyFormatter] = c.Formatter.Raw()
	}
	return out
}

// Raw returns the integration as a `{name: ..., <option>: ...}` mapping.
func (in Integration) Raw() map[string]any {
	out := map[string]any{"name": string(in.Kind)}
	switch in.Kind {
	case IntegrationExpressiveCode:
		if o := in.ExpressiveCode; o != nil {
			o.rawInto(out)
		}
	case IntegrationMDX:
		if o := in.MDX; o != nil {
			o.rawInto(out)
		}
	case IntegrationReact:
		if o := in.React; o != nil {
			putStrings(out, "include", o.Include)
			putStrings(out, "exclude", o.Exclude)
			out["experimentalReactChildren"] = o.ExperimentalReactChildren
			out["experimentalDisableStreaming"] = o.ExperimentalDisableStreaming
		}
	case IntegrationTailwind:
		if o := in.Tailwind; o != nil {
			out["applyBaseStyles"] = o.ApplyBaseStyles
			putString(out, "configFile", o.ConfigFile)
			out["nesting"] = o.Nesting
		}
	}
	return out
}

func (o *ExpressiveCodeOptions) rawInto(out map[string]any) {
	if len(o.Themes) > 0 {
		themes := make([]any, 0, len(o.Themes))
		for _, th := range o.Themes {
			themes = append(themes, th.raw())
		}
		out["themes"] = themes
	}
	if s := o.StyleOverrides; s != nil {
		so := map[string]any{}
		putString(so, "codeFontFamily", s.CodeFontFamily)
		putString(so, "uiFontFamily", s.UIFontFamily)
		putString(so, "codeFontSize", s.CodeFontSize)
		putString(so, "borderRadius", s.BorderRadius)
		out["styleOverrides"] = so
	}
	if o.UseDarkModeMediaQuery != nil {
		out["useDarkModeMediaQuery"] = *o.UseDarkModeMediaQuery
	}
	if o.MinSyntaxHighlightingColorContrast != nil {
		out["minSyntaxHighlightingColorContrast"] = *o.MinSyntaxHighlightingColorContrast
	}
}

// raw returns a bundled theme as its name and an embedded theme as a mapping.
func (t Theme) raw() any {
	if !t.Embedded() {
		return t.Name
	}
	out := map[string]any{"name": t.Name}
	putString(out, "type", string(t.Type))
	if t.Colors != nil {
		colors := make(map[string]any, len(t.Colors))
		for k, v := range t.Colors {
			colors[k] = v
		}
		out["colors"] = colors
	}
	if t.TokenColors != nil {
		tcs := make([]any, 0, len(t.TokenColors))
		for _, tc := range t.TokenColors {
			m := map[string]any{}
			putString(m, "name", tc.Name)
			putStrings(m, "scope", tc.Scope)
			settings := map[string]any{}
			putString(settings, "foreground", tc.Settings.Foreground)
			putString(settings, "background", tc.Settings.Background)
			putString(settings, "fontStyle", tc.Settings.FontStyle)
			m["settings"] = settings
			tcs = append(tcs, m)
		}
		out["tokenColors"] = tcs
	}
	return out
}

func (o *MDXOptions) rawInto(out map[string]any) {
	out["gfm"] = o.GFM
	out["smartypants"] = o.Smartypants
	if o.SyntaxHighlight == SyntaxHighlightNone {
		out["syntaxHighlight"] = false
	} else {
		out["syntaxHighlight"] = string(o.SyntaxHighlight)
	}
	putStrings(out, "remarkPlugins", o.RemarkPlugins)
	putStrings(out, "rehypePlugins", o.RehypePlugins)
	out["optimize"] = o.Optimize
	out["extendMarkdownConfig"] = o.ExtendMarkdownConfig
}

// Raw returns the adapter as a `{name: ..., <option>: ...}` mapping holding
// only the options that were set.
func (a Adapter) Raw() map[string]any {
	out := map[string]any{"name": string(a.Kind)}
	switch {
	case a.Vercel != nil:
		v := a.Vercel
		if v.WebAnalytics != nil {
			out["webAnalytics"] = map[string]any{"enabled": v.WebAnalytics.Enabled}
		}
		putBool(out, "imageService", v.ImageService)
		if v.MaxDuration != nil {
			out["maxDuration"] = *v.MaxDuration
		}
		putStrings(out, "includeFiles", v.IncludeFiles)
		putStrings(out, "excludeFiles", v.ExcludeFiles)
		putBool(out, "isr", v.ISR)
	case a.Netlify != nil:
		putBool(out, "edgeMiddleware", a.Netlify.EdgeMiddleware)
		putBool(out, "cacheOnDemandPages", a.Netlify.CacheOnDemandPages)
		putBool(out, "imageCDN", a.Netlify.ImageCDN)
	case a.Node != nil:
		out["mode"] = string(a.Node.Mode)
	}
	return out
}

// Raw returns the formatter settings with every default made explicit.
func (f *FormatterConfig) Raw() map[string]any {
	out := map[string]any{
		"printWidth":     f.PrintWidth,
		"tabWidth":       f.TabWidth,
		"useTabs":        f.UseTabs,
		"semi":           f.Semi,
		"singleQuote":    f.SingleQuote,
		"trailingComma":  f.TrailingComma,
		"bracketSpacing": f.BracketSpacing,
		"endOfLine":      f.EndOfLine,
	}
	putStrings(out, "plugins", f.Plugins)
	if f.Overrides != nil {
		overrides := make([]any, 0, len(f.Overrides))
		for _, o := range f.Overrides {
			m := map[string]any{"options": o.Options.raw()}
			putStrings(m, "files", o.Files)
			putStrings(m, "excludeFiles", o.ExcludeFiles)
			overrides = append(overrides, m)
		}
		out["overrides"] = overrides
	}
	return out
}

func (o OverrideOptions) raw() map[string]any {
	out := map[string]any{}
	putString(out, "parser", o.Parser)
	if o.PrintWidth != nil {
		out["printWidth"] = *o.PrintWidth
	}
	if o.TabWidth != nil {
		out["tabWidth"] = *o.TabWidth
	}
	putBool(out, "useTabs", o.UseTabs)
	putBool(out, "semi", o.Semi)
	putBool(out, "singleQuote", o.SingleQuote)
	if o.TrailingComma != nil {
		out["trailingComma"] = *o.TrailingComma
	}
	putBool(out, "bracketSpacing", o.BracketSpacing)
	if o.EndOfLine != nil {
		out["endOfLine"] = *o.EndOfLine
	}
	return out
}

func putString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func putBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func putStrings(m map[string]any, key string, v []string) {
	if v == nil {
		return
	}
	seq := make([]any, len(v))
	for i, s := range v {
		seq[i] = s
	}
	m[key] = seq
}

// Format is an output encoding for the canonical configuration.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat resolves a format name, accepting "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected yaml, json or toml)", s)
	}
}

// Encode writes a raw mapping (see Raw) to w in the given format.
func Encode(w io.Writer, raw map[string]any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
