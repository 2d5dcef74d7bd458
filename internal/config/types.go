package config

import "git.home.luguber.info/inful/siteconf/internal/foundation"

// SiteConfiguration is the normalized content-site build configuration handed to
// the external build pipeline. It is produced once by Load and not mutated afterwards.
type SiteConfiguration struct {
	// Integrations keeps authoring order; the pipeline processes them in this order.
	Integrations []Integration
	Adapter      foundation.Option[Adapter]
	// Formatter is set only when the site configuration embeds formatter options.
	Formatter *FormatterConfig
}

// IntegrationsOf returns the integrations of the given kind, in order.
func (c *SiteConfiguration) IntegrationsOf(kind IntegrationKind) []Integration {
	var out []Integration
	for _, in := range c.Integrations {
		if in.Kind == kind {
			out = append(out, in)
		}
	}
	return out
}

// IntegrationKind identifies a capability plugged into the build pipeline.
type IntegrationKind string

const (
	IntegrationExpressiveCode IntegrationKind = "expressiveCode"
	IntegrationMDX            IntegrationKind = "mdx"
	IntegrationReact          IntegrationKind = "react"
	IntegrationTailwind       IntegrationKind = "tailwind"
)

// Integration is a tagged union: exactly the options pointer matching Kind is set.
type Integration struct {
	Kind           IntegrationKind
	ExpressiveCode *ExpressiveCodeOptions
	MDX            *MDXOptions
	React          *ReactOptions
	Tailwind       *TailwindOptions
}

// ExpressiveCodeOptions configures the code syntax highlighting integration.
type ExpressiveCodeOptions struct {
	// Themes is empty when the highlighter's own default themes apply.
	Themes                             []Theme         `mapstructure:"-"`
	StyleOverrides                     *StyleOverrides `mapstructure:"styleOverrides"`
	UseDarkModeMediaQuery              *bool           `mapstructure:"useDarkModeMediaQuery"`
	MinSyntaxHighlightingColorContrast *float64        `mapstructure:"minSyntaxHighlightingColorContrast"`
}

// UsesDefaultThemes reports whether no theme was configured.
func (o *ExpressiveCodeOptions) UsesDefaultThemes() bool { return len(o.Themes) == 0 }

// ThemeNames returns the configured theme names in order.
func (o *ExpressiveCodeOptions) ThemeNames() []string {
	names := make([]string, 0, len(o.Themes))
	for _, th := range o.Themes {
		names = append(names, th.Name)
	}
	return names
}

// StyleOverrides holds font and shape overrides for rendered code blocks.
type StyleOverrides struct {
	CodeFontFamily string `mapstructure:"codeFontFamily"`
	UIFontFamily   string `mapstructure:"uiFontFamily"`
	CodeFontSize   string `mapstructure:"codeFontSize"`
	BorderRadius   string `mapstructure:"borderRadius"`
}

// ThemeType is the color scheme family of an embedded theme.
type ThemeType string

const (
	ThemeDark  ThemeType = "dark"
	ThemeLight ThemeType = "light"
)

// Theme is either a bundled theme referenced by name (only Name set) or an
// embedded theme definition.
type Theme struct {
	Name        string            `mapstructure:"name"`
	Type        ThemeType         `mapstructure:"type"`
	Colors      map[string]string `mapstructure:"colors"`
	TokenColors []TokenColor      `mapstructure:"tokenColors"`
}

// Embedded reports whether the theme carries its own definition.
func (t Theme) Embedded() bool {
	return t.Type != "" || t.Colors != nil || t.TokenColors != nil
}

// TokenColor is one scope-to-style rule of an embedded theme.
type TokenColor struct {
	Name     string        `mapstructure:"name"`
	Scope    []string      `mapstructure:"scope"`
	Settings TokenSettings `mapstructure:"settings"`
}

// TokenSettings is the style applied to a token scope.
type TokenSettings struct {
	Foreground string `mapstructure:"foreground"`
	Background string `mapstructure:"background"`
	FontStyle  string `mapstructure:"fontStyle"`
}

// SyntaxHighlighter selects the code highlighter used for markdown code fences.
type SyntaxHighlighter string

const (
	SyntaxHighlightShiki SyntaxHighlighter = "shiki"
	SyntaxHighlightPrism SyntaxHighlighter = "prism"
	// SyntaxHighlightNone is written as `false` in configuration files.
	SyntaxHighlightNone SyntaxHighlighter = "none"
)

// MDXOptions configures the markdown extension integration.
type MDXOptions struct {
	GFM                  bool              `mapstructure:"gfm"`
	Smartypants          bool              `mapstructure:"smartypants"`
	SyntaxHighlight      SyntaxHighlighter `mapstructure:"-"`
	RemarkPlugins        []string          `mapstructure:"remarkPlugins"`
	RehypePlugins        []string          `mapstructure:"rehypePlugins"`
	Optimize             bool              `mapstructure:"optimize"`
	ExtendMarkdownConfig bool              `mapstructure:"extendMarkdownConfig"`
}

// ReactOptions configures the UI component integration.
type ReactOptions struct {
	Include                      []string `mapstructure:"include"`
	Exclude                      []string `mapstructure:"exclude"`
	ExperimentalReactChildren    bool     `mapstructure:"experimentalReactChildren"`
	ExperimentalDisableStreaming bool     `mapstructure:"experimentalDisableStreaming"`
}

// TailwindOptions configures the utility CSS integration.
type TailwindOptions struct {
	ApplyBaseStyles bool   `mapstructure:"applyBaseStyles"`
	ConfigFile      string `mapstructure:"configFile"`
	Nesting         bool   `mapstructure:"nesting"`
}

// AdapterKind identifies a deployment target.
type AdapterKind string

const (
	AdapterVercel  AdapterKind = "vercel"
	AdapterNetlify AdapterKind = "netlify"
	AdapterNode    AdapterKind = "node"
)

// Adapter is a tagged union over deployment targets. Adapters are validated
// structurally only; no defaults are injected.
type Adapter struct {
	Kind    AdapterKind
	Vercel  *VercelOptions
	Netlify *NetlifyOptions
	Node    *NodeOptions
}

// VercelOptions mirrors the Vercel adapter options. Nil fields were not set.
type VercelOptions struct {
	WebAnalytics *WebAnalytics `mapstructure:"webAnalytics"`
	ImageService *bool         `mapstructure:"imageService"`
	MaxDuration  *int          `mapstructure:"maxDuration"`
	IncludeFiles []string      `mapstructure:"includeFiles"`
	ExcludeFiles []string      `mapstructure:"excludeFiles"`
	ISR          *bool         `mapstructure:"isr"`
}

// WebAnalytics toggles hosted analytics injection.
type WebAnalytics struct {
	Enabled bool `mapstructure:"enabled"`
}

// NetlifyOptions mirrors the Netlify adapter options. Nil fields were not set.
type NetlifyOptions struct {
	EdgeMiddleware     *bool `mapstructure:"edgeMiddleware"`
	CacheOnDemandPages *bool `mapstructure:"cacheOnDemandPages"`
	ImageCDN           *bool `mapstructure:"imageCDN"`
}

// NodeMode is the Node adapter's server mode.
type NodeMode string

const (
	NodeStandalone NodeMode = "standalone"
	NodeMiddleware NodeMode = "middleware"
)

// NodeOptions mirrors the Node adapter options.
type NodeOptions struct {
	Mode NodeMode `mapstructure:"mode"`
}

// FormatterConfig is the code-formatter configuration. It is consumed by an
// external formatting tool, not by the build pipeline.
type FormatterConfig struct {
	// Plugins keeps declaration order.
	Plugins        []string            `mapstructure:"plugins"`
	Overrides      []FormatterOverride `mapstructure:"overrides"`
	PrintWidth     int                 `mapstructure:"printWidth"`
	TabWidth       int                 `mapstructure:"tabWidth"`
	UseTabs        bool                `mapstructure:"useTabs"`
	Semi           bool                `mapstructure:"semi"`
	SingleQuote    bool                `mapstructure:"singleQuote"`
	TrailingComma  string              `mapstructure:"trailingComma"`
	BracketSpacing bool                `mapstructure:"bracketSpacing"`
	EndOfLine      string              `mapstructure:"endOfLine"`
}

// FormatterOverride applies options to files matching its glob patterns.
type FormatterOverride struct {
	Files        []string        `mapstructure:"files"`
	ExcludeFiles []string        `mapstructure:"excludeFiles"`
	Options      OverrideOptions `mapstructure:"options"`
}

// OverrideOptions are per-file-type settings. Nil fields inherit the top-level value.
type OverrideOptions struct {
	Parser         string  `mapstructure:"parser"`
	PrintWidth     *int    `mapstructure:"printWidth"`
	TabWidth       *int    `mapstructure:"tabWidth"`
	UseTabs        *bool   `mapstructure:"useTabs"`
	Semi           *bool   `mapstructure:"semi"`
	SingleQuote    *bool   `mapstructure:"singleQuote"`
	TrailingComma  *string `mapstructure:"trailingComma"`
	BracketSpacing *bool   `mapstructure:"bracketSpacing"`
	EndOfLine      *string `mapstructure:"endOfLine"`
}
