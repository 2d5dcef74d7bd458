package config

// Defaults are expressed as the initial value decoded over, so only keys the
// author wrote replace them.

func defaultExpressiveCodeOptions() ExpressiveCodeOptions {
	// Themes and style overrides stay empty: the highlighter supplies its own.
	return ExpressiveCodeOptions{}
}

func defaultMDXOptions() MDXOptions {
	return MDXOptions{
		GFM:                  true,
		Smartypants:          true,
		SyntaxHighlight:      SyntaxHighlightShiki,
		ExtendMarkdownConfig: true,
	}
}

func defaultReactOptions() ReactOptions {
	return ReactOptions{}
}

func defaultTailwindOptions() TailwindOptions {
	return TailwindOptions{ApplyBaseStyles: true}
}

// DefaultFormatterConfig returns the formatter's built-in settings.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		PrintWidth:     80,
		TabWidth:       2,
		Semi:           true,
		TrailingComma:  "all",
		BracketSpacing: true,
		EndOfLine:      "lf",
	}
}
