package commands

import (
	"fmt"

	"git.home.luguber.info/inful/siteconf/internal/config"
)

// FormatCheckCmd implements the 'format-check' command.
type FormatCheckCmd struct {
	File string   `arg:"" help:"Formatter configuration file" type:"path"`
	For  []string `name:"for" help:"Show the parser override applied to these file names"`
}

func (f *FormatCheckCmd) Run(g *Global, _ *CLI) error {
	fc, err := config.LoadFormatterFile(f.File)
	if err != nil {
		return err
	}
	out := g.out()
	_, _ = fmt.Fprintf(out, "Formatter configuration valid: %d plugin(s), %d override(s), print width %d\n",
		len(fc.Plugins), len(fc.Overrides), fc.PrintWidth)
	for _, name := range f.For {
		parser := fc.ParserFor(name)
		if parser == "" {
			parser = "(inferred)"
		}
		_, _ = fmt.Fprintf(out, "%s: %s\n", name, parser)
	}
	return nil
}
