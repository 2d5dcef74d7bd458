package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// PrintCmd implements the 'print' command.
type PrintCmd struct {
	Format string `short:"f" help:"Output format" enum:"yaml,json,toml" default:"yaml"`
}

func (p *PrintCmd) Run(g *Global, root *CLI) error {
	format, err := config.ParseFormat(p.Format)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFiles(root.Config...)
	if err != nil {
		return err
	}
	slog.Debug("Printing normalized configuration", logfields.Format(string(format)))
	return config.Encode(g.out(), cfg.Raw(), format)
}
