package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"git.home.luguber.info/inful/siteconf/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	// If the user specified an output directory, place the config there as "siteconf.yaml".
	if i.Output != "" {
		return RunInit(g.out(), filepath.Join(i.Output, "siteconf.yaml"), i.Force)
	}
	return RunInit(g.out(), root.Config[0], i.Force)
}

func RunInit(out io.Writer, configPath string, force bool) error {
	// Provide friendly user-facing messages on stdout for CLI integration tests.
	_, _ = fmt.Fprintln(out, "Initializing site configuration")
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
