package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteconf/internal/config"
	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
)

const siteYAML = `integrations:
  - name: expressiveCode
    theme: one-dark-pro
  - name: mdx
adapter:
  name: vercel
  webAnalytics:
    enabled: true
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParseFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-c", "base.yaml", "-c", "local.toml", "print", "--format", "toml"})
	require.NoError(t, err)
	assert.Equal(t, "print", ctx.Command())
	assert.Equal(t, []string{"base.yaml", "local.toml"}, cli.Config)
	assert.Equal(t, "toml", cli.Print.Format)

	_, err = parser.Parse([]string{"print", "--format", "xml"})
	assert.Error(t, err)

	ctx, err = parser.Parse([]string{"format-check", "prettier.yaml", "--for", "a.astro", "--for", "b.md"})
	require.NoError(t, err)
	assert.Equal(t, "format-check <file>", ctx.Command())
	assert.Equal(t, []string{"a.astro", "b.md"}, cli.FormatCheck.For)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for env, want := range tests {
		t.Setenv("SITECONF_LOG_LEVEL", env)
		assert.Equal(t, want, parseLogLevel(false), "env %q", env)
	}
	t.Setenv("SITECONF_LOG_LEVEL", "error")
	assert.Equal(t, slog.LevelDebug, parseLogLevel(true))
}

func TestCheckCommand(t *testing.T) {
	p := writeConfig(t, "siteconf.yaml", siteYAML)
	metricsFile := filepath.Join(t.TempDir(), "siteconf.prom")
	var out bytes.Buffer

	cmd := &CheckCmd{MetricsFile: metricsFile}
	require.NoError(t, cmd.Run(&Global{Out: &out}, &CLI{Config: []string{p}}))
	assert.Equal(t, "Configuration valid: 2 integration(s) (expressiveCode, mdx), adapter vercel\n", out.String())

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `siteconf_load_total{result="success"} 1`)
	assert.Contains(t, string(data), `siteconf_integrations{kind="mdx"} 1`)
}

func TestCheckCommandRejectsUnknownOption(t *testing.T) {
	p := writeConfig(t, "siteconf.yaml", "foo: 1\n")
	metricsFile := filepath.Join(t.TempDir(), "siteconf.prom")

	cmd := &CheckCmd{MetricsFile: metricsFile}
	err := cmd.Run(&Global{Out: &bytes.Buffer{}}, &CLI{Config: []string{p}})
	require.Error(t, err)

	var unknown *config.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 2, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	data, readErr := os.ReadFile(metricsFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), `siteconf_validation_errors_total{type="unknown_option"} 1`)
	assert.Contains(t, string(data), `siteconf_load_total{result="invalid"} 1`)
}

func TestCheckCommandMissingFile(t *testing.T) {
	err := (&CheckCmd{}).Run(&Global{Out: &bytes.Buffer{}}, &CLI{Config: []string{filepath.Join(t.TempDir(), "nope.yaml")}})
	require.Error(t, err)
	assert.Equal(t, 3, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestWatchCheckRunsInitialCheck(t *testing.T) {
	p := writeConfig(t, "siteconf.yaml", siteYAML)
	var out bytes.Buffer
	flushed := 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, WatchCheck(ctx, &out, []string{p}, metrics.NoopRecorder{}, func() { flushed++ }))
	assert.Contains(t, out.String(), "Configuration valid: 2 integration(s)")
	assert.Equal(t, 1, flushed)
}

func TestPrintCommand(t *testing.T) {
	p := writeConfig(t, "siteconf.yaml", siteYAML)
	var out bytes.Buffer

	require.NoError(t, (&PrintCmd{Format: "json"}).Run(&Global{Out: &out}, &CLI{Config: []string{p}}))

	var printed map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	integrations := printed["integrations"].([]any)
	assert.Equal(t, []any{"one-dark-pro"}, integrations[0].(map[string]any)["themes"])
	assert.Equal(t, map[string]any{"name": "vercel", "webAnalytics": map[string]any{"enabled": true}}, printed["adapter"])
}

func TestFormatCheckCommand(t *testing.T) {
	p := writeConfig(t, "prettier.yaml", `plugins:
  - prettier-plugin-astro
  - prettier-plugin-tailwindcss
overrides:
  - files: "*.astro"
    options:
      parser: astro
printWidth: 110
`)
	var out bytes.Buffer

	cmd := &FormatCheckCmd{File: p, For: []string{"src/pages/index.astro", "README.md"}}
	require.NoError(t, cmd.Run(&Global{Out: &out}, &CLI{}))
	assert.Equal(t, "Formatter configuration valid: 2 plugin(s), 1 override(s), print width 110\n"+
		"src/pages/index.astro: astro\n"+
		"README.md: (inferred)\n", out.String())
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, (&InitCmd{Output: dir}).Run(&Global{Out: &out}, &CLI{Config: []string{"ignored.yaml"}}))
	assert.Contains(t, out.String(), "initialized successfully")

	cfg, err := config.LoadFiles(filepath.Join(dir, "siteconf.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Configuration valid: 3 integration(s) (expressiveCode, mdx, react), adapter vercel, formatter with 2 plugin(s)", Summary(cfg))

	out.Reset()
	err = (&InitCmd{Output: dir}).Run(&Global{Out: &out}, &CLI{})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Initialization failed")
	assert.Equal(t, 2, ferrors.NewCLIErrorAdapter(false, slog.Default()).ExitCodeFor(err))
}
