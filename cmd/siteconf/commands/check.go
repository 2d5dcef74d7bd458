package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Watch       bool   `short:"w" help:"Keep running and re-check whenever a configuration file changes"`
	MetricsFile string `name:"metrics-file" help:"Write load metrics to this file (Prometheus textfile format)" type:"path"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prometheus *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		prometheus = metrics.NewPrometheusRecorder(prom.NewRegistry())
		recorder = prometheus
	}
	flush := func() {
		if prometheus == nil {
			return
		}
		if err := prometheus.WriteTextfile(c.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}

	if !c.Watch {
		_, err := RunCheck(g.out(), root.Config, recorder)
		flush()
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return WatchCheck(ctx, g.out(), root.Config, recorder, flush)
}

// RunCheck loads the configuration once, records the outcome and prints a summary.
func RunCheck(out io.Writer, paths []string, recorder metrics.Recorder) (*config.SiteConfiguration, error) {
	start := time.Now()
	cfg, err := config.LoadFiles(paths...)
	recordLoad(recorder, time.Since(start), cfg, err)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintln(out, Summary(cfg))
	return cfg, nil
}

// WatchCheck runs RunCheck now and after every settled change until ctx ends.
// Failed checks are reported but do not stop watching.
func WatchCheck(ctx context.Context, out io.Writer, paths []string, recorder metrics.Recorder, after func()) error {
	if _, err := RunCheck(out, paths, recorder); err != nil {
		_, _ = fmt.Fprintf(out, "Configuration invalid: %v\n", err)
	}
	if after != nil {
		after()
	}

	w, err := config.NewWatcher(paths, func(cfg *config.SiteConfiguration, err error) {
		recordLoad(recorder, 0, cfg, err)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Configuration invalid: %v\n", err)
		} else {
			_, _ = fmt.Fprintln(out, Summary(cfg))
		}
		if after != nil {
			after()
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	<-ctx.Done()
	return nil
}

func recordLoad(recorder metrics.Recorder, d time.Duration, cfg *config.SiteConfiguration, err error) {
	label := config.ErrorLabel(err)
	switch label {
	case "none":
		recorder.ObserveLoad(d, metrics.ResultSuccess)
		counts := map[string]int{}
		for _, in := range cfg.Integrations {
			counts[string(in.Kind)]++
		}
		recorder.SetIntegrations(counts)
	case "unknown_option", "invalid_value":
		recorder.ObserveLoad(d, metrics.ResultInvalid)
		recorder.IncValidationError(label)
	default:
		recorder.ObserveLoad(d, metrics.ResultError)
	}
}

// Summary describes a loaded configuration in one line.
func Summary(cfg *config.SiteConfiguration) string {
	kinds := make([]string, 0, len(cfg.Integrations))
	for _, in := range cfg.Integrations {
		kinds = append(kinds, string(in.Kind))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Configuration valid: %d integration(s)", len(kinds))
	if len(kinds) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(kinds, ", "))
	}
	if a, ok := cfg.Adapter.Get(); ok {
		fmt.Fprintf(&b, ", adapter %s", a.Kind)
	} else {
		b.WriteString(", no adapter")
	}
	if cfg.Formatter != nil {
		fmt.Fprintf(&b, ", formatter with %d plugin(s)", len(cfg.Formatter.Plugins))
	}
	return b.String()
}
