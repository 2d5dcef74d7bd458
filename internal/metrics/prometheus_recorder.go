package metrics

import (
	"fmt"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "siteconf"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	registry         *prom.Registry
	loads            *prom.CounterVec
	loadDuration     prom.Histogram
	integrations     *prom.GaugeVec
	validationErrors *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.once.Do(func() {
		pr.loads = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "load_total",
			Help:      "Configuration loads by result",
		}, []string{"result"})
		pr.loadDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent reading and validating configuration",
			Buckets:   prom.ExponentialBuckets(0.0005, 2, 12),
		})
		pr.integrations = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "integrations",
			Help:      "Integrations in the last successfully loaded configuration, by kind",
		}, []string{"kind"})
		pr.validationErrors = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Rejected configurations by error type",
		}, []string{"type"})
		reg.MustRegister(pr.loads, pr.loadDuration, pr.integrations, pr.validationErrors)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveLoad(d time.Duration, result ResultLabel) {
	if p == nil || p.loads == nil {
		return
	}
	p.loads.WithLabelValues(string(result)).Inc()
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncValidationError(errorType string) {
	if p == nil || p.validationErrors == nil {
		return
	}
	p.validationErrors.WithLabelValues(errorType).Inc()
}

// SetIntegrations replaces the per-kind gauge values; kinds absent from counts are dropped.
func (p *PrometheusRecorder) SetIntegrations(counts map[string]int) {
	if p == nil || p.integrations == nil {
		return
	}
	p.integrations.Reset()
	for kind, n := range counts {
		p.integrations.WithLabelValues(kind).Set(float64(n))
	}
}

// WriteTextfile writes the registry in the text exposition format, atomically
// replacing path.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil || p.registry == nil {
		return nil
	}
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
