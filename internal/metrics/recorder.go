package metrics

import "time"

// ResultLabel enumerates load outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultInvalid ResultLabel = "invalid"
	ResultError   ResultLabel = "error"
)

// Recorder defines observability hooks for configuration loads. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveLoad(d time.Duration, result ResultLabel)
	IncValidationError(errorType string) // errorType: unknown_option|invalid_value
	SetIntegrations(counts map[string]int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoad(time.Duration, ResultLabel) {}
func (NoopRecorder) IncValidationError(string)              {}
func (NoopRecorder) SetIntegrations(map[string]int)         {}
