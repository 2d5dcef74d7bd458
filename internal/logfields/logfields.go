package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath  = "config_path"
	KeyIntegration = "integration"
	KeyAdapter     = "adapter"
	KeyOption      = "option"
	KeyFormat      = "format"
	KeyCount       = "count"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeyEvent       = "event"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr     { return slog.String(KeyConfigPath, p) }
func Integration(kind string) slog.Attr { return slog.String(KeyIntegration, kind) }
func Adapter(kind string) slog.Attr     { return slog.String(KeyAdapter, kind) }
func Option(path string) slog.Attr      { return slog.String(KeyOption, path) }
func Format(f string) slog.Attr         { return slog.String(KeyFormat, f) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Event(e string) slog.Attr          { return slog.String(KeyEvent, e) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
