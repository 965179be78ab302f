package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDialect    = "dialect"
	KeyFormat     = "format"
	KeyEntity     = "entity"
	KeyKind       = "kind"
	KeyCount      = "count"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Dialect(d string) slog.Attr       { return slog.String(KeyDialect, d) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func Entity(name string) slog.Attr     { return slog.String(KeyEntity, name) }
func Kind(k string) slog.Attr          { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
