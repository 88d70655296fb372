package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyIOC     = "ioc"
	KeyService = "service"
	KeyPath    = "path"
	KeyFile    = "file"
	KeyCount   = "count"
	KeyURL     = "url"
	KeyRunID   = "run_id"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func IOC(name string) slog.Attr     { return slog.String(KeyIOC, name) }
func Service(name string) slog.Attr { return slog.String(KeyService, name) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func File(f string) slog.Attr       { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func URL(u string) slog.Attr        { return slog.String(KeyURL, u) }
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
