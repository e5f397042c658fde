package decoder

import (
	"io"
	"log/slog"
)

// logger is this package's sink for non-fatal diagnostics such as cache
// misses against the registry. It discards by default, matching the
// teacher's own logger package's discard-until-installed convention,
// until a caller installs one with SetLogger.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger installs l as the decoder package's diagnostic sink.
func SetLogger(l *slog.Logger) { logger = l }
