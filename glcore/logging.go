package glcore

import (
	"fmt"
	"log/slog"
)

// diagLogger is the narrow logging surface the interpreters use for
// recoverable diagnostics (§7): shader/link failures and framebuffer
// incompleteness. It is satisfied by *slog.Logger, following the
// teacher's EnableDebugOutput use of log/slog rather than the standard
// log package.
type diagLogger interface {
	Logf(format string, args ...any)
}

// slogDiag adapts *slog.Logger to diagLogger.
type slogDiag struct {
	log *slog.Logger
}

func (s slogDiag) Logf(format string, args ...any) {
	s.log.Warn(fmt.Sprintf(format, args...))
}

func newDiagLogger(log *slog.Logger) diagLogger {
	if log == nil {
		log = slog.Default()
	}
	return slogDiag{log: log}
}
