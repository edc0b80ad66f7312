// SPDX-License-Identifier: MIT

package linalg

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// traceMsg is the message of every construction trace record.
const traceMsg = "construct"

// Trace attribute keys. Kept as constants so tests and log filters can rely on them.
const (
	TraceKeyType = "type"
	TraceKeyPath = "path"
)

var traceLogger atomic.Pointer[slog.Logger]

func init() {
	traceLogger.Store(discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// SetLogger installs the logger that receives construction traces.
// Every constructor emits one slog.LevelDebug record naming the type and the
// construction path it took, so the handler's level decides whether tracing
// is visible. A nil logger restores the default, which drops everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	traceLogger.Store(l)
}

// Logger returns the logger currently receiving construction traces.
func Logger() *slog.Logger {
	return traceLogger.Load()
}

// trace records that a value of kind typ was built through path.
// The Enabled check keeps constructors allocation-free when tracing is off.
func trace(typ, path string) {
	l := traceLogger.Load()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, traceMsg,
		slog.String(TraceKeyType, typ),
		slog.String(TraceKeyPath, path),
	)
}
