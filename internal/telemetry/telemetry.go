// SPDX-License-Identifier: MIT
// Package telemetry wraps log/slog for spmv's driver. It is never used
// inside the traversal hot loop — only around plan-build and whole-call
// boundaries, keeping logging out of per-element loops.
package telemetry

import (
	"io"
	"log/slog"
)

// Logger is the narrow structured-logging surface spmv depends on.
type Logger struct {
	slog *slog.Logger
}

// New wraps an existing *slog.Logger. A nil logger is replaced with one
// that discards all output, so callers never need a nil check.
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Logger{slog: l}
}

// Discard returns a Logger that drops every record; it is the default
// used by spmv.Run when no logger is configured.
func Discard() *Logger { return New(nil) }

// PlanBuilt logs one structured event per partition plan build.
func (l *Logger) PlanBuilt(workers, rows, nnz int) {
	l.slog.Info("mergepath: plan built", "workers", workers, "rows", rows, "nnz", nnz)
}

// RunCompleted logs one structured event per completed SpMV call.
func (l *Logger) RunCompleted(workers, rows, nnz int, strategy string) {
	l.slog.Info("spmv: run completed", "workers", workers, "rows", rows, "nnz", nnz, "strategy", strategy)
}

// RunFailed logs a failed SpMV call with its error.
func (l *Logger) RunFailed(err error) {
	l.slog.Error("spmv: run failed", "error", err)
}
