// SPDX-License-Identifier: MIT
// Package linalg_test contains shared test helpers.
//
// Purpose:
//   - Provide tolerance-based comparisons for float32 results.
//   - Convert kernel types to gonum matrices used as an independent oracle.
//   - Capture construction traces emitted through slog.

package linalg_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/He-Is-HaZaRdOuS/raytrace/linalg"
)

// eps is the absolute tolerance for float32 results built from trig/sqrt.
const eps = 1e-5

func requireVec3Near(t testing.TB, want, got linalg.Vector3) {
	t.Helper()
	w, g := want.Array(), got.Array()
	for i := range w {
		require.InDeltaf(t, w[i], g[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func requireVec4Near(t testing.TB, want, got linalg.Vector4) {
	t.Helper()
	w, g := want.Array(), got.Array()
	for i := range w {
		require.InDeltaf(t, w[i], g[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func requireMat4Near(t testing.TB, want, got linalg.Matrix4) {
	t.Helper()
	w, g := want.Values(), got.Values()
	for i := range w {
		require.InDeltaf(t, w[i], g[i], eps, "entry [%d,%d]:\nwant\n%vgot\n%v", i/4, i%4, want, got)
	}
}

// toGonum copies m into a 4×4 gonum Dense (row-major, float64).
func toGonum(m linalg.Matrix4) *mat.Dense {
	vals := m.Values()
	data := make([]float64, len(vals))
	for i, v := range vals {
		data[i] = float64(v)
	}
	return mat.NewDense(4, 4, data)
}

// sample4 is a fixed, non-symmetric matrix with det = -24.
func sample4() linalg.Matrix4 {
	return linalg.NewMatrix4(
		2, 1, 0, 3,
		1, 3, 2, 0,
		0, 1, 4, 1,
		3, 0, 1, 5,
	)
}

// traceRecord is one captured construction trace.
type traceRecord struct {
	level slog.Level
	typ   string
	path  string
}

// recordingHandler is a slog.Handler that keeps every record at or above level.
type recordingHandler struct {
	mu      sync.Mutex
	level   slog.Level
	records []traceRecord
}

func (h *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	rec := traceRecord{level: r.Level}
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case linalg.TraceKeyType:
			rec.typ = a.Value.String()
		case linalg.TraceKeyPath:
			rec.path = a.Value.String()
		}
		return true
	})
	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

// take returns and clears the captured records.
func (h *recordingHandler) take() []traceRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.records
	h.records = nil
	return out
}

// captureTraces installs a recording logger at the given level for the
// duration of the test. Tests using it must not call t.Parallel.
func captureTraces(t *testing.T, level slog.Level) *recordingHandler {
	t.Helper()
	h := &recordingHandler{level: level}
	prev := linalg.Logger()
	linalg.SetLogger(slog.New(h))
	t.Cleanup(func() { linalg.SetLogger(prev) })
	return h
}
