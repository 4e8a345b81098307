package boltzvec

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLogger(handler), &buf
}

func TestNewLoggerNilHandler(t *testing.T) {
	l := NewLogger(nil)
	require.NotNil(t, l.Logger)
}

func TestLoggerWithDimension(t *testing.T) {
	l, buf := newCaptureLogger()
	l.WithDimension(42).Info("ready")
	assert.Contains(t, buf.String(), "dimension=42")
}

func TestLogSolve(t *testing.T) {
	l, buf := newCaptureLogger()

	l.LogSolve(context.Background(), 7, nil)
	assert.Contains(t, buf.String(), "solve completed")
	assert.Contains(t, buf.String(), "steps=7")

	buf.Reset()
	l.LogSolve(context.Background(), 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "solve failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestLogTimeSteps(t *testing.T) {
	l, buf := newCaptureLogger()
	l.LogTimeSteps(context.Background(), 5, 3, nil)
	assert.Contains(t, buf.String(), "time stepping completed")
	assert.Contains(t, buf.String(), "requested=5")
	assert.Contains(t, buf.String(), "produced=3")
}

func TestLogApply(t *testing.T) {
	l, buf := newCaptureLogger()
	l.LogApply(context.Background(), "lf", 2, nil)
	assert.Contains(t, buf.String(), "operator applied")
	assert.Contains(t, buf.String(), "operator=lf")
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	// Must not panic and must not emit at any normal level.
	l.LogSolve(context.Background(), 1, nil)
	l.Error("dropped")
}

func TestSolverLogsSolve(t *testing.T) {
	l, buf := newCaptureLogger()
	s, _ := newTestSolver(t, 2, 2, WithLogger(l))

	_, err := s.Solve(context.Background(), false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "solve completed")
	assert.Contains(t, buf.String(), "dimension=2")
}
