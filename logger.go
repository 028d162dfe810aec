package vecdist

import (
	"io"
	"log/slog"
	"math"
)

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older
// toolchains: a level above every log level means nothing is emitted.
var discardHandler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt32)})

// Package-level logger for rejected calls. Discards by default: a
// validation failure is already reported through the returned error,
// and the hot path must stay silent.
var logger = slog.New(discardHandler)

// SetLogger routes rejection diagnostics to l. Passing nil restores the
// discard default. Not safe to call concurrently with scans.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(discardHandler)
		return
	}
	logger = l
}

func logReject(op string, err error) error {
	logger.Debug("call rejected", "op", op, "err", err)
	return err
}
