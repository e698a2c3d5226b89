package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// newLogger opens a file-backed debug logger, or a nop logger when path is
// empty. Logs never go to stdout: the TUI owns the terminal. The returned
// close function flushes and closes the log file.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
