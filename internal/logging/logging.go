// v2
// internal/logging/logging.go

// Package logging wires the process logger: structured slog output copied
// to stdout and to a per-service file, so every run leaves a reviewable
// trace on disk. Level and destination come from the environment.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options control how the run logger is built. The zero value logs at info
// in text format to stdout plus ./logs/<service>.log.
type Options struct {
	Dir        string     // log directory; empty means ./logs
	Level      slog.Level // minimum level
	JSON       bool       // JSON handler instead of text
	StdoutOnly bool       // skip the file sink entirely
}

// FromEnv derives Options from COLDSIM_LOG_DIR, COLDSIM_LOG_LEVEL
// (debug, info, warn, error) and COLDSIM_LOG_FORMAT (text, json).
// Unknown values fall back to the defaults.
func FromEnv() Options {
	var o Options
	o.Dir = os.Getenv("COLDSIM_LOG_DIR")
	o.Level = ParseLevel(os.Getenv("COLDSIM_LOG_LEVEL"))
	o.JSON = strings.EqualFold(os.Getenv("COLDSIM_LOG_FORMAT"), "json")
	return o
}

// ParseLevel maps a level name to its slog level; anything unrecognized,
// including the empty string, means info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init builds the logger for a service and returns it with the opened log
// file so callers can Close() on shutdown. When the file cannot be opened
// (or StdoutOnly is set) it degrades to stdout alone and returns os.Stdout.
// The legacy stdlib log output is redirected to the same sinks.
func Init(service string, o Options) (*slog.Logger, *os.File) {
	handler := func(w io.Writer) slog.Handler {
		opts := &slog.HandlerOptions{Level: o.Level}
		if o.JSON {
			return slog.NewJSONHandler(w, opts)
		}
		return slog.NewTextHandler(w, opts)
	}

	if o.StdoutOnly {
		logger := slog.New(handler(os.Stdout))
		log.SetOutput(os.Stdout)
		return logger, os.Stdout
	}

	dir := o.Dir
	if dir == "" {
		dir = "./logs"
	}
	_ = os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, service+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(handler(os.Stdout))
		logger.Error("failed to open log file; falling back to stdout only", "error", err)
		return logger, os.Stdout
	}

	out := io.MultiWriter(f, os.Stdout)
	logger := slog.New(handler(out))
	log.SetOutput(out)
	return logger, f
}
