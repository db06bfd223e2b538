package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the level named by LOG_LEVEL
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		logger.Warn("unknown LOG_LEVEL, using info", "err", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// LoadTuningFromEnv loads the tuning file named by SHOOTER_CONFIG, or returns
// the defaults when the variable is unset.
func LoadTuningFromEnv() (Tuning, error) {
	path := GetEnv("SHOOTER_CONFIG", "")
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}
