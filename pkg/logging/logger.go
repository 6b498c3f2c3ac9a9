// Package logging provides structured logging for the arcdata system using zerolog.
// It supports human-readable console output when attached to a terminal and
// structured JSON output otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("file", "metal-parts.json").Msg("Loaded item")
//
//	logging.Warn().
//	    Str("file", name).
//	    Msg("Record has no 'id' field")
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger zerolog.Logger

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

func init() {
	defaultLogger = NewLoggerFromConfig(DefaultConfig())
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// Configure updates the default logger with the given configuration.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// New creates a new logger with the given writer.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}
