package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_SetsGlobalLevel(t *testing.T) {
	NewLogger(LoggerConfig{Level: "warn", Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	NewLogger(LoggerConfig{Level: "debug", Format: "json"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	NewLogger(LoggerConfig{Level: "verbose", Format: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	NewLogger(LoggerConfig{Level: "", Format: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewLogger_Formats(t *testing.T) {
	// Both formats produce a usable logger and pin the global level.
	NewLogger(LoggerConfig{Level: "error", Format: "console"})
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	NewLogger(LoggerConfig{Level: "info", Format: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
