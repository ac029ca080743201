package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug level", level: "debug", want: zerolog.DebugLevel},
		{name: "info level", level: "info", want: zerolog.InfoLevel},
		{name: "warn level", level: "warn", want: zerolog.WarnLevel},
		{name: "error level", level: "error", want: zerolog.ErrorLevel},
		{name: "unknown defaults to info", level: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestLoggerReturnsGlobal(t *testing.T) {
	Init("info", false)
	log := Logger()
	// Smoke check: the returned logger is usable.
	log.Info().Msg("test message")
}
