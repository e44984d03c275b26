package logging

import (
	"os"
	"time"

	"pnGo/config"
	"pnGo/oops"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.ErrorStackMarshaler = oops.ZerologStackMarshaler
	log.Logger = log.Output(NewConsoleWriter())
	zerolog.SetGlobalLevel(config.Config.LogLevel)
}

// NewConsoleWriter renders log events for a human on stderr.
func NewConsoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
}

// SetLevel changes the global level after flags have been parsed.
func SetLevel(level zerolog.Level) {
	config.Config.LogLevel = level
	zerolog.SetGlobalLevel(level)
}

func Debug() *zerolog.Event {
	return log.Debug().Timestamp().Stack()
}

func Info() *zerolog.Event {
	return log.Info().Timestamp().Stack()
}

func Warn() *zerolog.Event {
	return log.Warn().Timestamp().Stack()
}

func Error() *zerolog.Event {
	return log.Error().Timestamp().Stack()
}

func Fatal() *zerolog.Event {
	return log.Fatal().Timestamp().Stack()
}

func With() zerolog.Context {
	return log.With().Stack()
}
