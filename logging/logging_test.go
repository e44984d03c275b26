package logging

import (
	"errors"
	"testing"
	"time"

	"pnGo/config"
	"pnGo/oops"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(zerolog.InfoLevel)

	SetLevel(zerolog.DebugLevel)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, zerolog.DebugLevel, config.Config.LogLevel)

	SetLevel(zerolog.ErrorLevel)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}

func TestStackMarshalerInstalled(t *testing.T) {
	err := oops.New(errors.New("boom"), "test error")
	_, ok := zerolog.ErrorStackMarshaler(err).(oops.CallStack)
	assert.True(t, ok)
}

func TestNewConsoleWriter(t *testing.T) {
	w := NewConsoleWriter()
	assert.Equal(t, time.Kitchen, w.TimeFormat)
	assert.NotNil(t, w.Out)
}
