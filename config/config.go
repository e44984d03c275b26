package config

import "github.com/rs/zerolog"

type PnGoConfig struct {
	LogLevel     zerolog.Level
	OutputFormat string
	Limits       LimitsConfig
}

// LimitsConfig bounds the memory a single decode may claim. Zero disables a
// limit.
type LimitsConfig struct {
	MaxPixels            uint64
	MaxDecompressedBytes int64
}

// Config is read by the CLI and logging setup. Command-line flags overwrite
// its fields before any decoding happens.
var Config = PnGoConfig{
	LogLevel:     zerolog.InfoLevel,
	OutputFormat: "raw",
	Limits: LimitsConfig{
		MaxPixels:            1 << 28,
		MaxDecompressedBytes: 1 << 31,
	},
}
