package main

import (
	"bufio"
	"os"

	"pnGo/config"
	"pnGo/logging"
	"pnGo/oops"
	"pnGo/pngDecoder"
	"pnGo/utils"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var DecodeCommand = &cobra.Command{
	Use:   "pnGo <input.png> <output>",
	Short: "Decode a PNG file into raw RGBA pixels",
	Long: `Decode a PNG file into a flat RGBA buffer: 4 bytes per pixel, row-major,
top-left origin. Use --format to write a PPM or BMP instead.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := zerolog.ParseLevel(levelName)
		if err != nil {
			return oops.New(err, "invalid log level %q", levelName)
		}
		logging.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return decodeFile(args[0], args[1])
	},
}

func init() {
	flags := DecodeCommand.Flags()
	flags.StringVarP(&config.Config.OutputFormat, "format", "f", config.Config.OutputFormat, "output format: raw, ppm or bmp")
	flags.String("log-level", config.Config.LogLevel.String(), "log level: trace, debug, info, warn or error")
	flags.Uint64Var(&config.Config.Limits.MaxPixels, "max-pixels", config.Config.Limits.MaxPixels, "reject images with more pixels than this (0 for no limit)")
	flags.Int64Var(&config.Config.Limits.MaxDecompressedBytes, "max-inflate", config.Config.Limits.MaxDecompressedBytes, "reject images whose inflated data is larger than this many bytes (0 for no limit)")
}

func decodeFile(inputPath, outputPath string) error {
	format, err := utils.ParseFormat(config.Config.OutputFormat)
	if err != nil {
		return oops.New(err, "bad --format")
	}
	logging.Debug().
		Str("input", inputPath).
		Str("output", outputPath).
		Stringer("format", format).
		Uint64("max_pixels", config.Config.Limits.MaxPixels).
		Int64("max_inflate", config.Config.Limits.MaxDecompressedBytes).
		Msg("decoding")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return oops.New(err, "failed to read %s", inputPath)
	}

	decoder := pngDecoder.NewDecoder(
		pngDecoder.WithLogger(logging.With().Str("file", inputPath).Logger()),
		pngDecoder.WithLimits(pngDecoder.Limits{
			MaxPixels:            config.Config.Limits.MaxPixels,
			MaxDecompressedBytes: config.Config.Limits.MaxDecompressedBytes,
		}),
	)
	img, err := decoder.Decode(data)
	if err != nil {
		return oops.New(err, "failed to decode %s", inputPath)
	}

	if format == utils.FormatPPM && img.ColorModel.HasAlpha() {
		logging.Warn().Str("input", inputPath).Msg("PPM output drops the alpha channel")
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return oops.New(err, "failed to create %s", outputPath)
	}
	defer outputFile.Close()

	w := bufio.NewWriter(outputFile)
	if err := utils.WriteImage(w, format, img.Width, img.Height, img.Pix); err != nil {
		return oops.New(err, "failed to write %s", outputPath)
	}
	if err := w.Flush(); err != nil {
		return oops.New(err, "failed to write %s", outputPath)
	}
	if err := outputFile.Close(); err != nil {
		return oops.New(err, "failed to close %s", outputPath)
	}

	logging.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("width", img.Width).
		Int("height", img.Height).
		Stringer("color_model", img.ColorModel).
		Stringer("format", format).
		Msg("decoded image")
	return nil
}

func main() {
	if err := DecodeCommand.Execute(); err != nil {
		logging.Fatal().Err(err).Msg("pnGo failed")
	}
}
