// Package main provides the syllable filter command-line tool. It reads
// words.txt, keeps the two-syllable words and writes filtered_output.json.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wordcrush/internal/config"
	"wordcrush/internal/formatter"
	"wordcrush/internal/loader"
	"wordcrush/internal/logger"
	"wordcrush/internal/normalizer"
	"wordcrush/internal/writer"
)

func main() {
	os.Exit(run(".", os.Stdout, logger.NewLogger("info")))
}

// run executes the whole pipeline inside dir and returns the process exit code.
func run(dir string, out io.Writer, log *logger.Logger) int {
	cfg := loadSettings(dir, log)

	inputPath := filepath.Join(dir, config.InputFile)
	outputPath := filepath.Join(dir, config.OutputFile)

	// Load
	res, err := loader.NewLoader(log).LoadFile(inputPath)
	if err != nil {
		if errors.Is(err, loader.ErrSourceNotFound) {
			fmt.Fprintf(out, "❌ File not found: %s\n", inputPath)
		} else {
			fmt.Fprintf(out, "❌ %v\n", err)
		}

		return 1
	}

	for _, skipped := range res.Skipped {
		fmt.Fprintf(out, "⚠️  Error: %s\n", strings.TrimRight(skipped.Content, "\r\n"))
	}

	// Validate and normalize
	entries, stats := normalizer.NewProcessor().Process(res.Records)

	log.Info("words processed",
		"loaded", stats.Input,
		"skipped_lines", len(res.Skipped),
		"valid", stats.Valid,
		"emitted", stats.Emitted,
	)

	// Write
	if err := writer.WriteFile(outputPath, entries); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "✅ Export json file successfully in: %s\n", outputPath)

	if cfg.Report.Preview {
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.FormatPreview(entries, cfg.Report.PreviewLimit))
	}

	return 0
}

// loadSettings reads the optional settings file and applies its log level.
// A broken file is reported and ignored.
func loadSettings(dir string, log *logger.Logger) *config.Config {
	path := filepath.Join(dir, config.SettingsFile)

	cfg, found, err := config.LoadOptional(path)
	if err != nil {
		log.Warn("ignoring settings file", "path", path, "error", err)
		return cfg
	}

	log.SetLevel(cfg.Logging.Level)

	if found {
		log.Debug("settings loaded", "path", path, "config", cfg.String())
	}

	return cfg
}
