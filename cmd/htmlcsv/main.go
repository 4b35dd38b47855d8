package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/htmlcsv/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Dotenv files may supply the HTMLCSV_* defaults read below.
	if err := app.LoadEnvFiles(".env", ".htmlcsv.env"); err != nil {
		log.Warn().Err(err).Msg("env file")
	}

	var (
		inputPath  string
		outputDir  string
		attrs      string
		tags       string
		selectors  string
		separator  string
		encoding   string
		configPath string
		logFile    string
		dryRun     bool
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", os.Getenv("HTMLCSV_INPUT"), "HTML file or directory of .html files to process")
	flag.StringVar(&outputDir, "out", os.Getenv("HTMLCSV_OUT"), "Directory to write CSV files into")
	flag.StringVar(&attrs, "attrs", strings.Join(app.DefaultAttributes, ","), "Comma-separated attribute names captured from cells and nested elements")
	flag.StringVar(&tags, "tags", strings.Join(app.DefaultNestedTags, ","), "Comma-separated element tags to recurse into within cells")
	flag.StringVar(&selectors, "selectors", strings.Join(app.DefaultHeaderSelectors, ","), "Comma-separated CSS selectors for table-name headings")
	flag.StringVar(&separator, "sep", app.DefaultSeparator, "Table name is truncated at the first occurrence of this separator")
	flag.StringVar(&encoding, "encoding", os.Getenv("HTMLCSV_ENCODING"), "Force a source encoding label (e.g. windows-1252); empty detects per file")
	flag.StringVar(&configPath, "config", os.Getenv("HTMLCSV_CONFIG"), "Optional YAML or JSON config file; flags win over file values")
	flag.StringVar(&logFile, "log.file", "", "Also write JSON logs to this file")
	flag.BoolVar(&dryRun, "dry-run", false, "Locate and extract but write no CSV files")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:       inputPath,
		OutputDir:       outputDir,
		Attributes:      splitList(attrs),
		NestedTags:      splitList(tags),
		HeaderSelectors: splitList(selectors),
		Separator:       separator,
		Encoding:        encoding,
		DryRun:          dryRun,
		Verbose:         verbose,
		LogFile:         logFile,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.LogFile).Msg("open log file")
			os.Exit(1)
		}
		defer f.Close()
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log.Logger = log.Output(zerolog.MultiLevelWriter(console, f))
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(context.Background())
}

// splitList parses a comma-separated flag value into a trimmed slice.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}
