package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/htmlcsv/internal/dataset"
	"github.com/hyperifyio/htmlcsv/internal/extract"
	"github.com/hyperifyio/htmlcsv/internal/htmldoc"
	"github.com/hyperifyio/htmlcsv/internal/locate"
)

// App runs the extraction pipeline over every discovered input file.
type App struct {
	cfg Config
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg}, nil
}

// Run processes each input file to completion, one table at a time:
// locate tables, extract records, write one CSV per non-empty table. The
// first failure aborts the whole run; extraction anomalies (no header, no
// data, missing table name) are normal outcomes, not failures.
func (a *App) Run(ctx context.Context) error {
	files, err := enumerateInputs(a.cfg.InputPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn().Str("input", a.cfg.InputPath).Msg("no HTML files found")
		return nil
	}

	if !a.cfg.DryRun {
		if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := a.processFile(file); err != nil {
			return fmt.Errorf("process %s: %w", file, err)
		}
	}
	return nil
}

func (a *App) processFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := htmldoc.Load(data, a.cfg.Encoding)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	base := baseNameOf(path)
	tables := locate.Tables(doc, a.cfg.HeaderSelectors, a.cfg.Separator)
	log.Debug().Str("source", path).Int("tables", len(tables)).Msg("located tables")

	opts := extract.Options{
		Attributes: a.cfg.Attributes,
		NestedTags: a.cfg.NestedTags,
	}
	for _, t := range tables {
		res := extract.Extract(t.Sel, opts)
		if len(res.Records) == 0 {
			log.Info().Str("source", path).Int("table", t.Index).Msg("no data, skipping")
			continue
		}
		if a.cfg.DryRun {
			log.Info().
				Str("source", path).
				Int("table", t.Index).
				Int("rows", len(res.Records)).
				Int("columns", len(res.Columns)).
				Str("wouldWrite", dataset.FileName(base, t.Index, t.Name)).
				Msg("dry run")
			continue
		}
		out, err := dataset.Write(a.cfg.OutputDir, base, t.Index, t.Name, res.Columns, res.Records)
		if err != nil {
			return fmt.Errorf("table %d: %w", t.Index, err)
		}
		log.Info().
			Str("source", path).
			Int("table", t.Index).
			Int("rows", len(res.Records)).
			Str("out", out).
			Msg("wrote table")
	}
	return nil
}
