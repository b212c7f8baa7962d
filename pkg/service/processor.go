package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/obrtnik/financije/pkg/config"
	"github.com/obrtnik/financije/pkg/csv"
	"github.com/obrtnik/financije/pkg/engine"
)

// Processor reads extracted statement text files, runs the ingestion engine
// and writes review CSVs next to the inputs (or into the configured output
// directory).
type Processor struct {
	config *config.Config
	engine *engine.Engine
	filter csv.FilterFunc
	logger *log.Logger
}

// NewProcessor creates a Processor. The filter trims the review output; nil
// keeps everything.
func NewProcessor(cfg *config.Config, eng *engine.Engine, filter csv.FilterFunc, logger *log.Logger) *Processor {
	return &Processor{config: cfg, engine: eng, filter: filter, logger: logger}
}

// ProcessDirectory processes every text file in dir. Per-file failures are
// logged, not fatal, so one bad statement does not stop a batch.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}
		if err := p.ProcessFile(ctx, filepath.Join(dir, entry.Name())); err != nil {
			p.logger.Error("failed to process file", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

// ProcessFile runs the engine over one extracted-text file and writes the
// review CSV.
func (p *Processor) ProcessFile(ctx context.Context, inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	p.logger.Info("processing statement", "path", inputPath)

	transactions, err := p.engine.Process(ctx, string(data))
	if err != nil {
		return fmt.Errorf("error processing statement: %w", err)
	}

	outputPath := p.determineOutputPath(inputPath)
	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer output.Close()

	if err := csv.Write(output, transactions, p.filter); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	p.logger.Info("statement processed", "input", inputPath, "output", outputPath, "transactions", len(transactions))
	return nil
}

func (p *Processor) determineOutputPath(inputPath string) string {
	fileName := filepath.Base(inputPath)
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	if p.config.OutputPath != "" {
		return filepath.Join(p.config.OutputPath, baseName+"-pregled.csv")
	}
	return strings.TrimSuffix(inputPath, ext) + "-pregled.csv"
}
