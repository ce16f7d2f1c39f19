package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"logmerge/pkg/logging"
	"logmerge/pkg/merge"
	"logmerge/pkg/outdir"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runMerge prepares the output directory and merges the two inputs into it.
func runMerge(cmd *cobra.Command, args []string) error {
	cfg := runConfig
	logger := logging.Logger
	startTime := time.Now()
	inputA, inputB, outputDir := args[0], args[1], args[2]

	if err := outdir.Prepare(outputDir, cfg.Force, logger); err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, cfg.OutputName)
	logger.Info("Merging logs",
		zap.String("inputA", inputA),
		zap.String("inputB", inputB),
		zap.String("output", outPath),
		zap.String("timestampField", cfg.TimestampField))

	stats, err := merge.MergeFiles(inputA, inputB, outPath, merge.FileOptions{
		TimestampField: cfg.TimestampField,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to merge logs: %w", err)
	}

	logger.Info("Merge completed",
		zap.String("output", outPath),
		zap.Int("fromA", stats.FromA),
		zap.Int("fromB", stats.FromB),
		zap.Int("total", stats.Total()),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
