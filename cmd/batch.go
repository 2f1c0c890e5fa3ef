// File: cmd/batch.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/batch"
	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/corpus"
	"github.com/xkilldash9x/typogen/internal/observability"
	"github.com/xkilldash9x/typogen/internal/typo"
)

type batchOptions struct {
	category string
	store    bool
}

// newBatchCmd creates and configures the `batch` command.
func newBatchCmd(provider storeProvider) *cobra.Command {
	var opts batchOptions

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Augment a corpus concurrently",
		Long: `Generates --variants noisy copies of every sample in --input (or the
built-in samples) using a pool of workers, writes them in the selected format
and optionally persists the run to PostgreSQL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			if err := applyTypoFlags(cmd, cfg); err != nil {
				return err
			}
			if err := applyBatchFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return runBatch(ctx, cmd.OutOrStdout(), observability.GetLogger(), cfg, opts, provider)
		},
	}

	batchCmd.Flags().StringP("input", "i", "", "corpus file (.yaml/.yml list or one sample per line); defaults to the built-in samples")
	batchCmd.Flags().StringP("output", "o", "", "output file path; stdout when unset")
	batchCmd.Flags().StringP("format", "f", "text", "output format: text, jsonl or yaml")
	batchCmd.Flags().IntP("workers", "w", 4, "concurrent workers")
	batchCmd.Flags().Int("variants", 1, "variants per sample")
	batchCmd.Flags().Float64("rate-limit", 0, "maximum records per second; 0 disables the cap")
	batchCmd.Flags().StringVar(&opts.category, "category", "", "only use samples of this category")
	batchCmd.Flags().BoolVar(&opts.store, "store", false, "persist the run to PostgreSQL (TYPOGEN_DATABASE_URL)")
	addTypoFlags(batchCmd)

	return batchCmd
}

// applyBatchFlags copies explicitly set batch, output and corpus flags into cfg.
func applyBatchFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	stringFlags := []struct {
		name string
		set  func(string)
	}{
		{"input", func(v string) { cfg.CorpusCfg.Path = v }},
		{"output", cfg.SetOutputPath},
		{"format", cfg.SetOutputFormat},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return err
		}
		f.set(v)
	}

	intFlags := []struct {
		name string
		set  func(int)
	}{
		{"workers", cfg.SetBatchWorkers},
		{"variants", cfg.SetBatchVariants},
	}
	for _, f := range intFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetInt(f.name)
		if err != nil {
			return err
		}
		f.set(v)
	}

	if flags.Changed("rate-limit") {
		v, err := flags.GetFloat64("rate-limit")
		if err != nil {
			return err
		}
		cfg.BatchCfg.RateLimit = v
	}
	// Workers fork the engine from the run seed, so --seed applies to the run.
	if flags.Changed("seed") {
		v, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}
		cfg.SetBatchSeed(v)
	}
	return nil
}

// runBatch contains the core, testable logic of the batch command.
func runBatch(
	ctx context.Context,
	out io.Writer,
	logger *zap.Logger,
	cfg config.Interface,
	opts batchOptions,
	provider storeProvider,
) error {
	samples := corpus.Samples
	if path := cfg.Corpus().Path; path != "" {
		loaded, err := corpus.Load(path)
		if err != nil {
			return err
		}
		samples = loaded
	}
	samples = corpus.Filter(samples, opts.category)
	if len(samples) == 0 {
		return fmt.Errorf("corpus is empty")
	}

	// Connect before generating anything so a bad database URL fails fast.
	var persist recordStore
	if opts.store {
		s, cleanup, err := provider.Create(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		if cleanup != nil {
			defer cleanup()
		}
		persist = s
	}

	reporter, err := openReporter(cfg.Output().Format, cfg.Output().Path, out)
	if err != nil {
		return err
	}
	defer func() {
		if err := reporter.Close(); err != nil {
			logger.Warn("Failed to close reporter cleanly.", zap.Error(err))
		}
	}()

	engine := typo.New(cfg.Typo(), logger)
	runner, err := batch.NewRunner(engine, cfg.Batch(), logger, batch.WithSink(reporter))
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx, samples)
	if err != nil {
		return err
	}

	if persist != nil {
		if err := persist.SaveRecords(ctx, report.Records); err != nil {
			return fmt.Errorf("failed to persist run %s: %w", report.RunID, err)
		}
	}

	logger.Info("Batch complete",
		zap.String("run_id", report.RunID),
		zap.Int64("seed", report.Seed),
		zap.Int("records", len(report.Records)),
		zap.Int("changed", report.Changed),
		zap.String("output", cfg.Output().Path),
		zap.Bool("stored", persist != nil),
	)
	return nil
}
