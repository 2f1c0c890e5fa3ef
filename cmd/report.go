// File: cmd/report.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/batch"
	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/observability"
	"github.com/xkilldash9x/typogen/internal/reporting"
	"github.com/xkilldash9x/typogen/internal/store"
)

// recordStore is the persistence surface used by the batch and report commands.
type recordStore interface {
	EnsureSchema(ctx context.Context) error
	SaveRecords(ctx context.Context, records []batch.Record) error
	ListRun(ctx context.Context, runID string) ([]batch.Record, error)
}

// storeProvider creates a recordStore. Tests inject a fake instead of a live
// database connection.
type storeProvider interface {
	// Create returns the store, a cleanup function to release resources, and
	// an error if the creation fails.
	Create(ctx context.Context, cfg config.Interface) (recordStore, func(), error)
}

// defaultStoreProvider connects to PostgreSQL.
type defaultStoreProvider struct{}

// NewStoreProvider returns the production store provider.
func NewStoreProvider() storeProvider {
	return &defaultStoreProvider{}
}

// Create connects to the configured database, verifies the connection and
// makes sure the schema exists.
func (p *defaultStoreProvider) Create(ctx context.Context, cfg config.Interface) (recordStore, func(), error) {
	logger := observability.GetLogger()
	if cfg.Database().URL == "" {
		return nil, nil, fmt.Errorf("database URL is not configured (TYPOGEN_DATABASE_URL)")
	}

	pool, err := pgxpool.New(ctx, cfg.Database().URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	storeService := store.New(pool, logger)
	if err := storeService.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to initialize store service: %w", err)
	}

	cleanup := func() {
		pool.Close()
		logger.Debug("Database connection pool closed.")
	}
	return storeService, cleanup, nil
}

// newReportCmd creates and configures the `report` command.
func newReportCmd(provider storeProvider) *cobra.Command {
	var runID string
	var outputPath string
	var format string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Export a stored batch run",
		Long: `Reads every record of a batch run persisted with 'batch --store' and
writes it in the selected format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Output().Format
			}
			return runReport(ctx, cmd.OutOrStdout(), observability.GetLogger(), cfg, runID, outputPath, format, provider)
		},
	}

	reportCmd.Flags().StringVar(&runID, "run-id", "", "The ID of the batch run to export (required)")
	_ = reportCmd.MarkFlagRequired("run-id")
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path. If unset, records are printed to stdout.")
	reportCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, jsonl or yaml.")

	return reportCmd
}

// runReport contains the core, testable logic for exporting a run.
func runReport(
	ctx context.Context,
	out io.Writer,
	logger *zap.Logger,
	cfg config.Interface,
	runID, outputPath, format string,
	provider storeProvider,
) error {
	logger.Info("Exporting batch run", zap.String("run_id", runID))

	storeService, cleanup, err := provider.Create(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	records, err := storeService.ListRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found for run %s", runID)
	}

	reporter, err := openReporter(format, outputPath, out)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := reporter.Write(rec); err != nil {
			_ = reporter.Close()
			return err
		}
	}
	if err := reporter.Close(); err != nil {
		return fmt.Errorf("failed to finalize report: %w", err)
	}

	logger.Info("Run exported", zap.String("run_id", runID), zap.Int("records", len(records)))
	return nil
}

// openReporter writes to path, or to out when path is empty.
func openReporter(format, path string, out io.Writer) (reporting.Reporter, error) {
	var (
		reporter reporting.Reporter
		err      error
	)
	if path == "" {
		reporter, err = reporting.NewWithWriter(format, out)
	} else {
		reporter, err = reporting.New(format, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize reporter: %w", err)
	}
	return reporter, nil
}
