package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/batch"
	"github.com/xkilldash9x/typogen/internal/typo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DBPool is an interface that abstracts the pgxpool.Pool to allow for mocking in tests.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS typo_samples (
    run_id       TEXT        NOT NULL,
    sample_index INTEGER     NOT NULL,
    variant      INTEGER     NOT NULL,
    category     TEXT        NOT NULL DEFAULT '',
    input        TEXT        NOT NULL,
    output       TEXT        NOT NULL,
    edits        JSONB       NOT NULL DEFAULT '[]',
    reverted     BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (run_id, sample_index, variant)
);`

const listRunSQL = `
SELECT sample_index, variant, category, input, output, edits, reverted
FROM typo_samples
WHERE run_id = $1
ORDER BY sample_index ASC, variant ASC;`

// sampleColumns is the COPY column order for typo_samples.
var sampleColumns = []string{"run_id", "sample_index", "variant", "category", "input", "output", "edits", "reverted", "created_at"}

// Store persists batch records in PostgreSQL.
type Store struct {
	pool DBPool
	log  *zap.Logger
	now  func() time.Time
}

// New creates a store over pool. Connectivity is the caller's concern.
func New(pool DBPool, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		pool: pool,
		log:  logger.Named("store"),
		now:  time.Now,
	}
}

// EnsureSchema creates the typo_samples table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveRecords bulk inserts records in a single transaction.
func (s *Store) SaveRecords(ctx context.Context, records []batch.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback after a successful commit reports ErrTxClosed, which is expected.
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			s.log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	createdAt := s.now().UTC()
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		edits := rec.Result.Edits
		if edits == nil {
			edits = []typo.Edit{}
		}
		encoded, err := json.Marshal(edits)
		if err != nil {
			return fmt.Errorf("failed to encode edits for record %d/%d: %w", rec.SampleIndex, rec.Variant, err)
		}
		rows[i] = []interface{}{
			rec.RunID, rec.SampleIndex, rec.Variant, rec.Category,
			rec.Result.Input, rec.Result.Output,
			string(encoded), rec.Result.Reverted,
			createdAt,
		}
	}

	copyCount, err := tx.CopyFrom(ctx, pgx.Identifier{"typo_samples"}, sampleColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy records: %w", err)
	}
	if int(copyCount) != len(records) {
		return fmt.Errorf("mismatch in copied records count: expected %d, got %d", len(records), copyCount)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Info("Persisted batch records.", zap.String("run_id", records[0].RunID), zap.Int("count", len(records)))
	return nil
}

// ListRun reads every record of a run back in input order.
func (s *Store) ListRun(ctx context.Context, runID string) ([]batch.Record, error) {
	rows, err := s.pool.Query(ctx, listRunSQL, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []batch.Record
	for rows.Next() {
		rec := batch.Record{RunID: runID}
		var edits []byte
		err := rows.Scan(
			&rec.SampleIndex, &rec.Variant, &rec.Category,
			&rec.Result.Input, &rec.Result.Output,
			&edits, &rec.Result.Reverted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		if len(edits) > 0 {
			if err := json.Unmarshal(edits, &rec.Result.Edits); err != nil {
				return nil, fmt.Errorf("failed to decode edits for record %d/%d: %w", rec.SampleIndex, rec.Variant, err)
			}
			if len(rec.Result.Edits) == 0 {
				rec.Result.Edits = nil
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return records, nil
}
