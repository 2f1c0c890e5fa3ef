// File: cmd/helpers_test.go
package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/typogen/internal/batch"
	"github.com/xkilldash9x/typogen/internal/config"
	"github.com/xkilldash9x/typogen/internal/typo"
)

// executeCommand runs a fresh root command with args and returns its stdout.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(io.Discard)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	// A nil slice would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// createTempConfig writes content to a config file inside the test's temp dir.
func createTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// newTestConfig returns the defaults with every rate zeroed, so the engine
// only normalizes whitespace.
func newTestConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.SetTypoConfig(typo.Config{Seed: 1})
	return cfg
}

// zeroRateArgs disables every random decision from the command line.
var zeroRateArgs = []string{
	"--error-rate=0", "--word-drop-rate=0", "--space-error-rate=0",
}

// -- Store fakes --

type mockRecordStore struct {
	mock.Mock
}

func (m *mockRecordStore) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRecordStore) SaveRecords(ctx context.Context, records []batch.Record) error {
	return m.Called(ctx, records).Error(0)
}

func (m *mockRecordStore) ListRun(ctx context.Context, runID string) ([]batch.Record, error) {
	args := m.Called(ctx, runID)
	records, _ := args.Get(0).([]batch.Record)
	return records, args.Error(1)
}

type fakeStoreProvider struct {
	store     recordStore
	err       error
	mu        sync.Mutex
	cleanedUp bool
}

func (p *fakeStoreProvider) Create(ctx context.Context, cfg config.Interface) (recordStore, func(), error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	return p.store, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.cleanedUp = true
	}, nil
}

func (p *fakeStoreProvider) wasCleanedUp() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cleanedUp
}

// syncBuffer is a goroutine-safe bytes.Buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
