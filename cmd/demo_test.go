// File: cmd/demo_test.go
package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/typogen/internal/corpus"
)

func plainOutput(t *testing.T) {
	t.Helper()
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
}

func TestRunDemo(t *testing.T) {
	plainOutput(t)
	ctx := context.Background()

	t.Run("prints one pair per sample", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runDemo(ctx, &out, zap.NewNop(), demoOptions{seed: 7, category: corpus.CategoryCasual}))

		casual := corpus.Filter(corpus.Samples, corpus.CategoryCasual)
		assert.Equal(t, len(casual), strings.Count(out.String(), "Original:"))
		assert.Equal(t, len(casual), strings.Count(out.String(), "Generated:"))
		for _, s := range casual {
			assert.Contains(t, out.String(), s.Text)
		}
	})

	t.Run("a fixed seed replays the demo", func(t *testing.T) {
		var first, second bytes.Buffer
		opts := demoOptions{seed: 99}
		require.NoError(t, runDemo(ctx, &first, zap.NewNop(), opts))
		require.NoError(t, runDemo(ctx, &second, zap.NewNop(), opts))
		assert.Equal(t, first.String(), second.String())
		assert.Equal(t, len(corpus.Samples), strings.Count(first.String(), "Original:"))
	})

	t.Run("presets", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runDemo(ctx, &out, zap.NewNop(), demoOptions{seed: 1, preset: "conservative"}))

		_, err := executeCommand(t, nil, "demo", "--preset", "chaotic")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown preset")
	})

	t.Run("summary table", func(t *testing.T) {
		var out bytes.Buffer
		opts := demoOptions{seed: 3, category: corpus.CategoryAcademic, summary: true}
		require.NoError(t, runDemo(ctx, &out, zap.NewNop(), opts))
		assert.Contains(t, out.String(), "Category")
		assert.Contains(t, out.String(), corpus.CategoryAcademic)
	})

	t.Run("unknown category", func(t *testing.T) {
		err := runDemo(ctx, &bytes.Buffer{}, zap.NewNop(), demoOptions{category: "limericks"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no samples in category "limericks"`)
	})

	t.Run("via the command", func(t *testing.T) {
		out, err := executeCommand(t, nil, "demo", "--plain", "--seed", "5", "--category", corpus.CategoryLongTechnical)
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "Original:"))
	})
}
