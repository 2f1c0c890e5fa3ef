// internal/corpus/corpus_test.go
package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/typogen/internal/typo"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSamples(t *testing.T) {
	require.Len(t, Samples, 87)

	seen := make(map[string]bool)
	for i, s := range Samples {
		assert.NotEmpty(t, s.Category, "sample %d has no category", i)
		assert.NotEmpty(t, strings.Fields(s.Text), "sample %d is blank", i)
		assert.False(t, seen[s.Text], "duplicate sample %q", s.Text)
		seen[s.Text] = true
	}

	assert.Len(t, Filter(Samples, CategoryLongTechnical), 3)
	assert.Len(t, Filter(Samples, CategoryWorkplaceEmail), 8)
	assert.Equal(t, Samples, Filter(Samples, ""))
	assert.Empty(t, Filter(Samples, "nonexistent"))
}

func TestLoad(t *testing.T) {
	t.Run("plain text one sample per line", func(t *testing.T) {
		path := writeFile(t, "corpus.txt", "first line\n\n   \n  second line  \r\nthird")

		samples, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []Sample{
			{Text: "first line"},
			{Text: "second line"},
			{Text: "third"},
		}, samples)
	})

	t.Run("yaml list of samples", func(t *testing.T) {
		path := writeFile(t, "corpus.yaml", `
- category: casual
  text: "Hey, are you still coming?"
- category: notes
  text: "   "
- text: No category here.
`)
		samples, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []Sample{
			{Category: "casual", Text: "Hey, are you still coming?"},
			{Text: "No category here."},
		}, samples)
	})

	t.Run("yml extension is case insensitive", func(t *testing.T) {
		path := writeFile(t, "corpus.YML", "- {category: a, text: b}\n")
		samples, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []Sample{{Category: "a", Text: "b"}}, samples)
	})

	t.Run("empty yaml document", func(t *testing.T) {
		path := writeFile(t, "empty.yaml", "")
		samples, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, samples)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "category: [unterminated")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode corpus yaml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPreset(t *testing.T) {
	cfg, err := Preset("Balanced")
	require.NoError(t, err)
	assert.Equal(t, typo.Config{
		ErrorRate: 0.15, SwapRate: 0.5, AdjacentBias: 0.7,
		SpaceErrorRate: 0.1, DropRate: 0.2, WordDropRate: 0.05,
	}, cfg)

	aggressive, err := Preset("aggressive")
	require.NoError(t, err)
	conservative, err := Preset("conservative")
	require.NoError(t, err)
	assert.Greater(t, aggressive.DropRate, cfg.DropRate)
	assert.Less(t, conservative.DropRate, cfg.DropRate)

	_, err = Preset("sloppy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aggressive, balanced, conservative")

	assert.Equal(t, []string{"aggressive", "balanced", "conservative"}, PresetNames())
}
