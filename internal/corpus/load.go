// internal/corpus/load.go
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Load reads a corpus file.
//
// Files ending in .yaml or .yml hold a list of {category, text} entries.
// Anything else is read as one sample per non-blank line, with surrounding
// whitespace trimmed and an empty category. A leading "~" is expanded.
func Load(path string) ([]Sample, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve corpus path '%s': %w", path, err)
	}

	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return ReadLines(f)
	}
}

// DecodeYAML parses a YAML list of samples. Entries with blank text are skipped.
func DecodeYAML(r io.Reader) ([]Sample, error) {
	var raw []Sample
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode corpus yaml: %w", err)
	}

	samples := make([]Sample, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// ReadLines returns one sample per non-blank line of r.
func ReadLines(r io.Reader) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		samples = append(samples, Sample{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return samples, nil
}
