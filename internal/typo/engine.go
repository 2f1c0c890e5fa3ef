// File: internal/typo/engine.go
package typo

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Engine injects human-like typing errors into text.
//
// The configuration and lookup tables are fixed at construction. The only
// mutable state is the random source, which mu guards, so a single Engine may
// be shared between goroutines. Hot paths should prefer one Fork per goroutine.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	layout   Layout
	digraphs DigraphTable
	rng      Source
	logger   *zap.Logger
}

// New creates an Engine. Out-of-range rates are accepted as given.
func New(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		cfg:      cfg,
		layout:   QWERTY,
		digraphs: CommonDigraphs,
		rng:      newSource(cfg, time.Now().UnixNano()),
		logger:   logger.Named("typo"),
	}
	e.cfg.Rng = nil

	if bad := cfg.OutOfRange(); len(bad) > 0 {
		e.logger.Debug("Rates outside [0,1] accepted; affected decisions saturate.", zap.Strings("rates", bad))
	}
	return e
}

// Config returns the engine's rates.
func (e *Engine) Config() Config {
	return e.cfg
}

// Fork returns an Engine with the same rates and tables and an independent
// random source seeded with seed.
func (e *Engine) Fork(seed int64) *Engine {
	cfg := e.cfg
	cfg.Seed = seed
	return &Engine{
		cfg:      cfg,
		layout:   e.layout,
		digraphs: e.digraphs,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   e.logger,
	}
}

// GenerateTypos returns text with simulated typing errors. It never fails:
// degenerate inputs fall through unchanged, and if every word would be
// dropped the original text is returned verbatim.
//
// Words are re-joined with single spaces, so runs of whitespace in the input
// are normalized even when no error is injected.
func (e *Engine) GenerateTypos(text string) string {
	return e.Generate(text).Output
}

// Generate performs the same pass as GenerateTypos and also reports which
// edits were applied.
func (e *Engine) Generate(text string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := Result{Input: text}
	words := strings.Fields(text)

	// 1. Word drops.
	kept := make([]string, 0, len(words))
	var drops []Edit
	for i, w := range words {
		if e.rng.Float64() < e.cfg.WordDropRate {
			drops = append(drops, Edit{Kind: KindWordDrop, Index: i, Before: w})
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		if len(words) > 0 {
			e.logger.Debug("Every word was dropped; returning input unchanged.", zap.Int("words", len(words)))
			res.Reverted = true
		}
		res.Output = text
		return res
	}
	res.Edits = drops

	// 2. At most one mutation per surviving word.
	for i, w := range kept {
		mutated, kind := e.mutateWord(w)
		if mutated != w {
			res.Edits = append(res.Edits, Edit{Kind: kind, Index: i, Before: w, After: mutated})
			kept[i] = mutated
		}
	}

	// 3. Reassemble, then 4. spacing.
	out := strings.Join(kept, " ")
	if e.rng.Float64() < e.cfg.SpaceErrorRate {
		spaced, kind := e.modifySpaces(out)
		if spaced != out {
			res.Edits = append(res.Edits, Edit{Kind: kind, Index: TextLevel, Before: out, After: spaced})
		}
		out = spaced
	}

	res.Output = out
	return res
}

// mutateWord picks and applies at most one error. Callers hold mu.
func (e *Engine) mutateWord(word string) (string, Kind) {
	if e.rng.Float64() >= e.cfg.ErrorRate {
		return word, ""
	}

	if e.rng.Float64() < e.cfg.DropRate {
		return DropLetter(e.rng, word), KindLetterDrop
	}

	if e.rng.Float64() < e.cfg.SwapRate {
		if e.rng.Float64() < e.cfg.AdjacentBias {
			// Prefer a neighboring key; words without any layout key fall back
			// to a transposition.
			if sub := KeyboardAdjacent(e.rng, e.layout, word); sub != word {
				return sub, KindKeyboardAdjacent
			}
			return Transpose(e.rng, e.layout, word), KindTransposition
		}
		return DigraphSwap(e.digraphs, word), KindDigraphSwap
	}

	// Traditional typo.
	if e.rng.Float64() < 0.5 {
		return Transpose(e.rng, e.layout, word), KindTransposition
	}
	return KeyboardAdjacent(e.rng, e.layout, word), KindKeyboardAdjacent
}

// modifySpaces either doubles a space or removes one. Callers hold mu.
func (e *Engine) modifySpaces(text string) (string, Kind) {
	if e.rng.Float64() < 0.5 {
		return DoubleSpace(e.rng, text), KindDoubleSpace
	}
	return RemoveSpace(text), KindSpaceRemoval
}
