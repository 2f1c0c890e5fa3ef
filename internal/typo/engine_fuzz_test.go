package typo

import (
	"strings"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// fuzzRates is populated from raw fuzz bytes; Config itself carries an
// interface field the consumer cannot fill.
type fuzzRates struct {
	ErrorRate      float64
	SwapRate       float64
	AdjacentBias   float64
	SpaceErrorRate float64
	DropRate       float64
	WordDropRate   float64
	Seed           int64
}

func FuzzGenerateTypos(f *testing.F) {
	f.Add("the cat sat", []byte{})
	f.Add("", []byte{1, 2, 3})
	f.Add("   ", []byte{0xff})
	f.Add("I've attached the quarterly report.", []byte("rates"))
	f.Add("\xff\xfe", []byte{})
	f.Add("\x00 \x00", []byte{9, 9, 9, 9, 9, 9, 9, 9})
	f.Add("ÄÖÜ straße", []byte{})

	f.Fuzz(func(t *testing.T, text string, data []byte) {
		var r fuzzRates
		consumer := fuzz.NewConsumer(data)
		if err := consumer.GenerateStruct(&r); err != nil {
			r = fuzzRates{ErrorRate: 1, SwapRate: 0.5, AdjacentBias: 0.5, SpaceErrorRate: 1, DropRate: 0.5, WordDropRate: 0.5}
		}
		e := New(Config{
			ErrorRate:      r.ErrorRate,
			SwapRate:       r.SwapRate,
			AdjacentBias:   r.AdjacentBias,
			SpaceErrorRate: r.SpaceErrorRate,
			DropRate:       r.DropRate,
			WordDropRate:   r.WordDropRate,
			Seed:           r.Seed,
		}, nil)

		// Must not panic on any input.
		res := e.Generate(text)

		if strings.TrimSpace(text) != "" && res.Output == "" {
			t.Errorf("non-empty input %q produced empty output", text)
		}
		if res.Reverted && res.Output != text {
			t.Errorf("reverted result altered the input: %q -> %q", text, res.Output)
		}
	})
}

func FuzzWordMutations(f *testing.F) {
	f.Add("hello", int64(1))
	f.Add("", int64(0))
	f.Add("a", int64(2))
	f.Add("\xff", int64(3))
	f.Add("THE", int64(4))

	f.Fuzz(func(t *testing.T, word string, seed int64) {
		e := New(Config{Seed: seed}, nil)
		if dropped := DropLetter(e.rng, word); len(runeBounds(word)) > 2 && len(dropped) >= len(word) {
			t.Errorf("DropLetter(%q) = %q removed nothing", word, dropped)
		}
		_ = KeyboardAdjacent(e.rng, QWERTY, word)
		if swapped := Transpose(e.rng, QWERTY, word); sortedBytes(swapped) != sortedBytes(word) {
			t.Errorf("Transpose(%q) = %q changed the bytes", word, swapped)
		}
		_ = DigraphSwap(CommonDigraphs, word)
		_ = DoubleSpace(e.rng, word)
		_ = RemoveSpace(word)
	})
}
