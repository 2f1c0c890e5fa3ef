package typo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedSource replays fixed values so each decision branch can be driven
// explicitly. Running out of values fails the test.
type scriptedSource struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "scripted source ran out of floats")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "scripted source ran out of ints")
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, v, n, "scripted int out of range")
	return v
}

// drained asserts that the engine consumed exactly the scripted draws.
func (s *scriptedSource) drained() {
	s.t.Helper()
	require.Empty(s.t, s.floats, "unused scripted floats")
	require.Empty(s.t, s.ints, "unused scripted ints")
}

func script(t *testing.T, floats []float64, ints ...int) *scriptedSource {
	return &scriptedSource{t: t, floats: floats, ints: ints}
}

// newTestEngine returns a reproducible engine with the given rates.
func newTestEngine(cfg Config, seed int64) *Engine {
	cfg.Rng = rand.New(rand.NewSource(seed))
	return New(cfg, zap.NewNop())
}

// zeroConfig has every rate at 0.
func zeroConfig() Config {
	return Config{}
}

// isSubsequenceMinusOne reports whether short is long with exactly one rune removed.
func isSubsequenceMinusOne(long, short string) bool {
	l, s := []rune(long), []rune(short)
	if len(s) != len(l)-1 {
		return false
	}
	for i := range l {
		candidate := string(l[:i]) + string(l[i+1:])
		if candidate == short {
			return true
		}
	}
	return false
}

var sentences = []string{
	"the cat sat",
	"I've attached the quarterly report for your review.",
	"Please let me know if you have any questions about the presentation.",
	"Dentist appointment next Tuesday at 2:30.",
	"Cross-platform compatibility requires careful consideration.",
	"THE WHICH PHONE SHOULD BACK",
	"a",
	"!!! ??? 123",
}
