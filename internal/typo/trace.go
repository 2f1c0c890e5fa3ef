package typo

// Kind names a single class of typing error.
type Kind string

const (
	KindWordDrop         Kind = "word_drop"
	KindLetterDrop       Kind = "letter_drop"
	KindKeyboardAdjacent Kind = "keyboard_adjacent"
	KindTransposition    Kind = "transposition"
	KindDigraphSwap      Kind = "digraph_swap"
	KindDoubleSpace      Kind = "double_space"
	KindSpaceRemoval     Kind = "space_removal"
)

// TextLevel is the Edit.Index of mutations applied to the joined text.
const TextLevel = -1

// Edit records one change that altered the text.
type Edit struct {
	Kind Kind `json:"kind" yaml:"kind"`
	// Index is the word position: the original position for word drops, the
	// position among surviving words for word mutations, TextLevel otherwise.
	Index  int    `json:"index" yaml:"index"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// Result is the outcome of one GenerateTypos pass.
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Edits  []Edit `json:"edits,omitempty" yaml:"edits,omitempty"`
	// Reverted is set when every word was dropped and Input was returned as is.
	Reverted bool `json:"reverted,omitempty" yaml:"reverted,omitempty"`
}

// Changed reports whether any typo was injected. Whitespace normalization
// alone does not count, and a reverted pass has no edits.
func (r Result) Changed() bool {
	return len(r.Edits) > 0
}

// Count returns how many edits of the given kind were applied.
func (r Result) Count(kind Kind) int {
	n := 0
	for _, e := range r.Edits {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
