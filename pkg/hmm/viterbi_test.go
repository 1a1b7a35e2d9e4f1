/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: viterbi_test.go
Description: Unit tests for the Viterbi decoder. Covers the worked 3-state chain
example, degenerate sequences with unexplainable symbols, the interior and final
tie-break directions, and empty-input handling.
*/

package hmm_test

import (
	"testing"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/stretchr/testify/assert"
)

func TestDecodeWorkedExample(t *testing.T) {
	d := hmm.NewDecoder(workedExampleModel())

	probability, path := d.Decode(hmm.Item{"b", "c", "b", "a"})

	assert.Equal(t, 0.006804, probability)
	assert.Equal(t, hmm.Path{"1", "1", "2", "3", "F"}, path)
}

func TestDecodeUnexplainableSequenceYieldsZero(t *testing.T) {
	d := hmm.NewDecoder(workedExampleModel())

	// 'b' cannot be the last emission: only state 3 reaches the final
	// state and it never emits 'b'.
	probability, path := d.Decode(hmm.Item{"b", "c", "b", "b"})
	assert.Equal(t, 0.0, probability)
	assert.Equal(t, hmm.Path{"1", "1", "1", "1", "F"}, path, "zero-score path must still be deterministic")

	// 'd' is outside the alphabet entirely.
	probability, path = d.Decode(hmm.Item{"b", "c", "b", "d"})
	assert.Equal(t, 0.0, probability)
	assert.Equal(t, hmm.Path{"1", "1", "1", "1", "F"}, path)
}

func TestDecodeInteriorTieKeepsLastSource(t *testing.T) {
	// Two equally good predecessors for state C; the later one in state
	// order must win.
	m := hmm.NewModel(
		[]hmm.State{"A", "B", "C", "F"},
		[]hmm.Symbol{"x", "y"},
		"F",
		map[hmm.State]float64{"A": 0.5, "B": 0.5},
		map[hmm.State]map[hmm.State]float64{
			"A": {"C": 1},
			"B": {"C": 1},
			"C": {"F": 1},
		},
		map[hmm.State]map[hmm.Symbol]float64{
			"A": {"x": 1},
			"B": {"x": 1},
			"C": {"y": 1},
		},
	)

	probability, path := hmm.NewDecoder(m).Decode(hmm.Item{"x", "y"})

	assert.Equal(t, 0.5, probability)
	assert.Equal(t, hmm.Path{"B", "C", "F"}, path)
}

func TestDecodeFinalTieKeepsFirstState(t *testing.T) {
	// Two equally good terminal states; the earlier one in state order
	// must win, unlike the interior tie-break.
	m := hmm.NewModel(
		[]hmm.State{"A", "B", "F"},
		[]hmm.Symbol{"x"},
		"F",
		map[hmm.State]float64{"A": 0.5, "B": 0.5},
		map[hmm.State]map[hmm.State]float64{
			"A": {"F": 1},
			"B": {"F": 1},
		},
		map[hmm.State]map[hmm.Symbol]float64{
			"A": {"x": 1},
			"B": {"x": 1},
		},
	)

	probability, path := hmm.NewDecoder(m).Decode(hmm.Item{"x"})

	assert.Equal(t, 0.5, probability)
	assert.Equal(t, hmm.Path{"A", "F"}, path)
}

func TestDecodeEmptyItem(t *testing.T) {
	probability, path := hmm.NewDecoder(workedExampleModel()).Decode(nil)

	assert.Equal(t, 0.0, probability)
	assert.Nil(t, path)
}

func TestDecodePathLength(t *testing.T) {
	d := hmm.NewDecoder(workedExampleModel())

	for _, item := range []hmm.Item{
		{"b"},
		{"b", "c"},
		{"b", "c", "b", "a"},
	} {
		_, path := d.Decode(item)
		assert.Len(t, path, len(item)+1)
		assert.Equal(t, hmm.State("F"), path[len(path)-1])
	}
}
