/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: initialize_test.go
Description: Unit tests for the bootstrap initializer. Covers linear segmentation,
alphabet collection order, the one-state-per-position degenerate case, and training
from several distinct samples.
*/

package hmm_test

import (
	"testing"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSingleSampleOneStatePerPosition(t *testing.T) {
	// With as many states as symbol positions, linear segmentation pins
	// one state per position and the sample becomes fully probable.
	item := hmm.Item{"a", "b", "c", "d"}

	m, err := hmm.NewInitializer().Initialize([]hmm.Item{item}, 4)
	require.NoError(t, err)

	assert.Equal(t, []hmm.State{"1", "2", "3", "4", "F"}, m.States)
	assert.Equal(t, []hmm.Symbol{"a", "b", "c", "d"}, m.Symbols)
	assert.Equal(t, hmm.DefaultFinalState, m.FinalState)

	assert.Equal(t, 1.0, hmm.NewScorer(m).Probability(item))

	probability, path := hmm.NewDecoder(m).Decode(item)
	assert.Equal(t, 1.0, probability)
	assert.Equal(t, hmm.Path{"1", "2", "3", "4", "F"}, path)
}

func TestInitializeSeveralSamplesAllPositive(t *testing.T) {
	samples := []hmm.Item{
		{"a", "b", "c"},
		{"a", "c", "c"},
		{"b", "b", "a", "c"},
	}

	m, err := hmm.NewInitializer().Initialize(samples, 2)
	require.NoError(t, err)

	sc := hmm.NewScorer(m)
	d := hmm.NewDecoder(m)
	for _, item := range samples {
		forward := sc.Probability(item)
		viterbi, _ := d.Decode(item)
		assert.Greater(t, forward, 0.0, "item %v", item)
		assert.Greater(t, viterbi, 0.0, "item %v", item)
		assert.LessOrEqual(t, viterbi, forward, "item %v", item)
	}
}

func TestInitializeAlphabetPreservesFirstSeenOrder(t *testing.T) {
	samples := []hmm.Item{
		{"z", "y"},
		{"y", "x", "z"},
	}

	m, err := hmm.NewInitializer().Initialize(samples, 2)
	require.NoError(t, err)

	assert.Equal(t, []hmm.Symbol{"z", "y", "x"}, m.Symbols)
}

func TestInitializeSpreadsPositionsEvenly(t *testing.T) {
	// A six-symbol item over two states splits into two halves.
	item := hmm.Item{"a", "a", "a", "b", "b", "b"}

	m, err := hmm.NewInitializer().Initialize([]hmm.Item{item}, 2)
	require.NoError(t, err)

	_, path := hmm.NewDecoder(m).Decode(item)
	assert.Equal(t, hmm.Path{"1", "1", "1", "2", "2", "2", "F"}, path)
}

func TestInitializeWithZeroItems(t *testing.T) {
	m, err := hmm.NewInitializer().Initialize(nil, 3)
	require.NoError(t, err)

	assert.Equal(t, []hmm.State{"1", "2", "3", "F"}, m.States)
	assert.Empty(t, m.Symbols)
	assert.Equal(t, 0.0, hmm.NewScorer(m).Probability(hmm.Item{"a"}))
}
