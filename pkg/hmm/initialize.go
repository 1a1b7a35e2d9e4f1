/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: initialize.go
Description: Bootstrap initializer for the Akaylee HMM engine. Builds a fresh N-state
model from raw samples by linear segmentation (spreading each item's positions evenly
across the states) and immediately re-estimates it from the manufactured paths.
*/

package hmm

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Initializer bootstraps a model from nothing but raw samples.
type Initializer struct {
	logger logrus.FieldLogger
}

// NewInitializer creates an initializer.
func NewInitializer() *Initializer {
	return &Initializer{}
}

// SetLogger attaches a structured logger, forwarded to the estimator.
func (in *Initializer) SetLogger(logger logrus.FieldLogger) {
	in.logger = logger
}

// Initialize builds a model with states "1".."N" plus the final state, an
// alphabet of the distinct symbols across all items in first-seen order,
// and probability tables re-estimated from linear-segmentation paths.
//
// Zero items or zero states produce a degenerate but well-formed model
// with empty tables; this boundary is accepted, not hardened against.
func (in *Initializer) Initialize(items []Item, stateCount int) (*Model, error) {
	symbols := collectAlphabet(items)

	states := make([]State, 0, stateCount+1)
	for i := 1; i <= stateCount; i++ {
		states = append(states, State(strconv.Itoa(i)))
	}
	states = append(states, DefaultFinalState)

	paths := make([]Path, len(items))
	for i, item := range items {
		paths[i] = segmentationPath(len(item), stateCount)
	}

	model := NewModel(states, symbols, DefaultFinalState, nil, nil, nil)
	estimator := NewEstimator(model)
	if in.logger != nil {
		estimator.SetLogger(in.logger)
	}
	if _, err := estimator.Train(items, paths); err != nil {
		return nil, err
	}
	return model, nil
}

// collectAlphabet gathers the distinct symbols across all items,
// preserving first-seen order.
func collectAlphabet(items []Item) []Symbol {
	seen := make(map[Symbol]bool)
	var symbols []Symbol
	for _, item := range items {
		for _, sym := range item {
			if !seen[sym] {
				seen[sym] = true
				symbols = append(symbols, sym)
			}
		}
	}
	return symbols
}

// segmentationPath builds the linear-segmentation hypothesis for an item
// of the given length: position j (1-indexed) maps to state
// floor(j*N/(length+1))+1, then the final state is appended. With N equal
// to the item length this degenerates to one state per position.
func segmentationPath(length, stateCount int) Path {
	path := make(Path, 0, length+1)
	for j := 1; j <= length; j++ {
		idx := j*stateCount/(length+1) + 1
		path = append(path, State(strconv.Itoa(idx)))
	}
	return append(path, DefaultFinalState)
}
