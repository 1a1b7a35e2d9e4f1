/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: estimate.go
Description: Re-estimator for the Akaylee HMM engine. Implements Viterbi training as a
fixed-point iteration: count state and emission co-occurrences along hidden paths,
derive maximum-likelihood probability tables, and repeat until the tables stabilize.
*/

package hmm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Estimator refits the probability tables of a model from sample items.
// Paths may be supplied (supervised counts) or recomputed from the current
// model via the Viterbi decoder on every pass (Viterbi training).
type Estimator struct {
	model   *Model
	decoder *Decoder
	logger  logrus.FieldLogger
}

// NewEstimator creates an estimator bound to the given model. Train
// replaces the model's tables in place between convergence iterations.
func NewEstimator(model *Model) *Estimator {
	return &Estimator{
		model:   model,
		decoder: NewDecoder(model),
	}
}

// SetLogger attaches a structured logger for per-iteration progress.
func (e *Estimator) SetLogger(logger logrus.FieldLogger) {
	e.logger = logger
}

// tableSnapshot is one immutable estimate of the three probability tables.
// Each training pass produces a fresh snapshot; the convergence loop
// compares the new snapshot against the model's current tables by value.
type tableSnapshot struct {
	initial    map[State]float64
	transition map[State]map[State]float64
	emission   map[State]map[Symbol]float64
}

// Train replaces the model's initial, transition, and emission tables with
// maximum-likelihood estimates counted along hidden paths, iterating until
// the tables stop changing. When paths is nil they are recomputed from the
// current model on every pass; supplied paths are treated as known ground
// truth and reused unchanged, so the loop settles on the second pass.
//
// Returns the number of passes performed. States and Symbols are never
// mutated, only the tables and the final-state label.
func (e *Estimator) Train(items []Item, paths []Path) (int, error) {
	if paths != nil && len(paths) != len(items) {
		return 0, fmt.Errorf("path count %d does not match item count %d", len(paths), len(items))
	}

	for iteration := 1; ; iteration++ {
		current := paths
		if current == nil {
			current = make([]Path, len(items))
			for i, item := range items {
				_, current[i] = e.decoder.Decode(item)
			}
		}

		snap := countEstimate(items, current)
		if e.logger != nil {
			e.logger.WithFields(logrus.Fields{
				"iteration": iteration,
				"items":     len(items),
				"states":    len(snap.transition),
			}).Debug("Re-estimation pass complete")
		}

		if snap.equal(e.model) {
			return iteration, nil
		}

		// Wholesale table replacement between iterations. The final-state
		// label is canonicalized from the paths: every path ends in it.
		e.model.Initial = snap.initial
		e.model.Transition = snap.transition
		e.model.Emission = snap.emission
		if len(current) > 0 && len(current[0]) > 0 {
			e.model.FinalState = current[0][len(current[0])-1]
		}
	}
}

// countEstimate derives one snapshot of maximum-likelihood tables from
// co-occurrence counts along the given item/path pairs. A state with zero
// outgoing occurrences acquires no rows at all; absent entries read as 0.
func countEstimate(items []Item, paths []Path) tableSnapshot {
	firstCounts := make(map[State]int)
	transCounts := make(map[State]map[State]int)
	emitCounts := make(map[State]map[Symbol]int)
	sourceTotals := make(map[State]int)

	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		firstCounts[path[0]]++
		for j := 0; j < len(path)-1; j++ {
			src, dst := path[j], path[j+1]
			if transCounts[src] == nil {
				transCounts[src] = make(map[State]int)
			}
			transCounts[src][dst]++
			sourceTotals[src]++
		}
		for j, sym := range items[i] {
			s := path[j]
			if emitCounts[s] == nil {
				emitCounts[s] = make(map[Symbol]int)
			}
			emitCounts[s][sym]++
		}
	}

	snap := tableSnapshot{
		initial:    make(map[State]float64, len(firstCounts)),
		transition: make(map[State]map[State]float64, len(transCounts)),
		emission:   make(map[State]map[Symbol]float64, len(emitCounts)),
	}
	total := len(paths)
	for s, c := range firstCounts {
		snap.initial[s] = float64(c) / float64(total)
	}
	for src, row := range transCounts {
		out := make(map[State]float64, len(row))
		for dst, c := range row {
			out[dst] = float64(c) / float64(sourceTotals[src])
		}
		snap.transition[src] = out
	}
	for s, row := range emitCounts {
		out := make(map[Symbol]float64, len(row))
		for sym, c := range row {
			out[sym] = float64(c) / float64(sourceTotals[s])
		}
		snap.emission[s] = out
	}
	return snap
}

// equal reports whether the snapshot matches the model's current tables.
// Comparison is key-wise value equality with missing-is-zero semantics, so
// an absent entry and an explicit 0 are the same table.
func (ts tableSnapshot) equal(m *Model) bool {
	if !initialEqual(ts.initial, m.Initial) {
		return false
	}
	if !transitionEqual(ts.transition, m.Transition) {
		return false
	}
	return emissionEqual(ts.emission, m.Emission)
}

func initialEqual(a, b map[State]float64) bool {
	for s, p := range a {
		if b[s] != p {
			return false
		}
	}
	for s, p := range b {
		if a[s] != p {
			return false
		}
	}
	return true
}

func transitionEqual(a, b map[State]map[State]float64) bool {
	for src, row := range a {
		if !initialEqual(row, b[src]) {
			return false
		}
	}
	for src, row := range b {
		if _, ok := a[src]; !ok && !initialEqual(row, nil) {
			return false
		}
	}
	return true
}

func emissionEqual(a, b map[State]map[Symbol]float64) bool {
	for s, row := range a {
		if !symbolRowEqual(row, b[s]) {
			return false
		}
	}
	for s, row := range b {
		if _, ok := a[s]; !ok && !symbolRowEqual(row, nil) {
			return false
		}
	}
	return true
}

func symbolRowEqual(a, b map[Symbol]float64) bool {
	for sym, p := range a {
		if b[sym] != p {
			return false
		}
	}
	for sym, p := range b {
		if a[sym] != p {
			return false
		}
	}
	return true
}
