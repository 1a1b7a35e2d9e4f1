/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the Akaylee HMM engine. Defines states, symbols, observed
items, hidden paths, and the Model aggregate holding the initial, transition, and
emission probability tables with missing-entry-is-zero lookup semantics.
*/

package hmm

import "math"

// State is a hidden configuration of the model. It is an opaque token;
// no ordering is meaningful beyond the order carried in Model.States,
// which fixes iteration order for deterministic output.
type State string

// Symbol is an observable output emitted by a state.
type Symbol string

// Item is one observed sample: an ordered sequence of symbols.
type Item []Symbol

// Path is a hidden state trajectory attributed to an observed item.
// It is one state longer than the item and ends in the final state.
type Path []State

// DefaultFinalState is the canonical label for the sequence-complete
// sentinel state used by bootstrapped models.
const DefaultFinalState State = "F"

// Model is the aggregate probability model shared by the decoder, the
// scorer, and the estimator. The three tables are nested maps; an absent
// key at any nesting level means probability zero. Rows are not forced
// to sum to 1 at construction time, only when derived by re-estimation.
type Model struct {
	States     []State                      `json:"states"`      // Ordered, unique; includes FinalState
	Symbols    []Symbol                     `json:"symbols"`     // Ordered, unique emission alphabet
	FinalState State                        `json:"final_state"` // Sequence-complete sentinel, never emits
	Initial    map[State]float64            `json:"initial"`     // State -> start probability
	Transition map[State]map[State]float64  `json:"transition"`  // Source -> target -> probability
	Emission   map[State]map[Symbol]float64 `json:"emission"`    // State -> symbol -> probability
}

// NewModel creates a fully specified model. Nil tables are replaced with
// empty maps so lookups stay total.
func NewModel(states []State, symbols []Symbol, finalState State,
	initial map[State]float64,
	transition map[State]map[State]float64,
	emission map[State]map[Symbol]float64) *Model {
	if initial == nil {
		initial = make(map[State]float64)
	}
	if transition == nil {
		transition = make(map[State]map[State]float64)
	}
	if emission == nil {
		emission = make(map[State]map[Symbol]float64)
	}
	return &Model{
		States:     states,
		Symbols:    symbols,
		FinalState: finalState,
		Initial:    initial,
		Transition: transition,
		Emission:   emission,
	}
}

// InitialProbability returns the probability of starting in state s.
// Unknown states yield 0, never an error. This missing-is-zero policy is
// load-bearing: it lets the dynamic programming treat impossible choices
// uniformly with possible ones of probability 0.
func (m *Model) InitialProbability(s State) float64 {
	return m.Initial[s]
}

// TransitionProbability returns the probability of moving from src to dst.
// Unknown pairs yield 0.
func (m *Model) TransitionProbability(src, dst State) float64 {
	row, ok := m.Transition[src]
	if !ok {
		return 0
	}
	return row[dst]
}

// EmissionProbability returns the probability of state s emitting sym.
// Unknown pairs yield 0; the final state has no emission row.
func (m *Model) EmissionProbability(s State, sym Symbol) float64 {
	row, ok := m.Emission[s]
	if !ok {
		return 0
	}
	return row[sym]
}

// round6 rounds a probability to 6 decimal digits, half away from zero.
// Probabilities stay numeric throughout the engine; rounding happens only
// at reporting boundaries.
func round6(p float64) float64 {
	return math.Round(p*1e6) / 1e6
}
