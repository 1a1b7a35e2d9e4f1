/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: viterbi.go
Description: Viterbi decoder for the Akaylee HMM engine. Dynamic programming over the
trellis of observation steps and model states, producing the most probable hidden path
for an observed item together with its (approximate) generation probability.
*/

package hmm

// Decoder finds the most probable hidden path for an observed item.
type Decoder struct {
	model *Model
}

// NewDecoder creates a decoder over the given model. The model is read
// only; the decoder never mutates it.
func NewDecoder(model *Model) *Decoder {
	return &Decoder{model: model}
}

// trellisCell carries the best score reaching a state and the path that
// achieved it.
type trellisCell struct {
	score float64
	path  Path
}

// Decode returns the approximate generation probability of item and the
// most likely path of length len(item)+1 ending in the final state. The
// probability is rounded to 6 decimal digits.
//
// Tie handling is deliberate and asymmetric: while extending the trellis,
// equal scores favor the last-examined source state (>= comparison); the
// final scan over terminal scores favors the first maximal state (strict >).
//
// If no state can explain the item (e.g. a symbol outside the alphabet),
// the probability is 0 and the returned path is a deterministic zero-score
// trajectory rather than an error. An empty item decodes to (0, nil).
func (d *Decoder) Decode(item Item) (float64, Path) {
	m := d.model
	if len(item) == 0 || len(m.States) == 0 {
		return 0, nil
	}

	// Base case: start in every state, emitting the first symbol.
	cells := make(map[State]trellisCell, len(m.States))
	for _, s := range m.States {
		cells[s] = trellisCell{
			score: m.InitialProbability(s) * m.EmissionProbability(s, item[0]),
			path:  Path{s},
		}
	}

	// Interior steps: extend the best predecessor for every target state.
	for _, sym := range item[1:] {
		next := make(map[State]trellisCell, len(m.States))
		for _, s := range m.States {
			best := State("")
			bestScore := -1.0
			for _, src := range m.States {
				score := cells[src].score * m.TransitionProbability(src, s)
				if score >= bestScore {
					bestScore = score
					best = src
				}
			}
			next[s] = trellisCell{
				score: bestScore * m.EmissionProbability(s, sym),
				path:  appendState(cells[best].path, s),
			}
		}
		cells = next
	}

	// Termination: fold in the transition to the final state and keep the
	// globally best path. Strict > keeps the first maximal state here.
	bestScore := -1.0
	var bestPath Path
	for _, s := range m.States {
		score := cells[s].score * m.TransitionProbability(s, m.FinalState)
		if score > bestScore {
			bestScore = score
			bestPath = appendState(cells[s].path, m.FinalState)
		}
	}
	return round6(bestScore), bestPath
}

// appendState extends a path without aliasing the predecessor's backing
// array, since several targets may share one predecessor.
func appendState(p Path, s State) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}
