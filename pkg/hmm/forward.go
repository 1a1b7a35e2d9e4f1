/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: forward.go
Description: Forward scorer for the Akaylee HMM engine. Computes the exact probability
that the model generates an observed item by summing the probability of every hidden
path, via a memoized recursion on the first remaining symbol.
*/

package hmm

// Scorer computes exact generation probabilities, summing over all hidden
// paths instead of keeping only the best one like the Viterbi decoder.
type Scorer struct {
	model *Model
}

// NewScorer creates a scorer over the given model.
func NewScorer(model *Model) *Scorer {
	return &Scorer{model: model}
}

// suffixKey identifies a memoized subproblem: the probability of emitting
// the item suffix starting at offset from the given state, then terminating.
type suffixKey struct {
	offset int
	state  State
}

// Probability returns the exact probability that the model generates item,
// rounded to 6 decimal digits. Items containing symbols outside the
// alphabet score exactly 0. An empty item scores 0.
func (sc *Scorer) Probability(item Item) float64 {
	if len(item) == 0 {
		return 0
	}
	memo := make(map[suffixKey]float64)
	total := 0.0
	for _, s := range sc.model.States {
		// States that cannot start the item contribute 0 anyway; skipping
		// them just avoids useless recursion.
		if sc.model.InitialProbability(s)*sc.model.EmissionProbability(s, item[0]) == 0 {
			continue
		}
		total += sc.model.InitialProbability(s) * sc.fromState(item, 0, s, memo)
	}
	return round6(total)
}

// fromState returns the probability of emitting item[offset:] starting in
// state s and then reaching the final state. The last step folds in the
// clean-termination transition instead of recursing further.
func (sc *Scorer) fromState(item Item, offset int, s State, memo map[suffixKey]float64) float64 {
	key := suffixKey{offset: offset, state: s}
	if p, ok := memo[key]; ok {
		return p
	}
	emit := sc.model.EmissionProbability(s, item[offset])
	var p float64
	switch {
	case emit == 0:
		p = 0
	case offset == len(item)-1:
		p = emit * sc.model.TransitionProbability(s, sc.model.FinalState)
	default:
		sum := 0.0
		for _, next := range sc.model.States {
			if t := sc.model.TransitionProbability(s, next); t > 0 {
				sum += t * sc.fromState(item, offset+1, next, memo)
			}
		}
		p = emit * sum
	}
	memo[key] = p
	return p
}
