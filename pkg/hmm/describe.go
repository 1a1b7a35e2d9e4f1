/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: describe.go
Description: Human-readable rendering of an HMM for diagnostics. Dumps the transition
matrix, emission matrix, and initial-probability vector as aligned tables followed by
the final-state label. Intended for eyeballing, not machine parsing.
*/

package hmm

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteDescription writes a tabular dump of the model to w.
func (m *Model) WriteDescription(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Transition probabilities")
	header := "from\\to"
	for _, s := range m.States {
		header += "\t" + string(s)
	}
	fmt.Fprintln(tw, header)
	for _, src := range m.States {
		row := string(src)
		for _, dst := range m.States {
			row += fmt.Sprintf("\t%g", m.TransitionProbability(src, dst))
		}
		fmt.Fprintln(tw, row)
	}

	fmt.Fprintln(tw, "")
	fmt.Fprintln(tw, "Emission probabilities")
	header = "state"
	for _, sym := range m.Symbols {
		header += "\t" + string(sym)
	}
	fmt.Fprintln(tw, header)
	for _, s := range m.States {
		if s == m.FinalState {
			continue // the final state never emits
		}
		row := string(s)
		for _, sym := range m.Symbols {
			row += fmt.Sprintf("\t%g", m.EmissionProbability(s, sym))
		}
		fmt.Fprintln(tw, row)
	}

	fmt.Fprintln(tw, "")
	fmt.Fprintln(tw, "Initial probabilities")
	for _, s := range m.States {
		fmt.Fprintf(tw, "%s\t%g\n", s, m.InitialProbability(s))
	}

	fmt.Fprintln(tw, "")
	fmt.Fprintf(tw, "Final state: %s\n", m.FinalState)

	return tw.Flush()
}

// Describe returns the tabular dump as a string.
func (m *Model) Describe() string {
	var sb strings.Builder
	m.WriteDescription(&sb) // strings.Builder never errors
	return sb.String()
}
