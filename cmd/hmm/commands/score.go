/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: score.go
Description: Score command implementation for the Akaylee HMM engine. Loads a model and
prints the exact probability that it generates the observation sequence given as
arguments, summed over all hidden state paths.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunScore computes the exact generation probability for one sequence
func RunScore(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	model, err := LoadModel()
	if err != nil {
		return err
	}

	item := parseItem(args)
	logger.WithFields(logrus.Fields{
		"symbols": len(item),
		"states":  len(model.States),
	}).Debug("Scoring observation sequence")

	probability := hmm.NewScorer(model).Probability(item)

	fmt.Println("📊 Akaylee HMM - Forward Probability")
	fmt.Println("====================================")
	fmt.Printf("Sequence:    %v\n", args)
	fmt.Printf("Probability: %g\n", probability)
	return nil
}
