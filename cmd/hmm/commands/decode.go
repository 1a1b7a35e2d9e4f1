/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decode.go
Description: Decode command implementation for the Akaylee HMM engine. Loads a model,
runs Viterbi decoding on the observation sequence given as arguments, and prints the
most probable hidden state path with its generation probability.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunDecode executes Viterbi decoding for one observation sequence
func RunDecode(cmd *cobra.Command, args []string) error {
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
	}).Debug("Decoding observation sequence")

	probability, path := hmm.NewDecoder(model).Decode(item)

	fmt.Println("🎯 Akaylee HMM - Viterbi Decoding")
	fmt.Println("=================================")
	fmt.Printf("Sequence:    %v\n", args)
	fmt.Printf("Path:        %s\n", formatPath(path))
	fmt.Printf("Probability: %g\n", probability)
	if probability == 0 {
		fmt.Println("⚠️  No state path explains this sequence; the path shown is a zero-score placeholder.")
	}
	return nil
}
