/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: show.go
Description: Show command implementation for the Akaylee HMM engine. Loads a model and
prints its transition matrix, emission matrix, initial-probability vector, and final
state label as aligned diagnostic tables.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RunShow prints the model's probability tables
func RunShow(cmd *cobra.Command, args []string) error {
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

	fmt.Println("🔍 Akaylee HMM - Model Tables")
	fmt.Println("=============================")
	fmt.Println()
	return model.WriteDescription(os.Stdout)
}
