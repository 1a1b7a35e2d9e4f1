/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: train.go
Description: Train command implementation for the Akaylee HMM engine. Reads a sample
corpus, refines an existing model or bootstraps a fresh one via linear segmentation,
saves the result, and writes a JSON training report with per-item probabilities.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/kleascm/akaylee-hmm/pkg/persistence"
	"github.com/kleascm/akaylee-hmm/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// TrainConfig holds the assembled training configuration
type TrainConfig struct {
	ModelPath  string `json:"model_path"`  // Existing model to refine; empty = bootstrap
	CorpusPath string `json:"corpus_path"` // Sample corpus file
	StateCount int    `json:"state_count"` // Hidden states for bootstrap
	OutputPath string `json:"output_path"` // Where to write the trained model
	ReportDir  string `json:"report_dir"`  // Base directory for training reports
}

// Validate checks the training configuration for invalid combinations.
func (c *TrainConfig) Validate() error {
	if c.CorpusPath == "" {
		return fmt.Errorf("corpus path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.ModelPath == "" && c.StateCount <= 0 {
		return fmt.Errorf("bootstrap training requires --states > 0")
	}
	return nil
}

// TrainReport is the JSON document written after a training run
type TrainReport struct {
	RunID         string    `json:"run_id"`         // Unique identifier for this run
	StartedAt     time.Time `json:"started_at"`     // When training started
	DurationMs    float64   `json:"duration_ms"`    // Wall-clock training time
	Items         int       `json:"items"`          // Number of sample sequences
	States        int       `json:"states"`         // Number of model states (incl. final)
	Symbols       int       `json:"symbols"`        // Alphabet size
	Iterations    int       `json:"iterations"`     // Convergence passes
	Bootstrap     bool      `json:"bootstrap"`      // Whether the model was initialized from scratch
	Probabilities []float64 `json:"probabilities"`  // Post-training generation probability per item
	ModelPath     string    `json:"model_path"`     // Where the trained model was written
}

// RunTrain executes the training process
func RunTrain(cmd *cobra.Command, args []string) error {
	fmt.Println("🧠 Akaylee HMM - Training Session")
	fmt.Println("=================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	config := &TrainConfig{
		ModelPath:  viper.GetString("model_path"),
		CorpusPath: viper.GetString("corpus_path"),
		StateCount: viper.GetInt("state_count"),
		OutputPath: viper.GetString("output_path"),
		ReportDir:  viper.GetString("report_dir"),
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	items, err := persistence.ReadItems(config.CorpusPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"corpus": config.CorpusPath,
		"items":  len(items),
	}).Info("Corpus loaded")

	start := time.Now()
	var model *hmm.Model
	var iterations int
	bootstrap := config.ModelPath == ""

	if bootstrap {
		initializer := hmm.NewInitializer()
		initializer.SetLogger(logger.Logrus())
		model, err = initializer.Initialize(items, config.StateCount)
		if err != nil {
			return fmt.Errorf("failed to initialize model: %w", err)
		}
		iterations = 1
	} else {
		model, err = persistence.LoadModel(config.ModelPath)
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}
		estimator := hmm.NewEstimator(model)
		estimator.SetLogger(logger.Logrus())
		iterations, err = estimator.Train(items, nil)
		if err != nil {
			return fmt.Errorf("training failed: %w", err)
		}
	}
	duration := time.Since(start)

	if err := persistence.SaveModel(config.OutputPath, model); err != nil {
		return fmt.Errorf("failed to save trained model: %w", err)
	}

	scorer := hmm.NewScorer(model)
	probabilities := make([]float64, len(items))
	for i, item := range items {
		probabilities[i] = scorer.Probability(item)
	}

	report := TrainReport{
		RunID:         uuid.New().String(),
		StartedAt:     start,
		DurationMs:    float64(duration.Microseconds()) / 1000.0,
		Items:         len(items),
		States:        len(model.States),
		Symbols:       len(model.Symbols),
		Iterations:    iterations,
		Bootstrap:     bootstrap,
		Probabilities: probabilities,
		ModelPath:     config.OutputPath,
	}
	reportPath, err := utils.WriteRunReport(config.ReportDir, "train", "1.0.0", report)
	if err != nil {
		logger.WithFields(logrus.Fields{"error": err}).Warn("Failed to write training report")
	} else {
		logger.WithFields(logrus.Fields{"report": reportPath}).Info("Training report written")
	}

	fmt.Printf("✅ Trained on %d sequences in %d pass(es)\n", len(items), iterations)
	fmt.Printf("   Model written to %s\n", config.OutputPath)
	return nil
}
