/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee HMM engine. Provides decode,
score, train, and show commands over JSON model files with configuration management
and structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-hmm/cmd/hmm/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool
	logDir     string

	// Model configuration
	modelPath string

	// Training configuration
	corpusPath string
	stateCount int
	outputPath string
	reportDir  string
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-hmm",
		Short: "Akaylee HMM - Hidden Markov Model engine",
		Long: `Akaylee HMM is a Hidden Markov Model engine supporting Viterbi decoding of
the most likely hidden state path, exact forward-probability scoring, and iterative
re-estimation of probability tables from sample sequences, including bootstrap
initialization via linear segmentation.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "Path to JSON model file")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("model_path", rootCmd.PersistentFlags().Lookup("model"))

	// Add decode command
	decodeCmd := &cobra.Command{
		Use:   "decode [symbols...]",
		Short: "Decode the most likely hidden state path for a sequence",
		Long: `Decode runs Viterbi decoding on the given observation sequence and prints
the most probable hidden state path together with its generation probability.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunDecode,
	}

	// Add score command
	scoreCmd := &cobra.Command{
		Use:   "score [symbols...]",
		Short: "Compute the exact generation probability of a sequence",
		Long: `Score computes the exact probability that the model generates the given
observation sequence, summed over every possible hidden state path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunScore,
	}

	// Add train command
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model on a corpus of sample sequences",
		Long: `Train refines the probability tables of a model from sample sequences using
Viterbi training. Without --model, a fresh model is bootstrapped from the corpus via
linear segmentation over --states hidden states.`,
		RunE: commands.RunTrain,
	}
	trainCmd.Flags().StringVar(&corpusPath, "corpus", "", "Corpus file, one whitespace-separated sequence per line (required)")
	trainCmd.Flags().IntVar(&stateCount, "states", 0, "Number of hidden states for bootstrap initialization")
	trainCmd.Flags().StringVar(&outputPath, "output", "", "Path to write the trained model (required)")
	trainCmd.Flags().StringVar(&reportDir, "report-dir", "./reports", "Directory for training reports")
	trainCmd.MarkFlagRequired("corpus")
	trainCmd.MarkFlagRequired("output")

	viper.BindPFlag("corpus_path", trainCmd.Flags().Lookup("corpus"))
	viper.BindPFlag("state_count", trainCmd.Flags().Lookup("states"))
	viper.BindPFlag("output_path", trainCmd.Flags().Lookup("output"))
	viper.BindPFlag("report_dir", trainCmd.Flags().Lookup("report-dir"))

	// Add show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the model's probability tables",
		Long:  `Show prints a tabular dump of the transition matrix, emission matrix, and initial-probability vector, followed by the final-state label.`,
		RunE:  commands.RunShow,
	}

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(showCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
