/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee HMM commands. Provides common
configuration loading, logging setup, model loading, and argument parsing used
across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/kleascm/akaylee-hmm/pkg/logging"
	"github.com/kleascm/akaylee-hmm/pkg/persistence"
	"github.com/spf13/viper"
)

// Shared logger instance for all commands
var logger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AKAYLEE_HMM")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	format := logging.LogFormatText
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		Timestamp: true,
		Colors:    !viper.GetBool("json_logs"),
	}

	l, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l
	return nil
}

// LoadModel loads the model named by the --model flag
func LoadModel() (*hmm.Model, error) {
	path := viper.GetString("model_path")
	if path == "" {
		return nil, fmt.Errorf("no model file specified, use --model")
	}
	model, err := persistence.LoadModel(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return model, nil
}

// parseItem converts command-line arguments into an observation sequence
func parseItem(args []string) hmm.Item {
	item := make(hmm.Item, len(args))
	for i, a := range args {
		item[i] = hmm.Symbol(a)
	}
	return item
}

// formatPath renders a hidden state path for display
func formatPath(path hmm.Path) string {
	out := ""
	for i, s := range path {
		if i > 0 {
			out += " -> "
		}
		out += string(s)
	}
	return out
}
