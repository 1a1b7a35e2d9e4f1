/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing training and evaluation reports. Handles timestamped,
versioned, and type-specific subdirectory naming under a base reports directory.
Ensures directories exist and writes JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteRunReport writes a report to baseDir with timestamp, type, and version
func WriteRunReport(baseDir string, reportType string, version string, result interface{}) (string, error) {
	// Ensure report directory and subdirectory exist
	reportDir := filepath.Join(baseDir, reportType)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_train_v1.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_v%s.json", timestamp, reportType, version)
	filePath := filepath.Join(reportDir, filename)

	// Marshal result to JSON
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	// Write to file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}
