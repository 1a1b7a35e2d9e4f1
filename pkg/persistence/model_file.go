/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model_file.go
Description: JSON persistence for HMM models. Saves a model to a pretty-printed JSON
document with a format version and timestamp, and loads it back with missing tables
defaulting to empty maps so probability lookups stay total.
*/

package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
)

// modelFileVersion tags the on-disk document format.
const modelFileVersion = "1"

// modelDocument is the on-disk envelope around a model.
type modelDocument struct {
	Version string     `json:"version"`  // Document format version
	SavedAt time.Time  `json:"saved_at"` // When the model was written
	Model   *hmm.Model `json:"model"`    // The model itself
}

// SaveModel writes the model to path as indented JSON, creating parent
// directories as needed.
func SaveModel(path string, model *hmm.Model) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}

	doc := modelDocument{
		Version: modelFileVersion,
		SavedAt: time.Now(),
		Model:   model,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}
	return nil
}

// LoadModel reads a model previously written by SaveModel. Tables absent
// from the document come back as empty maps, preserving the
// missing-entry-is-zero lookup policy.
func LoadModel(path string) (*hmm.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("model file %s contains no model", path)
	}

	m := doc.Model
	if m.Initial == nil {
		m.Initial = make(map[hmm.State]float64)
	}
	if m.Transition == nil {
		m.Transition = make(map[hmm.State]map[hmm.State]float64)
	}
	if m.Emission == nil {
		m.Emission = make(map[hmm.State]map[hmm.Symbol]float64)
	}
	return m, nil
}
