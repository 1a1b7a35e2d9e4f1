/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: persistence_test.go
Description: Unit tests for model persistence and corpus loading. Covers JSON
round-trips, missing-table defaulting, error paths, and corpus file parsing with
comments and blank lines.
*/

package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
	"github.com/kleascm/akaylee-hmm/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *hmm.Model {
	return hmm.NewModel(
		[]hmm.State{"1", "2", "F"},
		[]hmm.Symbol{"a", "b"},
		"F",
		map[hmm.State]float64{"1": 1},
		map[hmm.State]map[hmm.State]float64{
			"1": {"1": 0.5, "2": 0.5},
			"2": {"F": 1},
		},
		map[hmm.State]map[hmm.Symbol]float64{
			"1": {"a": 1},
			"2": {"b": 1},
		},
	)
}

func TestSaveAndLoadModelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "test.json")

	require.NoError(t, persistence.SaveModel(path, testModel()))

	loaded, err := persistence.LoadModel(path)
	require.NoError(t, err)

	assert.Equal(t, []hmm.State{"1", "2", "F"}, loaded.States)
	assert.Equal(t, []hmm.Symbol{"a", "b"}, loaded.Symbols)
	assert.Equal(t, hmm.State("F"), loaded.FinalState)
	assert.Equal(t, 1.0, loaded.InitialProbability("1"))
	assert.Equal(t, 0.5, loaded.TransitionProbability("1", "2"))
	assert.Equal(t, 1.0, loaded.EmissionProbability("2", "b"))

	// Missing entries still read as zero after the round-trip.
	assert.Equal(t, 0.0, loaded.TransitionProbability("2", "1"))
	assert.Equal(t, 0.0, loaded.EmissionProbability("F", "a"))
}

func TestLoadModelDefaultsMissingTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.json")
	doc := `{"version":"1","model":{"states":["1","F"],"symbols":["a"],"final_state":"F"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	loaded, err := persistence.LoadModel(path)
	require.NoError(t, err)

	require.NotNil(t, loaded.Initial)
	require.NotNil(t, loaded.Transition)
	require.NotNil(t, loaded.Emission)
	assert.Equal(t, 0.0, loaded.InitialProbability("1"))
}

func TestLoadModelErrors(t *testing.T) {
	_, err := persistence.LoadModel(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err = persistence.LoadModel(path)
	require.Error(t, err)

	path = filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1"}`), 0644))
	_, err = persistence.LoadModel(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no model")
}

func TestReadItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	content := "a b c\n\n# a comment line\nb   c b a\n  a  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	items, err := persistence.ReadItems(path)
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, hmm.Item{"a", "b", "c"}, items[0])
	assert.Equal(t, hmm.Item{"b", "c", "b", "a"}, items[1])
	assert.Equal(t, hmm.Item{"a"}, items[2])
}

func TestReadItemsMissingFile(t *testing.T) {
	_, err := persistence.ReadItems(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
