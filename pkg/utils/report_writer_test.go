/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer_test.go
Description: Unit tests for the report writer utility. Verifies directory creation,
filename conventions, and JSON content round-trips.
*/

package utils_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/kleascm/akaylee-hmm/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRunReport(t *testing.T) {
	dir := t.TempDir()
	report := map[string]interface{}{
		"run_id": "test-run",
		"items":  3,
	}

	path, err := utils.WriteRunReport(dir, "train", "1.0.0", report)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))
	assert.Contains(t, path, "train")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, "test-run", loaded["run_id"])
	assert.Equal(t, float64(3), loaded["items"])
}
