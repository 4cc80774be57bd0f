package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDetection saves one repeated-pattern detection and returns its ID.
func seedDetection(t *testing.T, dbPath string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "aa.json")
	writeSequenceFile(t, path, repeatedSequence("AA"))

	out, err := runCommand(t, "--format", "json", "detect", path, "--db", dbPath)
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	id := resp.Data.(map[string]any)["detectionId"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestLabelRequiresDB(t *testing.T) {
	_, err := runCommand(t, "label", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--db is required")
}

func TestLabelListJSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "labels.db")
	id := seedDetection(t, dbPath)

	out, err := runCommand(t, "--format", "json", "label", "list", "--db", dbPath)
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	detections := resp.Data.(map[string]any)["detections"].([]any)
	require.Len(t, detections, 1)

	d := detections[0].(map[string]any)
	assert.Equal(t, id, d["id"])
	assert.Equal(t, "AA", d["word"])
	assert.Equal(t, "REPEATED", d["capType"])
}

func TestLabelListFiltersByWord(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "labels.db")
	seedDetection(t, dbPath)

	out, err := runCommand(t, "--format", "json", "label", "list", "--db", dbPath, "--word", "ZZ")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	detections := resp.Data.(map[string]any)["detections"].([]any)
	assert.Empty(t, detections)
}

func TestLabelCandidatesAndVerdicts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "labels.db")
	id := seedDetection(t, dbPath)

	out, err := runCommand(t, "--format", "json", "label", "candidates", id, "--db", dbPath)
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	candidates := resp.Data.(map[string]any)["candidates"].([]any)
	require.NotEmpty(t, candidates)
	first := candidates[0].(map[string]any)
	assert.Equal(t, "REPEATED", first["capType"])
	assert.Equal(t, false, first["confirmed"])

	_, err = runCommand(t, "label", "confirm", id, "0", "--db", dbPath)
	require.NoError(t, err)

	out, err = runCommand(t, "--format", "json", "label", "candidates", id, "--db", dbPath)
	require.NoError(t, err)
	resp = decodeResponse(t, out)
	first = resp.Data.(map[string]any)["candidates"].([]any)[0].(map[string]any)
	assert.Equal(t, true, first["confirmed"])

	_, err = runCommand(t, "label", "deny", id, "0", "--db", dbPath)
	require.NoError(t, err)

	out, err = runCommand(t, "--format", "json", "label", "candidates", id, "--db", dbPath)
	require.NoError(t, err)
	resp = decodeResponse(t, out)
	first = resp.Data.(map[string]any)["candidates"].([]any)[0].(map[string]any)
	assert.Equal(t, false, first["confirmed"])
	assert.Equal(t, true, first["denied"])
}

func TestLabelVerdictBadPosition(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "labels.db")
	id := seedDetection(t, dbPath)

	_, err := runCommand(t, "label", "confirm", id, "notanumber", "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCommand(t, "label", "confirm", id, "42", "--db", dbPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidate")
}
