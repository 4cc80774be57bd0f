package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchTable(t *testing.T) {
	dir := t.TempDir()
	writeSequenceFile(t, filepath.Join(dir, "aa.json"), repeatedSequence("AA"))
	writeSequenceFile(t, filepath.Join(dir, "bb.json"), repeatedSequence("BB"))

	out, err := runCommand(t, "batch", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "CAP TYPE")
	assert.Contains(t, out, "REPEATED")
	assert.Contains(t, out, "2 file(s), 0 failed")
}

func TestBatchContinuesPastInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeSequenceFile(t, filepath.Join(dir, "aa.json"), repeatedSequence("AA"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`[{"beat": "x"}]`), 0o644))

	out, err := runCommand(t, "batch", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// The valid file is still classified.
	assert.Contains(t, out, "REPEATED")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "1 failed")
}

func TestBatchJSON(t *testing.T) {
	dir := t.TempDir()
	writeSequenceFile(t, filepath.Join(dir, "aa.json"), repeatedSequence("AA"))

	out, err := runCommand(t, "--format", "json", "batch", dir)
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(0), data["failed"])

	entries := data["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "AA", entry["word"])
	assert.Equal(t, "REPEATED", entry["capType"])
}

func TestBatchSavesToStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "labels.db")
	seqDir := filepath.Join(dir, "seqs")
	require.NoError(t, os.Mkdir(seqDir, 0o755))
	writeSequenceFile(t, filepath.Join(seqDir, "aa.json"), repeatedSequence("AA"))

	_, err := runCommand(t, "batch", seqDir, "--db", dbPath)
	require.NoError(t, err)

	out, err := runCommand(t, "label", "list", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "AA")
	assert.Contains(t, out, "REPEATED")
}

func TestBatchMissingDir(t *testing.T) {
	_, err := runCommand(t, "batch", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
