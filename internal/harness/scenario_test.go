package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "repeated-two-beat.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "repeated-two-beat", s.Name)
	assert.NotEmpty(t, s.Description)
	assert.Equal(t, "REPEATED", s.Expect.CapType)
	assert.Equal(t, []string{"repeated"}, s.Expect.Components)
	assert.True(t, s.Expect.Circular)

	// The sequence path is resolved against the scenario's directory.
	assert.FileExists(t, s.Sequence)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestLoadScenarioUnknownField(t *testing.T) {
	path := writeScenarioFile(t, `
name: typo
description: unknown field must be rejected
sequnce: ../sequences/repeated.json
`)
	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestLoadScenarioMissingName(t *testing.T) {
	path := writeScenarioFile(t, `
description: nameless
sequence: whatever.json
`)
	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "name is required")
}

func TestLoadScenarioSequenceNotFound(t *testing.T) {
	path := writeScenarioFile(t, `
name: dangling
description: sequence file does not exist
sequence: missing.json
`)
	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "sequence file not found")
}

func TestLoadScenarioDir(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	// Sorted by file name for stable iteration.
	assert.Equal(t, "compound-quartered", scenarios[0].Name)
	assert.Equal(t, "mirrored-halved", scenarios[1].Name)
	assert.Equal(t, "repeated-two-beat", scenarios[2].Name)
}
