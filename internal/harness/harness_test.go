package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenariosPass(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := Run(s)
			require.NoError(t, err)
			assert.Empty(t, result.Failures)
			assert.True(t, result.Passed())
		})
	}
}

func TestExpectationMismatch(t *testing.T) {
	s := &Scenario{
		Name:        "wrong-expectation",
		Description: "expects a classification the sequence does not have",
		Sequence:    filepath.Join("testdata", "sequences", "repeated.json"),
		Expect: Expectation{
			CapType:    "MIRRORED",
			Components: []string{"mirrored"},
			Circular:   true,
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Passed())
	require.Len(t, result.Failures, 2)
	assert.Contains(t, result.Failures[0], "cap_type")
	assert.Contains(t, result.Failures[1], "components")
}

func TestRotationDirectionCheckedOnlyWhenSpecified(t *testing.T) {
	s := &Scenario{
		Name:        "direction-pinned",
		Description: "wrong rotation direction must fail",
		Sequence:    filepath.Join("testdata", "sequences", "compound.json"),
		Expect: Expectation{
			CapType:           "ROTATED_90_CW + SWAPPED",
			Components:        []string{"rotated", "swapped"},
			Circular:          true,
			RotationDirection: "ccw",
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Passed())
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "rotation_direction")

	// Leaving the direction unspecified skips the check.
	s.Expect.RotationDirection = ""
	result, err = Run(s)
	require.NoError(t, err)
	assert.True(t, result.Passed())
}

func TestRunMissingSequence(t *testing.T) {
	s := &Scenario{
		Name:        "dangling",
		Description: "sequence file vanished after loading",
		Sequence:    filepath.Join(t.TempDir(), "gone.json"),
	}

	_, err := Run(s)
	assert.ErrorContains(t, err, "dangling")
}

func TestRunWithPolyrhythmDetector(t *testing.T) {
	s := &Scenario{
		Name:        "companion-wired",
		Description: "polyrhythm flag swaps in the real companion detector",
		Sequence:    filepath.Join("testdata", "sequences", "repeated.json"),
		Polyrhythm:  true,
		Expect: Expectation{
			CapType:    "REPEATED",
			Components: []string{"repeated"},
			Circular:   true,
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Passed())
	require.NotNil(t, result.Detection.Polyrhythmic)
	assert.True(t, result.Detection.Polyrhythmic.Available)
}
