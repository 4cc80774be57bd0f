package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
)

// snapshotWithName builds the golden-file view of a detection: the
// canonical result snapshot plus the scenario name, so a golden file is
// self-describing.
func snapshotWithName(name string, detection *cap.Result) map[string]any {
	m := cap.Snapshot(detection)
	m["scenario"] = name
	return m
}

// RunWithGolden executes a scenario and compares the detection snapshot
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the run result so callers can additionally assert on the
// expect-block outcome; an error means the run itself failed, while a
// snapshot mismatch fails the test through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario.Name, result.Detection); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares a detection's canonical snapshot against the
// golden file named after the scenario. Useful when the detection was
// produced outside RunWithGolden.
func AssertGolden(t *testing.T, scenarioName string, detection *cap.Result) error {
	t.Helper()

	data, err := cap.MarshalCanonical(snapshotWithName(scenarioName, detection))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
