// Package harness runs declarative conformance scenarios against the
// detection engine.
//
// A scenario names a sequence file and the classification it must
// produce. The harness loads the sequence through the same ingestion
// path the CLI uses, runs detection, and compares the result against
// the scenario's expect block. Golden files additionally pin the full
// canonical result snapshot, so a change in any externally visible
// field of the output shows up as a byte-level diff.
package harness

import (
	"fmt"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
	"github.com/austencloud/tka-scribe-sub012/internal/ingest"
	"github.com/austencloud/tka-scribe-sub012/internal/polyrhythm"
)

// Result is the outcome of running one scenario.
type Result struct {
	Scenario  *Scenario
	Detection *cap.Result

	// Failures lists every expectation the detection missed, one
	// human-readable line each. Empty means the scenario passed.
	Failures []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Run executes a scenario: load the sequence, detect, compare against
// the expect block. Returns an error only for infrastructure problems
// (unreadable or invalid sequence file); expectation mismatches are
// reported through Result.Failures.
func Run(scenario *Scenario) (*Result, error) {
	seq, err := ingest.LoadFile(scenario.Sequence)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	var opts []cap.Option
	if scenario.Polyrhythm {
		opts = append(opts, cap.WithPolyrhythmDetector(polyrhythm.Detector{}))
	}
	detection := cap.New(opts...).Detect(seq)

	result := &Result{Scenario: scenario, Detection: detection}
	result.Failures = checkExpectation(scenario.Expect, detection)
	return result, nil
}

// checkExpectation compares a detection against an expect block and
// returns one failure line per mismatch.
func checkExpectation(want Expectation, got *cap.Result) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if got.CapType != want.CapType {
		fail("cap_type: got %q, want %q", got.CapType, want.CapType)
	}

	if !componentsMatch(want.Components, got.Components) {
		fail("components: got %v, want %v", got.Components, want.Components)
	}

	if got.IsCircular != want.Circular {
		fail("circular: got %v, want %v", got.IsCircular, want.Circular)
	}
	if got.IsFreeform != want.Freeform {
		fail("freeform: got %v, want %v", got.IsFreeform, want.Freeform)
	}
	if got.IsModular != want.Modular {
		fail("modular: got %v, want %v", got.IsModular, want.Modular)
	}
	if got.IsAxisAlternating != want.AxisAlternating {
		fail("axis_alternating: got %v, want %v", got.IsAxisAlternating, want.AxisAlternating)
	}

	if want.RotationDirection != "" {
		if string(got.RotationDirection) != want.RotationDirection {
			fail("rotation_direction: got %q, want %q", got.RotationDirection, want.RotationDirection)
		}
	}

	return failures
}

// componentsMatch compares the expected component names against the
// detection's component list, order included: components are emitted in
// a fixed priority order and scenarios pin that order.
func componentsMatch(want []string, got []cap.Component) bool {
	if len(want) != len(got) {
		return false
	}
	for i, w := range want {
		if string(got[i]) != w {
			return false
		}
	}
	return true
}
