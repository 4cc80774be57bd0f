package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is one declarative conformance case: a sequence file plus the
// classification it must produce.
type Scenario struct {
	// Name uniquely identifies the scenario. Golden files are keyed on it.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description"`

	// Sequence is the path to the sequence JSON file. Relative paths are
	// resolved against the scenario file's directory at load time.
	Sequence string `yaml:"sequence"`

	// Polyrhythm enables the polyrhythmic companion detector for this run.
	Polyrhythm bool `yaml:"polyrhythm,omitempty"`

	// Expect is the classification the detection must produce.
	Expect Expectation `yaml:"expect"`
}

// Expectation pins the externally visible classification of a run.
// Fields left empty or false must come back empty or false; the
// rotation direction is only checked when specified.
type Expectation struct {
	CapType           string   `yaml:"cap_type,omitempty"`
	Components        []string `yaml:"components,omitempty"`
	Circular          bool     `yaml:"circular"`
	Freeform          bool     `yaml:"freeform,omitempty"`
	Modular           bool     `yaml:"modular,omitempty"`
	AxisAlternating   bool     `yaml:"axis_alternating,omitempty"`
	RotationDirection string   `yaml:"rotation_direction,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. The decode is
// strict: unknown fields (typos like "expectations:" for "expect:") are
// rejected rather than silently dropped.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Sequence != "" && !filepath.IsAbs(scenario.Sequence) {
		scenario.Sequence = filepath.Join(filepath.Dir(path), scenario.Sequence)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name so iteration order is stable.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and the
// sequence file exists.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Sequence == "" {
		return fmt.Errorf("sequence is required")
	}

	if _, err := os.Stat(s.Sequence); os.IsNotExist(err) {
		return fmt.Errorf("sequence file not found: %s", s.Sequence)
	}

	return nil
}
