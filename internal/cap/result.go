package cap

import "fmt"

// Interval records the granularity at which a transformation component
// was observed: a plain halved or quartered interval, or a positional
// interval carrying the rhythm of a per-column pattern.
type Interval string

const (
	IntervalHalved    Interval = "halved"
	IntervalQuartered Interval = "quartered"
)

// PositionalInterval encodes a positional observation with its rhythm,
// e.g. "positional:alternating".
func PositionalInterval(rhythm string) Interval {
	return Interval(fmt.Sprintf("positional:%s", rhythm))
}

// IntervalMap records, per transformation facet, the interval at which
// it was observed. Absent facets serialize as missing keys.
type IntervalMap struct {
	Rotation Interval `json:"rotation,omitempty"`
	Swap     Interval `json:"swap,omitempty"`
	Mirror   Interval `json:"mirror,omitempty"`
	Invert   Interval `json:"invert,omitempty"`
	Flip     Interval `json:"flip,omitempty"`
	Repeat   Interval `json:"repeat,omitempty"`
}

// Set records the interval for the facet matching a component.
func (m *IntervalMap) Set(c Component, iv Interval) {
	switch c {
	case ComponentRotated:
		m.Rotation = iv
	case ComponentSwapped:
		m.Swap = iv
	case ComponentMirrored:
		m.Mirror = iv
	case ComponentInverted:
		m.Invert = iv
	case ComponentFlipped:
		m.Flip = iv
	case ComponentRepeated:
		m.Repeat = iv
	}
}

// Empty reports whether no facet has been recorded.
func (m IntervalMap) Empty() bool {
	return m == IntervalMap{}
}

// ModularColumn is one positional column of a modular pattern.
type ModularColumn struct {
	Column  int  `json:"column"`
	Primary Tag  `json:"primary"`
	Swapped bool `json:"swapped"`
}

// ModularPattern describes a quartered modular classification: all
// positional columns share one base transformation while their swap
// status varies with some rhythm.
type ModularPattern struct {
	BaseTransformation Tag             `json:"baseTransformation"`
	Columns            []ModularColumn `json:"columns"`
	SwapRhythm         string          `json:"swapRhythm"`
}

// CompoundPattern describes a quartered 90° rotation combined with a
// halved swap.
type CompoundPattern struct {
	RotationTag      Tag      `json:"rotationTag"`
	SwapTag          Tag      `json:"swapTag"`
	RotationInterval Interval `json:"rotationInterval"`
	SwapInterval     Interval `json:"swapInterval"`
}

// AxisAlternatingPattern describes a higher-order alternation among the
// pattern groups themselves (ABAB, ABCABC).
type AxisAlternatingPattern struct {
	Period     int      `json:"period"`
	GroupCycle []string `json:"groupCycle"`
}

// Result is the terminal output of one detection run. It is constructed
// once per Detect call and never mutated by the engine afterwards; the
// Confirmed/Denied fields on candidates belong to the review UI.
type Result struct {
	IsCircular bool `json:"isCircular"`

	// CapType is the winning designation's display name, empty when the
	// sequence could not be classified.
	CapType string `json:"capType,omitempty"`

	Components              []Component       `json:"components"`
	TransformationIntervals IntervalMap       `json:"transformationIntervals"`
	RotationDirection       RotationDirection `json:"rotationDirection,omitempty"`

	CandidateDesignations []CandidateDesignation `json:"candidateDesignations,omitempty"`
	BeatPairs             []BeatPair             `json:"beatPairs,omitempty"`
	BeatPairGroups        map[string][]int       `json:"beatPairGroups,omitempty"`

	IsFreeform        bool `json:"isFreeform"`
	IsModular         bool `json:"isModular"`
	IsAxisAlternating bool `json:"isAxisAlternating"`

	ModularPattern         *ModularPattern         `json:"modularPattern,omitempty"`
	CompoundPattern        *CompoundPattern        `json:"compoundPattern,omitempty"`
	AxisAlternatingPattern *AxisAlternatingPattern `json:"axisAlternatingPattern,omitempty"`

	Polyrhythmic *PolyrhythmicDetail `json:"polyrhythmic,omitempty"`
	LayeredPath  *LayeredPathDetail  `json:"layeredPath,omitempty"`
}
