package motion

import "strings"

// PropRotDir is the rotation direction of the prop during one motion.
type PropRotDir string

const (
	Clockwise        PropRotDir = "cw"
	CounterClockwise PropRotDir = "ccw"

	// NoRotation means the prop does not rotate during the motion
	// (static and dash motions). Direction comparisons against it are
	// indeterminate.
	NoRotation PropRotDir = "no_rot"

	// DirUnknown marks a missing or unparseable direction field.
	DirUnknown PropRotDir = ""
)

// Determinate reports whether d carries a usable direction.
func (d PropRotDir) Determinate() bool {
	return d == Clockwise || d == CounterClockwise
}

// Opposite returns the reversed direction. Indeterminate directions
// are returned unchanged.
func (d PropRotDir) Opposite() PropRotDir {
	switch d {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	default:
		return d
	}
}

// ParsePropRotDir normalizes a raw direction string.
func ParsePropRotDir(s string) PropRotDir {
	switch PropRotDir(s) {
	case Clockwise, CounterClockwise, NoRotation:
		return PropRotDir(s)
	default:
		return DirUnknown
	}
}

// MotionType names the kind of motion a hand performs during a beat.
// The set is open-ended on the wire; these are the values the engine
// treats specially.
type MotionType string

const (
	MotionPro    MotionType = "pro"
	MotionAnti   MotionType = "anti"
	MotionStatic MotionType = "static"
	MotionDash   MotionType = "dash"
	MotionFloat  MotionType = "float"
)

// HandMotion is one hand's motion during one beat.
type HandMotion struct {
	StartLoc   Location
	EndLoc     Location
	MotionType MotionType
	PropRotDir PropRotDir
}

// Equal reports exact identity of locations and motion type.
// Prop rotation direction is deliberately excluded: positional identity
// and direction identity are separate questions for the comparers.
func (m HandMotion) Equal(o HandMotion) bool {
	return m.StartLoc == o.StartLoc &&
		m.EndLoc == o.EndLoc &&
		m.MotionType == o.MotionType
}

// Beat is one discrete paired-hand motion event. Number is 1-based;
// the beat-0 record of a raw sequence is the start position, not a beat.
type Beat struct {
	Number   int
	Letter   string
	StartPos string
	EndPos   string
	Blue     HandMotion
	Red      HandMotion
}

// BeatRecord is a raw sequence entry as delivered by ingestion.
// All fields are optional on the wire; zero values mean "absent".
// Beat 0 carries the sequence start position.
type BeatRecord struct {
	Beat     int            `json:"beat"`
	Letter   string         `json:"letter,omitempty"`
	StartPos string         `json:"start_pos,omitempty"`
	EndPos   string         `json:"end_pos,omitempty"`
	SeqStart string         `json:"sequence_start_position,omitempty"`
	Blue     HandAttributes `json:"blue_attributes"`
	Red      HandAttributes `json:"red_attributes"`
}

// HandAttributes is the raw per-hand payload of a BeatRecord.
type HandAttributes struct {
	MotionType string `json:"motion_type,omitempty"`
	StartLoc   string `json:"start_loc,omitempty"`
	EndLoc     string `json:"end_loc,omitempty"`
	PropRotDir string `json:"prop_rot_dir,omitempty"`
}

// Sequence is a parsed choreography sequence: optional metadata plus
// the raw beat records in file order.
type Sequence struct {
	Word    string       `json:"word,omitempty"`
	Author  string       `json:"author,omitempty"`
	Entries []BeatRecord `json:"entries"`
}

// StartPosition returns the declared start position of the sequence:
// the beat-0 record's sequence_start_position if set, else its end
// position, else empty. Comparison against it is case-insensitive.
func (s Sequence) StartPosition() string {
	for _, e := range s.Entries {
		if e.Beat != 0 {
			continue
		}
		if e.SeqStart != "" {
			return strings.ToLower(e.SeqStart)
		}
		return strings.ToLower(e.EndPos)
	}
	return ""
}
