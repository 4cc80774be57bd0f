package cap

import (
	"strings"

	"github.com/austencloud/tka-scribe-sub012/internal/motion"
)

// Granularity names the interval at which a beat pair was generated.
type Granularity string

const (
	GranularityHalved    Granularity = "halved"
	GranularityQuartered Granularity = "quartered"
)

// RotationDirection is the estimated global turning direction of a
// sequence. Empty when no direction wins the vote.
type RotationDirection string

const (
	DirectionCW   RotationDirection = "cw"
	DirectionCCW  RotationDirection = "ccw"
	DirectionNone RotationDirection = ""
)

// BeatPair relates a key beat to its corresponding beat at some interval
// granularity, together with every transformation the comparers found
// between them. Pairs are immutable once built.
type BeatPair struct {
	KeyBeat           int         `json:"keyBeat"`
	CorrespondingBeat int         `json:"correspondingBeat"`
	Granularity       Granularity `json:"-"`

	// Primary is the highest-priority surviving transformation, empty
	// when the pair is unrecognized.
	Primary Tag `json:"detectedTransformations,omitempty"`

	// AllValid is the post-filter transformation set: ambiguous
	// base/inverted pairs survive, confirmed-base-plus-inverted does not.
	AllValid []Tag `json:"allValidTransformations,omitempty"`

	raw     []Tag
	matches []Match
}

// Unknown reports whether no transformation at all was recognized
// between the pair's beats.
func (p BeatPair) Unknown() bool { return len(p.AllValid) == 0 }

// PatternLabel is the display name of the pair's primary transformation,
// or "UNKNOWN" for unrecognized pairs. Pattern grouping keys off it.
func (p BeatPair) PatternLabel() string {
	if p.Unknown() {
		return patternUnknown
	}
	return p.Primary.Display()
}

const patternUnknown = "UNKNOWN"

// ExtractBeats filters a raw sequence down to its numbered beats,
// normalizing every string field to lower case and defaulting missing
// fields to the empty string. The beat-0 start-position record and
// metadata entries are dropped. Returns nil when the sequence carries no
// raw entries.
func ExtractBeats(seq motion.Sequence) []motion.Beat {
	if len(seq.Entries) == 0 {
		return nil
	}

	var beats []motion.Beat
	for _, e := range seq.Entries {
		if e.Beat < 1 {
			continue
		}
		beats = append(beats, motion.Beat{
			Number:   e.Beat,
			Letter:   strings.ToLower(e.Letter),
			StartPos: strings.ToLower(e.StartPos),
			EndPos:   strings.ToLower(e.EndPos),
			Blue:     normalizeHand(e.Blue),
			Red:      normalizeHand(e.Red),
		})
	}
	return beats
}

func normalizeHand(a motion.HandAttributes) motion.HandMotion {
	return motion.HandMotion{
		StartLoc:   motion.ParseLocation(strings.ToLower(a.StartLoc)),
		EndLoc:     motion.ParseLocation(strings.ToLower(a.EndLoc)),
		MotionType: motion.MotionType(strings.ToLower(a.MotionType)),
		PropRotDir: motion.ParsePropRotDir(strings.ToLower(a.PropRotDir)),
	}
}

// CompareBeatPair runs every comparer over two beats and concatenates
// their matches in the fixed order repeated, rotation, reflection,
// swap/invert. The order feeds later priority resolution only.
//
// A missing start location on any hand short-circuits to no matches:
// there is nothing meaningful to compare.
func CompareBeatPair(b1, b2 motion.Beat) []Match {
	if !b1.Blue.StartLoc.IsKnown() || !b1.Red.StartLoc.IsKnown() ||
		!b2.Blue.StartLoc.IsKnown() || !b2.Red.StartLoc.IsKnown() {
		return nil
	}

	var matches []Match
	matches = append(matches, CheckRepeated(b1.Blue, b1.Red, b2.Blue, b2.Red)...)
	matches = append(matches, CheckRotations(b1.Blue, b1.Red, b2.Blue, b2.Red)...)
	matches = append(matches, CheckReflections(b1.Blue, b1.Red, b2.Blue, b2.Red)...)
	matches = append(matches, CheckSwapInvert(b1.Blue, b1.Red, b2.Blue, b2.Red)...)
	return matches
}

// GenerateHalvedBeatPairs pairs beat i with beat i+n/2 for the first
// half of the sequence. Requires an even length of at least 2, else no
// pairs are generated.
func GenerateHalvedBeatPairs(beats []motion.Beat) []BeatPair {
	n := len(beats)
	if n < 2 || n%2 != 0 {
		return nil
	}

	half := n / 2
	pairs := make([]BeatPair, 0, half)
	for i := 0; i < half; i++ {
		pairs = append(pairs, newBeatPair(beats[i], beats[i+half], GranularityHalved))
	}
	return pairs
}

// GenerateQuarteredBeatPairs pairs every beat i with beat (i+n/4) mod n.
// The pairing wraps around, so each beat appears both as a key and as a
// corresponding beat. Requires a length divisible by 4 and at least 4,
// else no pairs are generated.
func GenerateQuarteredBeatPairs(beats []motion.Beat) []BeatPair {
	n := len(beats)
	if n < 4 || n%4 != 0 {
		return nil
	}

	quarter := n / 4
	pairs := make([]BeatPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, newBeatPair(beats[i], beats[(i+quarter)%n], GranularityQuartered))
	}
	return pairs
}

func newBeatPair(key, corr motion.Beat, g Granularity) BeatPair {
	matches := CompareBeatPair(key, corr)
	raw := expandMatches(matches)
	primary, all := FormatBeatPairTransformations(raw)
	return BeatPair{
		KeyBeat:           key.Number,
		CorrespondingBeat: corr.Number,
		Granularity:       g,
		Primary:           primary,
		AllValid:          all,
		raw:               raw,
		matches:           matches,
	}
}

// DetectRotationDirection estimates the sequence's global turning
// direction by sampling the blue hand's start location at the four
// quarter offsets {0, q, 2q, 3q} and checking, for each transition in
// the 4-cycle, whether the location advances under the CW or the CCW
// table. A direction wins with at least 2 of 4 matching transitions and
// strictly more than its opposite; otherwise no direction is reported.
func DetectRotationDirection(beats []motion.Beat) RotationDirection {
	n := len(beats)
	if n < 4 || n%4 != 0 {
		return DirectionNone
	}

	q := n / 4
	samples := []motion.Location{
		beats[0].Blue.StartLoc,
		beats[q].Blue.StartLoc,
		beats[2*q].Blue.StartLoc,
		beats[3*q].Blue.StartLoc,
	}

	var cw, ccw int
	for i := 0; i < 4; i++ {
		from, to := samples[i], samples[(i+1)%4]
		if !from.IsKnown() || !to.IsKnown() {
			continue
		}
		if from.Rotate90CW() == to {
			cw++
		}
		if from.Rotate90CCW() == to {
			ccw++
		}
	}

	switch {
	case cw >= 2 && cw > ccw:
		return DirectionCW
	case ccw >= 2 && ccw > cw:
		return DirectionCCW
	default:
		return DirectionNone
	}
}
