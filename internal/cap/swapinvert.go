package cap

import "github.com/austencloud/tka-scribe-sub012/internal/motion"

// CheckRepeated detects exact identity between two beats: both hands
// keep their locations and motion types.
//
// Direction data refines the verdict. Equal directions confirm the
// repeat; reversed directions mean the pair is a pure invert and belongs
// to CheckSwapInvert, so nothing is emitted here; missing data keeps
// both readings.
func CheckRepeated(b1Blue, b1Red, b2Blue, b2Red motion.HandMotion) []Match {
	if !positionsKnown(b1Blue, b2Blue) || !positionsKnown(b1Red, b2Red) {
		return nil
	}
	if !b1Blue.Equal(b2Blue) || !b1Red.Equal(b2Red) {
		return nil
	}

	if !hasRotationData(b1Blue, b1Red, b2Blue, b2Red) {
		return []Match{Ambiguous(TagRepeated)}
	}
	if dirsInverted(b1Blue, b2Blue) && dirsInverted(b1Red, b2Red) {
		return nil
	}
	if !dirsInverted(b1Blue, b2Blue) && !dirsInverted(b1Red, b2Red) {
		return []Match{Determined(TagRepeated)}
	}
	return []Match{Ambiguous(TagRepeated)}
}

// CheckSwapInvert detects the two identity-position transforms:
//
//   - pure swap: the hands exchange motions with no rotation
//   - pure invert: both hands keep their motions but the prop rotation
//     direction reverses
//
// Pure invert requires determinate direction data showing the reversal;
// the indeterminate case is already surfaced as an ambiguous repeat by
// CheckRepeated, so emitting it here as well would double-count.
func CheckSwapInvert(b1Blue, b1Red, b2Blue, b2Red motion.HandMotion) []Match {
	var matches []Match

	// Pure swap: beat 2's red hand does beat 1's blue motion and vice
	// versa, locations untouched.
	if positionsKnown(b1Blue, b2Red) && positionsKnown(b1Red, b2Blue) &&
		b1Blue.Equal(b2Red) && b1Red.Equal(b2Blue) {
		if !hasRotationData(b1Blue, b1Red, b2Blue, b2Red) {
			matches = append(matches, Ambiguous(TagSwapped))
		} else if dirsInverted(b1Blue, b2Red) && dirsInverted(b1Red, b2Blue) {
			matches = append(matches, Determined(TagSwappedInverted))
		} else if !dirsInverted(b1Blue, b2Red) && !dirsInverted(b1Red, b2Blue) {
			matches = append(matches, Determined(TagSwapped))
		} else {
			matches = append(matches, Ambiguous(TagSwapped))
		}
	}

	// Pure invert: same motions, direction reversed on both hands.
	if positionsKnown(b1Blue, b2Blue) && positionsKnown(b1Red, b2Red) &&
		b1Blue.Equal(b2Blue) && b1Red.Equal(b2Red) &&
		hasRotationData(b1Blue, b1Red, b2Blue, b2Red) &&
		dirsInverted(b1Blue, b2Blue) && dirsInverted(b1Red, b2Red) {
		matches = append(matches, Determined(TagInverted))
	}

	return matches
}
