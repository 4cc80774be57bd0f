package cap

import "github.com/austencloud/tka-scribe-sub012/internal/motion"

// reflectionKind names one of the two checked reflections.
type reflectionKind struct {
	reflect func(motion.Location) motion.Location
	base    Tag
	swapped Tag
}

var reflectionKinds = []reflectionKind{
	{func(l motion.Location) motion.Location { return l.MirrorVertical() }, TagMirrored, TagMirroredSwapped},
	{func(l motion.Location) motion.Location { return l.FlipHorizontal() }, TagFlipped, TagFlippedSwapped},
}

// CheckReflections compares two beats' hand motions under the vertical
// (mirror) and horizontal (flip) axis reflections, in both color
// pairings. Reflections are purely positional: direction semantics
// under a reflection are not defined by the vocabulary, so every match
// is determined.
func CheckReflections(b1Blue, b1Red, b2Blue, b2Red motion.HandMotion) []Match {
	var matches []Match

	for _, kind := range reflectionKinds {
		if reflectedOnto(kind.reflect, b1Blue, b2Blue) && reflectedOnto(kind.reflect, b1Red, b2Red) {
			matches = append(matches, Determined(kind.base))
		}
		if reflectedOnto(kind.reflect, b1Blue, b2Red) && reflectedOnto(kind.reflect, b1Red, b2Blue) {
			matches = append(matches, Determined(kind.swapped))
		}
	}

	return matches
}

// reflectedOnto reports whether reflecting from's locations lands
// exactly on to's locations.
func reflectedOnto(reflect func(motion.Location) motion.Location, from, to motion.HandMotion) bool {
	if !positionsKnown(from, to) {
		return false
	}
	return reflect(from.StartLoc) == to.StartLoc && reflect(from.EndLoc) == to.EndLoc
}
