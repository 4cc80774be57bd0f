package cap

import "github.com/austencloud/tka-scribe-sub012/internal/motion"

// rotationKind names one of the three checked rotations together with
// its location transform and base tags.
type rotationKind struct {
	rotate  func(motion.Location) motion.Location
	base    Tag
	swapped Tag
}

// Check order is fixed: 90 ccw, 180, 90 cw.
var rotationKinds = []rotationKind{
	{func(l motion.Location) motion.Location { return l.Rotate90CCW() }, TagRotated90CCW, TagRotated90CCWSwapped},
	{func(l motion.Location) motion.Location { return l.Rotate180() }, TagRotated180, TagRotated180Swapped},
	{func(l motion.Location) motion.Location { return l.Rotate90CW() }, TagRotated90CW, TagRotated90CWSwapped},
}

// CheckRotations compares two beats' hand motions under the three grid
// rotations, in both the same-color and swapped-color pairing.
//
// A positional match alone is not enough to decide between a rotation
// and its inverted form: that takes prop rotation direction data for all
// four motions involved. When the data is there, exactly one form is
// emitted; when it is not, the match is ambiguous and carries both.
func CheckRotations(b1Blue, b1Red, b2Blue, b2Red motion.HandMotion) []Match {
	var matches []Match

	for _, kind := range rotationKinds {
		// Same-color pairing: blue maps to blue, red to red.
		if rotatedOnto(kind.rotate, b1Blue, b2Blue) && rotatedOnto(kind.rotate, b1Red, b2Red) {
			matches = append(matches, resolveInversion(kind.base, b1Blue, b1Red, b2Blue, b2Red))
		}
		// Swapped-color pairing: blue maps to red, red to blue.
		if rotatedOnto(kind.rotate, b1Blue, b2Red) && rotatedOnto(kind.rotate, b1Red, b2Blue) {
			matches = append(matches, resolveInversion(kind.swapped, b1Blue, b1Red, b2Red, b2Blue))
		}
	}

	return matches
}

// rotatedOnto reports whether applying the rotation to from's start and
// end locations lands exactly on to's locations. Unknown locations never
// match.
func rotatedOnto(rotate func(motion.Location) motion.Location, from, to motion.HandMotion) bool {
	if !positionsKnown(from, to) {
		return false
	}
	return rotate(from.StartLoc) == to.StartLoc && rotate(from.EndLoc) == to.EndLoc
}

// positionsKnown reports whether both motions' start and end locations
// are on the grid. Transforming an unknown location yields another
// unknown, and two unknowns would compare equal, so the positional
// matchers must refuse the comparison outright.
func positionsKnown(a, b motion.HandMotion) bool {
	return a.StartLoc.IsKnown() && a.EndLoc.IsKnown() &&
		b.StartLoc.IsKnown() && b.EndLoc.IsKnown()
}

// resolveInversion decides between base and its inverted counterpart by
// comparing prop rotation directions across the matched pairing
// (a1 maps onto a2, b1 onto b2).
func resolveInversion(base Tag, a1, b1, a2, b2 motion.HandMotion) Match {
	if !hasRotationData(a1, b1, a2, b2) {
		return Ambiguous(base)
	}
	if dirsInverted(a1, a2) && dirsInverted(b1, b2) {
		return Determined(invertedCounterpart[base])
	}
	if !dirsInverted(a1, a2) && !dirsInverted(b1, b2) {
		return Determined(base)
	}
	// One hand preserved, one reversed: the direction data contradicts
	// itself for a clean symmetry, so keep both readings.
	return Ambiguous(base)
}

// hasRotationData reports whether every involved motion carries an
// interpretable prop rotation direction. Static and dash motions do not.
func hasRotationData(motions ...motion.HandMotion) bool {
	for _, m := range motions {
		if !m.PropRotDir.Determinate() {
			return false
		}
	}
	return true
}

// dirsInverted reports whether the second motion's prop rotation runs
// opposite to the first's. Callers must have checked hasRotationData.
func dirsInverted(m1, m2 motion.HandMotion) bool {
	return m2.PropRotDir == m1.PropRotDir.Opposite()
}
