package motion

// Location is one of the eight points of the diamond/box grid.
//
// The four cardinal points (n, e, s, w) form the diamond; the four
// intercardinal points (ne, se, sw, nw) form the box. The empty string
// is the "unknown" location and is never present in the transform tables.
type Location string

const (
	North     Location = "n"
	East      Location = "e"
	South     Location = "s"
	West      Location = "w"
	Northeast Location = "ne"
	Southeast Location = "se"
	Southwest Location = "sw"
	Northwest Location = "nw"

	// LocUnknown marks a missing or unparseable location field.
	LocUnknown Location = ""
)

// AllLocations lists the grid points in clockwise order starting at north.
var AllLocations = []Location{
	North, Northeast, East, Southeast, South, Southwest, West, Northwest,
}

// rotate90CW maps each location to its image under a quarter turn clockwise.
var rotate90CW = map[Location]Location{
	North:     East,
	East:      South,
	South:     West,
	West:      North,
	Northeast: Southeast,
	Southeast: Southwest,
	Southwest: Northwest,
	Northwest: Northeast,
}

// rotate90CCW is the inverse of rotate90CW.
var rotate90CCW = map[Location]Location{
	North:     West,
	West:      South,
	South:     East,
	East:      North,
	Northeast: Northwest,
	Northwest: Southwest,
	Southwest: Southeast,
	Southeast: Northeast,
}

// rotate180 maps each location to its antipode. Equal to rotate90CW twice.
var rotate180 = map[Location]Location{
	North:     South,
	South:     North,
	East:      West,
	West:      East,
	Northeast: Southwest,
	Southwest: Northeast,
	Southeast: Northwest,
	Northwest: Southeast,
}

// mirrorVertical reflects across the vertical (n-s) axis.
var mirrorVertical = map[Location]Location{
	North:     North,
	South:     South,
	East:      West,
	West:      East,
	Northeast: Northwest,
	Northwest: Northeast,
	Southeast: Southwest,
	Southwest: Southeast,
}

// flipHorizontal reflects across the horizontal (e-w) axis.
var flipHorizontal = map[Location]Location{
	East:      East,
	West:      West,
	North:     South,
	South:     North,
	Northeast: Southeast,
	Southeast: Northeast,
	Northwest: Southwest,
	Southwest: Northwest,
}

// Rotate90CW returns the location a quarter turn clockwise from l.
// Unknown locations map to LocUnknown.
func (l Location) Rotate90CW() Location { return rotate90CW[l] }

// Rotate90CCW returns the location a quarter turn counter-clockwise from l.
func (l Location) Rotate90CCW() Location { return rotate90CCW[l] }

// Rotate180 returns the location a half turn from l.
func (l Location) Rotate180() Location { return rotate180[l] }

// MirrorVertical returns the reflection of l across the n-s axis.
func (l Location) MirrorVertical() Location { return mirrorVertical[l] }

// FlipHorizontal returns the reflection of l across the e-w axis.
func (l Location) FlipHorizontal() Location { return flipHorizontal[l] }

// IsKnown reports whether l is one of the eight grid points.
func (l Location) IsKnown() bool {
	_, ok := rotate90CW[l]
	return ok
}

// ParseLocation normalizes a raw location string. Anything outside the
// eight grid points (including the empty string) becomes LocUnknown.
func ParseLocation(s string) Location {
	l := Location(s)
	if l.IsKnown() {
		return l
	}
	return LocUnknown
}
