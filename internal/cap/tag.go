package cap

import "strings"

// Tag is one member of the closed transformation vocabulary. Tags are
// produced only by the comparers in this package; nothing downstream
// ever re-parses a display string back into a Tag.
type Tag string

const (
	TagRepeated Tag = "repeated"

	TagRotated90CW  Tag = "rotated_90_cw"
	TagRotated90CCW Tag = "rotated_90_ccw"
	TagRotated180   Tag = "rotated_180"

	TagRotated90CWSwapped  Tag = "rotated_90_cw_swapped"
	TagRotated90CCWSwapped Tag = "rotated_90_ccw_swapped"
	TagRotated180Swapped   Tag = "rotated_180_swapped"

	TagRotated90CWInverted  Tag = "rotated_90_cw_inverted"
	TagRotated90CCWInverted Tag = "rotated_90_ccw_inverted"
	TagRotated180Inverted   Tag = "rotated_180_inverted"

	TagRotated90CWSwappedInverted  Tag = "rotated_90_cw_swapped_inverted"
	TagRotated90CCWSwappedInverted Tag = "rotated_90_ccw_swapped_inverted"
	TagRotated180SwappedInverted   Tag = "rotated_180_swapped_inverted"

	TagSwapped         Tag = "swapped"
	TagSwappedInverted Tag = "swapped_inverted"

	TagInverted Tag = "inverted"

	TagMirrored        Tag = "mirrored"
	TagMirroredSwapped Tag = "mirrored_swapped"
	TagFlipped         Tag = "flipped"
	TagFlippedSwapped  Tag = "flipped_swapped"
)

// Component is a structural facet of a transformation, derived from the
// tag vocabulary at construction time.
type Component string

const (
	ComponentRotated  Component = "rotated"
	ComponentSwapped  Component = "swapped"
	ComponentMirrored Component = "mirrored"
	ComponentFlipped  Component = "flipped"
	ComponentInverted Component = "inverted"
	ComponentRepeated Component = "repeated"
)

// tagComponents maps every vocabulary member to its component set.
// Built from the closed enum, never from display strings.
var tagComponents = map[Tag][]Component{
	TagRepeated: {ComponentRepeated},

	TagRotated90CW:  {ComponentRotated},
	TagRotated90CCW: {ComponentRotated},
	TagRotated180:   {ComponentRotated},

	TagRotated90CWSwapped:  {ComponentRotated, ComponentSwapped},
	TagRotated90CCWSwapped: {ComponentRotated, ComponentSwapped},
	TagRotated180Swapped:   {ComponentRotated, ComponentSwapped},

	TagRotated90CWInverted:  {ComponentRotated, ComponentInverted},
	TagRotated90CCWInverted: {ComponentRotated, ComponentInverted},
	TagRotated180Inverted:   {ComponentRotated, ComponentInverted},

	TagRotated90CWSwappedInverted:  {ComponentRotated, ComponentSwapped, ComponentInverted},
	TagRotated90CCWSwappedInverted: {ComponentRotated, ComponentSwapped, ComponentInverted},
	TagRotated180SwappedInverted:   {ComponentRotated, ComponentSwapped, ComponentInverted},

	TagSwapped:         {ComponentSwapped},
	TagSwappedInverted: {ComponentSwapped, ComponentInverted},

	TagInverted: {ComponentInverted},

	TagMirrored:        {ComponentMirrored},
	TagMirroredSwapped: {ComponentMirrored, ComponentSwapped},
	TagFlipped:         {ComponentFlipped},
	TagFlippedSwapped:  {ComponentFlipped, ComponentSwapped},
}

// invertedCounterpart maps each base tag to its inverted form. The
// formatter's base-wins filter walks this table; a pure invert's base
// counterpart is the repeated tag.
var invertedCounterpart = map[Tag]Tag{
	TagRepeated:            TagInverted,
	TagRotated90CW:         TagRotated90CWInverted,
	TagRotated90CCW:        TagRotated90CCWInverted,
	TagRotated180:          TagRotated180Inverted,
	TagRotated90CWSwapped:  TagRotated90CWSwappedInverted,
	TagRotated90CCWSwapped: TagRotated90CCWSwappedInverted,
	TagRotated180Swapped:   TagRotated180SwappedInverted,
	TagSwapped:             TagSwappedInverted,
}

// transformationPriority fixes the ranking used to pick a pair's primary
// transformation. Lower index wins; tags not listed sort last in their
// original relative order.
var transformationPriority = []Tag{
	TagRepeated,
	TagRotated90CW,
	TagRotated90CCW,
	TagRotated180,
	TagRotated90CWSwapped,
	TagRotated90CCWSwapped,
	TagRotated180Swapped,
	TagSwapped,
	TagMirrored,
	TagFlipped,
	TagMirroredSwapped,
	TagFlippedSwapped,
	TagInverted,
	TagRotated90CWInverted,
	TagRotated90CCWInverted,
	TagRotated180Inverted,
	TagRotated90CWSwappedInverted,
	TagRotated90CCWSwappedInverted,
	TagRotated180SwappedInverted,
	TagSwappedInverted,
}

var tagPriority = func() map[Tag]int {
	m := make(map[Tag]int, len(transformationPriority))
	for i, t := range transformationPriority {
		m[t] = i
	}
	return m
}()

// Components returns the structural components of t. Unknown tags have
// no components.
func (t Tag) Components() []Component {
	return tagComponents[t]
}

// Display is the canonical display form of a tag.
func (t Tag) Display() string {
	return strings.ToUpper(string(t))
}

// IsQuarterRotation reports whether t encodes a 90° rotation in either
// direction, with or without swap/invert suffixes.
func (t Tag) IsQuarterRotation() bool {
	switch t {
	case TagRotated90CW, TagRotated90CCW,
		TagRotated90CWSwapped, TagRotated90CCWSwapped,
		TagRotated90CWInverted, TagRotated90CCWInverted,
		TagRotated90CWSwappedInverted, TagRotated90CCWSwappedInverted:
		return true
	}
	return false
}

// hasComponent reports whether t carries the given component.
func (t Tag) hasComponent(c Component) bool {
	for _, tc := range tagComponents[t] {
		if tc == c {
			return true
		}
	}
	return false
}

// baseForm strips the swap and invert facets from t, leaving the
// positional base transformation. Used by compound and modular detection
// to check that two tags differ only by swap/invert status.
func (t Tag) baseForm() Tag {
	switch t {
	case TagRotated90CWSwapped, TagRotated90CWInverted, TagRotated90CWSwappedInverted:
		return TagRotated90CW
	case TagRotated90CCWSwapped, TagRotated90CCWInverted, TagRotated90CCWSwappedInverted:
		return TagRotated90CCW
	case TagRotated180Swapped, TagRotated180Inverted, TagRotated180SwappedInverted:
		return TagRotated180
	case TagSwappedInverted:
		return TagSwapped
	case TagMirroredSwapped:
		return TagMirrored
	case TagFlippedSwapped:
		return TagFlipped
	case TagInverted:
		return TagRepeated
	default:
		return t
	}
}

// priorityOf returns the rank of t, or len(transformationPriority) for
// unlisted tags so they sort last.
func priorityOf(t Tag) int {
	if p, ok := tagPriority[t]; ok {
		return p
	}
	return len(transformationPriority)
}

// Match is the outcome of a single symmetry check. A determined match
// carries exactly one tag. An ambiguous match carries the base tag plus
// its inverted counterpart; downstream code must treat the two as
// "one of", never "both of".
type Match struct {
	Tag       Tag
	Ambiguous bool
	Alternate Tag // inverted counterpart, set only when Ambiguous
}

// Determined builds a match with a single confirmed tag.
func Determined(t Tag) Match {
	return Match{Tag: t}
}

// Ambiguous builds a match whose invert status could not be decided.
// The alternate is looked up from the base/inverted table.
func Ambiguous(base Tag) Match {
	return Match{Tag: base, Ambiguous: true, Alternate: invertedCounterpart[base]}
}

// Tags expands a match into its plausible tag set.
func (m Match) Tags() []Tag {
	if m.Ambiguous {
		return []Tag{m.Tag, m.Alternate}
	}
	return []Tag{m.Tag}
}

// expandMatches flattens a match list into raw tags, preserving order.
func expandMatches(matches []Match) []Tag {
	var tags []Tag
	for _, m := range matches {
		tags = append(tags, m.Tags()...)
	}
	return tags
}
