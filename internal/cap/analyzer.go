package cap

import (
	"sort"
	"strings"
)

// TransformationAnalyzer groups beat pairs by pattern, intersects their
// transformation sets, and searches for the modular and axis-alternating
// meta-patterns. The detector consumes it as a collaborator so tests can
// substitute a canned implementation.
type TransformationAnalyzer interface {
	GroupByPattern(pairs []BeatPair) map[string][]int
	CommonToAll(pairs []BeatPair) []Tag
	DetectModular(pairs []BeatPair) *ModularPattern
	DetectAxisAlternating(pairs []BeatPair) *AxisAlternatingPattern
}

// StandardAnalyzer is the production TransformationAnalyzer. It is
// stateless and safe for concurrent use.
type StandardAnalyzer struct{}

// GroupByPattern buckets pairs by their primary pattern label, mapping
// each label to the key beat numbers exhibiting it. Unrecognized pairs
// land in the UNKNOWN group.
func (StandardAnalyzer) GroupByPattern(pairs []BeatPair) map[string][]int {
	groups := make(map[string][]int)
	for _, p := range pairs {
		label := p.PatternLabel()
		groups[label] = append(groups[label], p.KeyBeat)
	}
	return groups
}

// CommonToAll returns the transformations present in every pair's valid
// set, in priority order. No pairs, or any pair with an empty set,
// yields nil.
func (StandardAnalyzer) CommonToAll(pairs []BeatPair) []Tag {
	if len(pairs) == 0 {
		return nil
	}

	counts := make(map[Tag]int)
	for _, p := range pairs {
		for _, t := range p.AllValid {
			counts[t]++
		}
	}

	var common []Tag
	for t, n := range counts {
		if n == len(pairs) {
			common = append(common, t)
		}
	}
	sort.Slice(common, func(i, j int) bool {
		pi, pj := priorityOf(common[i]), priorityOf(common[j])
		if pi != pj {
			return pi < pj
		}
		return common[i] < common[j]
	})
	return common
}

// modularColumns is the number of positional columns searched for the
// modular meta-pattern, one per quarter offset.
const modularColumns = 4

// DetectModular searches quartered pairs for a modular pattern: the four
// positional columns each show one consistent transformation, all
// columns share the same base transformation, and swap status varies
// across columns with some rhythm.
//
// Returns nil when any column lacks a common transformation, when the
// columns do not collapse to a single base, or when every column shows
// the identical primary (that is a uniform pattern, not a modular one).
func (a StandardAnalyzer) DetectModular(pairs []BeatPair) *ModularPattern {
	if len(pairs) < modularColumns || len(pairs)%modularColumns != 0 {
		return nil
	}

	columns := make([]ModularColumn, modularColumns)
	for col := 0; col < modularColumns; col++ {
		var colPairs []BeatPair
		for i := col; i < len(pairs); i += modularColumns {
			colPairs = append(colPairs, pairs[i])
		}
		common := a.CommonToAll(colPairs)
		if len(common) == 0 {
			return nil
		}
		primary := common[0]
		columns[col] = ModularColumn{
			Column:  col,
			Primary: primary,
			Swapped: primary.hasComponent(ComponentSwapped),
		}
	}

	base := stripSwap(columns[0].Primary)
	uniform := true
	for _, c := range columns {
		if stripSwap(c.Primary) != base {
			return nil
		}
		if c.Primary != columns[0].Primary {
			uniform = false
		}
	}
	if uniform {
		return nil
	}

	return &ModularPattern{
		BaseTransformation: base,
		Columns:            columns,
		SwapRhythm:         swapRhythm(columns),
	}
}

// stripSwap removes the swap facet from a tag, leaving the per-column
// base transformation. A pure swap's base is the identity (repeated).
func stripSwap(t Tag) Tag {
	switch t {
	case TagRotated90CWSwapped:
		return TagRotated90CW
	case TagRotated90CCWSwapped:
		return TagRotated90CCW
	case TagRotated180Swapped:
		return TagRotated180
	case TagRotated90CWSwappedInverted:
		return TagRotated90CWInverted
	case TagRotated90CCWSwappedInverted:
		return TagRotated90CCWInverted
	case TagRotated180SwappedInverted:
		return TagRotated180Inverted
	case TagSwapped:
		return TagRepeated
	case TagSwappedInverted:
		return TagInverted
	case TagMirroredSwapped:
		return TagMirrored
	case TagFlippedSwapped:
		return TagFlipped
	default:
		return t
	}
}

// swapRhythm classifies the per-column swap bit pattern: uniform when
// all columns agree, alternating for 0101/1010, otherwise the literal
// bit string.
func swapRhythm(columns []ModularColumn) string {
	var bits strings.Builder
	allSame, alternating := true, true
	for i, c := range columns {
		if c.Swapped {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
		if c.Swapped != columns[0].Swapped {
			allSame = false
		}
		if i > 0 && c.Swapped == columns[i-1].Swapped {
			alternating = false
		}
	}
	switch {
	case allSame:
		return "uniform"
	case alternating:
		return "alternating"
	default:
		return bits.String()
	}
}

// DetectAxisAlternating looks for a short repeating cycle (ABAB or
// ABCABC) in the sequence of per-pair pattern labels. The cycle must be
// shorter than the pair list, divide it evenly, and consist of distinct
// labels.
func (StandardAnalyzer) DetectAxisAlternating(pairs []BeatPair) *AxisAlternatingPattern {
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		labels[i] = p.PatternLabel()
	}

	for _, period := range []int{2, 3} {
		if cycle := labelCycle(labels, period); cycle != nil {
			return &AxisAlternatingPattern{Period: period, GroupCycle: cycle}
		}
	}
	return nil
}

// labelCycle checks whether labels repeat with the given period and the
// cycle members are pairwise distinct. Returns the cycle or nil.
func labelCycle(labels []string, period int) []string {
	if len(labels) <= period || len(labels)%period != 0 {
		return nil
	}
	for i, l := range labels {
		if l != labels[i%period] {
			return nil
		}
	}
	seen := make(map[string]bool, period)
	for _, l := range labels[:period] {
		if seen[l] {
			return nil
		}
		seen[l] = true
	}
	return labels[:period]
}
