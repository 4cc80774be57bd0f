package cap

import (
	"fmt"
	"sort"
	"strings"
)

// FormatBeatPairTransformations normalizes a raw tag set into the pair's
// final transformation view.
//
// Two steps:
//
//  1. Base-wins filter: whenever a base tag and its inverted counterpart
//     both survived the comparers (they can arrive independently from
//     different comparers), the inverted one is dropped.
//  2. Priority sort: remaining tags are ordered by the fixed
//     transformation priority; unlisted tags keep their original
//     relative order at the end.
//
// The highest-priority survivor becomes the primary transformation.
// An empty raw set yields an empty primary and nil set.
func FormatBeatPairTransformations(raw []Tag) (primary Tag, all []Tag) {
	if len(raw) == 0 {
		return "", nil
	}

	present := make(map[Tag]bool, len(raw))
	for _, t := range raw {
		present[t] = true
	}

	dropped := make(map[Tag]bool)
	for base, inv := range invertedCounterpart {
		if present[base] && present[inv] {
			dropped[inv] = true
		}
	}

	seen := make(map[Tag]bool, len(raw))
	for _, t := range raw {
		if dropped[t] || seen[t] {
			continue
		}
		seen[t] = true
		all = append(all, t)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return priorityOf(all[i]) < priorityOf(all[j])
	})

	return all[0], all
}

// CandidateDesignation is one ranked labeling candidate offered to the
// review collaborator. Confirmed and Denied start false and are mutated
// only by the external review UI, never by the engine.
type CandidateDesignation struct {
	Components              []Component       `json:"components"`
	CapType                 string            `json:"capType"`
	TransformationIntervals IntervalMap       `json:"transformationIntervals"`
	Label                   string            `json:"label"`
	Description             string            `json:"description"`
	RotationDirection       RotationDirection `json:"rotationDirection,omitempty"`
	Confirmed               bool              `json:"confirmed"`
	Denied                  bool              `json:"denied"`
}

// BuildCandidateDesignations turns a set of observed tags into ranked,
// deduplicated candidates for the given granularity. Candidates are
// keyed by their sorted component set plus rotation direction; the first
// tag to produce a key wins, so callers should pass tags in priority
// order.
func BuildCandidateDesignations(tags []Tag, g Granularity, dir RotationDirection) []CandidateDesignation {
	ordered := make([]Tag, len(tags))
	copy(ordered, tags)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityOf(ordered[i]) < priorityOf(ordered[j])
	})

	seen := make(map[string]bool)
	var candidates []CandidateDesignation
	for _, t := range ordered {
		comps := t.Components()
		if len(comps) == 0 {
			continue
		}
		key := candidateKey(comps, dir)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, CandidateDesignation{
			Components:              comps,
			CapType:                 t.Display(),
			TransformationIntervals: intervalsForTag(t, g),
			Label:                   candidateLabel(t),
			Description:             candidateDescription(t, g),
			RotationDirection:       dir,
		})
	}
	return candidates
}

func candidateKey(comps []Component, dir RotationDirection) string {
	names := make([]string, len(comps))
	for i, c := range comps {
		names[i] = string(c)
	}
	sort.Strings(names)
	return strings.Join(names, "+") + "|" + string(dir)
}

// candidateLabel renders a short human label from a tag, e.g.
// "rotated 90 cw + swapped".
func candidateLabel(t Tag) string {
	comps := t.Components()
	parts := make([]string, 0, len(comps))
	base := t.baseForm()
	for _, c := range comps {
		if c == ComponentRotated {
			parts = append(parts, strings.ReplaceAll(string(base), "_", " "))
			continue
		}
		parts = append(parts, string(c))
	}
	return strings.Join(parts, " + ")
}

func candidateDescription(t Tag, g Granularity) string {
	return fmt.Sprintf("beats relate by %s at the %s interval", candidateLabel(t), g)
}

// intervalsForTag records, per component of the tag, the granularity at
// which it was observed.
func intervalsForTag(t Tag, g Granularity) IntervalMap {
	m := IntervalMap{}
	for _, c := range t.Components() {
		m.Set(c, Interval(g))
	}
	return m
}
