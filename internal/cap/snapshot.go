package cap

// Snapshot flattens a result into the primitives MarshalCanonical
// accepts. The golden-file harness and the label store's content keys
// both hash this view, so its shape is part of the compatibility
// surface: adding a key invalidates every recorded snapshot.
func Snapshot(r *Result) map[string]any {
	intervals := map[string]any{}
	iv := r.TransformationIntervals
	if iv.Rotation != "" {
		intervals["rotation"] = iv.Rotation
	}
	if iv.Swap != "" {
		intervals["swap"] = iv.Swap
	}
	if iv.Mirror != "" {
		intervals["mirror"] = iv.Mirror
	}
	if iv.Invert != "" {
		intervals["invert"] = iv.Invert
	}
	if iv.Flip != "" {
		intervals["flip"] = iv.Flip
	}
	if iv.Repeat != "" {
		intervals["repeat"] = iv.Repeat
	}

	components := make([]any, 0, len(r.Components))
	for _, c := range r.Components {
		components = append(components, c)
	}

	pairs := make([]any, 0, len(r.BeatPairs))
	for _, p := range r.BeatPairs {
		pairs = append(pairs, map[string]any{
			"key_beat":           p.KeyBeat,
			"corresponding_beat": p.CorrespondingBeat,
			"primary":            p.PatternLabel(),
		})
	}

	direction := "none"
	if r.RotationDirection != DirectionNone {
		direction = string(r.RotationDirection)
	}

	return map[string]any{
		"cap_type":   r.CapType,
		"components": components,
		"flags": map[string]any{
			"circular":         r.IsCircular,
			"freeform":         r.IsFreeform,
			"modular":          r.IsModular,
			"axis_alternating": r.IsAxisAlternating,
		},
		"intervals":          intervals,
		"pairs":              pairs,
		"rotation_direction": direction,
	}
}
