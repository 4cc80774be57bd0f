package cap

import (
	"fmt"

	"github.com/austencloud/tka-scribe-sub012/internal/motion"
)

// compoundMaxDistinctPrimaries bounds how many distinct quartered
// primary patterns a compound classification tolerates. The primaries
// must collapse to one base transformation; allowing two of them lets a
// swap-status split (e.g. rotated vs rotated_swapped) still count as
// compound. Tunable heuristic, not a law.
const compoundMaxDistinctPrimaries = 2

// modularUnknownLimit rejects modular search when at least this share
// of quartered pairs is unrecognized.
const modularUnknownLimit = 0.5

// Detector is the top-level CAP classification engine. It holds no
// mutable state between calls; a single Detector is safe for concurrent
// use across sequences.
type Detector struct {
	analyzer    TransformationAnalyzer
	polyrhythm  PolyrhythmDetector
	layeredPath LayeredPathDetector
}

// Option configures a Detector.
type Option func(*Detector)

// WithAnalyzer substitutes the transformation analyzer.
func WithAnalyzer(a TransformationAnalyzer) Option {
	return func(d *Detector) { d.analyzer = a }
}

// WithPolyrhythmDetector wires in a polyrhythmic companion detector.
func WithPolyrhythmDetector(p PolyrhythmDetector) Option {
	return func(d *Detector) { d.polyrhythm = p }
}

// WithLayeredPathDetector wires in a layered-path companion detector.
func WithLayeredPathDetector(l LayeredPathDetector) Option {
	return func(d *Detector) { d.layeredPath = l }
}

// New creates a Detector with the standard analyzer and no-op companion
// detectors unless options say otherwise.
func New(opts ...Option) *Detector {
	d := &Detector{
		analyzer:    StandardAnalyzer{},
		polyrhythm:  NoopPolyrhythmDetector{},
		layeredPath: NoopLayeredPathDetector{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect classifies the symmetry relationship between corresponding
// beats of a sequence. It is total: every input, however malformed,
// yields a fully populated result, with isFreeform plus an empty capType
// as the universal could-not-classify signal.
//
// Decision order: circularity gate, parity gate, quartered uniform
// (with the compound sub-case), quartered modular, halved uniform, then
// the halved group fallback. The companion detectors run once up front
// and are merged into whichever terminal result is produced.
func (d *Detector) Detect(seq motion.Sequence) *Result {
	poly := d.polyrhythm.DetectPolyrhythm(seq)
	layered := d.layeredPath.DetectLayeredPath(seq)

	finish := func(r *Result) *Result {
		r.Polyrhythmic = poly
		r.LayeredPath = layered
		if r.Components == nil {
			r.Components = []Component{}
		}
		return r
	}

	beats := ExtractBeats(seq)

	// Circularity gate: at least two beats, and the declared start
	// position must equal the final beat's end position.
	start := seq.StartPosition()
	if len(beats) < 2 || start == "" || start != beats[len(beats)-1].EndPos {
		return finish(&Result{})
	}

	// Parity gate: odd sequences pair with nothing.
	if len(beats)%2 != 0 {
		return finish(&Result{IsCircular: true, IsFreeform: true})
	}

	halvedPairs := GenerateHalvedBeatPairs(beats)
	halvedGroups := d.analyzer.GroupByPattern(halvedPairs)

	if len(beats)%4 == 0 {
		quarteredPairs := GenerateQuarteredBeatPairs(beats)
		rotDir := DetectRotationDirection(beats)

		if r := d.detectQuarteredUniform(quarteredPairs, halvedPairs, rotDir); r != nil {
			return finish(r)
		}
		if r := d.detectQuarteredModular(quarteredPairs, rotDir); r != nil {
			return finish(r)
		}
		if r := d.detectHalvedUniform(halvedPairs, rotDir); r != nil {
			return finish(r)
		}
		return finish(d.fallback(halvedPairs, halvedGroups, rotDir))
	}

	if r := d.detectHalvedUniform(halvedPairs, DirectionNone); r != nil {
		return finish(r)
	}
	return finish(d.fallback(halvedPairs, halvedGroups, DirectionNone))
}

// detectQuarteredUniform looks for a single 90° rotation pattern common
// to every quartered pair, upgrading to the compound classification when
// the halved pairs unanimously show a swap on top of it.
func (d *Detector) detectQuarteredUniform(quartered, halved []BeatPair, rotDir RotationDirection) *Result {
	common := d.analyzer.CommonToAll(quartered)

	var rotations []Tag
	for _, t := range common {
		if t.IsQuarterRotation() {
			rotations = append(rotations, t)
		}
	}
	if len(rotations) == 0 {
		return nil
	}
	// The positional algebra often certifies a rotation both plain and
	// swapped (red tracing blue's path half a turn behind satisfies
	// both). The common set is priority sorted, so the first surviving
	// rotation is the canonical reading.
	uniform := rotations[0]

	if compound := d.detectCompound(uniform, quartered, halved); compound != nil {
		comps := []Component{ComponentRotated, ComponentSwapped}
		intervals := IntervalMap{Rotation: IntervalQuartered, Swap: IntervalHalved}
		return &Result{
			IsCircular:              true,
			CapType:                 fmt.Sprintf("%s + %s", compound.RotationTag.Display(), compound.SwapTag.Display()),
			Components:              comps,
			TransformationIntervals: intervals,
			RotationDirection:       rotDir,
			CandidateDesignations:   BuildCandidateDesignations(common, GranularityQuartered, rotDir),
			BeatPairs:               quartered,
			BeatPairGroups:          d.analyzer.GroupByPattern(quartered),
			CompoundPattern:         compound,
		}
	}

	return &Result{
		IsCircular:              true,
		CapType:                 uniform.Display(),
		Components:              uniform.Components(),
		TransformationIntervals: intervalsForTag(uniform, GranularityQuartered),
		RotationDirection:       rotDir,
		CandidateDesignations:   BuildCandidateDesignations(common, GranularityQuartered, rotDir),
		BeatPairs:               quartered,
		BeatPairGroups:          d.analyzer.GroupByPattern(quartered),
	}
}

// detectCompound checks for the 90° rotation + 180° swap combination:
// every quartered pair independently shows rotation, every halved pair
// shows a swap, and the quartered primaries collapse to at most
// compoundMaxDistinctPrimaries patterns differing only by swap status.
func (d *Detector) detectCompound(uniform Tag, quartered, halved []BeatPair) *CompoundPattern {
	if len(halved) == 0 {
		return nil
	}

	for _, p := range quartered {
		if !anyQuarterRotation(p.AllValid) {
			return nil
		}
	}

	swapTag := Tag("")
	for _, p := range halved {
		t := pureSwapTag(p.AllValid)
		if t == "" {
			return nil
		}
		if swapTag == "" {
			swapTag = t
		}
	}

	primaries := make(map[Tag]bool)
	for _, p := range quartered {
		primaries[p.Primary] = true
	}
	if len(primaries) > compoundMaxDistinctPrimaries {
		return nil
	}
	base := uniform.baseForm()
	for t := range primaries {
		if t.baseForm() != base {
			return nil
		}
	}

	return &CompoundPattern{
		RotationTag:      uniform,
		SwapTag:          swapTag,
		RotationInterval: IntervalQuartered,
		SwapInterval:     IntervalHalved,
	}
}

func anyQuarterRotation(tags []Tag) bool {
	for _, t := range tags {
		if t.IsQuarterRotation() {
			return true
		}
	}
	return false
}

// pureSwapTag returns the first pure swap tag in the set, or empty.
func pureSwapTag(tags []Tag) Tag {
	for _, t := range tags {
		if t == TagSwapped || t == TagSwappedInverted {
			return t
		}
	}
	return ""
}

// detectQuarteredModular delegates to the analyzer's positional-column
// search after screening out hopeless inputs: too many unknown pairs,
// or a transformation already shared by all recognized pairs (which is
// the uniform path's territory, not the modular one's).
func (d *Detector) detectQuarteredModular(quartered []BeatPair, rotDir RotationDirection) *Result {
	if len(quartered) == 0 {
		return nil
	}

	unknown := 0
	var recognized []BeatPair
	for _, p := range quartered {
		if p.Unknown() {
			unknown++
			continue
		}
		recognized = append(recognized, p)
	}
	if float64(unknown) >= modularUnknownLimit*float64(len(quartered)) {
		return nil
	}
	if len(recognized) > 0 && len(d.analyzer.CommonToAll(recognized)) > 0 {
		return nil
	}

	mp := d.analyzer.DetectModular(quartered)
	if mp == nil {
		return nil
	}

	comps := append([]Component{}, mp.BaseTransformation.Components()...)
	intervals := intervalsForTag(mp.BaseTransformation, GranularityQuartered)
	swapped := false
	for _, c := range mp.Columns {
		if c.Swapped {
			swapped = true
		}
	}
	if swapped {
		comps = appendComponentOnce(comps, ComponentSwapped)
		intervals.Swap = PositionalInterval(mp.SwapRhythm)
	}

	var candidateTags []Tag
	for _, c := range mp.Columns {
		candidateTags = append(candidateTags, c.Primary)
	}

	return &Result{
		IsCircular:              true,
		CapType:                 fmt.Sprintf("MODULAR %s + SWAP(%s)", mp.BaseTransformation.Display(), mp.SwapRhythm),
		Components:              comps,
		TransformationIntervals: intervals,
		RotationDirection:       rotDir,
		CandidateDesignations:   BuildCandidateDesignations(candidateTags, GranularityQuartered, rotDir),
		BeatPairs:               quartered,
		BeatPairGroups:          d.analyzer.GroupByPattern(quartered),
		IsModular:               true,
		ModularPattern:          mp,
	}
}

// detectHalvedUniform takes the highest-priority transformation common
// to all halved pairs, provided it carries structural components.
func (d *Detector) detectHalvedUniform(halved []BeatPair, rotDir RotationDirection) *Result {
	common := d.analyzer.CommonToAll(halved)
	if len(common) == 0 {
		return nil
	}
	top := common[0]
	comps := top.Components()
	if len(comps) == 0 {
		return nil
	}

	return &Result{
		IsCircular:              true,
		CapType:                 top.Display(),
		Components:              comps,
		TransformationIntervals: intervalsForTag(top, GranularityHalved),
		RotationDirection:       rotDir,
		CandidateDesignations:   BuildCandidateDesignations(common, GranularityHalved, rotDir),
		BeatPairs:               halved,
		BeatPairGroups:          StandardAnalyzer{}.GroupByPattern(halved),
	}
}

// fallback classifies by halved pattern groups: multiple fully
// recognized groups are modular, an unknown group or no groups at all is
// freeform. Modular fallbacks additionally get axis-alternating
// detection over the group sequence.
func (d *Detector) fallback(halved []BeatPair, groups map[string][]int, rotDir RotationDirection) *Result {
	_, hasUnknown := groups[patternUnknown]
	recognized := len(groups)
	if hasUnknown {
		recognized--
	}

	r := &Result{
		IsCircular:        true,
		RotationDirection: rotDir,
		BeatPairs:         halved,
		BeatPairGroups:    groups,
		IsModular:         !hasUnknown && recognized > 1,
		IsFreeform:        hasUnknown || recognized == 0,
	}

	if r.IsModular {
		var tags []Tag
		seen := make(map[Tag]bool)
		for _, p := range halved {
			if p.Unknown() || seen[p.Primary] {
				continue
			}
			seen[p.Primary] = true
			tags = append(tags, p.Primary)
		}
		r.CandidateDesignations = BuildCandidateDesignations(tags, GranularityHalved, rotDir)

		if axis := d.analyzer.DetectAxisAlternating(halved); axis != nil {
			r.IsAxisAlternating = true
			r.AxisAlternatingPattern = axis
		}
	}

	return r
}

func appendComponentOnce(comps []Component, c Component) []Component {
	for _, existing := range comps {
		if existing == c {
			return comps
		}
	}
	return append(comps, c)
}
