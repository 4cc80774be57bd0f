package cap

import "github.com/austencloud/tka-scribe-sub012/internal/motion"

// PolyrhythmicDetail is the verbatim output of the polyrhythmic
// companion detector. Available is false when no detector was wired in;
// Detected is false when a detector ran and found nothing.
type PolyrhythmicDetail struct {
	Available  bool `json:"available"`
	Detected   bool `json:"detected"`
	BluePeriod int  `json:"bluePeriod,omitempty"`
	RedPeriod  int  `json:"redPeriod,omitempty"`
}

// LayeredPathDetail is the verbatim output of the layered-path companion
// detector.
type LayeredPathDetail struct {
	Available   bool   `json:"available"`
	Detected    bool   `json:"detected"`
	CycleLength int    `json:"cycleLength,omitempty"`
	Description string `json:"description,omitempty"`
}

// PolyrhythmDetector finds cross-hand periodicity in a raw sequence.
// Implementations live outside the engine; results are merged into the
// detection result verbatim and never influence branch selection.
type PolyrhythmDetector interface {
	DetectPolyrhythm(seq motion.Sequence) *PolyrhythmicDetail
}

// LayeredPathDetector finds cross-hand cycle structure in a raw
// sequence. Same contract as PolyrhythmDetector.
type LayeredPathDetector interface {
	DetectLayeredPath(seq motion.Sequence) *LayeredPathDetail
}

// NoopPolyrhythmDetector is the default collaborator: it reports the
// detector as unavailable rather than pretending a negative finding.
type NoopPolyrhythmDetector struct{}

func (NoopPolyrhythmDetector) DetectPolyrhythm(motion.Sequence) *PolyrhythmicDetail {
	return &PolyrhythmicDetail{Available: false}
}

// NoopLayeredPathDetector is the default layered-path collaborator.
type NoopLayeredPathDetector struct{}

func (NoopLayeredPathDetector) DetectLayeredPath(motion.Sequence) *LayeredPathDetail {
	return &LayeredPathDetail{Available: false}
}
