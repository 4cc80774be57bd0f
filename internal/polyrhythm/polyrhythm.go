// Package polyrhythm finds per-hand repetition periods in a beat
// sequence. Two hands cycling at different periods (say blue every two
// beats, red every four) form a polyrhythm even when the sequence as a
// whole shows no positional symmetry.
//
// The detector plugs into the engine through the cap.PolyrhythmDetector
// interface; the engine merges its finding into the result verbatim and
// never lets it influence classification.
package polyrhythm

import (
	"fmt"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
	"github.com/austencloud/tka-scribe-sub012/internal/motion"
)

// Detector is a period-based polyrhythm detector. The zero value is
// ready to use.
type Detector struct{}

var _ cap.PolyrhythmDetector = Detector{}

// DetectPolyrhythm reports the smallest period at which each hand's
// motion signature repeats across the sequence. A polyrhythm is detected
// when both hands cycle in strictly less than the full sequence length
// and their periods differ.
func (Detector) DetectPolyrhythm(seq motion.Sequence) *cap.PolyrhythmicDetail {
	beats := cap.ExtractBeats(seq)
	detail := &cap.PolyrhythmicDetail{Available: true}
	if len(beats) < 2 {
		return detail
	}

	blue := make([]string, len(beats))
	red := make([]string, len(beats))
	for i, b := range beats {
		blue[i] = signature(b.Blue)
		red[i] = signature(b.Red)
	}

	bluePeriod := minimalPeriod(blue)
	redPeriod := minimalPeriod(red)
	detail.BluePeriod = bluePeriod
	detail.RedPeriod = redPeriod
	detail.Detected = bluePeriod < len(beats) &&
		redPeriod < len(beats) &&
		bluePeriod != redPeriod
	return detail
}

// signature collapses a hand motion into a comparable token. Two beats
// with equal signatures perform the identical motion.
func signature(m motion.HandMotion) string {
	return fmt.Sprintf("%s>%s/%s/%s", m.StartLoc, m.EndLoc, m.MotionType, m.PropRotDir)
}

// minimalPeriod returns the smallest p dividing len(tokens) such that
// the token list is p-periodic. The full length is always a period, so
// the result is at most len(tokens).
func minimalPeriod(tokens []string) int {
	n := len(tokens)
	for p := 1; p < n; p++ {
		if n%p != 0 {
			continue
		}
		if isPeriodic(tokens, p) {
			return p
		}
	}
	return n
}

func isPeriodic(tokens []string, p int) bool {
	for i := p; i < len(tokens); i++ {
		if tokens[i] != tokens[i-p] {
			return false
		}
	}
	return true
}
