// Package testutil builds deterministic beat sequences for tests.
//
// The builders construct beats with known symmetry relationships
// (rotated, mirrored, swapped, inverted copies) so tests can assemble
// sequences that exhibit exactly one pattern and assert on the
// classification. Everything here is pure; no randomness, no clocks.
package testutil

import (
	"fmt"

	"github.com/austencloud/tka-scribe-sub012/internal/motion"
)

// Motion builds a hand motion.
func Motion(start, end motion.Location, mt motion.MotionType, dir motion.PropRotDir) motion.HandMotion {
	return motion.HandMotion{StartLoc: start, EndLoc: end, MotionType: mt, PropRotDir: dir}
}

// ProMotion builds a pro motion with a clockwise prop rotation.
func ProMotion(start, end motion.Location) motion.HandMotion {
	return Motion(start, end, motion.MotionPro, motion.Clockwise)
}

// StaticMotion builds a static motion with indeterminate rotation data.
func StaticMotion(loc motion.Location) motion.HandMotion {
	return Motion(loc, loc, motion.MotionStatic, motion.NoRotation)
}

// Beat builds a numbered beat from two hand motions.
func Beat(n int, blue, red motion.HandMotion) motion.Beat {
	return motion.Beat{
		Number: n,
		Letter: fmt.Sprintf("b%d", n),
		EndPos: fmt.Sprintf("pos%d", n),
		Blue:   blue,
		Red:    red,
	}
}

// RotatedBeat returns a copy of b with both hands' locations advanced
// clockwise by the given number of quarter turns. Prop rotation
// directions are preserved: rotating a pattern does not reverse its
// props.
func RotatedBeat(b motion.Beat, quarters int) motion.Beat {
	out := b
	for i := 0; i < quarters; i++ {
		out.Blue = rotateHand(out.Blue)
		out.Red = rotateHand(out.Red)
	}
	return out
}

func rotateHand(m motion.HandMotion) motion.HandMotion {
	m.StartLoc = m.StartLoc.Rotate90CW()
	m.EndLoc = m.EndLoc.Rotate90CW()
	return m
}

// MirroredBeat returns a copy of b reflected across the vertical axis.
func MirroredBeat(b motion.Beat) motion.Beat {
	out := b
	out.Blue.StartLoc = b.Blue.StartLoc.MirrorVertical()
	out.Blue.EndLoc = b.Blue.EndLoc.MirrorVertical()
	out.Red.StartLoc = b.Red.StartLoc.MirrorVertical()
	out.Red.EndLoc = b.Red.EndLoc.MirrorVertical()
	return out
}

// FlippedBeat returns a copy of b reflected across the horizontal axis.
func FlippedBeat(b motion.Beat) motion.Beat {
	out := b
	out.Blue.StartLoc = b.Blue.StartLoc.FlipHorizontal()
	out.Blue.EndLoc = b.Blue.EndLoc.FlipHorizontal()
	out.Red.StartLoc = b.Red.StartLoc.FlipHorizontal()
	out.Red.EndLoc = b.Red.EndLoc.FlipHorizontal()
	return out
}

// SwappedBeat returns a copy of b with the hands' motions exchanged.
func SwappedBeat(b motion.Beat) motion.Beat {
	out := b
	out.Blue, out.Red = b.Red, b.Blue
	return out
}

// InvertedBeat returns a copy of b with both props' rotation directions
// reversed.
func InvertedBeat(b motion.Beat) motion.Beat {
	out := b
	out.Blue.PropRotDir = b.Blue.PropRotDir.Opposite()
	out.Red.PropRotDir = b.Red.PropRotDir.Opposite()
	return out
}

// Renumber returns the beats renumbered 1..n with matching letters and
// end positions. Builders like RotatedBeat copy their source's number;
// call this after assembling a sequence.
func Renumber(beats []motion.Beat) []motion.Beat {
	out := make([]motion.Beat, len(beats))
	for i, b := range beats {
		out[i] = b
		out[i].Number = i + 1
		out[i].Letter = fmt.Sprintf("b%d", i+1)
		out[i].EndPos = fmt.Sprintf("pos%d", i+1)
	}
	return out
}

// CircularSequence wraps beats into a raw sequence whose declared start
// position equals the final beat's end position, making it circular.
func CircularSequence(word string, beats []motion.Beat) motion.Sequence {
	seq := motion.Sequence{Word: word}
	last := ""
	if len(beats) > 0 {
		last = beats[len(beats)-1].EndPos
	}
	seq.Entries = append(seq.Entries, motion.BeatRecord{Beat: 0, SeqStart: last})
	for _, b := range beats {
		seq.Entries = append(seq.Entries, record(b))
	}
	return seq
}

// OpenSequence wraps beats into a raw sequence whose declared start
// position matches nothing, so the circularity gate rejects it.
func OpenSequence(word string, beats []motion.Beat) motion.Sequence {
	seq := motion.Sequence{Word: word}
	seq.Entries = append(seq.Entries, motion.BeatRecord{Beat: 0, SeqStart: "elsewhere"})
	for _, b := range beats {
		seq.Entries = append(seq.Entries, record(b))
	}
	return seq
}

func record(b motion.Beat) motion.BeatRecord {
	return motion.BeatRecord{
		Beat:   b.Number,
		Letter: b.Letter,
		EndPos: b.EndPos,
		Blue:   attributes(b.Blue),
		Red:    attributes(b.Red),
	}
}

func attributes(m motion.HandMotion) motion.HandAttributes {
	return motion.HandAttributes{
		MotionType: string(m.MotionType),
		StartLoc:   string(m.StartLoc),
		EndLoc:     string(m.EndLoc),
		PropRotDir: string(m.PropRotDir),
	}
}
