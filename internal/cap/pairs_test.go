package cap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austencloud/tka-scribe-sub012/internal/motion"
	"github.com/austencloud/tka-scribe-sub012/internal/testutil"
)

func makeBeats(n int) []motion.Beat {
	beats := make([]motion.Beat, n)
	for i := range beats {
		beats[i] = testutil.Beat(i+1,
			testutil.ProMotion(motion.North, motion.East),
			testutil.ProMotion(motion.South, motion.West))
	}
	return beats
}

func TestExtractBeats_FiltersAndNormalizes(t *testing.T) {
	seq := motion.Sequence{Entries: []motion.BeatRecord{
		{Beat: 0, SeqStart: "alpha1"},
		{Beat: 1, Letter: "A", Blue: motion.HandAttributes{
			MotionType: "PRO", StartLoc: "N", EndLoc: "E", PropRotDir: "CW",
		}},
		{Beat: 2},
	}}

	beats := ExtractBeats(seq)
	require.Len(t, beats, 2)

	assert.Equal(t, 1, beats[0].Number)
	assert.Equal(t, "a", beats[0].Letter)
	assert.Equal(t, motion.North, beats[0].Blue.StartLoc)
	assert.Equal(t, motion.East, beats[0].Blue.EndLoc)
	assert.Equal(t, motion.Clockwise, beats[0].Blue.PropRotDir)
	assert.Equal(t, motion.MotionType("pro"), beats[0].Blue.MotionType)

	// Missing fields default to unknown/empty, never error.
	assert.Equal(t, motion.LocUnknown, beats[1].Blue.StartLoc)
	assert.Equal(t, motion.DirUnknown, beats[1].Blue.PropRotDir)
}

func TestExtractBeats_EmptySequence(t *testing.T) {
	assert.Nil(t, ExtractBeats(motion.Sequence{}))
}

func TestCompareBeatPair_ShortCircuitsOnMissingStart(t *testing.T) {
	b1 := testutil.Beat(1,
		testutil.ProMotion(motion.North, motion.East),
		testutil.ProMotion(motion.South, motion.West))
	b2 := b1
	b2.Blue.StartLoc = motion.LocUnknown

	assert.Empty(t, CompareBeatPair(b1, b2))
	assert.Empty(t, CompareBeatPair(b2, b1))
	assert.NotEmpty(t, CompareBeatPair(b1, b1))
}

func TestCompareBeatPair_UnknownEndLocationsYieldNoMatches(t *testing.T) {
	// Starts sit a quarter turn apart but every end location is missing.
	// No comparer may read the blank ends as a positional match.
	b1 := testutil.Beat(1,
		testutil.ProMotion(motion.North, motion.LocUnknown),
		testutil.ProMotion(motion.South, motion.LocUnknown))
	b2 := testutil.Beat(2,
		testutil.ProMotion(motion.East, motion.LocUnknown),
		testutil.ProMotion(motion.West, motion.LocUnknown))

	assert.Empty(t, CompareBeatPair(b1, b2))

	pair := newBeatPair(b1, b2, GranularityHalved)
	assert.True(t, pair.Unknown())
	assert.Equal(t, patternUnknown, pair.PatternLabel())
}

func TestGenerateHalvedBeatPairs_Laws(t *testing.T) {
	for _, n := range []int{2, 4, 6, 8, 16} {
		t.Run(fmt.Sprintf("length_%d", n), func(t *testing.T) {
			pairs := GenerateHalvedBeatPairs(makeBeats(n))
			require.Len(t, pairs, n/2)
			for _, p := range pairs {
				assert.Equal(t, n/2, p.CorrespondingBeat-p.KeyBeat)
				assert.Equal(t, GranularityHalved, p.Granularity)
			}
		})
	}
}

func TestGenerateHalvedBeatPairs_RejectsOddAndShort(t *testing.T) {
	assert.Nil(t, GenerateHalvedBeatPairs(makeBeats(0)))
	assert.Nil(t, GenerateHalvedBeatPairs(makeBeats(1)))
	assert.Nil(t, GenerateHalvedBeatPairs(makeBeats(7)))
}

func TestGenerateQuarteredBeatPairs_Laws(t *testing.T) {
	for _, n := range []int{4, 8, 12, 16} {
		t.Run(fmt.Sprintf("length_%d", n), func(t *testing.T) {
			pairs := GenerateQuarteredBeatPairs(makeBeats(n))
			require.Len(t, pairs, n)
			for i, p := range pairs {
				keyIdx := p.KeyBeat - 1
				corrIdx := p.CorrespondingBeat - 1
				assert.Equal(t, i, keyIdx)
				assert.Equal(t, n/4, ((corrIdx-keyIdx)%n+n)%n)
				assert.Equal(t, GranularityQuartered, p.Granularity)
			}
		})
	}
}

func TestGenerateQuarteredBeatPairs_WrapsAround(t *testing.T) {
	pairs := GenerateQuarteredBeatPairs(makeBeats(4))
	require.Len(t, pairs, 4)
	assert.Equal(t, 4, pairs[3].KeyBeat)
	assert.Equal(t, 1, pairs[3].CorrespondingBeat)
}

func TestGenerateQuarteredBeatPairs_RejectsNonMultiplesOfFour(t *testing.T) {
	assert.Nil(t, GenerateQuarteredBeatPairs(makeBeats(2)))
	assert.Nil(t, GenerateQuarteredBeatPairs(makeBeats(6)))
	assert.Nil(t, GenerateQuarteredBeatPairs(makeBeats(10)))
}

func TestDetectRotationDirection_Clockwise(t *testing.T) {
	base := testutil.Beat(1,
		testutil.ProMotion(motion.North, motion.East),
		testutil.ProMotion(motion.Northeast, motion.Southeast))
	beats := testutil.Renumber([]motion.Beat{
		base,
		testutil.RotatedBeat(base, 1),
		testutil.RotatedBeat(base, 2),
		testutil.RotatedBeat(base, 3),
	})

	assert.Equal(t, DirectionCW, DetectRotationDirection(beats))
}

func TestDetectRotationDirection_NoConsensus(t *testing.T) {
	// All four samples share the same start location: neither table
	// advances it, so no direction wins.
	assert.Equal(t, DirectionNone, DetectRotationDirection(makeBeats(4)))
	assert.Equal(t, DirectionNone, DetectRotationDirection(makeBeats(3)))
	assert.Equal(t, DirectionNone, DetectRotationDirection(nil))
}

func TestBeatPair_PatternLabel(t *testing.T) {
	p := BeatPair{Primary: TagMirrored, AllValid: []Tag{TagMirrored}}
	assert.Equal(t, "MIRRORED", p.PatternLabel())
	assert.False(t, p.Unknown())

	empty := BeatPair{}
	assert.Equal(t, "UNKNOWN", empty.PatternLabel())
	assert.True(t, empty.Unknown())
}
