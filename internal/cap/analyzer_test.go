package cap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairWith(key, corr int, tags ...Tag) BeatPair {
	primary, all := FormatBeatPairTransformations(tags)
	return BeatPair{KeyBeat: key, CorrespondingBeat: corr, Primary: primary, AllValid: all}
}

func TestGroupByPattern(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 5, TagMirrored),
		pairWith(2, 6, TagFlipped),
		pairWith(3, 7, TagMirrored),
		pairWith(4, 8),
	}

	groups := StandardAnalyzer{}.GroupByPattern(pairs)
	assert.Equal(t, map[string][]int{
		"MIRRORED": {1, 3},
		"FLIPPED":  {2},
		"UNKNOWN":  {4},
	}, groups)
}

func TestCommonToAll(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 3, TagRotated90CW, TagMirrored),
		pairWith(2, 4, TagRotated90CW, TagSwapped),
	}

	common := StandardAnalyzer{}.CommonToAll(pairs)
	assert.Equal(t, []Tag{TagRotated90CW}, common)
}

func TestCommonToAll_EmptyCases(t *testing.T) {
	a := StandardAnalyzer{}
	assert.Nil(t, a.CommonToAll(nil))
	assert.Nil(t, a.CommonToAll([]BeatPair{
		pairWith(1, 3, TagMirrored),
		pairWith(2, 4),
	}))
}

func TestCommonToAll_PriorityOrder(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 3, TagMirrored, TagRotated180, TagSwapped),
		pairWith(2, 4, TagSwapped, TagMirrored, TagRotated180),
	}

	common := StandardAnalyzer{}.CommonToAll(pairs)
	assert.Equal(t, []Tag{TagRotated180, TagSwapped, TagMirrored}, common)
}

func TestDetectModular_AlternatingSwap(t *testing.T) {
	// Columns 0 and 2 rotate plain, columns 1 and 3 rotate swapped.
	pairs := []BeatPair{
		pairWith(1, 3, TagRotated90CW),
		pairWith(2, 4, TagRotated90CWSwapped),
		pairWith(3, 5, TagRotated90CW),
		pairWith(4, 6, TagRotated90CWSwapped),
		pairWith(5, 7, TagRotated90CW),
		pairWith(6, 8, TagRotated90CWSwapped),
		pairWith(7, 1, TagRotated90CW),
		pairWith(8, 2, TagRotated90CWSwapped),
	}

	mp := StandardAnalyzer{}.DetectModular(pairs)
	require.NotNil(t, mp)
	assert.Equal(t, TagRotated90CW, mp.BaseTransformation)
	assert.Equal(t, "alternating", mp.SwapRhythm)
	require.Len(t, mp.Columns, 4)
	assert.False(t, mp.Columns[0].Swapped)
	assert.True(t, mp.Columns[1].Swapped)
	assert.False(t, mp.Columns[2].Swapped)
	assert.True(t, mp.Columns[3].Swapped)
}

func TestDetectModular_PairedSwapRhythm(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 3, TagRotated90CW),
		pairWith(2, 4, TagRotated90CW),
		pairWith(3, 5, TagRotated90CWSwapped),
		pairWith(4, 6, TagRotated90CWSwapped),
	}

	mp := StandardAnalyzer{}.DetectModular(pairs)
	require.NotNil(t, mp)
	assert.Equal(t, "0011", mp.SwapRhythm)
}

func TestDetectModular_RejectsUniformColumns(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 3, TagRotated90CW),
		pairWith(2, 4, TagRotated90CW),
		pairWith(3, 5, TagRotated90CW),
		pairWith(4, 6, TagRotated90CW),
	}

	assert.Nil(t, StandardAnalyzer{}.DetectModular(pairs))
}

func TestDetectModular_RejectsMixedBases(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 3, TagRotated90CW),
		pairWith(2, 4, TagRotated180Swapped),
		pairWith(3, 5, TagRotated90CW),
		pairWith(4, 6, TagRotated180Swapped),
	}

	assert.Nil(t, StandardAnalyzer{}.DetectModular(pairs))
}

func TestDetectModular_RejectsUnknownColumn(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 3, TagRotated90CW),
		pairWith(2, 4),
		pairWith(3, 5, TagRotated90CW),
		pairWith(4, 6, TagRotated90CWSwapped),
	}

	assert.Nil(t, StandardAnalyzer{}.DetectModular(pairs))
}

func TestDetectModular_RejectsShortOrRagged(t *testing.T) {
	a := StandardAnalyzer{}
	assert.Nil(t, a.DetectModular(nil))
	assert.Nil(t, a.DetectModular([]BeatPair{
		pairWith(1, 2, TagRotated90CW),
		pairWith(2, 3, TagRotated90CWSwapped),
	}))
}

func TestDetectAxisAlternating_ABAB(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 5, TagMirrored),
		pairWith(2, 6, TagFlipped),
		pairWith(3, 7, TagMirrored),
		pairWith(4, 8, TagFlipped),
	}

	axis := StandardAnalyzer{}.DetectAxisAlternating(pairs)
	require.NotNil(t, axis)
	assert.Equal(t, 2, axis.Period)
	assert.Equal(t, []string{"MIRRORED", "FLIPPED"}, axis.GroupCycle)
}

func TestDetectAxisAlternating_ABCABC(t *testing.T) {
	pairs := []BeatPair{
		pairWith(1, 7, TagMirrored),
		pairWith(2, 8, TagFlipped),
		pairWith(3, 9, TagSwapped),
		pairWith(4, 10, TagMirrored),
		pairWith(5, 11, TagFlipped),
		pairWith(6, 12, TagSwapped),
	}

	axis := StandardAnalyzer{}.DetectAxisAlternating(pairs)
	require.NotNil(t, axis)
	assert.Equal(t, 3, axis.Period)
	assert.Equal(t, []string{"MIRRORED", "FLIPPED", "SWAPPED"}, axis.GroupCycle)
}

func TestDetectAxisAlternating_RejectsBlocksAndConstants(t *testing.T) {
	a := StandardAnalyzer{}

	// Block structure MMFF is not an alternation.
	assert.Nil(t, a.DetectAxisAlternating([]BeatPair{
		pairWith(1, 5, TagMirrored),
		pairWith(2, 6, TagMirrored),
		pairWith(3, 7, TagFlipped),
		pairWith(4, 8, TagFlipped),
	}))

	// A single repeating label is uniform, not alternating.
	assert.Nil(t, a.DetectAxisAlternating([]BeatPair{
		pairWith(1, 5, TagMirrored),
		pairWith(2, 6, TagMirrored),
		pairWith(3, 7, TagMirrored),
		pairWith(4, 8, TagMirrored),
	}))
}
