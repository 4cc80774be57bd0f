package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationTablesAreTotal(t *testing.T) {
	for _, loc := range AllLocations {
		assert.True(t, loc.Rotate90CW().IsKnown(), "90cw image of %s", loc)
		assert.True(t, loc.Rotate90CCW().IsKnown(), "90ccw image of %s", loc)
		assert.True(t, loc.Rotate180().IsKnown(), "180 image of %s", loc)
	}
}

func TestRotate90CW_OrderFour(t *testing.T) {
	for _, loc := range AllLocations {
		got := loc
		for i := 0; i < 4; i++ {
			got = got.Rotate90CW()
		}
		assert.Equal(t, loc, got, "four quarter turns must be identity for %s", loc)
	}
}

func TestRotate180_IsTwoQuarterTurns(t *testing.T) {
	for _, loc := range AllLocations {
		assert.Equal(t, loc.Rotate180(), loc.Rotate90CW().Rotate90CW())
		assert.Equal(t, loc, loc.Rotate180().Rotate180(), "180 twice must be identity")
	}
}

func TestRotate90CCW_InvertsRotate90CW(t *testing.T) {
	for _, loc := range AllLocations {
		assert.Equal(t, loc, loc.Rotate90CW().Rotate90CCW())
		assert.Equal(t, loc, loc.Rotate90CCW().Rotate90CW())
	}
}

func TestReflectionsAreInvolutions(t *testing.T) {
	for _, loc := range AllLocations {
		assert.Equal(t, loc, loc.MirrorVertical().MirrorVertical())
		assert.Equal(t, loc, loc.FlipHorizontal().FlipHorizontal())
	}
}

func TestMirrorVertical_FixesAxis(t *testing.T) {
	assert.Equal(t, North, North.MirrorVertical())
	assert.Equal(t, South, South.MirrorVertical())
	assert.Equal(t, West, East.MirrorVertical())
	assert.Equal(t, Northwest, Northeast.MirrorVertical())
}

func TestParseLocation(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Location
	}{
		{"cardinal", "n", North},
		{"intercardinal", "sw", Southwest},
		{"empty", "", LocUnknown},
		{"garbage", "center", LocUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLocation(tc.in))
		})
	}
}

func TestUnknownLocationMapsToUnknown(t *testing.T) {
	require.False(t, LocUnknown.IsKnown())
	assert.Equal(t, LocUnknown, LocUnknown.Rotate90CW())
	assert.Equal(t, LocUnknown, LocUnknown.Rotate180())
	assert.Equal(t, LocUnknown, LocUnknown.MirrorVertical())
}
