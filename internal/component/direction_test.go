package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionRoundTrip(t *testing.T) {
	for d := East; d < DirectionCount; d++ {
		dx, dy := d.Delta()
		got, ok := DirectionFromDelta(dx, dy)
		assert.True(t, ok, d.String())
		assert.Equal(t, d, got)
	}
}

func TestDirectionFromZeroDelta(t *testing.T) {
	_, ok := DirectionFromDelta(0, 0)
	assert.False(t, ok)
}

func TestKeysDelta(t *testing.T) {
	cases := []struct {
		keys   Keys
		dx, dy int
	}{
		{Keys{}, 0, 0},
		{Keys{Up: true}, 0, -1},
		{Keys{Up: true, Right: true}, 1, -1},
		{Keys{Down: true, Left: true}, -1, 1},
		{Keys{Left: true, Right: true}, 0, 0},
		{Keys{Up: true, Down: true, Left: true}, -1, 0},
	}
	for _, tc := range cases {
		dx, dy := tc.keys.Delta()
		assert.Equal(t, tc.dx, dx, "%+v", tc.keys)
		assert.Equal(t, tc.dy, dy, "%+v", tc.keys)
	}
}

func TestSpriteTable(t *testing.T) {
	assert.Equal(t, SpriteTransform{FlipX: true}, East.Sprite())
	assert.Equal(t, SpriteTransform{}, West.Sprite())
	assert.Equal(t, 90.0, North.Sprite().Angle)
	assert.Equal(t, -90.0, South.Sprite().Angle)
	assert.False(t, Direction(42).Valid())
}
