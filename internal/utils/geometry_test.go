package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1600
	testHeight = 900
)

func rectFromEdges(left, top, right, bottom float64) Rect {
	return RectAt((left+right)/2, (top+bottom)/2, right-left, bottom-top)
}

func TestCheckBound(t *testing.T) {
	cases := []struct {
		name       string
		r          Rect
		horizontal bool
		vertical   bool
	}{
		{"inside", rectFromEdges(100, 100, 200, 200), true, true},
		{"whole screen", rectFromEdges(0, 0, testWidth, testHeight), true, true},
		{"touching corners", rectFromEdges(0, 0, 10, 10), true, true},
		{"left overflow", rectFromEdges(-1, 100, 50, 150), false, true},
		{"right overflow", rectFromEdges(1590, 100, 1601, 150), false, true},
		{"top overflow", rectFromEdges(100, -5, 150, 50), true, false},
		{"bottom overflow", rectFromEdges(100, 850, 150, 901), true, false},
		{"both", rectFromEdges(-10, -10, 10, 10), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, v := CheckBound(tc.r, testWidth, testHeight)
			assert.Equal(t, tc.horizontal, h)
			assert.Equal(t, tc.vertical, v)
		})
	}
}

func TestCheckBoundGrid(t *testing.T) {
	for left := 0.0; left <= testWidth; left += 200 {
		for top := 0.0; top <= testHeight; top += 150 {
			r := rectFromEdges(left, top, math.Min(left+100, testWidth), math.Min(top+100, testHeight))
			h, v := CheckBound(r, testWidth, testHeight)
			assert.True(t, h && v, "rect %+v must be inside", r)
		}
	}
}

func TestCalcOrientation(t *testing.T) {
	tower := RectAt(800, 450, 96, 96)

	v, err := CalcOrientation(RectAt(0, 450, 40, 40), tower)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v[0], 1e-9)
	assert.InDelta(t, 0.0, v[1], 1e-9)

	points := [][2]float64{{0, 0}, {1600, 900}, {37, 900}, {1600, 12}, {799, 451}}
	for _, p := range points {
		v, err := CalcOrientation(RectAt(p[0], p[1], 10, 10), tower)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, Length(v), 1e-9)
	}
}

func TestCalcOrientationCoincident(t *testing.T) {
	_, err := CalcOrientation(RectAt(10, 10, 5, 5), RectAt(10, 10, 50, 50))
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestOverlaps(t *testing.T) {
	a := RectAt(100, 100, 20, 20)
	assert.True(t, a.Overlaps(RectAt(115, 100, 20, 20)))
	assert.False(t, a.Overlaps(RectAt(120, 100, 20, 20)), "touching edges do not collide")
	assert.False(t, a.Overlaps(RectAt(300, 300, 20, 20)))
}
