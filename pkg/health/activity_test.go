package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyActivity(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z float64
		want    Posture
	}{
		{"standing centre", -0.5, -1.5, 11.3, PostureStanding},
		{"standing lower corner", -0.9, -2.5, 11.1, PostureStanding},
		{"standing upper corner", -0.2, -0.7, 11.5, PostureStanding},
		{"standing z just out", -0.5, -1.5, 11.51, PostureAbnormal},
		{"lying right", 9.2, 0.3, 2.0, PostureLyingRight},
		{"lying left", -9.2, 0.3, 2.0, PostureLyingLeft},
		{"all zero", 0, 0, 0, PostureAbnormal},
		{"free fall", 0, 0, -9.8, PostureAbnormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyActivity(tc.x, tc.y, tc.z))
		})
	}
}

func TestPostureTableIsConfigurable(t *testing.T) {
	table := PostureTable{
		{Posture: PostureStanding, X: Window{-1, 1}, Y: Window{-1, 1}, Z: Window{9, 10}},
	}
	assert.Equal(t, PostureStanding, table.Classify(0, 0, 9.8))
	assert.Equal(t, PostureAbnormal, table.Classify(-0.5, -1.5, 11.3))
	assert.True(t, PostureAbnormal.IsAbnormal())
	assert.False(t, PostureStanding.IsAbnormal())
}

func TestDefaultWindowsDoNotOverlap(t *testing.T) {
	overlap := func(a, b Window) bool { return a.Min <= b.Max && b.Min <= a.Max }
	for i := range DefaultPostureTable {
		for j := i + 1; j < len(DefaultPostureTable); j++ {
			a, b := DefaultPostureTable[i], DefaultPostureTable[j]
			assert.False(t, overlap(a.X, b.X) && overlap(a.Y, b.Y) && overlap(a.Z, b.Z),
				"%s overlaps %s", a.Posture, b.Posture)
		}
	}
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, Magnitude(3, 4, 0), 1e-9)
	assert.InDelta(t, 13.0, Magnitude(3, 4, 12), 1e-9)
	assert.Zero(t, Magnitude(0, 0, 0))
}
