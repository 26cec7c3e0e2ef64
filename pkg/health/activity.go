package health

import "math"

type Posture string

const (
	PostureStanding   Posture = "Berdiri"
	PostureLyingRight Posture = "Berbaring Kanan"
	PostureLyingLeft  Posture = "Berbaring Kiri"
	PostureAbnormal   Posture = "N/A (Tidak Normal)"
)

// Window is an inclusive [Min, Max] range on one accelerometer axis.
type Window struct {
	Min float64
	Max float64
}

func (w Window) Contains(v float64) bool {
	return v >= w.Min && v <= w.Max
}

type PostureWindow struct {
	Posture Posture
	X, Y, Z Window
}

func (pw PostureWindow) Matches(x, y, z float64) bool {
	return pw.X.Contains(x) && pw.Y.Contains(y) && pw.Z.Contains(z)
}

// PostureTable is checked in order; the first matching window wins.
// The numbers are empirically chosen per collar mounting, not derived.
type PostureTable []PostureWindow

var DefaultPostureTable = PostureTable{
	{
		Posture: PostureStanding,
		X:       Window{Min: -0.9, Max: -0.2},
		Y:       Window{Min: -2.5, Max: -0.7},
		Z:       Window{Min: 11.1, Max: 11.5},
	},
	{
		Posture: PostureLyingRight,
		X:       Window{Min: 8.0, Max: 10.5},
		Y:       Window{Min: -2.5, Max: 2.5},
		Z:       Window{Min: -1.5, Max: 5.0},
	},
	{
		Posture: PostureLyingLeft,
		X:       Window{Min: -10.5, Max: -8.0},
		Y:       Window{Min: -2.5, Max: 2.5},
		Z:       Window{Min: -1.5, Max: 5.0},
	},
}

func (t PostureTable) Classify(x, y, z float64) Posture {
	for _, pw := range t {
		if pw.Matches(x, y, z) {
			return pw.Posture
		}
	}
	return PostureAbnormal
}

// ClassifyActivity classifies against DefaultPostureTable.
func ClassifyActivity(x, y, z float64) Posture {
	return DefaultPostureTable.Classify(x, y, z)
}

func (p Posture) IsAbnormal() bool {
	return p == PostureAbnormal
}

// Magnitude is the Euclidean norm of the three axes.
func Magnitude(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}
