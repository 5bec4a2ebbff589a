package player

import "math"

// MaxVolume is the top of the volume scale.
const MaxVolume = 100

// clampVolume keeps a level within 0-100.
func clampVolume(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxVolume {
		return MaxVolume
	}
	return level
}

// levelToGain converts a 0-100 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 leaves the signal unchanged,
// -1 halves it, -2 quarters it. We map 100 -> 0, 50 -> -1, 25 -> -2 and
// 0 -> -10 (essentially silent).
func levelToGain(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= MaxVolume {
		return 0
	}
	return math.Log2(float64(level) / MaxVolume)
}
