package btml

import "math"

// math32bits and floatFromBits convert between a float32 and its raw
// little-endian-packed bit pattern. The data model already quantizes float
// payloads to single precision, so the narrowing cast at encode time is
// lossless.
func math32bits(f float32) uint32 {
	return math.Float32bits(f)
}

func floatFromBits(bits uint32) float64 {
	return float64(math.Float32frombits(bits))
}
