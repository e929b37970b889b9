package decoder

import "math"

// quantizerScale is the fixed-point scale factor (QUANTIZER_C in the
// reference implementation) applied before saturating a channel LLR into
// an int8.
const quantizerScale = 8.0

// quantizeI8 saturates scale*llr into the representable int8 range.
func quantizeI8(llr float64) int8 {
	v := math.Round(quantizerScale * llr)
	return clipI16(int16(math.Round(v)))
}

func clipI16(v int16) int8 {
	if v > 127 {
		return 127
	}
	if v < -127 {
		return -127
	}
	return int8(v)
}

// MinStarApproxI8 is the fixed-point min* check-node update. It is
// parameterized by three independent, composable switches controlling how
// aggressively messages are clipped, matching the reference
// implementation's macro-generated variant family:
//
//   - JonesClip: after combining, cap the magnitude at 100 (see
//     jonesClipI16).
//   - PartialHardLimit: saturate outgoing messages to +-100 instead of the
//     full +-127 range, leaving headroom before int8 overflow in later
//     additions.
//   - DegreeOneClipping: when a check node has degree 1 (a direct
//     repetition, as in some puncturing patterns), clip its single
//     outgoing message to +-116 instead of propagating it unclipped.
type MinStarApproxI8 struct {
	JonesClip         bool
	PartialHardLimit  bool
	DegreeOneClipping bool
}

func (MinStarApproxI8) Quantize(llr float64) int8 { return quantizeI8(llr) }
func (MinStarApproxI8) HardDecision(t int8) bool  { return t <= 0 }

func (a MinStarApproxI8) UpdateCheck(in []int8) []int8 {
	if len(in) == 1 {
		out := in[0]
		if a.DegreeOneClipping {
			out = clipMagnitude(out, 116)
		}
		return []int8{out}
	}

	in16 := make([]int16, len(in))
	for i, x := range in {
		in16[i] = int16(x)
	}
	combined := excludeSelfAssociative(in16, minStarI16)

	out := make([]int8, len(in))
	for i, v := range combined {
		if a.JonesClip {
			v = jonesClipI16(v)
		}
		limit := int16(127)
		if a.PartialHardLimit {
			limit = 100
		}
		out[i] = clipI16(clampI16(v, -limit, limit))
	}
	return out
}

func (MinStarApproxI8) UpdateVar(channel int8, in []int8) ([]int8, int8) {
	total := int16(channel)
	in16 := make([]int16, len(in))
	for i, x := range in {
		v := int16(x)
		in16[i] = v
		total += v
	}
	out := make([]int8, len(in))
	for i, v := range in16 {
		out[i] = clipI16(total - v)
	}
	return out, clipI16(total)
}

func minStarI16(a, b int16) int16 {
	sign := int16(1)
	if (a < 0) != (b < 0) {
		sign = -1
	}
	x, y := absI16(a), absI16(b)
	m := x
	if y < m {
		m = y
	}
	correction := int16(math.Round(8.0 * math.Log1p(math.Exp(-math.Abs(float64(x-y))/8.0))))
	if correction > m {
		correction = m
	}
	return sign * (m - correction)
}

func absI16(x int16) int16 {
	if x < 0 {
		return -x
	}
	return x
}

func clampI16(x, lo, hi int16) int16 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clipMagnitude(x int8, limit int8) int8 {
	if x > limit {
		return limit
	}
	if x < -limit {
		return -limit
	}
	return x
}

// jonesClipI16 caps the magnitude of a combined value at 100, keeping its
// sign; values with magnitude up to 100 pass through unchanged.
func jonesClipI16(v int16) int16 {
	mag := absI16(v)
	if mag > 100 {
		mag = 100
	}
	if v < 0 {
		return -mag
	}
	return mag
}

// AMinStarI8 is the fixed-point Jones A-Min* check-node update: like
// AMinStar64, but operating on int8-scale messages with the same
// composable clip switches as MinStarApproxI8.
type AMinStarI8 struct {
	JonesClip         bool
	PartialHardLimit  bool
	DegreeOneClipping bool
}

func (AMinStarI8) Quantize(llr float64) int8 { return quantizeI8(llr) }
func (AMinStarI8) HardDecision(t int8) bool  { return t <= 0 }

func (a AMinStarI8) UpdateCheck(in []int8) []int8 {
	if len(in) == 1 {
		out := in[0]
		if a.DegreeOneClipping {
			out = clipMagnitude(out, 116)
		}
		return []int8{out}
	}

	in64 := make([]float64, len(in))
	for i, x := range in {
		in64[i] = float64(x)
	}
	combined := aMinStar(in64)

	out := make([]int8, len(in))
	limit := int16(127)
	if a.PartialHardLimit {
		limit = 100
	}
	for i, v := range combined {
		iv := int16(math.Round(v))
		if a.JonesClip {
			iv = jonesClipI16(iv)
		}
		out[i] = clipI16(clampI16(iv, -limit, limit))
	}
	return out
}

func (AMinStarI8) UpdateVar(channel int8, in []int8) ([]int8, int8) {
	return MinStarApproxI8{}.UpdateVar(channel, in)
}
