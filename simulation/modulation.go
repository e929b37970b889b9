package simulation

import (
	"math"

	"github.com/xtaci/ldpctoolbox/gf2"
)

// Modulator turns a codeword into channel symbols.
type Modulator interface {
	BitsPerSymbol() int
	Modulate(codeword []gf2.Elem) []complex128
}

// Demodulator turns channel symbols back into bit LLRs.
type Demodulator interface {
	Demodulate(symbols []complex128) []float64
}

// --------------------------------------------------------------- BPSK ----

// BpskModulator maps bit 0 to symbol -1 and bit 1 to symbol +1, carried on
// the real axis.
type BpskModulator struct{}

func (BpskModulator) BitsPerSymbol() int { return 1 }

func (BpskModulator) Modulate(codeword []gf2.Elem) []complex128 {
	out := make([]complex128, len(codeword))
	for i, b := range codeword {
		if b.IsOne() {
			out[i] = complex(1, 0)
		} else {
			out[i] = complex(-1, 0)
		}
	}
	return out
}

// BpskDemodulator computes exact LLRs for BpskModulator's mapping given
// the channel's real noise standard deviation.
type BpskDemodulator struct {
	scale float64
}

// NewBpskDemodulator builds a demodulator for a real AWGN channel with the
// given noise standard deviation.
func NewBpskDemodulator(noiseSigma float64) *BpskDemodulator {
	// Negative scale: decoder.Arithmetic.HardDecision treats a
	// non-positive LLR as bit 1, so a +1 symbol (bit 1) must produce a
	// negative LLR.
	return &BpskDemodulator{scale: -2.0 / (noiseSigma * noiseSigma)}
}

func (d *BpskDemodulator) Demodulate(symbols []complex128) []float64 {
	out := make([]float64, len(symbols))
	for i, s := range symbols {
		out[i] = d.scale * real(s)
	}
	return out
}

// -------------------------------------------------------------- 8PSK -----

// Psk8Modulator maps 3 bits at a time onto the unit circle using the
// DVB-S2 Gray-coded constellation.
type Psk8Modulator struct{}

func (Psk8Modulator) BitsPerSymbol() int { return 3 }

var psk8Points = map[[3]bool]complex128{
	{false, false, false}: complex(a8psk, a8psk),
	{true, false, false}:  complex(0, 1),
	{true, true, false}:   complex(-a8psk, a8psk),
	{false, true, false}:  complex(-1, 0),
	{false, true, true}:   complex(-a8psk, -a8psk),
	{true, true, true}:    complex(0, -1),
	{true, false, true}:   complex(a8psk, -a8psk),
	{false, false, true}:  complex(1, 0),
}

var a8psk = math.Sqrt(0.5)

// Modulate maps codeword, whose length must be a multiple of 3, onto 8PSK
// symbols.
func (Psk8Modulator) Modulate(codeword []gf2.Elem) []complex128 {
	if len(codeword)%3 != 0 {
		panic("simulation: 8PSK codeword length must be a multiple of 3")
	}
	out := make([]complex128, len(codeword)/3)
	for i := range out {
		b0, b1, b2 := codeword[3*i], codeword[3*i+1], codeword[3*i+2]
		out[i] = psk8Points[[3]bool{b0.IsOne(), b1.IsOne(), b2.IsOne()}]
	}
	return out
}

// Psk8Demodulator computes exact per-bit LLRs for Psk8Modulator's mapping
// using the max* (Jacobian logarithm) combining rule, given the channel's
// per-component noise standard deviation.
type Psk8Demodulator struct {
	scale float64
}

// NewPsk8Demodulator builds a demodulator for a circularly symmetric AWGN
// channel whose real and imaginary noise components each have standard
// deviation noiseSigma.
func NewPsk8Demodulator(noiseSigma float64) *Psk8Demodulator {
	return &Psk8Demodulator{scale: 1.0 / (noiseSigma * noiseSigma)}
}

func dot(a, b complex128) float64 {
	return real(a)*real(b) + imag(a)*imag(b)
}

// maxStar is the Jacobian logarithm max*(a, b) = log(e^a + e^b), computed
// in a numerically stable form.
func maxStar(a, b float64) float64 {
	return math.Max(a, b) + math.Log1p(math.Exp(-math.Abs(a-b)))
}

func maxStarReduce(xs ...float64) float64 {
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = maxStar(acc, x)
	}
	return acc
}

func (d *Psk8Demodulator) demodulateSymbol(symbol complex128) [3]float64 {
	s := complex(d.scale, 0) * symbol
	d000 := dot(s, complex(a8psk, a8psk))
	d100 := dot(s, complex(0, 1))
	d110 := dot(s, complex(-a8psk, a8psk))
	d010 := dot(s, complex(-1, 0))
	d011 := dot(s, complex(-a8psk, -a8psk))
	d111 := dot(s, complex(0, -1))
	d101 := dot(s, complex(a8psk, -a8psk))
	d001 := dot(s, complex(1, 0))

	b0 := maxStarReduce(d000, d001, d010, d011) - maxStarReduce(d100, d101, d110, d111)
	b1 := maxStarReduce(d000, d001, d100, d101) - maxStarReduce(d010, d011, d110, d111)
	b2 := maxStarReduce(d000, d010, d100, d110) - maxStarReduce(d001, d011, d101, d111)
	return [3]float64{b0, b1, b2}
}

func (d *Psk8Demodulator) Demodulate(symbols []complex128) []float64 {
	out := make([]float64, 0, 3*len(symbols))
	for _, s := range symbols {
		llrs := d.demodulateSymbol(s)
		out = append(out, llrs[0], llrs[1], llrs[2])
	}
	return out
}
