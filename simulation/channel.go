// Package simulation implements the Monte-Carlo bit-error-rate test
// harness: channel modeling, modulation, puncturing, interleaving and the
// multi-worker driver that ties them to a decoder.LdpcDecoder.
package simulation

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// AwgnChannel adds zero-mean white Gaussian noise of a fixed standard
// deviation to a real-valued signal, modeling an additive white Gaussian
// noise channel.
type AwgnChannel struct {
	distr distuv.Normal
}

// NewAwgnChannel builds an AWGN channel with the given noise standard
// deviation. It panics if noiseSigma is negative.
func NewAwgnChannel(noiseSigma float64, src rand.Source) *AwgnChannel {
	if noiseSigma < 0 {
		panic("simulation: noise sigma must be non-negative")
	}
	return &AwgnChannel{distr: distuv.Normal{Mu: 0, Sigma: noiseSigma, Src: src}}
}

// AddNoise adds independent Gaussian noise to every sample of signal, in
// place.
func (c *AwgnChannel) AddNoise(signal []float64) {
	for i := range signal {
		signal[i] += c.distr.Rand()
	}
}
