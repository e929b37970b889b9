package simulation

import "fmt"

// ModulationKind names a modulation scheme selectable from the CLI's
// --modulation flag.
type ModulationKind string

const (
	ModulationBPSK ModulationKind = "BPSK"
	ModulationPSK8 ModulationKind = "8PSK"
)

// NewModulator builds the Modulator for kind.
func NewModulator(kind ModulationKind) (Modulator, error) {
	switch kind {
	case ModulationBPSK:
		return BpskModulator{}, nil
	case ModulationPSK8:
		return Psk8Modulator{}, nil
	default:
		return nil, fmt.Errorf("simulation: unknown modulation %q", kind)
	}
}

// NewDemodulator builds the Demodulator for kind at the given channel
// noise standard deviation.
func NewDemodulator(kind ModulationKind, noiseSigma float64) (Demodulator, error) {
	switch kind {
	case ModulationBPSK:
		return NewBpskDemodulator(noiseSigma), nil
	case ModulationPSK8:
		return NewPsk8Demodulator(noiseSigma), nil
	default:
		return nil, fmt.Errorf("simulation: unknown modulation %q", kind)
	}
}
