package simulation

import "errors"

// ErrCodewordSizeNotDivisible is returned by Puncturer.Puncture when the
// codeword length is not a multiple of the puncturing pattern's length.
var ErrCodewordSizeNotDivisible = errors.New("simulation: codeword size not divisible by puncturing pattern length")
