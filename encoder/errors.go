package encoder

import "errors"

// ErrSubmatrixNotInvertible is returned by FromGraph when the square
// submatrix formed by the last columns of the parity-check matrix is not
// invertible over GF(2), so no systematic generator matrix exists for it.
var ErrSubmatrixNotInvertible = errors.New("encoder: parity submatrix is not invertible over GF(2)")
