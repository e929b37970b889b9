package simulation

import "github.com/klauspost/reedsolomon"

// OuterCode models the concatenated outer error-correcting code (a BCH
// code in CCSDS and DVB-S2 practice) that sits outside the LDPC inner
// code, correcting whatever residual errors the LDPC decoder's hard
// decisions leave behind. Full BCH algebra is out of scope for this
// toolbox's BER harness (the LDPC decoder is what's under test): the
// "does the outer code absorb the residual error" decision in Corrects is
// a plain comparison of the error count against maxErrors, set by
// --bch-max-errors. NewOuterCode also builds a Reed-Solomon encoder from
// the block and parity sizes; Corrects does not use it.
type OuterCode struct {
	maxErrors int
	enc       reedsolomon.Encoder
	shards    int
	parity    int
}

// maxRSShards is reedsolomon.New's hard ceiling on dataShards+parityShards.
const maxRSShards = 256

// NewOuterCode builds an outer-code error accountant that can correct up
// to maxErrors symbol errors per block of blockSize data symbols. Real
// concatenated systems run the outer code over a fixed-size RS block (the
// CCSDS convention is a (255,223) block) rather than one shard per LDPC
// information bit, so blockSize is capped to what reedsolomon.New accepts
// alongside the requested parity.
func NewOuterCode(blockSize, maxErrors int) (*OuterCode, error) {
	parity := 2 * maxErrors
	if parity == 0 {
		parity = 1
	}
	shards := blockSize
	if shards+parity > maxRSShards {
		shards = maxRSShards - parity
	}
	enc, err := reedsolomon.New(shards, parity)
	if err != nil {
		return nil, err
	}
	return &OuterCode{maxErrors: maxErrors, enc: enc, shards: shards, parity: parity}, nil
}

// Corrects reports whether an outer code with this accountant's
// parameters would correct numErrors symbol errors within a single block:
// true if numErrors is within the code's correcting radius.
func (o *OuterCode) Corrects(numErrors int) bool {
	return numErrors <= o.maxErrors
}

// MaxErrors returns the configured per-block correctable symbol-error
// count.
func (o *OuterCode) MaxErrors() int { return o.maxErrors }
