package decoder

import "github.com/xtaci/ldpctoolbox/graph"

// LayeredDecoder runs belief propagation with the horizontal layered
// schedule: check nodes are processed one row at a time, and every row's
// updated check-to-variable messages are folded into the running
// per-variable total LLR immediately, so later rows within the same
// iteration already see the refined values. This typically converges in
// about half as many iterations as FloodingDecoder, at the cost of being
// inherently sequential over rows.
type LayeredDecoder[T any] struct {
	h          *graph.Graph
	arithmetic Arithmetic[T]

	qv  []T          // running total LLR per variable node
	rcv *Messages[T] // destination: variable node; last check-to-variable message sent along each edge

	channelLLR []T
}

// NewLayeredDecoder builds a horizontal-layered decoder for parity-check
// graph h using arithmetic strategy a.
func NewLayeredDecoder[T any](h *graph.Graph, a Arithmetic[T]) *LayeredDecoder[T] {
	return &LayeredDecoder[T]{
		h:          h,
		arithmetic: a,
		qv:         make([]T, h.NumCols()),
		rcv:        NewMessages[T](h.NumCols(), h.ColWeight),
		channelLLR: make([]T, h.NumCols()),
	}
}

// Graph implements LdpcDecoder.
func (d *LayeredDecoder[T]) Graph() *graph.Graph { return d.h }

func (d *LayeredDecoder[T]) initialize(llrs []float64) {
	var zero T
	for c, llr := range llrs {
		d.channelLLR[c] = d.arithmetic.Quantize(llr)
		d.qv[c] = d.channelLLR[c]
	}
	d.rcv.Reset()
	for c := 0; c < d.h.NumCols(); c++ {
		for _, r := range d.h.Col(c) {
			d.rcv.Send(c, r, zero)
		}
	}
}

// processRow updates one check node's edges and folds the result directly
// into qv.
func (d *LayeredDecoder[T]) processRow(r int) {
	cols := d.h.Row(r)
	extrinsic := make([]T, len(cols))
	for i, c := range cols {
		extrinsic[i] = subT(d.qv[c], d.rcv.Value(c, r))
	}
	outgoing := d.arithmetic.UpdateCheck(extrinsic)
	for i, c := range cols {
		d.qv[c] = addT(extrinsic[i], outgoing[i])
		d.rcv.Send(c, r, outgoing[i])
	}
}

func (d *LayeredDecoder[T]) checkSatisfied() bool {
	return checkSatisfied(d.h, d.qv, d.arithmetic.HardDecision)
}

// Decode implements LdpcDecoder.
func (d *LayeredDecoder[T]) Decode(llrs []float64, maxIterations int) (Output, bool) {
	// Fast path: see the identical comment in FloodingDecoder.Decode.
	if rawHardDecisionSatisfied(d.h, llrs) {
		return Output{Codeword: hardDecisionsRaw(llrs), Iterations: 0}, true
	}

	d.initialize(llrs)

	for iter := 1; iter <= maxIterations; iter++ {
		for r := 0; r < d.h.NumRows(); r++ {
			d.processRow(r)
		}
		if d.checkSatisfied() {
			return Output{Codeword: hardDecisions(d.qv, d.arithmetic.HardDecision), Iterations: iter}, true
		}
	}
	return Output{Codeword: hardDecisions(d.qv, d.arithmetic.HardDecision), Iterations: maxIterations}, false
}

// addT/subT perform +/- generically over the three concrete message types
// this package instantiates Arithmetic with (float64, float32, int8),
// saturating back into int8's range where applicable.
func addT[T any](a, b T) T {
	switch av := any(a).(type) {
	case float64:
		return any(av + any(b).(float64)).(T)
	case float32:
		return any(av + any(b).(float32)).(T)
	case int8:
		return any(clipI16(int16(av) + int16(any(b).(int8)))).(T)
	default:
		panic("decoder: unsupported message type")
	}
}

func subT[T any](a, b T) T {
	switch av := any(a).(type) {
	case float64:
		return any(av - any(b).(float64)).(T)
	case float32:
		return any(av - any(b).(float32)).(T)
	case int8:
		return any(clipI16(int16(av) - int16(any(b).(int8)))).(T)
	default:
		panic("decoder: unsupported message type")
	}
}
