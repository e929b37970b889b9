package decoder

import "github.com/xtaci/ldpctoolbox/graph"

// FloodingDecoder runs belief propagation with the flooding schedule:
// every check node is updated from the previous iteration's variable
// messages, then every variable node is updated from this iteration's
// check messages, all before any node sees a value computed within the
// same iteration.
type FloodingDecoder[T any] struct {
	h          *graph.Graph
	arithmetic Arithmetic[T]

	checkMessages *Messages[T] // destination: variable node
	varMessages   *Messages[T] // destination: check node

	channelLLR []T
	posterior  []T
}

// NewFloodingDecoder builds a flooding-schedule decoder for parity-check
// graph h using arithmetic strategy a.
func NewFloodingDecoder[T any](h *graph.Graph, a Arithmetic[T]) *FloodingDecoder[T] {
	return &FloodingDecoder[T]{
		h:             h,
		arithmetic:    a,
		checkMessages: NewMessages[T](h.NumCols(), h.ColWeight),
		varMessages:   NewMessages[T](h.NumRows(), h.RowWeight),
		channelLLR:    make([]T, h.NumCols()),
		posterior:     make([]T, h.NumCols()),
	}
}

// Graph implements LdpcDecoder.
func (d *FloodingDecoder[T]) Graph() *graph.Graph { return d.h }

func (d *FloodingDecoder[T]) initialize(llrs []float64) {
	for c, llr := range llrs {
		d.channelLLR[c] = d.arithmetic.Quantize(llr)
		d.posterior[c] = d.channelLLR[c]
	}
	d.checkMessages.Reset()
	d.varMessages.Reset()
	for c := 0; c < d.h.NumCols(); c++ {
		for _, r := range d.h.Col(c) {
			d.varMessages.Send(r, c, d.channelLLR[c])
		}
	}
}

func (d *FloodingDecoder[T]) processCheckNodes() {
	for r := 0; r < d.h.NumRows(); r++ {
		cols := d.h.Row(r)
		incoming := make([]T, len(cols))
		for i, c := range cols {
			incoming[i] = d.varMessages.Value(r, c)
		}
		outgoing := d.arithmetic.UpdateCheck(incoming)
		for i, c := range cols {
			d.checkMessages.Send(c, r, outgoing[i])
		}
	}
}

func (d *FloodingDecoder[T]) processVariableNodes() {
	for c := 0; c < d.h.NumCols(); c++ {
		rows := d.h.Col(c)
		incoming := make([]T, len(rows))
		for i, r := range rows {
			incoming[i] = d.checkMessages.Value(c, r)
		}
		outgoing, posterior := d.arithmetic.UpdateVar(d.channelLLR[c], incoming)
		d.posterior[c] = posterior
		for i, r := range rows {
			d.varMessages.Send(r, c, outgoing[i])
		}
	}
}

func (d *FloodingDecoder[T]) checkSatisfied() bool {
	return checkSatisfied(d.h, d.posterior, d.arithmetic.HardDecision)
}

// Decode implements LdpcDecoder.
func (d *FloodingDecoder[T]) Decode(llrs []float64, maxIterations int) (Output, bool) {
	// Fast path: the raw channel hard decisions already satisfy every
	// parity check, so no quantization or message passing is needed at
	// all. This must run before initialize, which quantizes llrs through
	// the Arithmetic and could otherwise round a small-magnitude LLR to a
	// different hard decision than its raw sign.
	if rawHardDecisionSatisfied(d.h, llrs) {
		return Output{Codeword: hardDecisionsRaw(llrs), Iterations: 0}, true
	}

	d.initialize(llrs)

	for iter := 1; iter <= maxIterations; iter++ {
		d.processCheckNodes()
		d.processVariableNodes()
		if d.checkSatisfied() {
			return Output{Codeword: hardDecisions(d.posterior, d.arithmetic.HardDecision), Iterations: iter}, true
		}
	}
	return Output{Codeword: hardDecisions(d.posterior, d.arithmetic.HardDecision), Iterations: maxIterations}, false
}
