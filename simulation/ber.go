package simulation

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xtaci/ldpctoolbox/decoder"
	"github.com/xtaci/ldpctoolbox/encoder"
	"github.com/xtaci/ldpctoolbox/gf2"
	"github.com/xtaci/ldpctoolbox/graph"
)

// Config describes one BER sweep: the code, decoder variant, channel
// chain (puncturing, interleaving, modulation) and stopping criteria.
type Config struct {
	H                    *graph.Graph
	DecoderImpl          decoder.DecoderImplementation
	Modulation           ModulationKind
	PuncturingPattern    []bool // nil disables puncturing
	InterleaverColumns   int    // 0 disables interleaving
	InterleaverBackwards bool
	MaxIterations        int
	MaxFrameErrors       int
	BCHMaxErrors         int // 0 disables the parallel BCH-outer view
	NumWorkers           int // 0 selects runtime.NumCPU()
	Reporter             *Reporter
}

// Statistics is a snapshot of one Eb/N0 point's accumulated results.
type Statistics struct {
	EbN0dB                   float64
	NumFrames                int
	BitErrors                int
	FrameErrors              int
	TotalIterations          int
	CorrectIterations        int
	FalseDecodes             int
	BCHFrameErrors           int // frames whose bit errors exceed the configured BCH correcting radius; 0 if BCH is not configured
	BER                      float64
	FER                      float64
	BCHFER                   float64
	AverageIterations        float64
	AverageIterationsCorrect float64
	Elapsed                  time.Duration
	ThroughputMbps           float64
}

func (s *Statistics) finalize(k int, elapsed time.Duration) {
	s.Elapsed = elapsed
	if s.NumFrames > 0 {
		s.BER = float64(s.BitErrors) / float64(k*s.NumFrames)
		s.FER = float64(s.FrameErrors) / float64(s.NumFrames)
		s.BCHFER = float64(s.BCHFrameErrors) / float64(s.NumFrames)
		s.AverageIterations = float64(s.TotalIterations) / float64(s.NumFrames)
	}
	if correct := s.NumFrames - s.FrameErrors; correct > 0 {
		s.AverageIterationsCorrect = float64(s.CorrectIterations) / float64(correct)
	}
	if secs := elapsed.Seconds(); secs > 0 {
		s.ThroughputMbps = 1e-6 * float64(k*s.NumFrames) / secs
	}
}

// Report is one message from a running BER sweep: either a Statistics
// snapshot taken while an Eb/N0 point runs, or, once per Eb/N0 point, that
// point's final Statistics with Finished set.
type Report struct {
	Statistics *Statistics
	Finished   bool
}

// Reporter receives Statistics snapshots on Updates while a sweep is
// running: one after every aggregated frame, dropped without blocking when
// Updates is full, plus each point's final Report, whose send blocks.
// BERTest does not read Interval.
type Reporter struct {
	Updates  chan Report
	Interval time.Duration
}

// workerResult is one frame's simulation outcome, as produced by a worker
// and consumed by the aggregation loop.
type workerResult struct {
	bitErrors     int
	frameError    bool
	falseDecode   bool
	bchFrameError bool // true if a BCH outer code is configured and this frame's bit errors exceed its correcting radius
	iterations    int
}

// BERTest runs a Monte-Carlo bit-error-rate sweep for a fixed code and
// decoder variant across a list of Eb/N0 points, splitting the frame
// generation and decoding work across NumWorkers goroutines.
type BERTest struct {
	cfg   Config
	enc   *encoder.Encoder
	mod   Modulator
	punc  *Puncturer
	il    *Interleaver
	outer *OuterCode // nil unless cfg.BCHMaxErrors > 0

	k, n, nCW int
	rate      float64
}

// NewBERTest builds a BERTest from cfg. k is derived as H.NumCols() -
// H.NumRows(); nCW as H.NumCols(); n accounts for puncturing if
// configured.
func NewBERTest(cfg Config) (*BERTest, error) {
	enc, err := encoder.FromGraph(cfg.H)
	if err != nil {
		return nil, err
	}
	mod, err := NewModulator(cfg.Modulation)
	if err != nil {
		return nil, err
	}

	t := &BERTest{cfg: cfg, enc: enc, mod: mod}
	t.k = cfg.H.NumCols() - cfg.H.NumRows()
	t.nCW = cfg.H.NumCols()
	t.n = t.nCW

	if cfg.PuncturingPattern != nil {
		t.punc = NewPuncturer(cfg.PuncturingPattern)
		t.n = int(math.Round(float64(t.nCW) / t.punc.Rate()))
	}
	if cfg.InterleaverColumns > 0 {
		t.il = NewInterleaver(cfg.InterleaverColumns, cfg.InterleaverBackwards)
	}
	if cfg.BCHMaxErrors > 0 {
		outer, err := NewOuterCode(t.k, cfg.BCHMaxErrors)
		if err != nil {
			return nil, err
		}
		t.outer = outer
	}
	t.rate = float64(t.k) / float64(t.n)
	return t, nil
}

func (t *BERTest) numWorkers() int {
	if t.cfg.NumWorkers > 0 {
		return t.cfg.NumWorkers
	}
	return runtime.NumCPU()
}

// Run executes the sweep for every Eb/N0 point in ebN0sDB, in order,
// returning one Statistics per point.
func (t *BERTest) Run(ctx context.Context, ebN0sDB []float64) ([]Statistics, error) {
	results := make([]Statistics, 0, len(ebN0sDB))
	for _, ebn0 := range ebN0sDB {
		stats, err := t.runOnePoint(ctx, ebn0)
		if err != nil {
			return results, err
		}
		results = append(results, stats)
		if t.cfg.Reporter != nil {
			final := stats
			t.cfg.Reporter.Updates <- Report{Statistics: &final, Finished: true}
		}
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
	}
	return results, nil
}

func (t *BERTest) runOnePoint(ctx context.Context, ebn0db float64) (Statistics, error) {
	esn0 := t.rate * float64(t.mod.BitsPerSymbol()) * math.Pow(10, ebn0db/10)
	noiseSigma := math.Sqrt(0.5 / esn0)

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultsCh := make(chan workerResult, t.numWorkers()*4)
	g, gctx := errgroup.WithContext(workerCtx)

	for w := 0; w < t.numWorkers(); w++ {
		seed := int64(w)*0x9E3779B97F4A7C15 + int64(math.Float64bits(ebn0db))
		g.Go(func() error {
			return t.worker(gctx, rand.New(rand.NewSource(seed)), noiseSigma, resultsCh)
		})
	}

	stats := Statistics{EbN0dB: ebn0db}
	start := time.Now()

	governingCount := func() int {
		if t.outer != nil {
			return stats.BCHFrameErrors
		}
		return stats.FrameErrors
	}

	aggDone := make(chan struct{})
	go func() {
		defer close(aggDone)
		for governingCount() < t.cfg.MaxFrameErrors {
			select {
			case r, ok := <-resultsCh:
				if !ok {
					return
				}
				stats.NumFrames++
				stats.BitErrors += r.bitErrors
				stats.TotalIterations += r.iterations
				if r.frameError {
					stats.FrameErrors++
				} else {
					stats.CorrectIterations += r.iterations
				}
				if r.falseDecode {
					stats.FalseDecodes++
				}
				if t.outer != nil && r.bchFrameError {
					stats.BCHFrameErrors++
				}
				if t.cfg.Reporter != nil {
					snapshot := stats
					snapshot.finalize(t.k, time.Since(start))
					select {
					case t.cfg.Reporter.Updates <- Report{Statistics: &snapshot}:
					default:
					}
				}
			case <-workerCtx.Done():
				return
			}
		}
		cancel()
	}()

	<-aggDone
	cancel()
	if err := g.Wait(); err != nil && err != context.Canceled {
		return stats, err
	}

	stats.finalize(t.k, time.Since(start))
	return stats, nil
}

// worker repeatedly simulates frames and pushes their outcomes to results
// until ctx is canceled, at which point it exits cleanly.
func (t *BERTest) worker(ctx context.Context, rng *rand.Rand, noiseSigma float64, results chan<- workerResult) error {
	demod, err := NewDemodulator(t.cfg.Modulation, noiseSigma)
	if err != nil {
		return err
	}
	channel := NewAwgnChannel(noiseSigma, rng)
	dec, err := t.cfg.DecoderImpl.Build(t.cfg.H)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		r := t.simulate(rng, channel, demod, dec)
		select {
		case results <- r:
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *BERTest) simulate(rng *rand.Rand, channel *AwgnChannel, demod Demodulator, dec decoder.LdpcDecoder) workerResult {
	message := randomMessage(rng, t.k)
	codeword := t.enc.Encode(message)

	toTransmit := codeword
	if t.punc != nil {
		punctured, err := t.punc.Puncture(codeword)
		if err != nil {
			panic(err)
		}
		toTransmit = punctured
	}
	if t.il != nil {
		toTransmit = t.il.Interleave(toTransmit)
	}

	symbols := t.mod.Modulate(toTransmit)
	signal := make([]float64, 2*len(symbols))
	for i, s := range symbols {
		signal[2*i] = real(s)
		signal[2*i+1] = imag(s)
	}
	channel.AddNoise(signal)
	for i := range symbols {
		symbols[i] = complex(signal[2*i], signal[2*i+1])
	}

	llrs := demod.Demodulate(symbols)
	if t.il != nil {
		llrs = deinterleaveLLRs(llrs, t.il)
	}
	if t.punc != nil {
		llrs = t.punc.Depuncture(llrs)
	}

	out, ok := dec.Decode(llrs, t.cfg.MaxIterations)

	bitErrors := 0
	for i := 0; i < t.k; i++ {
		if gf2.FromBit(out.Codeword[i]) != message[i] {
			bitErrors++
		}
	}
	frameError := bitErrors > 0
	r := workerResult{
		bitErrors:   bitErrors,
		frameError:  frameError,
		falseDecode: frameError && ok,
		iterations:  out.Iterations,
	}
	if t.outer != nil {
		// The BCH view "corrects" the frame whenever its residual bit
		// errors fall within the outer code's correcting radius; only
		// the remainder is charged against the BCH frame-error count.
		r.bchFrameError = !t.outer.Corrects(bitErrors)
	}
	return r
}

func randomMessage(rng *rand.Rand, k int) []gf2.Elem {
	msg := make([]gf2.Elem, k)
	for i := range msg {
		msg[i] = gf2.FromBit(byte(rng.Intn(2)))
	}
	return msg
}

// deinterleaveLLRs applies the interleaver's inverse permutation to a
// float64 LLR slice. Interleaver.Deinterleave is defined over gf2.Elem for
// the bit domain; LLRs share the exact same reshape/transpose geometry, so
// this re-derives the same index permutation over float64 instead of
// introducing a second generic type parameter purely for this one call
// site.
func deinterleaveLLRs(llrs []float64, il *Interleaver) []float64 {
	rows := len(llrs) / il.columns
	out := make([]float64, len(llrs))
	for r := 0; r < rows; r++ {
		for c := 0; c < il.columns; c++ {
			out[il.sourceCol(c)*rows+r] = llrs[r*il.columns+c]
		}
	}
	return out
}
