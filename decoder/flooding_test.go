package decoder

import (
	"testing"

	"github.com/xtaci/ldpctoolbox/graph"
)

// gallager25 builds the parity-check matrix used as Example 2.5 in
// Gallager's thesis, a small code whose hand-checkable structure makes it
// a convenient fixture for every schedule/arithmetic combination.
func gallager25() *graph.Graph {
	h := graph.New(4, 6)
	h.InsertRow(0, []int{0, 1, 3})
	h.InsertRow(1, []int{1, 2, 4})
	h.InsertRow(2, []int{0, 4, 5})
	h.InsertRow(3, []int{2, 3, 5})
	return h
}

const llrMagnitude = 1.3863 // log(P(0)/P(1)) for a channel with p = 0.2 error

func allZerosLLRs(flip ...int) []float64 {
	llrs := make([]float64, 6)
	for i := range llrs {
		llrs[i] = llrMagnitude
	}
	for _, i := range flip {
		llrs[i] = -llrMagnitude
	}
	return llrs
}

func decoderVariants(t *testing.T) []DecoderImplementation {
	t.Helper()
	var variants []DecoderImplementation
	for _, rule := range []Rule{RulePhi, RuleTanh, RuleMinStarApprox, RuleAMinStar} {
		for _, sched := range []Schedule{ScheduleFlooding, ScheduleLayered} {
			variants = append(variants, DecoderImplementation{Rule: rule, Precision: PrecisionF64, Schedule: sched})
			variants = append(variants, DecoderImplementation{Rule: rule, Precision: PrecisionF32, Schedule: sched})
		}
	}
	for _, rule := range []Rule{RuleMinStarApprox, RuleAMinStar} {
		for _, sched := range []Schedule{ScheduleFlooding, ScheduleLayered} {
			variants = append(variants, DecoderImplementation{Rule: rule, Precision: PrecisionI8, Schedule: sched})
		}
	}
	return variants
}

func TestNoErrors(t *testing.T) {
	h := gallager25()
	for _, impl := range decoderVariants(t) {
		impl := impl
		t.Run(impl.String(), func(t *testing.T) {
			dec, err := impl.Build(h)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			out, ok := dec.Decode(allZerosLLRs(), 10)
			if !ok {
				t.Fatalf("decode did not converge")
			}
			if out.Iterations != 0 {
				t.Errorf("Iterations = %d, want 0 (already-valid codeword)", out.Iterations)
			}
			for i, b := range out.Codeword {
				if b != 0 {
					t.Errorf("Codeword[%d] = %d, want 0", i, b)
				}
			}
		})
	}
}

func TestSingleError(t *testing.T) {
	h := gallager25()
	for _, impl := range decoderVariants(t) {
		impl := impl
		t.Run(impl.String(), func(t *testing.T) {
			dec, err := impl.Build(h)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			out, ok := dec.Decode(allZerosLLRs(2), 10)
			if !ok {
				t.Fatalf("decode did not converge")
			}
			for i, b := range out.Codeword {
				if b != 0 {
					t.Errorf("Codeword[%d] = %d, want 0", i, b)
				}
			}
		})
	}
}

func TestGraphAccessor(t *testing.T) {
	h := gallager25()
	dec, err := (DecoderImplementation{Rule: RulePhi, Precision: PrecisionF64, Schedule: ScheduleFlooding}).Build(h)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if dec.Graph() != h {
		t.Errorf("Graph() returned a different graph instance")
	}
}

func TestParseDecoderImplementationRoundTrip(t *testing.T) {
	cases := []DecoderImplementation{
		{Rule: RulePhi, Precision: PrecisionF64, Schedule: ScheduleFlooding},
		{Rule: RuleMinStarApprox, Precision: PrecisionI8, Schedule: ScheduleLayered, JonesClip: true, DegreeOneClipping: true},
	}
	for _, c := range cases {
		s := c.String()
		parsed, err := ParseDecoderImplementation(s)
		if err != nil {
			t.Fatalf("ParseDecoderImplementation(%q): %v", s, err)
		}
		if parsed != c {
			t.Errorf("round trip mismatch: got %+v, want %+v", parsed, c)
		}
	}
}

// TestFastPathUsesRawSignNotQuantizedValue guards against a fast path
// that tests the hard decision after quantizing: quantizeI8 rounds any
// llr with 8*|llr| < 0.5 to zero, and HardDecision(0) decides bit 1 by
// convention, which would flip an already-valid all-zero codeword's bit
// at a tiny-magnitude position into a parity violation.
func TestFastPathUsesRawSignNotQuantizedValue(t *testing.T) {
	h := gallager25()
	llrs := allZerosLLRs()
	llrs[0] = 0.01 // positive but far below quantizeI8's rounding threshold
	for _, rule := range []Rule{RuleMinStarApprox, RuleAMinStar} {
		for _, sched := range []Schedule{ScheduleFlooding, ScheduleLayered} {
			impl := DecoderImplementation{Rule: rule, Precision: PrecisionI8, Schedule: sched}
			t.Run(impl.String(), func(t *testing.T) {
				dec, err := impl.Build(h)
				if err != nil {
					t.Fatalf("Build: %v", err)
				}
				out, ok := dec.Decode(llrs, 10)
				if !ok {
					t.Fatalf("decode did not converge")
				}
				if out.Iterations != 0 {
					t.Errorf("Iterations = %d, want 0 (raw sign already satisfies parity)", out.Iterations)
				}
				if out.Codeword[0] != 0 {
					t.Errorf("Codeword[0] = %d, want 0 (raw LLR sign is positive)", out.Codeword[0])
				}
			})
		}
	}
}

func TestPhiTanhRuleRejectedForI8(t *testing.T) {
	h := gallager25()
	_, err := (DecoderImplementation{Rule: RulePhi, Precision: PrecisionI8, Schedule: ScheduleFlooding}).Build(h)
	if err == nil {
		t.Fatalf("expected an error building phi/i8, got nil")
	}
}
