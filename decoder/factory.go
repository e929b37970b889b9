package decoder

import (
	"fmt"
	"strings"

	"github.com/xtaci/ldpctoolbox/graph"
)

// Rule names the check-node combination rule an arithmetic strategy uses.
type Rule string

const (
	RulePhi            Rule = "phi"
	RuleTanh           Rule = "tanh"
	RuleMinStarApprox  Rule = "minstarapprox"
	RuleAMinStar       Rule = "aminstar"
)

// Precision names the numeric representation messages are carried in.
type Precision string

const (
	PrecisionF64 Precision = "f64"
	PrecisionF32 Precision = "f32"
	PrecisionI8  Precision = "i8"
)

// Schedule names the node-update order a decoder follows.
type Schedule string

const (
	ScheduleFlooding Schedule = "flooding"
	ScheduleLayered  Schedule = "layered"
)

// DecoderImplementation names one concrete, runtime-selectable point in
// the (Rule x Precision x Schedule) space, plus the three composable
// clip switches that only apply to the i8 precision. This is the single
// factory surface the CLI and BER harness select a decoder variant
// through; Build resolves it to a boxed LdpcDecoder, hiding the generic
// Arithmetic[T]/schedule types from callers that need to pick a decoder
// at runtime from a flag.
type DecoderImplementation struct {
	Rule     Rule
	Precision Precision
	Schedule Schedule

	// The following apply only when Precision == PrecisionI8; they are
	// ignored for floating-point precisions.
	JonesClip         bool
	PartialHardLimit  bool
	DegreeOneClipping bool
}

// String renders the implementation as a single CLI-flag-friendly token,
// e.g. "phi-f64-flooding" or "minstarapprox-i8-layered+jones+phl".
func (d DecoderImplementation) String() string {
	s := fmt.Sprintf("%s-%s-%s", d.Rule, d.Precision, d.Schedule)
	if d.Precision != PrecisionI8 {
		return s
	}
	var flags []string
	if d.JonesClip {
		flags = append(flags, "jones")
	}
	if d.PartialHardLimit {
		flags = append(flags, "phl")
	}
	if d.DegreeOneClipping {
		flags = append(flags, "d1c")
	}
	if len(flags) == 0 {
		return s
	}
	return s + "+" + strings.Join(flags, "+")
}

// ParseDecoderImplementation parses the String() format back into a
// DecoderImplementation.
func ParseDecoderImplementation(s string) (DecoderImplementation, error) {
	base, flagPart, _ := strings.Cut(s, "+")
	parts := strings.Split(base, "-")
	if len(parts) != 3 {
		return DecoderImplementation{}, fmt.Errorf("decoder: invalid implementation %q", s)
	}
	d := DecoderImplementation{
		Rule:     Rule(parts[0]),
		Precision: Precision(parts[1]),
		Schedule: Schedule(parts[2]),
	}
	if !d.Rule.valid() {
		return DecoderImplementation{}, fmt.Errorf("decoder: unknown rule %q", parts[0])
	}
	if !d.Precision.valid() {
		return DecoderImplementation{}, fmt.Errorf("decoder: unknown precision %q", parts[1])
	}
	if !d.Schedule.valid() {
		return DecoderImplementation{}, fmt.Errorf("decoder: unknown schedule %q", parts[2])
	}
	if flagPart != "" {
		for _, f := range strings.Split(flagPart, "+") {
			switch f {
			case "jones":
				d.JonesClip = true
			case "phl":
				d.PartialHardLimit = true
			case "d1c":
				d.DegreeOneClipping = true
			default:
				return DecoderImplementation{}, fmt.Errorf("decoder: unknown clip flag %q", f)
			}
		}
	}
	return d, nil
}

func (r Rule) valid() bool {
	switch r {
	case RulePhi, RuleTanh, RuleMinStarApprox, RuleAMinStar:
		return true
	}
	return false
}

func (p Precision) valid() bool {
	switch p {
	case PrecisionF64, PrecisionF32, PrecisionI8:
		return true
	}
	return false
}

func (s Schedule) valid() bool {
	switch s {
	case ScheduleFlooding, ScheduleLayered:
		return true
	}
	return false
}

// Build constructs the boxed decoder this implementation describes for
// parity-check graph h.
func (d DecoderImplementation) Build(h *graph.Graph) (LdpcDecoder, error) {
	if d.Precision == PrecisionI8 && (d.Rule == RulePhi || d.Rule == RuleTanh) {
		return nil, fmt.Errorf("decoder: %s rule has no fixed-point variant, use minstarapprox or aminstar", d.Rule)
	}

	switch d.Precision {
	case PrecisionF64:
		return buildF64(d, h)
	case PrecisionF32:
		return buildF32(d, h)
	case PrecisionI8:
		return buildI8(d, h)
	default:
		return nil, fmt.Errorf("decoder: unknown precision %q", d.Precision)
	}
}

func buildF64(d DecoderImplementation, h *graph.Graph) (LdpcDecoder, error) {
	var a Arithmetic[float64]
	switch d.Rule {
	case RulePhi:
		a = Phi64{}
	case RuleTanh:
		a = Tanh64{}
	case RuleMinStarApprox:
		a = MinStarApprox64{}
	case RuleAMinStar:
		a = AMinStar64{}
	default:
		return nil, fmt.Errorf("decoder: unknown rule %q", d.Rule)
	}
	return buildSchedule(d.Schedule, h, a)
}

func buildF32(d DecoderImplementation, h *graph.Graph) (LdpcDecoder, error) {
	var a Arithmetic[float32]
	switch d.Rule {
	case RulePhi:
		a = Phi32{}
	case RuleTanh:
		a = Tanh32{}
	case RuleMinStarApprox:
		a = MinStarApprox32{}
	case RuleAMinStar:
		a = AMinStar32{}
	default:
		return nil, fmt.Errorf("decoder: unknown rule %q", d.Rule)
	}
	return buildSchedule(d.Schedule, h, a)
}

func buildI8(d DecoderImplementation, h *graph.Graph) (LdpcDecoder, error) {
	var a Arithmetic[int8]
	switch d.Rule {
	case RuleMinStarApprox:
		a = MinStarApproxI8{JonesClip: d.JonesClip, PartialHardLimit: d.PartialHardLimit, DegreeOneClipping: d.DegreeOneClipping}
	case RuleAMinStar:
		a = AMinStarI8{JonesClip: d.JonesClip, PartialHardLimit: d.PartialHardLimit, DegreeOneClipping: d.DegreeOneClipping}
	default:
		return nil, fmt.Errorf("decoder: unknown i8 rule %q", d.Rule)
	}
	return buildSchedule(d.Schedule, h, a)
}

func buildSchedule[T any](s Schedule, h *graph.Graph, a Arithmetic[T]) (LdpcDecoder, error) {
	switch s {
	case ScheduleFlooding:
		return NewFloodingDecoder(h, a), nil
	case ScheduleLayered:
		return NewLayeredDecoder(h, a), nil
	default:
		return nil, fmt.Errorf("decoder: unknown schedule %q", s)
	}
}
