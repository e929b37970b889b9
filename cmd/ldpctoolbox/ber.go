package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/ldpctoolbox/decoder"
	"github.com/xtaci/ldpctoolbox/internal/report"
	"github.com/xtaci/ldpctoolbox/simulation"
)

var berCommand = cli.Command{
	Name:  "ber",
	Usage: "run a Monte-Carlo bit-error-rate sweep",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Value: "code.alist", Usage: "input alist path"},
		cli.BoolFlag{Name: "snappy", Usage: "input is snappy-compressed"},
		cli.StringFlag{Name: "decoder, d", Value: "minstarapprox-f64-layered", Usage: "decoder implementation, e.g. phi-f64-flooding, minstarapprox-i8-layered+jones+phl"},
		cli.StringFlag{Name: "modulation", Value: "BPSK", Usage: "BPSK, 8PSK"},
		cli.StringFlag{Name: "ebn0", Value: "0:4:0.5", Usage: "Eb/N0 sweep start:stop:step, in dB"},
		cli.IntFlag{Name: "max-iterations", Value: 50, Usage: "maximum decoder iterations per frame"},
		cli.IntFlag{Name: "max-frame-errors", Value: 50, Usage: "stop an Eb/N0 point after this many frame errors"},
		cli.IntFlag{Name: "workers", Usage: "number of worker goroutines, 0 selects the number of CPUs"},
		cli.StringFlag{Name: "puncture", Usage: "puncturing pattern as 0/1 bits, e.g. 1101; empty disables puncturing"},
		cli.IntFlag{Name: "interleave-columns", Usage: "DVB-S2 bit interleaver column count, 0 disables interleaving"},
		cli.BoolFlag{Name: "interleave-backwards", Usage: "read interleaver rows in reverse column order"},
		cli.IntFlag{Name: "bch-max-errors", Usage: "track a parallel outer BCH view that corrects up to this many residual bit errors per frame, 0 disables it"},
		cli.StringFlag{Name: "report-csv", Usage: "append periodic statistics snapshots to this CSV path"},
		cli.IntFlag{Name: "report-interval", Value: 5, Usage: "seconds between CSV snapshots"},
	},
	Action: berAction,
}

func berAction(c *cli.Context) error {
	h, err := readGraph(c.String("in"), c.Bool("snappy"))
	if err != nil {
		return errors.Wrap(err, "ber")
	}

	impl, err := decoder.ParseDecoderImplementation(c.String("decoder"))
	if err != nil {
		return errors.Wrap(err, "ber")
	}

	ebn0s, err := parseEbN0Sweep(c.String("ebn0"))
	if err != nil {
		return errors.Wrap(err, "ber")
	}

	cfg := simulation.Config{
		H:              h,
		DecoderImpl:    impl,
		Modulation:     simulation.ModulationKind(c.String("modulation")),
		MaxIterations:  c.Int("max-iterations"),
		MaxFrameErrors: c.Int("max-frame-errors"),
		NumWorkers:     c.Int("workers"),
	}
	if p := c.String("puncture"); p != "" {
		pattern, err := parseBitPattern(p)
		if err != nil {
			return errors.Wrap(err, "ber")
		}
		cfg.PuncturingPattern = pattern
	}
	if cols := c.Int("interleave-columns"); cols > 0 {
		cfg.InterleaverColumns = cols
		cfg.InterleaverBackwards = c.Bool("interleave-backwards")
	}
	cfg.BCHMaxErrors = c.Int("bch-max-errors")

	var wg chan struct{}
	if path := c.String("report-csv"); path != "" {
		updates := make(chan simulation.Report, 64)
		cfg.Reporter = &simulation.Reporter{Updates: updates, Interval: time.Duration(c.Int("report-interval")) * time.Second}
		wg = make(chan struct{})
		go func() {
			defer close(wg)
			report.CSVLogger(path, cfg.Reporter.Interval, updates)
		}()
	}

	test, err := simulation.NewBERTest(cfg)
	if err != nil {
		return errors.Wrap(err, "ber")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		fmt.Println("interrupted, stopping the current Eb/N0 point early")
		cancel()
	}()
	defer signal.Stop(sigc)

	fmt.Printf("code: rows=%d cols=%d  decoder: %s  modulation: %s\n", h.NumRows(), h.NumCols(), impl.String(), cfg.Modulation)
	if cfg.BCHMaxErrors > 0 {
		fmt.Println("EbN0(dB)  frames   bit-errors  frame-errors  BER          FER          avg-iters  bch-frame-errors  bch-FER")
	} else {
		fmt.Println("EbN0(dB)  frames   bit-errors  frame-errors  BER          FER          avg-iters")
	}

	results, err := test.Run(ctx, ebn0s)
	if cfg.Reporter != nil {
		close(cfg.Reporter.Updates)
		<-wg
	}
	for _, s := range results {
		printStats(s, cfg.BCHMaxErrors > 0)
	}
	if err != nil && errors.Cause(err) != context.Canceled {
		return errors.Wrap(err, "ber")
	}
	return nil
}

func printStats(s simulation.Statistics, showBCH bool) {
	line := fmt.Sprintf("%8.2f  %7d  %10d  %12d  %.3e  %.3e  %9.2f",
		s.EbN0dB, s.NumFrames, s.BitErrors, s.FrameErrors, s.BER, s.FER, s.AverageIterations)
	if showBCH {
		line += fmt.Sprintf("  %16d  %.3e", s.BCHFrameErrors, s.BCHFER)
	}
	governingErrors := s.FrameErrors
	if showBCH {
		governingErrors = s.BCHFrameErrors
	}
	if governingErrors == 0 {
		color.Green(line)
	} else {
		fmt.Println(line)
	}
}

func parseEbN0Sweep(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("ber: --ebn0 must be start:stop:step, got %q", s)
	}
	start, err1 := strconv.ParseFloat(parts[0], 64)
	stop, err2 := strconv.ParseFloat(parts[1], 64)
	step, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil || step <= 0 {
		return nil, fmt.Errorf("ber: invalid --ebn0 sweep %q", s)
	}
	var out []float64
	for v := start; v <= stop+1e-9; v += step {
		out = append(out, v)
	}
	return out, nil
}

func parseBitPattern(s string) ([]bool, error) {
	out := make([]bool, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out[i] = false
		case '1':
			out[i] = true
		default:
			return nil, fmt.Errorf("ber: puncture pattern must be 0/1 bits, got %q", r)
		}
	}
	return out, nil
}
