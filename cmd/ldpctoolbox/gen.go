package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/ldpctoolbox/graph"
)

var genCommand = cli.Command{
	Name:  "gen",
	Usage: "construct a parity-check matrix and write it as an alist file",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "construction", Value: "mackayneal", Usage: "mackayneal, peg, ar4ja, c2, nr5g, dvbs2"},
		cli.IntFlag{Name: "rows", Usage: "number of check nodes (mackayneal, peg)"},
		cli.IntFlag{Name: "cols", Usage: "number of variable nodes (mackayneal, peg)"},
		cli.IntFlag{Name: "wr", Usage: "nominal row weight (mackayneal; not consulted, row caps follow from rows, cols and wc)"},
		cli.IntFlag{Name: "wc", Usage: "target column weight (mackayneal, peg)"},
		cli.IntFlag{Name: "girth", Usage: "minimum girth to enforce, 0 to disable (mackayneal)"},
		cli.IntFlag{Name: "seed", Value: 1, Usage: "pseudorandom seed (mackayneal)"},
		cli.IntFlag{Name: "seed-trials", Value: 16, Usage: "number of seeds to try before giving up (mackayneal)"},
		cli.StringFlag{Name: "fill", Value: "uniform", Usage: "random, uniform (mackayneal)"},
		cli.StringFlag{Name: "rate", Usage: "code rate, e.g. 1/2, 2/3, 4/5 (ar4ja, dvbs2)"},
		cli.IntFlag{Name: "info-size", Value: 1024, Usage: "information block size: 1024, 4096, 16384 (ar4ja)"},
		cli.IntFlag{Name: "bg", Value: 1, Usage: "base graph: 1 or 2 (nr5g)"},
		cli.IntFlag{Name: "z", Value: 8, Usage: "lifting size (nr5g)"},
		cli.StringFlag{Name: "frame", Value: "normal", Usage: "normal (64800), short (16200) (dvbs2)"},
		cli.StringFlag{Name: "out, o", Value: "code.alist", Usage: "output alist path"},
		cli.BoolFlag{Name: "snappy", Usage: "snappy-compress the alist file"},
	},
	Action: genAction,
}

func genAction(c *cli.Context) error {
	var h *graph.Graph
	var err error

	switch c.String("construction") {
	case "mackayneal":
		h, err = genMacKayNeal(c)
	case "peg":
		h = genPEG(c)
	case "ar4ja":
		h, err = genAR4JA(c)
	case "c2":
		h = graph.C2H()
	case "nr5g":
		h, err = genNR5G(c)
	case "dvbs2":
		h, err = genDVBS2(c)
	default:
		err = fmt.Errorf("gen: unknown construction %q", c.String("construction"))
	}
	if err != nil {
		return errors.Wrap(err, "gen")
	}

	f, err := os.Create(c.String("out"))
	if err != nil {
		return errors.Wrap(err, "gen: create output")
	}
	defer f.Close()

	if c.Bool("snappy") {
		err = h.WriteAlistSnappy(f)
	} else {
		err = h.WriteAlist(f)
	}
	if err != nil {
		return errors.Wrap(err, "gen: write alist")
	}

	fmt.Printf("wrote %s: rows=%d cols=%d k=%d\n", c.String("out"), h.NumRows(), h.NumCols(), h.NumCols()-h.NumRows())
	return nil
}

func genMacKayNeal(c *cli.Context) (*graph.Graph, error) {
	cfg := graph.MacKayNealConfig{
		NumRows:         c.Int("rows"),
		NumCols:         c.Int("cols"),
		Wr:              c.Int("wr"),
		Wc:              c.Int("wc"),
		BacktrackCols:   2,
		BacktrackTrials: 64,
		GirthTrials:     16,
	}
	if g := c.Int("girth"); g > 0 {
		cfg.MinGirth = &g
	}
	switch c.String("fill") {
	case "random":
		cfg.FillPolicy = graph.FillRandom
	default:
		cfg.FillPolicy = graph.FillUniform
	}
	return cfg.Search(int64(c.Int("seed")), c.Int("seed-trials"))
}

func genPEG(c *cli.Context) *graph.Graph {
	cfg := graph.PEGConfig{
		NumRows: c.Int("rows"),
		NumCols: c.Int("cols"),
		Wc:      c.Int("wc"),
	}
	return cfg.Run()
}

func genAR4JA(c *cli.Context) (*graph.Graph, error) {
	rate, err := parseAR4JARate(c.String("rate"))
	if err != nil {
		return nil, err
	}
	k, err := parseAR4JAInfoSize(c.Int("info-size"))
	if err != nil {
		return nil, err
	}
	return graph.AR4JACode{Rate: rate, K: k}.H(), nil
}

func parseAR4JARate(s string) (graph.AR4JARate, error) {
	switch s {
	case "1/2", "":
		return graph.AR4JARate1_2, nil
	case "2/3":
		return graph.AR4JARate2_3, nil
	case "4/5":
		return graph.AR4JARate4_5, nil
	default:
		return 0, fmt.Errorf("gen: unknown ar4ja rate %q", s)
	}
}

func parseAR4JAInfoSize(k int) (graph.AR4JAInfoSize, error) {
	switch k {
	case 1024:
		return graph.AR4JAK1024, nil
	case 4096:
		return graph.AR4JAK4096, nil
	case 16384:
		return graph.AR4JAK16384, nil
	default:
		return 0, fmt.Errorf("gen: unsupported ar4ja info size %d", k)
	}
}

func genNR5G(c *cli.Context) (*graph.Graph, error) {
	var bg graph.NR5GBaseGraph
	switch c.Int("bg") {
	case 1:
		bg = graph.NR5GBG1
	case 2:
		bg = graph.NR5GBG2
	default:
		return nil, fmt.Errorf("gen: unknown nr5g base graph %d", c.Int("bg"))
	}
	return bg.H(c.Int("z"))
}

func genDVBS2(c *cli.Context) (*graph.Graph, error) {
	rate, err := parseDVBS2Rate(c.String("rate"))
	if err != nil {
		return nil, err
	}
	var frame graph.DVBS2FrameSize
	switch c.String("frame") {
	case "normal", "":
		frame = graph.DVBS2Normal
	case "short":
		frame = graph.DVBS2Short
	default:
		return nil, fmt.Errorf("gen: unknown dvbs2 frame size %q", c.String("frame"))
	}
	return rate.H(frame), nil
}

func parseDVBS2Rate(s string) (graph.DVBS2Rate, error) {
	switch s {
	case "1/4":
		return graph.DVBS2R1_4, nil
	case "1/3":
		return graph.DVBS2R1_3, nil
	case "2/5":
		return graph.DVBS2R2_5, nil
	case "1/2", "":
		return graph.DVBS2R1_2, nil
	case "3/5":
		return graph.DVBS2R3_5, nil
	case "2/3":
		return graph.DVBS2R2_3, nil
	case "3/4":
		return graph.DVBS2R3_4, nil
	case "4/5":
		return graph.DVBS2R4_5, nil
	case "5/6":
		return graph.DVBS2R5_6, nil
	case "8/9":
		return graph.DVBS2R8_9, nil
	case "9/10":
		return graph.DVBS2R9_10, nil
	default:
		return 0, fmt.Errorf("gen: unknown dvbs2 rate %q", s)
	}
}
