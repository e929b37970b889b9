package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/ldpctoolbox/encoder"
	"github.com/xtaci/ldpctoolbox/graph"
)

var systematicCommand = cli.Command{
	Name:  "systematic",
	Usage: "report whether a parity-check matrix admits a systematic encoder",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Value: "code.alist", Usage: "input alist path"},
		cli.BoolFlag{Name: "snappy", Usage: "input is snappy-compressed"},
	},
	Action: systematicAction,
}

func systematicAction(c *cli.Context) error {
	h, err := readGraph(c.String("in"), c.Bool("snappy"))
	if err != nil {
		return errors.Wrap(err, "systematic")
	}

	enc, err := encoder.FromGraph(h)
	if err != nil {
		fmt.Printf("not systematically encodable: %v\n", err)
		return nil
	}

	n, k := enc.N(), enc.K()
	fmt.Printf("systematically encodable: n=%d k=%d rate=%.4f\n", n, k, float64(k)/float64(n))
	return nil
}

func readGraph(path string, snappy bool) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	if snappy {
		return graph.ReadAlistSnappy(f)
	}
	return graph.ReadAlist(f)
}
