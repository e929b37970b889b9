package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/ldpctoolbox/encoder"
	"github.com/xtaci/ldpctoolbox/gf2"
)

var encodeCommand = cli.Command{
	Name:  "encode",
	Usage: "encode a message against a parity-check matrix's systematic encoder",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Value: "code.alist", Usage: "input alist path"},
		cli.BoolFlag{Name: "snappy", Usage: "input is snappy-compressed"},
		cli.StringFlag{Name: "message, m", Usage: "message as a string of 0/1 bits; random if omitted"},
		cli.IntFlag{Name: "seed", Value: 1, Usage: "seed for a random message when --message is omitted"},
	},
	Action: encodeAction,
}

func encodeAction(c *cli.Context) error {
	h, err := readGraph(c.String("in"), c.Bool("snappy"))
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	enc, err := encoder.FromGraph(h)
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	message, err := parseOrRandomMessage(c.String("message"), enc.K(), int64(c.Int("seed")))
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	codeword := enc.Encode(message)
	fmt.Println("message: ", bitString(message))
	fmt.Println("codeword:", bitString(codeword))
	return nil
}

func parseOrRandomMessage(s string, k int, seed int64) ([]gf2.Elem, error) {
	if s == "" {
		rng := rand.New(rand.NewSource(seed))
		msg := make([]gf2.Elem, k)
		for i := range msg {
			msg[i] = gf2.FromBit(byte(rng.Intn(2)))
		}
		return msg, nil
	}

	s = strings.TrimSpace(s)
	if len(s) != k {
		return nil, fmt.Errorf("encode: message has %d bits, code expects %d", len(s), k)
	}
	msg := make([]gf2.Elem, k)
	for i, r := range s {
		switch r {
		case '0':
			msg[i] = gf2.Zero
		case '1':
			msg[i] = gf2.One
		default:
			return nil, fmt.Errorf("encode: message must be a string of 0/1, got %q", r)
		}
	}
	return msg, nil
}

func bitString(bits []gf2.Elem) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		sb.WriteString(b.String())
	}
	return sb.String()
}
