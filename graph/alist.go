package graph

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// WriteAlist writes g to w in the alist sparse-matrix format: a header line
// of column/row counts, a line of maximum column/row weights, one line per
// column/row giving its weight, and finally one 1-indexed neighbor list per
// column and per row.
func (g *Graph) WriteAlist(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumCols(), g.NumRows()); err != nil {
		return err
	}

	maxWeight := func(n int, weight func(int) int) int {
		m := 0
		for i := 0; i < n; i++ {
			if x := weight(i); x > m {
				m = x
			}
		}
		return m
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n", maxWeight(g.NumCols(), g.ColWeight), maxWeight(g.NumRows(), g.RowWeight)); err != nil {
		return err
	}

	for c := 0; c < g.NumCols(); c++ {
		if _, err := fmt.Fprintf(bw, "%d ", g.ColWeight(c)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	for r := 0; r < g.NumRows(); r++ {
		if _, err := fmt.Fprintf(bw, "%d ", g.RowWeight(r)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	writeNeighbors := func(n int, neighbors func(int) []int) error {
		for i := 0; i < n; i++ {
			v := append([]int(nil), neighbors(i)...)
			sort.Ints(v)
			for _, x := range v {
				if _, err := fmt.Fprintf(bw, "%d ", x+1); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeNeighbors(g.NumCols(), g.Col); err != nil {
		return err
	}
	if err := writeNeighbors(g.NumRows(), g.Row); err != nil {
		return err
	}
	return bw.Flush()
}

// Alist returns the alist representation of g as a string.
func (g *Graph) Alist() string {
	var buf bytes.Buffer
	// WriteAlist only ever fails on the underlying writer; bytes.Buffer
	// never errors.
	_ = g.WriteAlist(&buf)
	return buf.String()
}

// ReadAlist parses an alist-formatted parity-check matrix from r. Only the
// column neighbor lists are consulted; the row lists are redundant and are
// skipped, matching common alist producers that sometimes pad them
// inconsistently.
func ReadAlist(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("alist: unexpected end of input")
		}
		return sc.Text(), nil
	}
	fields := func() ([]string, error) {
		l, err := line()
		if err != nil {
			return nil, err
		}
		return strings.Fields(l), nil
	}

	header, err := fields()
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("alist: header line needs 2 fields, got %d", len(header))
	}
	ncols, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("alist: ncols is not a number: %w", err)
	}
	nrows, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("alist: nrows is not a number: %w", err)
	}

	// Skip max-weight line and the two weight-list lines.
	for i := 0; i < 3; i++ {
		if _, err := line(); err != nil {
			return nil, err
		}
	}

	h := New(nrows, ncols)
	for col := 0; col < ncols; col++ {
		f, err := fields()
		if err != nil {
			return nil, fmt.Errorf("alist: reading column %d: %w", col, err)
		}
		for _, tok := range f {
			row, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("alist: column %d: row value %q is not a number", col, tok)
			}
			if row == 0 {
				continue // alist pads short columns with zeros
			}
			h.Insert(row-1, col)
		}
	}
	return h, nil
}

// WriteAlistSnappy writes g's alist representation to w, compressed with
// Snappy block compression (the .snz convention used for large standard
// codes such as CCSDS and NR5G, whose alist files run into the megabytes).
func (g *Graph) WriteAlistSnappy(w io.Writer) error {
	encoded := snappy.Encode(nil, []byte(g.Alist()))
	_, err := w.Write(encoded)
	return err
}

// ReadAlistSnappy reads a Snappy-compressed alist file, as produced by
// WriteAlistSnappy.
func ReadAlistSnappy(r io.Reader) (*Graph, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoded, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("alist: snappy decode: %w", err)
	}
	return ReadAlist(bytes.NewReader(decoded))
}
