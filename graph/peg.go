package graph

import "sort"

// PEGConfig describes a Progressive Edge Growth construction: a greedy
// column-by-column builder that, for each new edge, connects the variable
// node to the check node currently farthest away (breaking ties toward
// lower row weight), which tends to maximize girth without any retrying.
type PEGConfig struct {
	NumRows   int
	NumCols   int
	ColWeight []int // per-column target weight; if nil, Wc applies to all columns
	Wc        int
}

// Run builds a graph using Progressive Edge Growth. Unlike MacKayNeal, PEG
// never fails: when every check node is already reachable from a variable
// node (no "infinite distance" candidates remain), it picks the farthest
// reachable check node, ties broken toward lower load. A column's first
// edge goes to the globally least-loaded check node.
func (cfg PEGConfig) Run() *Graph {
	h := New(cfg.NumRows, cfg.NumCols)
	rowLoad := make([]int, cfg.NumRows)

	weight := func(col int) int {
		if cfg.ColWeight != nil {
			return cfg.ColWeight[col]
		}
		return cfg.Wc
	}

	for col := 0; col < cfg.NumCols; col++ {
		w := weight(col)
		for k := 0; k < w; k++ {
			r := pegPickRow(h, rowLoad, col)
			h.Insert(r, col)
			rowLoad[r]++
		}
	}
	return h
}

// pegPickRow picks the check node farthest (in the bipartite graph's BFS
// sense) from column col, excluding rows already connected to col, with
// ties broken toward the currently least-loaded row.
func pegPickRow(h *Graph, rowLoad []int, col int) int {
	if h.ColWeight(col) == 0 {
		return pegLeastLoaded(rowLoad, nil)
	}

	dist := BFSFromCol(h, col)
	type candidate struct {
		row      int
		distance int
		load     int
	}
	candidates := make([]candidate, 0, len(rowLoad))
	for r := 0; r < h.NumRows(); r++ {
		if h.Contains(r, col) {
			continue
		}
		d := dist.RowDistance[r]
		if d < 0 {
			d = 1 << 30 // unreachable: maximally far
		}
		candidates = append(candidates, candidate{r, d, rowLoad[r]})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance > candidates[j].distance
		}
		return candidates[i].load < candidates[j].load
	})
	return candidates[0].row
}

func pegLeastLoaded(rowLoad []int, exclude map[int]bool) int {
	best := -1
	for r, load := range rowLoad {
		if exclude != nil && exclude[r] {
			continue
		}
		if best < 0 || load < rowLoad[best] {
			best = r
		}
	}
	return best
}
