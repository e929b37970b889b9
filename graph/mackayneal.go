package graph

import (
	"math/rand"
	"sort"
)

// FillPolicy selects how MacKayNeal chooses which check nodes receive the
// next edge when building a column.
type FillPolicy int

const (
	// FillRandom picks Wc rows uniformly at random among those still below
	// their row-weight cap (see targetRowWeight).
	FillRandom FillPolicy = iota
	// FillUniform prefers the least-loaded rows first, randomizing only
	// among ties at the cutoff weight, giving a flatter row-weight
	// distribution than FillRandom.
	FillUniform
)

// MacKayNealConfig describes a pseudorandom (n, wr, wc) LDPC construction in
// the style of MacKay and Neal's 1996 construction, with optional girth
// screening and backtracking on failure.
type MacKayNealConfig struct {
	NumRows int
	NumCols int
	Wr      int // nominal row weight; not consulted, row caps come from NumCols*Wc/NumRows
	Wc      int // target column weight

	// BacktrackCols is how many already-inserted columns to undo when a
	// column cannot be completed. Zero disables backtracking (fail fast).
	BacktrackCols int
	// BacktrackTrials caps the number of backtrack attempts before giving
	// up entirely.
	BacktrackTrials int

	// MinGirth, if non-nil, rejects any edge insertion that would create a
	// cycle shorter than *MinGirth through the column being built.
	MinGirth *int
	// GirthTrials caps the number of times a single column's row selection
	// is retried after a girth violation before backtracking.
	GirthTrials int

	FillPolicy FillPolicy
}

// MacKayNealError reports why a MacKay-Neal construction attempt failed.
type MacKayNealError struct {
	msg string
}

func (e *MacKayNealError) Error() string { return e.msg }

var (
	errNoAvailRows    = &MacKayNealError{"mackayneal: no rows available under weight cap"}
	errGirthTooSmall  = &MacKayNealError{"mackayneal: girth constraint violated"}
	errNoMoreBacktrack = &MacKayNealError{"mackayneal: backtrack budget exhausted"}
	errNoMoreTrials   = &MacKayNealError{"mackayneal: girth retry budget exhausted"}
)

type macKayNeal struct {
	cfg      MacKayNealConfig
	h        *Graph
	rowLoad  []int // current weight of each row
	rng      *rand.Rand
	girthTry int // retries remaining for the current column
	backTry  int // backtracks remaining overall
}

// Run attempts to build an (NumRows, NumCols) parity-check graph with the
// given row/column weight targets from a single deterministic seed. It
// returns an error describing why construction failed if row/column weight
// or girth constraints could not be met within the configured retry budget.
func (cfg MacKayNealConfig) Run(seed int64) (*Graph, error) {
	m := &macKayNeal{
		cfg:      cfg,
		h:        New(cfg.NumRows, cfg.NumCols),
		rowLoad:  make([]int, cfg.NumRows),
		rng:      rand.New(rand.NewSource(seed)),
		girthTry: cfg.GirthTrials,
		backTry:  cfg.BacktrackTrials,
	}
	return m.run()
}

// Search tries seeds start, start+1, ... up to maxTries times and returns
// the first graph that builds successfully.
func (cfg MacKayNealConfig) Search(start int64, maxTries int) (*Graph, error) {
	var lastErr error
	for i := 0; i < maxTries; i++ {
		h, err := cfg.Run(start + int64(i))
		if err == nil {
			return h, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (m *macKayNeal) run() (*Graph, error) {
	for col := 0; col < m.cfg.NumCols; col++ {
		for {
			err := m.tryInsertColumn(col)
			if err == nil {
				break
			}
			if err == errGirthTooSmall && m.girthTry > 0 {
				m.girthTry--
				continue
			}
			if m.cfg.BacktrackCols == 0 {
				return nil, err
			}
			if m.backTry <= 0 {
				return nil, errNoMoreBacktrack
			}
			m.backTry--
			col = m.backtrack(col)
			m.girthTry = m.cfg.GirthTrials
		}
		m.girthTry = m.cfg.GirthTrials
	}
	return m.h, nil
}

// tryInsertColumn attempts to give column col exactly Wc edges, checking
// the girth constraint (if any) after the column is complete. On girth
// failure the column is cleared before returning so the caller may retry.
func (m *macKayNeal) tryInsertColumn(col int) error {
	rows, err := m.selectRows(col)
	if err != nil {
		return err
	}
	m.h.InsertCol(col, rows)
	for _, r := range rows {
		m.rowLoad[r]++
	}

	if m.cfg.MinGirth != nil {
		g := *m.cfg.MinGirth
		// Any cycle of length <= g-1 through the new column means the
		// requested minimum girth has already been violated.
		if _, found := GirthAtColWithMax(m.h, col, g-1); found {
			m.clearCol(col, rows)
			return errGirthTooSmall
		}
	}
	return nil
}

func (m *macKayNeal) clearCol(col int, rows []int) {
	m.h.ClearCol(col)
	for _, r := range rows {
		m.rowLoad[r]--
	}
}

// selectRows picks Wc distinct rows to connect to column col, according to
// the configured fill policy.
func (m *macKayNeal) selectRows(col int) ([]int, error) {
	type candidate struct {
		row    int
		weight int
	}
	avail := make([]candidate, 0, m.cfg.NumRows)
	for r := 0; r < m.cfg.NumRows; r++ {
		if m.rowLoad[r] < m.targetRowWeight(r) && !m.h.Contains(r, col) {
			avail = append(avail, candidate{r, m.rowLoad[r]})
		}
	}
	if len(avail) < m.cfg.Wc {
		return nil, errNoAvailRows
	}

	switch m.cfg.FillPolicy {
	case FillUniform:
		sort.Slice(avail, func(i, j int) bool { return avail[i].weight < avail[j].weight })
		cutoff := avail[m.cfg.Wc-1].weight
		sure := make([]candidate, 0, m.cfg.Wc)
		ties := make([]candidate, 0, len(avail))
		for _, c := range avail {
			if c.weight < cutoff {
				sure = append(sure, c)
			} else if c.weight == cutoff {
				ties = append(ties, c)
			}
		}
		m.rng.Shuffle(len(ties), func(i, j int) { ties[i], ties[j] = ties[j], ties[i] })
		need := m.cfg.Wc - len(sure)
		rows := make([]int, 0, m.cfg.Wc)
		for _, c := range sure {
			rows = append(rows, c.row)
		}
		for i := 0; i < need; i++ {
			rows = append(rows, ties[i].row)
		}
		sort.Ints(rows)
		return rows, nil
	default: // FillRandom
		m.rng.Shuffle(len(avail), func(i, j int) { avail[i], avail[j] = avail[j], avail[i] })
		rows := make([]int, m.cfg.Wc)
		for i := 0; i < m.cfg.Wc; i++ {
			rows[i] = avail[i].row
		}
		sort.Ints(rows)
		return rows, nil
	}
}

// targetRowWeight returns the per-row weight cap. Rows may carry one extra
// edge when NumCols*Wc doesn't divide evenly across NumRows.
func (m *macKayNeal) targetRowWeight(r int) int {
	total := m.cfg.NumCols * m.cfg.Wc
	base := total / m.cfg.NumRows
	extra := total % m.cfg.NumRows
	if r < extra {
		return base + 1
	}
	return base
}

// backtrack clears the min(col+1, BacktrackCols) most recently inserted
// columns up to and including col, returning the index of the earliest
// cleared column so the caller can resume construction from there.
func (m *macKayNeal) backtrack(col int) int {
	n := m.cfg.BacktrackCols
	if n > col+1 {
		n = col + 1
	}
	start := col + 1 - n
	for c := col; c >= start; c-- {
		rows := append([]int(nil), m.h.Col(c)...)
		m.clearCol(c, rows)
	}
	return start
}
