// Package adaptive provides the budget-capped adaptive matching walk.
// See doc.go for the full contract.
package adaptive

import (
	"github.com/katalvlaran/lvmatch/elicit"
	"github.com/katalvlaran/lvmatch/galeshapley"
	"github.com/katalvlaran/lvmatch/irving"
	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// Run computes a stable matching for the table, spending at most
// capPerAgent oracle queries per agent to steer the rotation walk by cardinal
// information. See the package documentation for the pipeline, halting
// rules and determinism guarantees.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTable).
//  2. oracle must be non-nil (ErrNilOracle).
//  3. capPerAgent must be ≥ 0 (ErrBadCap); a zero cap degrades to the purely ordinal
//     applicant-optimal matching.
//
// On a fatal error after the root matching exists — oracle failure,
// invariant breach, cancellation — Run returns the last confirmed-stable
// matching together with the error.
func Run(t *prefs.Table, oracle elicit.Oracle, capPerAgent int, opts ...Option) (*match.Matching, error) {
	// 1) Build and validate options and inputs.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if t == nil {
		return nil, ErrNilTable
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if capPerAgent < 0 {
		return nil, ErrBadCap
	}

	// 2) Parallel mode splits the market into its independent submarkets.
	if cfg.Parallel {
		return runParallel(t, oracle, capPerAgent, cfg)
	}

	return runOne(t, oracle, capPerAgent, cfg)
}

// runOne executes the walk on a single (sub)market.
func runOne(t *prefs.Table, oracle elicit.Oracle, capPerAgent int, cfg Options) (*match.Matching, error) {
	// 1) Ordinal root: the applicant-optimal stable matching.
	cur, err := galeshapley.Run(t)
	if err != nil {
		return nil, err
	}

	// 2) Rotation poset, built once; an empty poset or a zero cap leaves
	//    nothing to decide.
	poset, err := irving.BuildPoset(t)
	if err != nil {
		return cur, err
	}
	if poset.Len() == 0 || capPerAgent == 0 {
		return cur, nil
	}

	// 3) Elicitation plumbing: budget → budget-charging oracle → memo
	//    cache, so only the first query of a pair costs anything.
	budget, err := elicit.NewBudget(capPerAgent, t.Applicants(), t.Hosts())
	if err != nil {
		return cur, err
	}
	charged, err := elicit.NewBudgeted(oracle, budget)
	if err != nil {
		return cur, err
	}
	memo, err := elicit.NewMemo(charged)
	if err != nil {
		return cur, err
	}

	w := &walker{
		table:      t,
		cfg:        cfg,
		poset:      poset,
		budget:     budget,
		memo:       memo,
		eliminated: make([]bool, poset.Len()),
	}

	return w.walk(cur)
}

// walker holds the mutable state of one adaptive walk.
type walker struct {
	table      *prefs.Table
	cfg        Options
	poset      *irving.Poset
	budget     *elicit.Budget
	memo       *elicit.Memo
	eliminated []bool
}

// walk repeatedly applies the first affordable, strictly improving ready
// rotation until none remains. cur is stable before and after every step.
func (w *walker) walk(cur *match.Matching) (*match.Matching, error) {
	for {
		// 1) Cancellation is honored between eliminations only; an
		//    in-flight oracle call is never preempted.
		if err := w.cfg.Ctx.Err(); err != nil {
			return cur, err
		}

		// 2) Scan ready rotations in ascending id order and apply the
		//    first strictly improving one. Skipped candidates are
		//    re-scored on later passes for free via the memo cache.
		applied := false
		for _, id := range w.poset.Ready(w.eliminated) {
			rot := w.poset.Rotation(id)
			if !w.affordable(rot) {
				continue
			}
			gain, err := w.cfg.Strategy.Gain(w.table, cur, rot, w.memo)
			if err != nil {
				return cur, err // fatal: no retry, last stable state
			}
			if gain <= 0 {
				continue
			}
			next, err := irving.Eliminate(w.table, cur, rot)
			if err != nil {
				return cur, err
			}
			cur = next
			w.eliminated[id] = true
			applied = true

			break
		}

		// 3) Nothing affordable and improving: the walk is complete —
		//    either the poset is exhausted or the budget is.
		if !applied {
			return cur, nil
		}
	}
}

// affordable reports whether every fresh (uncached) query the strategy
// needs for rot fits inside the owning agents' remaining budgets. Cache
// hits are free and duplicate queries in the plan are counted once.
func (w *walker) affordable(rot irving.Rotation) bool {
	need := make(map[Query]bool)
	perAgent := make(map[[2]int]int)
	for _, q := range w.cfg.Strategy.Queries(rot) {
		if need[q] || w.memo.Cached(q.Side, q.Agent, q.Alternative) {
			continue
		}
		need[q] = true
		perAgent[[2]int{int(q.Side), q.Agent}]++
	}
	for key, count := range perAgent {
		if w.budget.Remaining(prefs.Side(key[0]), key[1]) < count {
			return false
		}
	}

	return true
}
