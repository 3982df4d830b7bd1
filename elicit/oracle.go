package elicit

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/prefs"
)

// Profile is an Oracle backed by two precomputed valuation matrices.
// applicantVals[a-1][h-1] is applicant a's value for host h;
// hostVals[h-1][a-1] is host h's value for applicant a. Rows may be
// truncated; a missing entry fails with ErrNoValuation.
type Profile struct {
	applicantVals [][]float64
	hostVals      [][]float64
}

// NewProfile copies both matrices into a profile-backed oracle.
func NewProfile(applicantVals, hostVals [][]float64) *Profile {
	cp := func(src [][]float64) [][]float64 {
		out := make([][]float64, len(src))
		for i, row := range src {
			out[i] = append([]float64(nil), row...)
		}

		return out
	}

	return &Profile{applicantVals: cp(applicantVals), hostVals: cp(hostVals)}
}

// Value implements Oracle from the stored matrices.
func (p *Profile) Value(side prefs.Side, agent, alternative int) (float64, error) {
	rows := p.applicantVals
	if side == prefs.Hosts {
		rows = p.hostVals
	}
	if agent < 1 || agent > len(rows) || alternative < 1 || alternative > len(rows[agent-1]) {
		return 0, fmt.Errorf("%w: %s agent %d, alternative %d", ErrNoValuation, side, agent, alternative)
	}

	return rows[agent-1][alternative-1], nil
}

// memoKey identifies one cached answer.
type memoKey struct {
	side  prefs.Side
	agent int
	alt   int
}

// Memo is a memoizing Oracle wrapper: an explicit cache object passed by
// handle wherever repeated queries must stay free. Answers are cached per
// (side, agent, alternative); only the first query reaches the inner
// oracle. Not safe for concurrent use — engines are single-threaded by
// design and parallel submarkets each get their own Memo.
type Memo struct {
	inner Oracle
	cache map[memoKey]float64
}

// NewMemo wraps inner with a fresh cache.
func NewMemo(inner Oracle) (*Memo, error) {
	if inner == nil {
		return nil, ErrNilOracle
	}

	return &Memo{inner: inner, cache: make(map[memoKey]float64)}, nil
}

// Cached reports whether the answer for the pair is already held, i.e.
// whether a Value call would be free.
func (m *Memo) Cached(side prefs.Side, agent, alternative int) bool {
	_, ok := m.cache[memoKey{side: side, agent: agent, alt: alternative}]

	return ok
}

// Value implements Oracle, serving repeats from the cache. Failed queries
// are not cached: a failure is fatal for the run, never retried into.
func (m *Memo) Value(side prefs.Side, agent, alternative int) (float64, error) {
	key := memoKey{side: side, agent: agent, alt: alternative}
	if v, ok := m.cache[key]; ok {
		return v, nil
	}
	v, err := m.inner.Value(side, agent, alternative)
	if err != nil {
		return 0, err
	}
	m.cache[key] = v

	return v, nil
}

// Budgeted is an Oracle wrapper that charges the querying agent's budget
// before delegating — the check-and-decrement happens regardless of the
// backing implementation, so no backend can bypass the cap.
type Budgeted struct {
	inner  Oracle
	budget *Budget
}

// NewBudgeted wraps inner with the given budget handle.
func NewBudgeted(inner Oracle, budget *Budget) (*Budgeted, error) {
	if inner == nil {
		return nil, ErrNilOracle
	}

	return &Budgeted{inner: inner, budget: budget}, nil
}

// Value implements Oracle: spend first, then delegate. Once an agent's
// counter is zero every further query fails with ErrBudgetExceeded.
func (b *Budgeted) Value(side prefs.Side, agent, alternative int) (float64, error) {
	if err := b.budget.Spend(side, agent); err != nil {
		return 0, err
	}

	return b.inner.Value(side, agent, alternative)
}
