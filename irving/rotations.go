package irving

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// ExposedRotations returns every rotation exposed in the stable matching m,
// ordered by lowest applicant id in the cycle, with each cycle canonically
// started at that applicant. The result is deterministic for fixed inputs.
//
// Validation (in order): ErrNilTable, ErrNotOneToOne, ErrNilMatching,
// ErrUnstableMatching.
//
// Time: O(n·m) for the next-host scan plus O(n) cycle extraction.
func ExposedRotations(t *prefs.Table, m *match.Matching) ([]Rotation, error) {
	st, err := newState(t, m)
	if err != nil {
		return nil, err
	}

	return st.rotations(), nil
}

// Eliminate applies rotation rot to the stable matching m and returns a new
// stable matching with every pair's applicant moved to the next pair's
// host. The input matching is never mutated: the result is built on a
// clone, so callers keep a confirmed-stable matching if anything fails.
//
// Validation (in order): ErrNilTable, ErrNotOneToOne, ErrNilMatching,
// ErrUnstableMatching, ErrRotationNotExposed (with the offending pair).
func Eliminate(t *prefs.Table, m *match.Matching, rot Rotation) (*match.Matching, error) {
	st, err := newState(t, m)
	if err != nil {
		return nil, err
	}

	// 1) Verify exposure pair by pair before touching anything.
	k := rot.Len()
	if k == 0 {
		return nil, fmt.Errorf("%w: empty rotation", ErrRotationNotExposed)
	}
	for i, p := range rot.Pairs {
		if m.HostOf(p.Applicant) != p.Host {
			return nil, fmt.Errorf("%w: applicant %d is not matched to host %d",
				ErrRotationNotExposed, p.Applicant, p.Host)
		}
		if nx := rot.Pairs[(i+1)%k].Host; st.next[p.Applicant-1] != nx {
			return nil, fmt.Errorf("%w: applicant %d's next host is %d, rotation says %d",
				ErrRotationNotExposed, p.Applicant, st.next[p.Applicant-1], nx)
		}
	}

	// 2) Clone and reassign cyclically. Free all moved applicants first so
	//    the intermediate loads never exceed capacity one.
	out := m.Clone()
	for _, p := range rot.Pairs {
		_ = out.Free(p.Applicant)
	}
	for i, p := range rot.Pairs {
		if err = out.Assign(p.Applicant, rot.Pairs[(i+1)%k].Host); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// state caches the per-matching structures both operations need: the
// partner of every host and the next strictly-improving host of every
// matched applicant.
type state struct {
	table   *prefs.Table
	m       *match.Matching
	partner []int // partner[h-1] = applicant matched to host h, or 0
	next    []int // next[a-1] = a's next host per the rotation rule, or 0
}

// newState validates the inputs and precomputes partner and next tables.
func newState(t *prefs.Table, m *match.Matching) (*state, error) {
	// 1) Validation ladder.
	if t == nil {
		return nil, ErrNilTable
	}
	if !t.OneToOne() {
		return nil, ErrNotOneToOne
	}
	if m == nil {
		return nil, ErrNilMatching
	}
	if pairs := m.BlockingPairs(t); len(pairs) > 0 {
		return nil, fmt.Errorf("%w: blocking pair (%d, %d)", ErrUnstableMatching, pairs[0][0], pairs[0][1])
	}

	st := &state{
		table:   t,
		m:       m,
		partner: make([]int, t.Hosts()),
		next:    make([]int, t.Applicants()),
	}

	// 2) Partner lookup: one-to-one, so each host holds at most one.
	for a := 1; a <= t.Applicants(); a++ {
		if h := m.HostOf(a); h != match.Unmatched {
			st.partner[h-1] = a
		}
	}

	// 3) Next-host rule: the first acceptable host strictly after the
	//    current one on a's list whose own partner it would trade for a.
	//    Hosts unmatched here are unmatched in every stable matching and
	//    are skipped.
	for a := 1; a <= t.Applicants(); a++ {
		cur := m.HostOf(a)
		if cur == match.Unmatched {
			continue
		}
		curRank, _ := t.Rank(prefs.Applicants, a, cur)
		for _, h := range t.PreferenceOrder(prefs.Applicants, a) {
			r, _ := t.Rank(prefs.Applicants, a, h)
			if r <= curRank {
				continue
			}
			p := st.partner[h-1]
			if p == 0 {
				continue
			}
			rankA, ok := t.Rank(prefs.Hosts, h, a)
			if !ok {
				continue
			}
			rankP, _ := t.Rank(prefs.Hosts, h, p)
			if rankA < rankP {
				st.next[a-1] = h

				break
			}
		}
	}

	return st, nil
}

// rotations extracts all cycles of the successor map succ(a) = partner of
// next(a). Each cycle is one exposed rotation; applicants outside cycles
// have no exposed move.
func (st *state) rotations() []Rotation {
	n := st.table.Applicants()

	// succ in applicant space; 0 terminates a walk.
	succ := make([]int, n)
	for a := 1; a <= n; a++ {
		if h := st.next[a-1]; h != 0 {
			succ[a-1] = st.partner[h-1]
		}
	}

	// Color walk: 0 = untouched, 1 = on the current walk, 2 = settled.
	// Meeting a node of the current walk closes one cycle.
	color := make([]int, n)
	var out []Rotation
	for start := 1; start <= n; start++ {
		if color[start-1] != 0 {
			continue
		}
		var walk []int
		a := start
		for a != 0 && color[a-1] == 0 {
			color[a-1] = 1
			walk = append(walk, a)
			a = succ[a-1]
		}
		if a != 0 && color[a-1] == 1 {
			// Found the cycle entry point; everything from it onward loops.
			at := 0
			for walk[at] != a {
				at++
			}
			out = append(out, st.buildRotation(canonical(walk[at:])))
		}
		for _, v := range walk {
			color[v-1] = 2
		}
	}

	// Canonical order: by the cycle's smallest applicant id.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pairs[0].Applicant < out[j].Pairs[0].Applicant
	})

	return out
}

// buildRotation materializes a rotation from an applicant cycle.
func (st *state) buildRotation(cycle []int) Rotation {
	pairs := make([]Pair, len(cycle))
	for i, a := range cycle {
		pairs[i] = Pair{Host: st.m.HostOf(a), Applicant: a}
	}

	return Rotation{Pairs: pairs}
}

// canonical rotates an applicant cycle so its smallest id comes first,
// keeping rotation identity and ordering deterministic.
func canonical(cycle []int) []int {
	at := 0
	for i, a := range cycle {
		if a < cycle[at] {
			at = i
		}
	}
	out := make([]int, 0, len(cycle))
	out = append(out, cycle[at:]...)
	out = append(out, cycle[:at]...)

	return out
}
