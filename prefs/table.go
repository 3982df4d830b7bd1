package prefs

import "fmt"

// Table is a validated, rank-indexed view of both sides' preference lists
// and the host capacities. Zero value is not usable; construct via New.
//
// Internally the table stores, per side, the ordered lists as given plus a
// dense rank index (agent × opposite-agent → 1-based rank, 0 meaning
// unacceptable), so Rank is O(1) on the hot paths of every engine.
type Table struct {
	n int // number of applicants (side Applicants, ids 1..n)
	m int // number of hosts (side Hosts, ids 1..m)

	prefA [][]int // prefA[a] = applicant a's ordered host list (index a-1)
	prefH [][]int // prefH[h] = host h's ordered applicant list (index h-1)

	rankA [][]int // rankA[a-1][h-1] = rank of host h for applicant a, 0 if unlisted
	rankH [][]int // rankH[h-1][a-1] = rank of applicant a for host h, 0 if unlisted

	cap []int // cap[h-1] = capacity of host h
}

// New validates both sides' preference lists and the host capacities and
// returns an immutable Table.
//
// applicantLists[i] is the ordered host-id list of applicant i+1;
// hostLists[j] is the ordered applicant-id list of host j+1;
// capacities[j] is the capacity of host j+1 and must be ≥ 1.
//
// Validation (first failure wins, all wrap ErrInvalidPreference):
//  1. Both sides non-empty (ErrEmptyTable).
//  2. len(capacities) == len(hostLists), every capacity ≥ 1 (ErrBadCapacity).
//  3. Every listed id within the opposite side's 1-based range (ErrUnknownAgent).
//  4. No list mentions the same id twice (ErrDuplicateEntry).
//
// The input slices are deep-copied; callers may reuse them afterwards.
func New(applicantLists, hostLists [][]int, capacities []int) (*Table, error) {
	// 1) Shape checks before touching any list content.
	n, m := len(applicantLists), len(hostLists)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("%w: %w (applicants=%d, hosts=%d)",
			ErrInvalidPreference, ErrEmptyTable, n, m)
	}
	if len(capacities) != m {
		return nil, fmt.Errorf("%w: %w: got %d capacities for %d hosts",
			ErrInvalidPreference, ErrBadCapacity, len(capacities), m)
	}

	// 2) Capacity bounds.
	for h, c := range capacities {
		if c < 1 {
			return nil, fmt.Errorf("%w: %w: host %d has capacity %d",
				ErrInvalidPreference, ErrBadCapacity, h+1, c)
		}
	}

	t := &Table{
		n:     n,
		m:     m,
		prefA: make([][]int, n),
		prefH: make([][]int, m),
		rankA: make([][]int, n),
		rankH: make([][]int, m),
		cap:   append([]int(nil), capacities...),
	}

	// 3) Copy and index the applicant side; each list is checked for range
	//    and duplicates while the rank index is filled.
	var err error
	for a := 0; a < n; a++ {
		t.rankA[a] = make([]int, m)
		if t.prefA[a], err = indexList(Applicants, a+1, applicantLists[a], m, t.rankA[a]); err != nil {
			return nil, err
		}
	}

	// 4) Same for the host side.
	for h := 0; h < m; h++ {
		t.rankH[h] = make([]int, n)
		if t.prefH[h], err = indexList(Hosts, h+1, hostLists[h], n, t.rankH[h]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// indexList copies one preference list, validating ids against limit and
// rejecting duplicates, and writes 1-based ranks into the dense index.
func indexList(side Side, owner int, list []int, limit int, ranks []int) ([]int, error) {
	out := make([]int, 0, len(list))
	for pos, id := range list {
		if id < 1 || id > limit {
			return nil, fmt.Errorf("%w: %w: %s list of agent %d mentions id %d (valid 1..%d)",
				ErrInvalidPreference, ErrUnknownAgent, side, owner, id, limit)
		}
		if ranks[id-1] != 0 {
			return nil, fmt.Errorf("%w: %w: %s list of agent %d mentions id %d twice",
				ErrInvalidPreference, ErrDuplicateEntry, side, owner, id)
		}
		ranks[id-1] = pos + 1
		out = append(out, id)
	}

	return out, nil
}

// Applicants returns n, the number of applicant-side agents (ids 1..n).
func (t *Table) Applicants() int { return t.n }

// Hosts returns m, the number of host-side agents (ids 1..m).
func (t *Table) Hosts() int { return t.m }

// Capacity returns the capacity of the given host id. Ids outside 1..m
// report zero capacity.
func (t *Table) Capacity(host int) int {
	if host < 1 || host > t.m {
		return 0
	}

	return t.cap[host-1]
}

// OneToOne reports whether every host capacity is exactly one. The rotation
// engine (irving) only operates on one-to-one tables.
func (t *Table) OneToOne() bool {
	for _, c := range t.cap {
		if c != 1 {
			return false
		}
	}

	return true
}

// Rank returns the 1-based rank of other in agent's preference list on the
// given side, and whether other is acceptable at all. Rank(Applicants, a, h)
// reads applicant a's ranking of host h; Rank(Hosts, h, a) reads host h's
// ranking of applicant a. Out-of-range ids are simply unacceptable.
func (t *Table) Rank(side Side, agent, other int) (int, bool) {
	var r int
	switch {
	case side == Applicants && agent >= 1 && agent <= t.n && other >= 1 && other <= t.m:
		r = t.rankA[agent-1][other-1]
	case side == Hosts && agent >= 1 && agent <= t.m && other >= 1 && other <= t.n:
		r = t.rankH[agent-1][other-1]
	default:
		return 0, false
	}

	return r, r != 0
}

// PreferenceOrder returns a copy of agent's ordered preference list on the
// given side, most preferred first. Unknown agents yield an empty list.
func (t *Table) PreferenceOrder(side Side, agent int) []int {
	var src []int
	switch {
	case side == Applicants && agent >= 1 && agent <= t.n:
		src = t.prefA[agent-1]
	case side == Hosts && agent >= 1 && agent <= t.m:
		src = t.prefH[agent-1]
	default:
		return nil
	}

	return append([]int(nil), src...)
}

// Mutual reports whether applicant and host each list the other. Only
// mutual pairs can ever be matched or form a blocking pair.
func (t *Table) Mutual(applicant, host int) bool {
	_, okA := t.Rank(Applicants, applicant, host)
	_, okH := t.Rank(Hosts, host, applicant)

	return okA && okH
}
