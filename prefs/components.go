package prefs

import (
	"fmt"
	"sort"
)

// Components splits the market into its independent submarkets: the
// connected components of the mutual acceptability graph. An applicant and
// a host are adjacent when each lists the other; no pair crossing a
// component boundary can ever be matched or form a blocking pair, so each
// component may be solved by an isolated engine instance and the resulting
// matchings merged.
//
// Components are returned sorted by their lowest applicant id (isolated
// hosts form host-only components sorted after all others); ids inside a
// component are sorted ascending. The result is deterministic for a fixed
// table.
//
// Time:   O(n·m) over acceptability edges.
// Memory: O(n + m) for visited flags and the BFS queue.
func (t *Table) Components() []Component {
	// Shared index space for the flood fill: applicants 0..n-1,
	// hosts n..n+m-1 (the gridgraph island-labelling discipline).
	total := t.n + t.m
	seen := make([]bool, total)
	var comps []Component

	for start := 0; start < total; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect one component.
		queue := []int{start}
		seen[start] = true
		var comp Component

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			if u < t.n {
				// Applicant node: record it, enqueue its mutual hosts.
				a := u + 1
				comp.Applicants = append(comp.Applicants, a)
				for _, h := range t.prefA[u] {
					if v := t.n + h - 1; !seen[v] && t.Mutual(a, h) {
						seen[v] = true
						queue = append(queue, v)
					}
				}

				continue
			}
			// Host node: record it, enqueue its mutual applicants.
			h := u - t.n + 1
			comp.Hosts = append(comp.Hosts, h)
			for _, a := range t.prefH[u-t.n] {
				if v := a - 1; !seen[v] && t.Mutual(a, h) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		sort.Ints(comp.Applicants)
		sort.Ints(comp.Hosts)
		comps = append(comps, comp)
	}

	return comps
}

// Subtable materializes one component as a standalone Table over the same
// 1..n / 1..m id space: preference lists keep only opposite-side members of
// the component, every other list is emptied. Ranks are renumbered to the
// pruned lists (order is preserved, absolute rank values may shrink).
//
// The component must come from Components on the same table; ids outside
// the table's range fail with ErrUnknownAgent.
func (t *Table) Subtable(c Component) (*Table, error) {
	inA := make([]bool, t.n)
	inH := make([]bool, t.m)
	for _, a := range c.Applicants {
		if a < 1 || a > t.n {
			return nil, fmt.Errorf("%w: %w: applicant %d not in table", ErrInvalidPreference, ErrUnknownAgent, a)
		}
		inA[a-1] = true
	}
	for _, h := range c.Hosts {
		if h < 1 || h > t.m {
			return nil, fmt.Errorf("%w: %w: host %d not in table", ErrInvalidPreference, ErrUnknownAgent, h)
		}
		inH[h-1] = true
	}

	// Prune each side's lists to component members; non-members keep empty
	// lists so the id space (and every engine's indexing) is unchanged.
	appl := make([][]int, t.n)
	for a := 0; a < t.n; a++ {
		appl[a] = []int{}
		if !inA[a] {
			continue
		}
		for _, h := range t.prefA[a] {
			if inH[h-1] {
				appl[a] = append(appl[a], h)
			}
		}
	}
	hosts := make([][]int, t.m)
	for h := 0; h < t.m; h++ {
		hosts[h] = []int{}
		if !inH[h] {
			continue
		}
		for _, a := range t.prefH[h] {
			if inA[a-1] {
				hosts[h] = append(hosts[h], a)
			}
		}
	}

	return New(appl, hosts, t.cap)
}
