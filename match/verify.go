package match

import "github.com/katalvlaran/lvmatch/prefs"

// BlockingPairs returns every (applicant, host) pair that destabilizes the
// matching under the given table, ordered by applicant id then host id.
//
// A mutual pair (a, h) blocks when a strictly prefers h to its current
// assignment (or is unmatched), and h either has spare capacity or strictly
// prefers a to the worst applicant it currently holds. A stable matching is
// one with no blocking pair.
//
// Time: O(n·m) rank lookups.
func (mt *Matching) BlockingPairs(t *prefs.Table) [][2]int {
	var out [][2]int
	for a := 1; a <= t.Applicants(); a++ {
		curRank := 0 // 0 = unmatched; any acceptable host beats it
		if cur := mt.HostOf(a); cur != Unmatched {
			curRank, _ = t.Rank(prefs.Applicants, a, cur)
		}
		for _, h := range t.PreferenceOrder(prefs.Applicants, a) {
			hRank, _ := t.Rank(prefs.Applicants, a, h)
			if curRank != 0 && hRank >= curRank {
				// Preference lists are scanned best-first; once we reach the
				// current assignment nothing below can block.
				break
			}
			aRank, ok := t.Rank(prefs.Hosts, h, a)
			if !ok {
				continue // not mutual
			}
			if mt.Load(h) < t.Capacity(h) || aRank < mt.worstRank(t, h) {
				out = append(out, [2]int{a, h})
			}
		}
	}

	return out
}

// IsStable reports whether the matching has no blocking pair under t.
func (mt *Matching) IsStable(t *prefs.Table) bool {
	return len(mt.BlockingPairs(t)) == 0
}

// worstRank returns host h's rank of the worst applicant it holds, or 0
// when it holds none (0 never wins a strict aRank < worst comparison,
// but empty hosts are caught by the capacity test first).
func (mt *Matching) worstRank(t *prefs.Table, h int) int {
	worst := 0
	for _, a := range mt.ApplicantsOf(h) {
		if r, ok := t.Rank(prefs.Hosts, h, a); ok && r > worst {
			worst = r
		}
	}

	return worst
}

// AggregateRank sums the 1-based ranks realized by one side of the
// matching: for Applicants, each matched applicant's rank of its host; for
// Hosts, each host's rank of every applicant it holds. Lower is better —
// this is the regret measure behind rotation costs and the egalitarian
// objective. Unmatched agents contribute nothing.
func (mt *Matching) AggregateRank(t *prefs.Table, side prefs.Side) int {
	total := 0
	for _, p := range mt.Pairs() {
		a, h := p[0], p[1]
		if side == prefs.Applicants {
			if r, ok := t.Rank(prefs.Applicants, a, h); ok {
				total += r
			}

			continue
		}
		if r, ok := t.Rank(prefs.Hosts, h, a); ok {
			total += r
		}
	}

	return total
}
