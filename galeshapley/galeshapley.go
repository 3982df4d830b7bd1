// Package galeshapley provides the deferred-acceptance proposal engine.
// See doc.go for the full contract.
package galeshapley

import (
	"container/heap"

	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// Run executes deferred acceptance on the given table and returns the
// stable matching optimal for the proposing side.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTable).
//
// The table itself is already validated by prefs.New, so no per-list checks
// are repeated here. See the package documentation for guarantees,
// determinism and complexity.
func Run(t *prefs.Table, opts ...Option) (*match.Matching, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the table pointer.
	if t == nil {
		return nil, ErrNilTable
	}

	// 3) Initialize runner state and dispatch by orientation.
	r := &runner{
		table:    t,
		matching: match.New(t.Applicants(), t.Hosts()),
	}
	if cfg.ProposingSide == prefs.Applicants {
		r.proposeApplicants()
	} else {
		r.proposeHosts()
	}

	return r.matching, nil
}

// runner holds the mutable state of a single deferred-acceptance execution.
type runner struct {
	table    *prefs.Table    // read-only input
	matching *match.Matching // assignment under construction
}

// proposeApplicants runs applicant-oriented deferred acceptance: applicants
// offer down their lists, hosts keep the best offers up to capacity on a
// worst-on-top waiting-list heap and bump the worst holder on overflow.
func (r *runner) proposeApplicants() {
	t := r.table
	n := t.Applicants()

	// Per-applicant list and cursor: the cursor only ever advances, which
	// bounds the whole run by one proposal per (applicant, host) pair.
	lists := make([][]int, n)
	next := make([]int, n)
	for a := 1; a <= n; a++ {
		lists[a-1] = t.PreferenceOrder(prefs.Applicants, a)
	}

	// Per-host waiting list: a max-heap keyed by the host's own rank of the
	// holder, so the worst held applicant is always on top.
	held := make([]waitingList, t.Hosts())

	// FIFO of applicants with proposals left to make, seeded in id order
	// for deterministic replay.
	queue := make([]int, 0, n)
	for a := 1; a <= n; a++ {
		queue = append(queue, a)
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		for next[a-1] < len(lists[a-1]) {
			// 1) Offer to the most-preferred host not yet tried.
			h := lists[a-1][next[a-1]]
			next[a-1]++

			// 2) Hosts that do not list the applicant auto-reject.
			rank, ok := t.Rank(prefs.Hosts, h, a)
			if !ok {
				continue
			}

			// 3) Tentative acceptance: the host holds the offer.
			heap.Push(&held[h-1], offer{applicant: a, rank: rank})
			_ = r.matching.Assign(a, h)

			// 4) Over capacity: bump the worst holder. If that is the
			//    proposer itself, it keeps walking its list; otherwise the
			//    displaced applicant re-enters the queue.
			if held[h-1].Len() > t.Capacity(h) {
				worst := heap.Pop(&held[h-1]).(offer)
				_ = r.matching.Free(worst.applicant)
				if worst.applicant == a {
					continue
				}
				queue = append(queue, worst.applicant)
			}

			break // offer held; applicant rests until (possibly) displaced
		}
		// List exhausted without acceptance: permanently unmatched, a valid
		// terminal state for the applicant.
	}
}

// proposeHosts runs host-oriented deferred acceptance: each host offers
// down its list until its capacity is filled or its list is exhausted;
// applicants hold at most one offer and trade up, returning the freed seat
// to the displaced host.
func (r *runner) proposeHosts() {
	t := r.table
	m := t.Hosts()

	lists := make([][]int, m)
	next := make([]int, m)
	deficit := make([]int, m)
	for h := 1; h <= m; h++ {
		lists[h-1] = t.PreferenceOrder(prefs.Hosts, h)
		deficit[h-1] = t.Capacity(h)
	}

	// FIFO of hosts with unfilled seats, seeded in id order. A host may
	// appear more than once after displacements; the deficit and cursor
	// checks make duplicates harmless.
	queue := make([]int, 0, m)
	for h := 1; h <= m; h++ {
		queue = append(queue, h)
	}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		for deficit[h-1] > 0 && next[h-1] < len(lists[h-1]) {
			// 1) Offer the open seat to the best applicant not yet tried.
			a := lists[h-1][next[h-1]]
			next[h-1]++

			// 2) Applicants that do not list the host auto-reject.
			rank, ok := t.Rank(prefs.Applicants, a, h)
			if !ok {
				continue
			}

			// 3) Free applicant accepts outright.
			cur := r.matching.HostOf(a)
			if cur == match.Unmatched {
				_ = r.matching.Assign(a, h)
				deficit[h-1]--

				continue
			}

			// 4) Held applicant trades up only for a strictly better host;
			//    the displaced host gets its seat back and re-enters.
			curRank, _ := t.Rank(prefs.Applicants, a, cur)
			if rank < curRank {
				_ = r.matching.Assign(a, h) // releases a from cur first
				deficit[h-1]--
				deficit[cur-1]++
				queue = append(queue, cur)
			}
		}
		// Undersubscribed with an exhausted list: terminal for this host.
	}
}

// offer is one tentatively held proposal on a host's waiting list.
type offer struct {
	applicant int // proposing applicant id
	rank      int // host's rank of that applicant (1 = best)
}

// waitingList is a max-heap of offers ordered by rank descending, so the
// worst held applicant sits on top and overflow eviction is a single Pop.
type waitingList []offer

// Len returns the number of held offers.
func (w waitingList) Len() int { return len(w) }

// Less defines the comparison: larger rank value → higher (eviction) priority.
func (w waitingList) Less(i, j int) bool { return w[i].rank > w[j].rank }

// Swap swaps two held offers.
func (w waitingList) Swap(i, j int) { w[i], w[j] = w[j], w[i] }

// Push adds a new offer; called by heap.Push, x must be an offer.
func (w *waitingList) Push(x interface{}) { *w = append(*w, x.(offer)) }

// Pop removes and returns the worst held offer; called by heap.Pop.
func (w *waitingList) Pop() interface{} {
	old := *w
	n := len(old)
	item := old[n-1]
	*w = old[:n-1]

	return item
}
