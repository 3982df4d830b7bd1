package elicit

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/prefs"
)

// Budget tracks the remaining query allowance of every agent in a run.
// Counters start at a uniform per-agent cap, are decremented by Spend, and
// are never replenished. The zero value is unusable; construct with
// NewBudget once per run.
type Budget struct {
	perAgent   int
	applicants []int // remaining queries per applicant (index id-1)
	hosts      []int // remaining queries per host (index id-1)
}

// NewBudget returns a fresh budget granting perAgent queries to each of
// the given number of applicants and hosts. A zero cap is legal (purely
// ordinal run); a negative cap is ErrBadBudget.
func NewBudget(perAgent, applicants, hosts int) (*Budget, error) {
	if perAgent < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBudget, perAgent)
	}
	b := &Budget{
		perAgent:   perAgent,
		applicants: make([]int, applicants),
		hosts:      make([]int, hosts),
	}
	for i := range b.applicants {
		b.applicants[i] = perAgent
	}
	for i := range b.hosts {
		b.hosts[i] = perAgent
	}

	return b, nil
}

// Cap returns the uniform per-agent cap this budget was created with.
func (b *Budget) Cap() int { return b.perAgent }

// Remaining returns the queries left for the given agent. Unknown agents
// report zero.
func (b *Budget) Remaining(side prefs.Side, agent int) int {
	if c := b.counter(side, agent); c != nil {
		return *c
	}

	return 0
}

// Spend consumes one query unit from the agent's counter. It fails with
// ErrBudgetExceeded when the counter is already zero (or the agent is
// unknown); the counter is never driven negative.
func (b *Budget) Spend(side prefs.Side, agent int) error {
	c := b.counter(side, agent)
	if c == nil || *c == 0 {
		return fmt.Errorf("%w: %s agent %d", ErrBudgetExceeded, side, agent)
	}
	*c--

	return nil
}

// counter returns the agent's slot, or nil when out of range.
func (b *Budget) counter(side prefs.Side, agent int) *int {
	pool := b.applicants
	if side == prefs.Hosts {
		pool = b.hosts
	}
	if agent < 1 || agent > len(pool) {
		return nil
	}

	return &pool[agent-1]
}
