package adaptive

import (
	"sync"

	"github.com/katalvlaran/lvmatch/elicit"
	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// runParallel splits the market into the connected components of its
// acceptability graph and solves each on its own goroutine with a fully
// isolated engine instance: own subtable, own poset, own budget, own memo
// cache. Agents are partitioned across components, so per-agent budgets
// and the merged assignments are disjoint by construction; the shared
// oracle is the only common object and must be safe for concurrent use.
//
// The merged matching contains every successful component's assignments.
// If any component fails, the error of the lowest-indexed failing
// component is returned (deterministic) together with the merge of the
// components that did succeed — each of which is itself stable.
func runParallel(t *prefs.Table, oracle elicit.Oracle, capPerAgent int, cfg Options) (*match.Matching, error) {
	comps := t.Components()
	if len(comps) <= 1 {
		return runOne(t, oracle, capPerAgent, cfg)
	}

	results := make([]*match.Matching, len(comps))
	errs := make([]error, len(comps))

	var wg sync.WaitGroup
	for i, comp := range comps {
		sub, err := t.Subtable(comp)
		if err != nil {
			errs[i] = err

			continue
		}
		wg.Add(1)
		go func(i int, sub *prefs.Table) {
			defer wg.Done()
			results[i], errs[i] = runOne(sub, oracle, capPerAgent, cfg)
		}(i, sub)
	}
	wg.Wait()

	// Merge disjoint component matchings into the full id space.
	merged := match.New(t.Applicants(), t.Hosts())
	var firstErr error
	for i := range comps {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}

			continue
		}
		for _, p := range results[i].Pairs() {
			if err := merged.Assign(p[0], p[1]); err != nil {
				return merged, err
			}
		}
	}

	return merged, firstErr
}
