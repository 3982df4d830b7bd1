package irving

import (
	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// Egalitarian computes the egalitarian-optimal stable matching of a
// one-to-one market: the stable matching minimizing the aggregate rank
// (regret) summed over both sides.
//
// Stable matchings correspond one-to-one with closed subsets of the
// rotation poset (a subset containing, with every rotation, all of its
// predecessors), and eliminating a closed subset from the root changes the
// total regret by the sum of the member rotations' costs. Minimizing total
// regret is therefore a maximum-weight closed subset problem with weights
// = −cost, solved here by the classical project-selection reduction to an
// s-t minimum cut:
//
//   - one network vertex per rotation, plus source and sink;
//   - source→ρ with capacity gain(ρ) for positive-gain rotations;
//   - ρ→sink with capacity −gain(ρ) for negative-gain rotations;
//   - σ→ρ with infinite capacity for every poset edge ρ→σ, so choosing σ
//     forces choosing its prerequisite ρ.
//
// The source side of the minimum cut is the optimal closed subset. The
// BFS-reachable cut is the unique minimal one among optima; eliminating
// fewer rotations keeps the applicant-side aggregate rank lowest, which is
// exactly the documented tie-break.
//
// Validation: ErrNilTable, ErrNotOneToOne (via BuildPoset).
func Egalitarian(t *prefs.Table) (*match.Matching, error) {
	p, err := BuildPoset(t)
	if err != nil {
		return nil, err
	}

	return p.Egalitarian()
}

// Egalitarian solves the minimum-regret closed subset on an already built
// poset and returns the corresponding stable matching. An empty poset
// returns the root unchanged (the market's unique stable matching).
func (p *Poset) Egalitarian() (*match.Matching, error) {
	n := p.Len()
	if n == 0 {
		return p.Root(), nil
	}

	// 1) Build the project-selection network: vertex id+1 per rotation,
	//    source 0, sink n+1.
	const inf = int64(1) << 60
	source, sink := 0, n+1
	net := newFlowNet(n + 2)
	for id := 0; id < n; id++ {
		gain := int64(-p.Cost(id))
		switch {
		case gain > 0:
			net.addArc(source, id+1, gain)
		case gain < 0:
			net.addArc(id+1, sink, -gain)
		}
	}
	for pre := 0; pre < n; pre++ {
		for _, succ := range p.succs[pre] {
			// Choosing the successor forces choosing its prerequisite.
			net.addArc(succ+1, pre+1, inf)
		}
	}

	// 2) Min cut; the residual source side is the minimal optimal closure.
	net.maxflow(source, sink)
	reach := net.sourceSide(source)

	// 3) Eliminate the chosen rotations in id order — ids ascend along any
	//    elimination chain, so this order satisfies the poset.
	var order []int
	for id := 0; id < n; id++ {
		if reach[id+1] {
			order = append(order, id)
		}
	}

	return p.Apply(order)
}
