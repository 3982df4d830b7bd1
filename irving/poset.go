package irving

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatch/galeshapley"
	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// Poset is the directed acyclic graph of all rotations of a one-to-one
// market, rooted at the applicant-optimal stable matching. Nodes live in an
// arena with dense integer ids assigned in discovery order; an edge p→s
// means rotation p must be eliminated before rotation s can be exposed.
//
// Discovery order is itself a valid topological order: a rotation is first
// exposed only after all of its predecessors have been eliminated, and
// every predecessor is registered before it is eliminated.
type Poset struct {
	table *prefs.Table
	root  *match.Matching
	rots  []Rotation
	preds [][]int // preds[s] = direct predecessor ids of rotation s
	succs [][]int // succs[p] = direct successor ids of rotation p
}

// pairKey identifies an (applicant, host) pair in the producer and
// eliminator bookkeeping of the poset construction.
type pairKey struct {
	applicant int
	host      int
}

// BuildPoset enumerates every rotation of the market and wires the
// elimination-order dependencies.
//
// The construction walks one maximal elimination chain from the
// applicant-optimal root (every rotation appears exactly once on any such
// chain), recording for each (applicant, host) pair the rotation that
// produced it and the rotation that eliminated it. Dependency edges follow
// the two Gusfield–Irving rules: for each pair (a, hᵢ) of a rotation σ,
// (1) the rotation that moved a to hᵢ precedes σ, and (2) for every host
// strictly between hᵢ and hᵢ₊₁ on a's list, the rotation after whose
// elimination that host rejects a precedes σ.
//
// A market whose applicant-optimal matching has no exposed rotation yields
// an empty poset: the root is simultaneously applicant-pessimal and
// host-optimal.
//
// Validation: ErrNilTable, ErrNotOneToOne.
//
// Time: O(n·m) per eliminated rotation.
func BuildPoset(t *prefs.Table) (*Poset, error) {
	// 1) Validation ladder (the elimination loop re-validates stability on
	//    every step through ExposedRotations).
	if t == nil {
		return nil, ErrNilTable
	}
	if !t.OneToOne() {
		return nil, ErrNotOneToOne
	}

	// 2) Applicant-optimal root via the proposal engine.
	root, err := galeshapley.Run(t)
	if err != nil {
		return nil, err
	}

	p := &Poset{table: t, root: root}

	// 3) Walk one maximal elimination chain, registering rotations in the
	//    order they are first exposed and eliminating the lowest-id exposed
	//    rotation each step (deterministic replay).
	producer := make(map[pairKey]int)
	eliminatedBy := make(map[pairKey]int)
	known := make(map[string]int)

	cur := root.Clone()
	for {
		exposed, err := ExposedRotations(t, cur)
		if err != nil {
			return nil, err
		}
		if len(exposed) == 0 {
			break
		}

		// 3a) Register unseen rotations in canonical order.
		pickID := -1
		for _, rot := range exposed {
			key := rotationKey(rot)
			id, ok := known[key]
			if !ok {
				id = len(p.rots)
				known[key] = id
				p.rots = append(p.rots, Rotation{Pairs: rot.clonePairs()})
			}
			if pickID == -1 || id < pickID {
				pickID = id
			}
		}

		// 3b) Eliminate the lowest-id exposed rotation and record pair
		//     bookkeeping for the dependency rules.
		rot := p.rots[pickID]
		k := rot.Len()
		for i, pr := range rot.Pairs {
			nx := rot.Pairs[(i+1)%k]

			// The moved-to pair (applicant, next host) is produced by pickID.
			producer[pairKey{applicant: pr.Applicant, host: nx.Host}] = pickID

			// Host nx.Host trades nx.Applicant for pr.Applicant: every
			// applicant it ranks strictly below its new partner and at most
			// as low as its old one is rejected from here on.
			newRank, _ := t.Rank(prefs.Hosts, nx.Host, pr.Applicant)
			oldRank, _ := t.Rank(prefs.Hosts, nx.Host, nx.Applicant)
			order := t.PreferenceOrder(prefs.Hosts, nx.Host)
			for pos := newRank; pos < oldRank; pos++ {
				key := pairKey{applicant: order[pos], host: nx.Host}
				if _, seen := eliminatedBy[key]; !seen {
					eliminatedBy[key] = pickID
				}
			}
		}
		if cur, err = Eliminate(t, cur, rot); err != nil {
			return nil, err
		}
	}

	// 4) Wire dependency edges from the recorded bookkeeping.
	p.preds = make([][]int, len(p.rots))
	p.succs = make([][]int, len(p.rots))
	seen := make(map[[2]int]bool)
	link := func(from, to int) {
		if from == to || seen[[2]int{from, to}] {
			return
		}
		seen[[2]int{from, to}] = true
		p.preds[to] = append(p.preds[to], from)
		p.succs[from] = append(p.succs[from], to)
	}
	for s, rot := range p.rots {
		k := rot.Len()
		for i, pr := range rot.Pairs {
			// Rule 1: the producer of the pair (a, hᵢ) precedes σ.
			if from, ok := producer[pairKey{applicant: pr.Applicant, host: pr.Host}]; ok {
				link(from, s)
			}

			// Rule 2: eliminators of (a, h') for h' strictly between hᵢ and
			// hᵢ₊₁ on a's list precede σ.
			curRank, _ := t.Rank(prefs.Applicants, pr.Applicant, pr.Host)
			nxRank, _ := t.Rank(prefs.Applicants, pr.Applicant, rot.Pairs[(i+1)%k].Host)
			order := t.PreferenceOrder(prefs.Applicants, pr.Applicant)
			for pos := curRank; pos < nxRank-1; pos++ {
				if from, ok := eliminatedBy[pairKey{applicant: pr.Applicant, host: order[pos]}]; ok {
					link(from, s)
				}
			}
		}
	}
	for s := range p.rots {
		sort.Ints(p.preds[s])
		sort.Ints(p.succs[s])
	}

	return p, nil
}

// rotationKey is the canonical identity of a rotation: its pair cycle
// starting from the smallest applicant (ExposedRotations already
// canonicalizes, so the pair sequence is directly comparable).
func rotationKey(rot Rotation) string {
	return fmt.Sprint(rot.Pairs)
}

// Len returns the number of rotations in the poset.
func (p *Poset) Len() int { return len(p.rots) }

// Rotation returns a copy of the rotation with the given id.
func (p *Poset) Rotation(id int) Rotation {
	return Rotation{Pairs: p.rots[id].clonePairs()}
}

// Rotations returns copies of all rotations in id (discovery) order.
func (p *Poset) Rotations() []Rotation {
	out := make([]Rotation, len(p.rots))
	for i, rot := range p.rots {
		out[i] = Rotation{Pairs: rot.clonePairs()}
	}

	return out
}

// Preds returns a copy of the direct predecessor ids of rotation id.
func (p *Poset) Preds(id int) []int { return append([]int(nil), p.preds[id]...) }

// Succs returns a copy of the direct successor ids of rotation id.
func (p *Poset) Succs(id int) []int { return append([]int(nil), p.succs[id]...) }

// Cost returns the net aggregate-rank change of rotation id.
func (p *Poset) Cost(id int) int { return Cost(p.table, p.rots[id]) }

// Root returns a clone of the applicant-optimal root matching.
func (p *Poset) Root() *match.Matching { return p.root.Clone() }

// Ready returns, in ascending id order, every rotation whose predecessors
// are all eliminated and which is not yet eliminated itself — the
// candidates a caller may eliminate next. eliminated[id] marks already
// eliminated rotations; a nil slice means none.
func (p *Poset) Ready(eliminated []bool) []int {
	var out []int
	for id := range p.rots {
		if len(eliminated) > id && eliminated[id] {
			continue
		}
		ok := true
		for _, pre := range p.preds[id] {
			if len(eliminated) <= pre || !eliminated[pre] {
				ok = false

				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}

	return out
}

// TopologicalOrder returns all rotation ids in an order compatible with
// the poset, computed by depth-first reverse post-order over the successor
// edges with vertices taken in ascending id order. Deterministic for a
// fixed poset.
func (p *Poset) TopologicalOrder() []int {
	const (
		white = iota // untouched
		gray         // on the current DFS path
		black        // finished
	)
	state := make([]int, len(p.rots))
	order := make([]int, 0, len(p.rots))

	var visit func(id int)
	visit = func(id int) {
		state[id] = gray
		for _, nx := range p.succs[id] {
			if state[nx] == white {
				visit(nx)
			}
		}
		state[id] = black
		order = append(order, id)
	}
	for id := range p.rots {
		if state[id] == white {
			visit(id)
		}
	}

	// Reverse the post-order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order
}

// Apply replays an elimination sequence from the root and returns the
// resulting stable matching. Every id must be in range, unrepeated, and
// have all its predecessors eliminated earlier in the sequence; any breach
// is ErrRotationOrderViolation, identifying the offending rotation. On
// error, the last confirmed-stable matching reached is returned alongside
// it — never a half-mutated one.
func (p *Poset) Apply(order []int) (*match.Matching, error) {
	cur := p.root.Clone()
	eliminated := make([]bool, len(p.rots))
	for _, id := range order {
		if id < 0 || id >= len(p.rots) {
			return cur, fmt.Errorf("%w: rotation id %d out of range [0,%d)", ErrRotationOrderViolation, id, len(p.rots))
		}
		if eliminated[id] {
			return cur, fmt.Errorf("%w: rotation %d eliminated twice", ErrRotationOrderViolation, id)
		}
		for _, pre := range p.preds[id] {
			if !eliminated[pre] {
				return cur, fmt.Errorf("%w: rotation %d applied before predecessor %d", ErrRotationOrderViolation, id, pre)
			}
		}
		next, err := Eliminate(p.table, cur, p.rots[id])
		if err != nil {
			// Exposure failure after the order checks passed is the same
			// invariant breach, surfaced with the underlying cause.
			return cur, fmt.Errorf("%w: rotation %d: %v", ErrRotationOrderViolation, id, err)
		}
		eliminated[id] = true
		cur = next
	}

	return cur, nil
}
