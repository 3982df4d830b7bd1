package irving

import (
	"errors"

	"github.com/katalvlaran/lvmatch/prefs"
)

// Sentinel errors returned by the rotation engine.
var (
	// ErrNilTable indicates that a nil *prefs.Table was supplied.
	ErrNilTable = errors.New("irving: table is nil")

	// ErrNilMatching indicates that a nil *match.Matching was supplied.
	ErrNilMatching = errors.New("irving: matching is nil")

	// ErrNotOneToOne indicates a host capacity other than one; rotations are
	// defined for one-to-one markets only.
	ErrNotOneToOne = errors.New("irving: table must be one-to-one (all capacities = 1)")

	// ErrUnstableMatching indicates that the supplied matching has a
	// blocking pair; rotation operations require a stable matching.
	ErrUnstableMatching = errors.New("irving: matching is not stable")

	// ErrRotationNotExposed indicates an Eliminate call with a rotation
	// that is not exposed in the supplied matching.
	ErrRotationNotExposed = errors.New("irving: rotation is not exposed in this matching")

	// ErrRotationOrderViolation indicates an elimination sequence that
	// contradicts the rotation poset. This is an internal invariant breach:
	// a correct caller can never trigger it.
	ErrRotationOrderViolation = errors.New("irving: rotation applied before its poset prerequisites")
)

// Pair is one element of a rotation: host currently matched to applicant.
type Pair struct {
	Host      int
	Applicant int
}

// Rotation is a cyclic sequence of matched pairs; eliminating it moves each
// pair's applicant to the next pair's host (indices mod len(Pairs)).
// Rotations are value types: discovered once, never mutated.
type Rotation struct {
	Pairs []Pair
}

// Len returns the number of pairs in the rotation cycle.
func (rot Rotation) Len() int { return len(rot.Pairs) }

// clonePairs returns a defensive copy of the rotation's pair slice.
func (rot Rotation) clonePairs() []Pair {
	return append([]Pair(nil), rot.Pairs...)
}

// Cost returns the net change in summed ranks across both sides caused by
// eliminating rot: applicant regret rises, host regret falls, and the sum
// of the two deltas is the rotation's cost. Negative cost means the
// elimination lowers total regret.
func Cost(t *prefs.Table, rot Rotation) int {
	dApp, dHost := SideDeltas(t, rot)

	return dApp + dHost
}

// SideDeltas returns the per-side aggregate-rank changes caused by
// eliminating rot: dApplicants ≥ 0 (applicants step down their own lists)
// and dHosts ≤ 0 (hosts trade up) for any genuine rotation.
func SideDeltas(t *prefs.Table, rot Rotation) (dApplicants, dHosts int) {
	k := rot.Len()
	for i, p := range rot.Pairs {
		nx := rot.Pairs[(i+1)%k]

		// Applicant p.Applicant moves p.Host → nx.Host on its own list.
		oldA, _ := t.Rank(prefs.Applicants, p.Applicant, p.Host)
		newA, _ := t.Rank(prefs.Applicants, p.Applicant, nx.Host)
		dApplicants += newA - oldA

		// Host nx.Host swaps nx.Applicant for p.Applicant on its own list.
		oldH, _ := t.Rank(prefs.Hosts, nx.Host, nx.Applicant)
		newH, _ := t.Rank(prefs.Hosts, nx.Host, p.Applicant)
		dHosts += newH - oldH
	}

	return dApplicants, dHosts
}
