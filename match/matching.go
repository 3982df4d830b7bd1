package match

import (
	"errors"
	"fmt"
	"sort"
)

// Unmatched is the host id reported for an applicant without an assignment.
const Unmatched = 0

// ErrAgentRange indicates an Assign or Free call with an id outside the
// matching's applicant or host range.
var ErrAgentRange = errors.New("match: agent id out of range")

// Matching is a mutually consistent applicant→host assignment.
// Construct with New; see the package documentation for the mutation
// discipline.
type Matching struct {
	hostOf []int   // hostOf[a-1] = host of applicant a, or Unmatched
	holds  [][]int // holds[h-1] = applicants held by host h, insertion order
}

// New returns an empty matching over n applicants and m hosts.
func New(n, m int) *Matching {
	return &Matching{
		hostOf: make([]int, n),
		holds:  make([][]int, m),
	}
}

// Applicants returns the number of applicant slots in the matching.
func (mt *Matching) Applicants() int { return len(mt.hostOf) }

// Hosts returns the number of host slots in the matching.
func (mt *Matching) Hosts() int { return len(mt.holds) }

// HostOf returns the host assigned to applicant a, or Unmatched.
func (mt *Matching) HostOf(a int) int {
	if a < 1 || a > len(mt.hostOf) {
		return Unmatched
	}

	return mt.hostOf[a-1]
}

// ApplicantsOf returns a sorted copy of the applicants host h holds.
func (mt *Matching) ApplicantsOf(h int) []int {
	if h < 1 || h > len(mt.holds) {
		return nil
	}
	out := append([]int(nil), mt.holds[h-1]...)
	sort.Ints(out)

	return out
}

// Load returns the number of applicants host h currently holds.
func (mt *Matching) Load(h int) int {
	if h < 1 || h > len(mt.holds) {
		return 0
	}

	return len(mt.holds[h-1])
}

// Assign matches applicant a to host h, releasing a's previous assignment
// first so the two views stay consistent. Capacity is the caller's
// responsibility (the engine holds the table).
func (mt *Matching) Assign(a, h int) error {
	if a < 1 || a > len(mt.hostOf) || h < 1 || h > len(mt.holds) {
		return fmt.Errorf("%w: assign applicant %d to host %d", ErrAgentRange, a, h)
	}
	if mt.hostOf[a-1] != Unmatched {
		mt.drop(a, mt.hostOf[a-1])
	}
	mt.hostOf[a-1] = h
	mt.holds[h-1] = append(mt.holds[h-1], a)

	return nil
}

// Free releases applicant a's assignment, if any.
func (mt *Matching) Free(a int) error {
	if a < 1 || a > len(mt.hostOf) {
		return fmt.Errorf("%w: free applicant %d", ErrAgentRange, a)
	}
	if h := mt.hostOf[a-1]; h != Unmatched {
		mt.drop(a, h)
		mt.hostOf[a-1] = Unmatched
	}

	return nil
}

// drop removes applicant a from host h's held list.
func (mt *Matching) drop(a, h int) {
	held := mt.holds[h-1]
	for i, x := range held {
		if x == a {
			mt.holds[h-1] = append(held[:i], held[i+1:]...)

			return
		}
	}
}

// Clone returns a deep copy; engines clone before eliminating so a failed
// step can never leave callers holding a half-mutated matching.
func (mt *Matching) Clone() *Matching {
	cp := &Matching{
		hostOf: append([]int(nil), mt.hostOf...),
		holds:  make([][]int, len(mt.holds)),
	}
	for i, held := range mt.holds {
		cp.holds[i] = append([]int(nil), held...)
	}

	return cp
}

// Pairs returns all (applicant, host) assignments ordered by applicant id.
func (mt *Matching) Pairs() [][2]int {
	out := make([][2]int, 0, len(mt.hostOf))
	for a, h := range mt.hostOf {
		if h != Unmatched {
			out = append(out, [2]int{a + 1, h})
		}
	}

	return out
}

// MatchedCount returns the number of matched applicants.
func (mt *Matching) MatchedCount() int {
	count := 0
	for _, h := range mt.hostOf {
		if h != Unmatched {
			count++
		}
	}

	return count
}
