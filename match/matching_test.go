package match_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

func TestMatching_AssignFreeConsistency(t *testing.T) {
	m := match.New(3, 2)

	if err := m.Assign(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := m.Assign(2, 2); err != nil {
		t.Fatal(err)
	}
	if m.HostOf(1) != 2 || m.HostOf(2) != 2 {
		t.Fatalf("HostOf after assign: got %d, %d; want 2, 2", m.HostOf(1), m.HostOf(2))
	}
	if got := m.ApplicantsOf(2); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("ApplicantsOf(2) = %v; want [1 2]", got)
	}
	if m.Load(2) != 2 || m.Load(1) != 0 {
		t.Fatalf("Load = %d, %d; want 2, 0", m.Load(2), m.Load(1))
	}

	// Re-assigning applicant 1 must release the old slot automatically.
	if err := m.Assign(1, 1); err != nil {
		t.Fatal(err)
	}
	if m.Load(2) != 1 || m.Load(1) != 1 {
		t.Fatalf("Load after move = %d, %d; want 1, 1", m.Load(2), m.Load(1))
	}

	if err := m.Free(1); err != nil {
		t.Fatal(err)
	}
	if m.HostOf(1) != match.Unmatched || m.Load(1) != 0 {
		t.Fatal("Free must clear both views of the assignment")
	}
	// Freeing an already free applicant is a no-op.
	if err := m.Free(1); err != nil {
		t.Fatal(err)
	}

	if m.MatchedCount() != 1 {
		t.Fatalf("MatchedCount = %d; want 1", m.MatchedCount())
	}
}

func TestMatching_RangeErrors(t *testing.T) {
	m := match.New(2, 2)
	for _, bad := range [][2]int{{0, 1}, {3, 1}, {1, 0}, {1, 3}} {
		if err := m.Assign(bad[0], bad[1]); !errors.Is(err, match.ErrAgentRange) {
			t.Errorf("Assign(%d, %d): expected ErrAgentRange, got %v", bad[0], bad[1], err)
		}
	}
	if err := m.Free(0); !errors.Is(err, match.ErrAgentRange) {
		t.Errorf("Free(0): expected ErrAgentRange, got %v", err)
	}
	if m.HostOf(0) != match.Unmatched || m.HostOf(5) != match.Unmatched {
		t.Error("HostOf out of range must report Unmatched")
	}
	if m.ApplicantsOf(5) != nil {
		t.Error("ApplicantsOf out of range must report nil")
	}
}

func TestMatching_CloneIsIndependent(t *testing.T) {
	m := match.New(2, 2)
	_ = m.Assign(1, 1)
	_ = m.Assign(2, 2)

	cp := m.Clone()
	_ = cp.Assign(1, 2)

	if m.HostOf(1) != 1 {
		t.Error("mutating the clone leaked into the original")
	}
	if cp.HostOf(1) != 2 {
		t.Error("clone lost its own mutation")
	}
}

func TestMatching_PairsOrderedByApplicant(t *testing.T) {
	m := match.New(3, 3)
	_ = m.Assign(3, 1)
	_ = m.Assign(1, 3)

	pairs := m.Pairs()
	want := [][2]int{{1, 3}, {3, 1}}
	if len(pairs) != len(want) {
		t.Fatalf("Pairs = %v; want %v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("Pairs = %v; want %v", pairs, want)
		}
	}
}

// stabilityTable builds the worked three-by-three market.
func stabilityTable(t *testing.T) *prefs.Table {
	t.Helper()
	table, err := prefs.New(
		[][]int{{1, 2, 3}, {2, 1, 3}, {1, 2, 3}},
		[][]int{{2, 1, 3}, {1, 2, 3}, {1, 2, 3}},
		[]int{1, 1, 1},
	)
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func TestBlockingPairs_DetectsInstability(t *testing.T) {
	table := stabilityTable(t)

	// 1→3, 2→2, 3→1 is unstable: applicant 1 and host 1 prefer each other
	// over their assignments, and so do applicant 1 and host 2.
	m := match.New(3, 3)
	_ = m.Assign(1, 3)
	_ = m.Assign(2, 2)
	_ = m.Assign(3, 1)

	blocking := m.BlockingPairs(table)
	want := [][2]int{{1, 1}, {1, 2}}
	if len(blocking) != len(want) {
		t.Fatalf("BlockingPairs = %v; want %v", blocking, want)
	}
	for i := range want {
		if blocking[i] != want[i] {
			t.Fatalf("BlockingPairs = %v; want %v", blocking, want)
		}
	}
	if m.IsStable(table) {
		t.Error("IsStable must be false when blocking pairs exist")
	}
}

func TestBlockingPairs_StableAssignments(t *testing.T) {
	table := stabilityTable(t)

	for _, hosts := range [][]int{
		{1, 2, 3}, // applicant-optimal
		{2, 1, 3}, // host-optimal
	} {
		m := match.New(3, 3)
		for a, h := range hosts {
			_ = m.Assign(a+1, h)
		}
		if !m.IsStable(table) {
			t.Errorf("assignment %v should be stable, blocking = %v", hosts, m.BlockingPairs(table))
		}
	}
}

func TestBlockingPairs_UnmatchedApplicantBlocksWithSpareCapacity(t *testing.T) {
	table, err := prefs.New(
		[][]int{{1}, {1}},
		[][]int{{1, 2}},
		[]int{2},
	)
	if err != nil {
		t.Fatal(err)
	}

	m := match.New(2, 1)
	_ = m.Assign(1, 1)
	// Applicant 2 is unmatched while host 1 has a spare seat: blocking.
	blocking := m.BlockingPairs(table)
	if len(blocking) != 1 || blocking[0] != [2]int{2, 1} {
		t.Fatalf("BlockingPairs = %v; want [[2 1]]", blocking)
	}
}

func TestAggregateRank(t *testing.T) {
	table := stabilityTable(t)

	m := match.New(3, 3)
	_ = m.Assign(1, 1)
	_ = m.Assign(2, 2)
	_ = m.Assign(3, 3)

	// Applicants 1 and 2 got their first choice, applicant 3 its third:
	// 1+1+3.
	if got := m.AggregateRank(table, prefs.Applicants); got != 5 {
		t.Errorf("applicant aggregate = %d; want 5", got)
	}
	// Host 1 ranks applicant 1 second, host 2 ranks applicant 2 second,
	// host 3 ranks applicant 3 third: 2+2+3.
	if got := m.AggregateRank(table, prefs.Hosts); got != 7 {
		t.Errorf("host aggregate = %d; want 7", got)
	}
}
