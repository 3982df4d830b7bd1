package adaptive_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/adaptive"
	"github.com/katalvlaran/lvmatch/elicit"
	"github.com/katalvlaran/lvmatch/irving"
	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// workedMarket has exactly one rotation: (host 1, applicant 1),
// (host 2, applicant 2). Eliminating it swaps those two assignments.
func workedMarket(t *testing.T) *prefs.Table {
	t.Helper()
	table, err := prefs.New(
		[][]int{{1, 2, 3}, {2, 1, 3}, {1, 2, 3}},
		[][]int{{2, 1, 3}, {1, 2, 3}, {1, 2, 3}},
		[]int{1, 1, 1},
	)
	require.NoError(t, err)

	return table
}

// swapLovers values the post-rotation partners high and the current ones
// low, so the single rotation of workedMarket has strictly positive gain.
func swapLovers() *elicit.Profile {
	return elicit.NewProfile(
		[][]float64{{0.1, 0.9, 0}, {0.9, 0.1, 0}, {0, 0, 0.5}},
		[][]float64{{0.1, 0.9, 0}, {0.9, 0.1, 0}, {0, 0, 0.5}},
	)
}

// happyAsIs is the mirror image: everyone values their current partner
// high, so no rotation is worth applying.
func happyAsIs() *elicit.Profile {
	return elicit.NewProfile(
		[][]float64{{0.9, 0.1, 0}, {0.1, 0.9, 0}, {0, 0, 0.5}},
		[][]float64{{0.9, 0.1, 0}, {0.1, 0.9, 0}, {0, 0, 0.5}},
	)
}

func hostsOf(m *match.Matching) []int {
	out := make([]int, m.Applicants())
	for a := 1; a <= m.Applicants(); a++ {
		out[a-1] = m.HostOf(a)
	}

	return out
}

func TestRun_Validation(t *testing.T) {
	table := workedMarket(t)

	_, err := adaptive.Run(nil, swapLovers(), 1)
	require.ErrorIs(t, err, adaptive.ErrNilTable)

	_, err = adaptive.Run(table, nil, 1)
	require.ErrorIs(t, err, adaptive.ErrNilOracle)

	_, err = adaptive.Run(table, swapLovers(), -1)
	require.ErrorIs(t, err, adaptive.ErrBadCap)
}

func TestRun_ZeroCapIsPurelyOrdinal(t *testing.T) {
	table := workedMarket(t)

	m, err := adaptive.Run(table, swapLovers(), 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, hostsOf(m), "zero cap must return the applicant-optimal root")
}

func TestRun_AppliesImprovingRotation(t *testing.T) {
	table := workedMarket(t)

	m, err := adaptive.Run(table, swapLovers(), 2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, hostsOf(m))
	require.True(t, m.IsStable(table))
}

func TestRun_SkipsNonImprovingRotation(t *testing.T) {
	table := workedMarket(t)

	m, err := adaptive.Run(table, happyAsIs(), 5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, hostsOf(m), "negative gain must leave the root")
}

func TestRun_HaltsCleanlyWhenUnaffordable(t *testing.T) {
	// The rotation needs two fresh queries per touched agent; a cap of one
	// makes it unaffordable and the walk must stop without error.
	table := workedMarket(t)

	m, err := adaptive.Run(table, swapLovers(), 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, hostsOf(m))
}

func TestRun_Deterministic(t *testing.T) {
	table, err := prefs.New(
		[][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}},
		[][]int{{2, 3, 1}, {3, 1, 2}, {1, 2, 3}},
		[]int{1, 1, 1},
	)
	require.NoError(t, err)

	// Deterministic synthetic oracle.
	oracle := elicit.Func(func(side prefs.Side, agent, alt int) (float64, error) {
		return float64((agent*31+alt*17+int(side)*7)%97) / 97.0, nil
	})

	first, err := adaptive.Run(table, oracle, 3)
	require.NoError(t, err)
	require.True(t, first.IsStable(table))
	for i := 0; i < 5; i++ {
		again, err := adaptive.Run(table, oracle, 3)
		require.NoError(t, err)
		require.Equal(t, first.Pairs(), again.Pairs())
	}
}

// perAgentCounter records how many queries reach the raw source per agent.
type perAgentCounter struct {
	mu     sync.Mutex
	inner  elicit.Oracle
	counts map[[2]int]int
}

func newPerAgentCounter(inner elicit.Oracle) *perAgentCounter {
	return &perAgentCounter{inner: inner, counts: make(map[[2]int]int)}
}

func (c *perAgentCounter) Value(side prefs.Side, agent, alt int) (float64, error) {
	c.mu.Lock()
	c.counts[[2]int{int(side), agent}]++
	c.mu.Unlock()

	return c.inner.Value(side, agent, alt)
}

func (c *perAgentCounter) max() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := 0
	for _, n := range c.counts {
		if n > m {
			m = n
		}
	}

	return m
}

func TestRun_NeverExceedsPerAgentCap(t *testing.T) {
	table, err := prefs.New(
		[][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}},
		[][]int{{2, 3, 1}, {3, 1, 2}, {1, 2, 3}},
		[]int{1, 1, 1},
	)
	require.NoError(t, err)

	synthetic := elicit.Func(func(side prefs.Side, agent, alt int) (float64, error) {
		return float64((agent*13+alt*29+int(side)*3)%53) / 53.0, nil
	})

	for _, capPerAgent := range []int{1, 2, 3, 10} {
		counter := newPerAgentCounter(synthetic)
		m, err := adaptive.Run(table, counter, capPerAgent)
		require.NoError(t, err)
		require.True(t, m.IsStable(table))
		require.LessOrEqualf(t, counter.max(), capPerAgent,
			"cap %d: some agent was queried %d times", capPerAgent, counter.max())
	}
}

func TestRun_OracleFailureReturnsLastStableMatching(t *testing.T) {
	table := workedMarket(t)
	boom := errors.New("respondent hung up")
	oracle := elicit.Func(func(prefs.Side, int, int) (float64, error) {
		return 0, boom
	})

	m, err := adaptive.Run(table, oracle, 2)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, m)
	require.Equal(t, []int{1, 2, 3}, hostsOf(m), "failure before any elimination keeps the root")
	require.True(t, m.IsStable(table))
}

func TestRun_CanceledContext(t *testing.T) {
	table := workedMarket(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := adaptive.Run(table, swapLovers(), 2, adaptive.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, m)
	require.True(t, m.IsStable(table))
}

// vetoAll is a Strategy that asks for nothing and approves nothing.
type vetoAll struct{}

func (vetoAll) Queries(irving.Rotation) []adaptive.Query { return nil }

func (vetoAll) Gain(*prefs.Table, *match.Matching, irving.Rotation, adaptive.Lookup) (float64, error) {
	return 0, nil
}

func TestRun_CustomStrategy(t *testing.T) {
	table := workedMarket(t)
	counter := newPerAgentCounter(swapLovers())

	m, err := adaptive.Run(table, counter, 5, adaptive.WithStrategy(vetoAll{}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, hostsOf(m), "zero gain must keep the root")
	require.Zero(t, counter.max(), "a query-free strategy must not touch the oracle")
}

// twoIslands is a market with two disconnected submarkets, each holding
// one improving rotation.
func twoIslands(t *testing.T) (*prefs.Table, *elicit.Profile) {
	t.Helper()
	table, err := prefs.New(
		[][]int{{1, 2}, {2, 1}, {3, 4}, {4, 3}},
		[][]int{{2, 1}, {1, 2}, {4, 3}, {3, 4}},
		[]int{1, 1, 1, 1},
	)
	require.NoError(t, err)

	profile := elicit.NewProfile(
		[][]float64{
			{0.1, 0.9, 0, 0},
			{0.9, 0.1, 0, 0},
			{0, 0, 0.1, 0.9},
			{0, 0, 0.9, 0.1},
		},
		[][]float64{
			{0.1, 0.9, 0, 0},
			{0.9, 0.1, 0, 0},
			{0, 0, 0.1, 0.9},
			{0, 0, 0.9, 0.1},
		},
	)

	return table, profile
}

func TestRun_ParallelSubmarketsMatchSequential(t *testing.T) {
	table, profile := twoIslands(t)

	sequential, err := adaptive.Run(table, profile, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 4, 3}, hostsOf(sequential))

	parallel, err := adaptive.Run(table, profile, 2, adaptive.WithParallelSubmarkets())
	require.NoError(t, err)
	require.Equal(t, sequential.Pairs(), parallel.Pairs())
	require.True(t, parallel.IsStable(table))
}
