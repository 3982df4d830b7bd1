package adaptive_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/adaptive"
	"github.com/katalvlaran/lvmatch/match"
)

func TestWelfare_SumsBothSides(t *testing.T) {
	applicantVals := [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	hostVals := [][]float64{{0.5, 0.4}, {0.3, 0.7}}

	m := match.New(2, 2)
	require.NoError(t, m.Assign(1, 1))
	require.NoError(t, m.Assign(2, 2))

	// 0.9 + 0.8 from the applicants, 0.5 + 0.7 from the hosts.
	require.InDelta(t, 2.9, adaptive.Welfare(m, applicantVals, hostVals), 1e-9)
}

func TestWelfare_UnmatchedAndMissingContributeNothing(t *testing.T) {
	applicantVals := [][]float64{{0.9}}
	hostVals := [][]float64{{0.5}}

	empty := match.New(1, 1)
	require.Zero(t, adaptive.Welfare(empty, applicantVals, hostVals))

	// Assignments beyond the matrices are silently worth zero.
	m := match.New(2, 2)
	require.NoError(t, m.Assign(2, 2))
	require.Zero(t, adaptive.Welfare(m, applicantVals, hostVals))
}

func TestDistortion_Ratios(t *testing.T) {
	applicantVals := [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	hostVals := [][]float64{{0.5, 0.4}, {0.3, 0.7}}

	best := match.New(2, 2)
	require.NoError(t, best.Assign(1, 1))
	require.NoError(t, best.Assign(2, 2)) // welfare 2.9

	worse := match.New(2, 2)
	require.NoError(t, worse.Assign(1, 2))
	require.NoError(t, worse.Assign(2, 1)) // welfare 0.1+0.2+0.4+0.3 = 1.0

	require.InDelta(t, 2.9, adaptive.Distortion(worse, best, applicantVals, hostVals), 1e-9)
	require.InDelta(t, 1.0, adaptive.Distortion(best, best, applicantVals, hostVals), 1e-9)
}

func TestDistortion_ZeroWelfareEdgeCases(t *testing.T) {
	applicantVals := [][]float64{{0.9}}
	hostVals := [][]float64{{0.5}}

	empty := match.New(1, 1)
	full := match.New(1, 1)
	require.NoError(t, full.Assign(1, 1))

	require.True(t, math.IsInf(adaptive.Distortion(empty, full, applicantVals, hostVals), 1))
	require.Equal(t, 1.0, adaptive.Distortion(empty, empty, applicantVals, hostVals))
}
