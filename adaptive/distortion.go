package adaptive

import (
	"math"

	"github.com/katalvlaran/lvmatch/match"
)

// Welfare sums the cardinal values realized by a matching across both
// sides: each matched applicant's value for its host plus each host's
// value for every applicant it holds. applicantVals[a-1][h-1] and
// hostVals[h-1][a-1] follow the elicit.Profile layout; missing entries
// contribute zero.
func Welfare(m *match.Matching, applicantVals, hostVals [][]float64) float64 {
	total := 0.0
	for _, p := range m.Pairs() {
		a, h := p[0], p[1]
		if a <= len(applicantVals) && h <= len(applicantVals[a-1]) {
			total += applicantVals[a-1][h-1]
		}
		if h <= len(hostVals) && a <= len(hostVals[h-1]) {
			total += hostVals[h-1][a-1]
		}
	}

	return total
}

// Distortion returns the welfare ratio of a reference matching (typically
// the full-information optimum) over an achieved matching: the classical
// diagnostic for how much welfare limited elicitation left on the table.
// A ratio of 1 means the achieved matching is cardinally optimal; the
// result is +Inf when the achieved welfare is zero while the reference's
// is not, and 1 when both are zero.
func Distortion(achieved, reference *match.Matching, applicantVals, hostVals [][]float64) float64 {
	got := Welfare(achieved, applicantVals, hostVals)
	best := Welfare(reference, applicantVals, hostVals)
	if got == 0 {
		if best == 0 {
			return 1
		}

		return math.Inf(1)
	}

	return best / got
}
