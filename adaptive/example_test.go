package adaptive_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/adaptive"
	"github.com/katalvlaran/lvmatch/elicit"
	"github.com/katalvlaran/lvmatch/prefs"
)

// ExampleRun starts from the applicant-optimal matching and spends at most
// two queries per agent to find a cardinally better stable matching.
func ExampleRun() {
	table, _ := prefs.New(
		[][]int{{1, 2, 3}, {2, 1, 3}, {1, 2, 3}},
		[][]int{{2, 1, 3}, {1, 2, 3}, {1, 2, 3}},
		[]int{1, 1, 1},
	)

	// Cardinal values: applicants 1 and 2 (and hosts 1 and 2) strongly
	// prefer the partners they do not start with.
	oracle := elicit.NewProfile(
		[][]float64{{0.1, 0.9, 0}, {0.9, 0.1, 0}, {0, 0, 0.5}},
		[][]float64{{0.1, 0.9, 0}, {0.9, 0.1, 0}, {0, 0, 0.5}},
	)

	m, _ := adaptive.Run(table, oracle, 2)
	for _, p := range m.Pairs() {
		fmt.Printf("applicant %d → host %d\n", p[0], p[1])
	}
	// Output:
	// applicant 1 → host 2
	// applicant 2 → host 1
	// applicant 3 → host 3
}
