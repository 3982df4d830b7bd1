package irving_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatch/irving"
	"github.com/katalvlaran/lvmatch/prefs"
)

// benchMarket builds an n×n one-to-one market with full, independently
// shuffled preference lists from a fixed seed.
func benchMarket(b *testing.B, n int, seed int64) *prefs.Table {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))

	shuffled := func() []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		rng.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })

		return out
	}

	applicants := make([][]int, n)
	hosts := make([][]int, n)
	caps := make([]int, n)
	for i := 0; i < n; i++ {
		applicants[i] = shuffled()
		hosts[i] = shuffled()
		caps[i] = 1
	}

	table, err := prefs.New(applicants, hosts, caps)
	if err != nil {
		b.Fatal(err)
	}

	return table
}

func BenchmarkBuildPoset50(b *testing.B) {
	table := benchMarket(b, 50, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := irving.BuildPoset(table); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEgalitarian50(b *testing.B) {
	table := benchMarket(b, 50, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := irving.Egalitarian(table); err != nil {
			b.Fatal(err)
		}
	}
}
