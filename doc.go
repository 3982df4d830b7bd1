// Package lvmatch is your toolkit for two-sided matching under ranked
// preferences — from deferred acceptance to rotation lattices and
// budget-capped cardinal elicitation.
//
// 🚀 What is lvmatch?
//
//	A focused, dependency-light library that brings together:
//		• Preference tables: validated, rank-indexed lists with capacities
//		• Proposal engine: Gale–Shapley deferred acceptance, either side proposing
//		• Rotation engine: exposed-rotation discovery, stability-preserving
//		  elimination, the full rotation poset
//		• Egalitarian optimum: minimum total-regret stable matching via
//		  closed-subset min-cut
//		• Elicitation: oracle interface, per-agent query budgets, memoized
//		  and budget-charging wrappers
//		• Adaptive algorithm: query-budgeted walk through the stable
//		  matching lattice with a pluggable gain strategy
//
// ✨ Why choose lvmatch?
//
//   - Deterministic – fixed inputs and oracle answers replay identical runs
//   - Stability guaranteed – every intermediate matching is provably stable
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – oracle backends and gain strategies are plain interfaces
//
// Everything is organized under six subpackages:
//
//	prefs/       — preference tables, validation, submarket components
//	match/       — the Matching model, stability checks, rank aggregates
//	galeshapley/ — the deferred-acceptance proposal engine
//	irving/      — rotations, the rotation poset, egalitarian search
//	elicit/      — cardinal-value oracles and query budgets
//	adaptive/    — the budget-capped adaptive matching algorithm
//
// Quick sketch:
//
//	table, _ := prefs.New(applicantLists, hostLists, capacities)
//	root, _  := galeshapley.Run(table)                  // applicant-optimal
//	egal, _  := irving.Egalitarian(table)               // minimum total regret
//	best, _  := adaptive.Run(table, oracle, 3)          // ≤ 3 queries per agent
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
