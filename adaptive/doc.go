// Package adaptive implements the budget-capped adaptive matching
// algorithm: it refines the applicant-optimal stable matching toward the
// host-optimal side of the lattice, spending at most k oracle queries per
// agent to decide which rotations are worth applying.
//
// Pipeline:
//
//  1. The proposal engine (galeshapley) produces the applicant-optimal
//     root.
//  2. The rotation engine (irving) builds the rotation poset once.
//  3. The walk repeatedly scans the ready rotations — those whose poset
//     predecessors are all eliminated — in ascending id order, scores each
//     affordable candidate with the configured Strategy through a
//     memoized, budget-charging oracle, and applies the first candidate
//     with strictly positive gain via irving.Eliminate. It halts when no
//     ready rotation is both affordable and improving.
//
// Every intermediate state is produced strictly by rotation elimination,
// so the current matching is stable at all times; whatever stops the walk
// — poset exhausted, budget exhausted, context canceled, oracle failure —
// the caller receives the last confirmed-stable matching. Budget
// exhaustion is a clean halt, not an error: Run pre-checks affordability
// (cache hits are free) and never issues a query it cannot pay for, so
// elicit.ErrBudgetExceeded only surfaces for callers that bypass Run and
// query a Budgeted oracle directly.
//
// Determinism: identical oracle answers yield an identical elimination
// sequence and an identical output matching across runs.
//
// Strategy:
//
//	The rotation-scoring rule is pluggable. A Strategy declares which
//	(agent, alternative) values it needs for a rotation — so the runner can
//	pre-check affordability — and turns the elicited values into a gain.
//	The default, WelfareGain, sums the cardinal deltas of the applicants
//	moved and the hosts affected by the rotation; the distortion bound of
//	the returned matching is a function of the cap k and the market size,
//	determined by the strategy in use.
//
// Submarkets:
//
//	WithParallelSubmarkets splits the table into the connected components
//	of its acceptability graph and solves each with an isolated engine
//	instance — own poset, own budget, own memo cache — on its own
//	goroutine, merging the disjoint results afterward. The oracle is the
//	only shared object and must be safe for concurrent use in this mode
//	(the profile-backed oracle is read-only and safe).
//
// Errors (sentinel):
//
//   - ErrNilTable, ErrNilOracle — nil inputs.
//   - ErrBadCap — negative per-agent query cap.
//   - Oracle failures and rotation-engine invariant breaches propagate
//     unwrapped, accompanied by the last confirmed-stable matching.
package adaptive
