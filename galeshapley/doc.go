// Package galeshapley implements the deferred-acceptance proposal engine
// for two-sided markets with host capacities.
//
// Run produces a stable matching from a validated prefs.Table alone: each
// unsatisfied proposer offers to the most-preferred opposite-side agent it
// has not tried yet; each receiver tentatively holds the best offers it has
// received up to its capacity (judged by its own ranking) and rejects the
// rest; rejected proposers advance down their lists. The engine terminates
// when no proposer has an untried acceptable receiver left.
//
// Guarantees:
//
//   - The result is stable: no mutual pair would both rather be together
//     than stay with their assignments (verified by match.BlockingPairs).
//   - The result is proposer-optimal and receiver-pessimal: every proposer
//     gets the best partner it has in any stable matching.
//   - Deterministic: proposers are served in ascending id order, so a fixed
//     table reproduces the identical matching on every run.
//   - Bounded: at most one proposal per (proposer, receiver) pair, O(n·m)
//     proposals total.
//
// A proposer that exhausts its list without being held stays permanently
// unmatched. That is a valid outcome of an infeasible market, not a
// failure: Run returns a nil error and match.Unmatched for the agent.
//
// Orientation:
//
//	The proposing side is an option. ProposeFrom(prefs.Applicants) — the
//	default — yields the applicant-optimal matching; ProposeFrom(prefs.Hosts)
//	yields the host-optimal one, with each host issuing offers until its
//	capacity is filled or its list is exhausted.
//
// Errors (sentinel):
//
//   - ErrNilTable if the provided table pointer is nil.
//
// Complexity:
//
//   - Time:  O(n·m log c) — every proposal is O(log c) through the
//     receiver's waiting-list heap (c = receiver capacity).
//   - Space: O(n + m) beyond the table.
package galeshapley
