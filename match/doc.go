// Package match defines the Matching data model shared by every engine in
// lvmatch, together with stability verification and rank aggregation.
//
// A Matching maps each applicant to at most one host and tracks, per host,
// the set of applicants it currently holds. The type maintains mutual
// consistency by construction: an applicant points at a host if and only if
// that host's held set contains the applicant. Capacity limits are enforced
// by the engines (they own the *prefs.Table); the model itself only keeps
// the two views in lock step.
//
// Mutation discipline:
//
//	A Matching is created once by the proposal engine (galeshapley) and
//	thereafter changed exclusively through rotation elimination
//	(irving.Eliminate), which clones before reassigning. Assign and Free are
//	exported for those engines; application code should treat a returned
//	Matching as read-only and use Clone before any experiment.
//
// Verification:
//
//	BlockingPairs scans a table for pairs that would both rather be together
//	than stay with their current assignments — the classical stability
//	criterion. IsStable is the empty-scan predicate. AggregateRank sums the
//	1-based ranks realized by one side, the regret measure used for rotation
//	costs and the egalitarian objective.
//
// Unmatched applicants are represented by the Unmatched constant (0); being
// unmatched is a valid terminal outcome, not an error.
package match
