// Package prefs provides validated, rank-indexed preference tables for
// two-sided matching markets.
//
// A Table holds the ordered preference lists of both sides of a market —
// applicants on one side, hosts on the other — together with the integer
// capacity of every host. It is the single input every matching engine in
// lvmatch consumes: the proposal engine (galeshapley), the rotation engine
// (irving) and the budgeted adaptive algorithm (adaptive) all operate on a
// *Table and never on raw slices.
//
// Conventions:
//
//   - Agent ids are 1-based and contiguous per side: applicants 1..n,
//     hosts 1..m.
//   - A preference list is a strictly ordered sequence of opposite-side ids.
//     Lists may be truncated: an agent that does not appear in the list is
//     unacceptable to its owner.
//   - Ranks are 1-based positions within a list; rank 1 is most preferred.
//   - Tables are immutable after construction. All accessors return copies
//     or value types, so a Table may be shared freely between engines.
//
// Validation:
//
//	New validates both sides before returning a Table and fails fast on the
//	first malformed list. Every construction error matches
//	ErrInvalidPreference via errors.Is, with a more specific sentinel
//	(ErrDuplicateEntry, ErrUnknownAgent, ErrBadCapacity, ErrEmptyTable)
//	wrapped inside. No algorithm ever runs on an unvalidated table.
//
// Submarkets:
//
//	Components splits the market into connected components of the mutual
//	acceptability graph. Two agents share a component when a chain of
//	mutually acceptable (applicant, host) pairs connects them. Components
//	are independent submarkets: no pair crossing a component boundary can
//	ever match or block, so each component may be solved by an isolated
//	engine instance and the results merged. Subtable materializes one
//	component as a standalone Table over the same id space.
//
// Complexity:
//
//   - New: O(n·m) time and space for the rank indexes.
//   - Rank: O(1). PreferenceOrder: O(len(list)) for the defensive copy.
//   - Components / Subtable: O(n·m) flood fill over acceptability edges.
package prefs
