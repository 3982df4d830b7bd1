// Package irving implements the rotation engine for one-to-one stable
// matching markets: rotation discovery, stability-preserving elimination,
// the rotation poset, and the egalitarian-optimal stable matching search
// of Irving, Leather and Gusfield.
//
// Rotations:
//
//	A rotation exposed in a stable matching M is a cyclic sequence of pairs
//	(h₀,r₀),…,(h_{k-1},r_{k-1}) where each applicant rᵢ is matched to hᵢ and
//	rᵢ's first acceptable host after hᵢ that strictly prefers rᵢ to its own
//	partner is hᵢ₊₁ (indices mod k). Eliminating the rotation moves every rᵢ
//	from hᵢ to hᵢ₊₁, which always yields another stable matching: applicants
//	step down their lists, hosts trade up, and no blocking pair can open.
//	Eliminate never mutates its input — it clones first, so a caller always
//	holds a confirmed-stable matching even when a later step fails.
//
// The rotation poset:
//
//	Every rotation of a market appears exactly once in any maximal chain of
//	eliminations from the applicant-optimal matching to the host-optimal
//	one. BuildPoset enumerates them all by walking one such chain and wires
//	the elimination-order dependencies (a rotation cannot be exposed before
//	its predecessors are eliminated). The poset is an arena of rotation
//	nodes with dense integer ids — discovery order, which is itself a valid
//	topological order — so traversals are deterministic and replayable.
//	Poset.Apply replays an elimination sequence from the root and fails
//	with ErrRotationOrderViolation if the sequence breaks the partial
//	order; a correct caller never sees that error.
//
// Egalitarian optimum:
//
//	Among all stable matchings, the egalitarian-optimal one minimizes the
//	summed ranks (regret) across both sides. Stable matchings correspond
//	one-to-one with closed subsets of the rotation poset, so the optimum is
//	a maximum-weight closed subset with each rotation weighted by the
//	negated net rank change it causes. Egalitarian solves this with the
//	classical project-selection reduction to s-t minimum cut, computed by a
//	Dinic-style level-graph/blocking-flow solver on a dense integer network
//	(see mincut.go). The source-side of the minimum cut is the unique
//	minimal optimal closed subset, which among cost ties is the one with
//	the lowest applicant-side aggregate rank.
//
// Errors (sentinel):
//
//   - ErrNilTable, ErrNilMatching — nil inputs.
//   - ErrNotOneToOne            — a host capacity differs from one; the
//     rotation machinery is defined for one-to-one markets only.
//   - ErrUnstableMatching       — the supplied matching has a blocking pair.
//   - ErrRotationNotExposed     — Eliminate called with a rotation that is
//     not exposed in the supplied matching.
//   - ErrRotationOrderViolation — an elimination sequence contradicts the
//     poset; internal invariant breach, fatal for the run.
//
// Complexity:
//
//   - ExposedRotations / Eliminate: O(n·m) per call.
//   - BuildPoset: O(n·m) per eliminated rotation, O(n²·m) overall worst case.
//   - Egalitarian: poset construction plus one min-cut on a network of
//     |rotations|+2 nodes.
package irving
