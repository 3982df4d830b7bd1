// Package prefs defines the core types and sentinel errors for preference
// tables. See doc.go for the package overview.
package prefs

import "errors"

// Sentinel errors returned by table construction and lookups.
//
// ErrInvalidPreference is the umbrella sentinel: every construction failure
// wraps it, so callers may either check the umbrella
// (errors.Is(err, ErrInvalidPreference)) or the precise cause.
var (
	// ErrInvalidPreference is the umbrella sentinel for malformed input.
	ErrInvalidPreference = errors.New("prefs: invalid preference input")

	// ErrEmptyTable indicates that one of the sides has no agents at all.
	ErrEmptyTable = errors.New("prefs: table must have at least one agent per side")

	// ErrDuplicateEntry indicates that a preference list mentions the same
	// opposite-side agent twice.
	ErrDuplicateEntry = errors.New("prefs: duplicate entry in preference list")

	// ErrUnknownAgent indicates that a preference list or lookup references
	// an id outside the valid 1-based range of the opposite side.
	ErrUnknownAgent = errors.New("prefs: unknown agent id")

	// ErrBadCapacity indicates a host capacity below one, or a capacity
	// slice whose length differs from the number of hosts.
	ErrBadCapacity = errors.New("prefs: host capacity must be ≥ 1")
)

// Side selects one side of the market in rank and preference lookups.
type Side int

const (
	// Applicants is the proposing side in the canonical orientation:
	// agents 1..n, no capacities (each applicant takes one seat).
	Applicants Side = iota

	// Hosts is the receiving side in the canonical orientation:
	// agents 1..m, each with an integer capacity ≥ 1.
	Hosts
)

// String returns a human-readable side name for error messages.
func (s Side) String() string {
	if s == Applicants {
		return "applicants"
	}

	return "hosts"
}

// Opposite returns the other side of the market.
func (s Side) Opposite() Side {
	if s == Applicants {
		return Hosts
	}

	return Applicants
}

// Component is one independent submarket: the applicant and host ids of a
// connected component of the mutual acceptability graph. Both slices are
// sorted ascending.
type Component struct {
	Applicants []int
	Hosts      []int
}
