package elicit

import (
	"errors"

	"github.com/katalvlaran/lvmatch/prefs"
)

// Sentinel errors returned by oracles and budgets.
var (
	// ErrBudgetExceeded indicates a query attempted after the agent's
	// budget counter reached zero. Fatal for the current run.
	ErrBudgetExceeded = errors.New("elicit: query budget exceeded")

	// ErrNoValuation indicates that a profile-backed oracle has no value
	// for the requested (agent, alternative) pair.
	ErrNoValuation = errors.New("elicit: no valuation for pair")

	// ErrBadBudget indicates a negative per-agent cap.
	ErrBadBudget = errors.New("elicit: per-agent budget must be non-negative")

	// ErrNilOracle indicates that a nil inner oracle was wrapped.
	ErrNilOracle = errors.New("elicit: oracle is nil")
)

// Oracle supplies cardinal values for (agent, alternative) pairs on
// demand. side identifies the querying agent's side; alternative is an
// opposite-side id. Implementations may block (interactive sources); they
// must never be retried on failure.
type Oracle interface {
	Value(side prefs.Side, agent, alternative int) (float64, error)
}

// Func adapts a plain function — typically an interactive, possibly
// blocking source — into an Oracle.
type Func func(side prefs.Side, agent, alternative int) (float64, error)

// Value implements Oracle by calling the function itself.
func (f Func) Value(side prefs.Side, agent, alternative int) (float64, error) {
	return f(side, agent, alternative)
}
