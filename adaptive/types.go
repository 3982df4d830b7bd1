package adaptive

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvmatch/irving"
	"github.com/katalvlaran/lvmatch/match"
	"github.com/katalvlaran/lvmatch/prefs"
)

// Sentinel errors returned by Run.
var (
	// ErrNilTable indicates that a nil *prefs.Table was passed to Run.
	ErrNilTable = errors.New("adaptive: table is nil")

	// ErrNilOracle indicates that a nil oracle was passed to Run.
	ErrNilOracle = errors.New("adaptive: oracle is nil")

	// ErrBadCap indicates a negative per-agent query cap.
	ErrBadCap = errors.New("adaptive: per-agent query cap must be non-negative")
)

// Query names one cardinal value a strategy wants elicited: agent's value
// for an opposite-side alternative.
type Query struct {
	Side        prefs.Side
	Agent       int
	Alternative int
}

// Lookup is the value source handed to a Strategy during scoring. It is
// backed by the run's memoized, budget-charging oracle: repeated lookups
// are free, fresh ones consume the agent's budget.
type Lookup interface {
	Value(side prefs.Side, agent, alternative int) (float64, error)
}

// Strategy scores candidate rotations from elicited cardinal values. The
// exact scoring rule — and with it the distortion bound of the final
// matching — is deliberately pluggable.
//
// Queries must name every value Gain may look up for the rotation, so the
// runner can verify affordability before any budget is spent. Gain must
// restrict itself to those queries and be deterministic in their answers.
type Strategy interface {
	Queries(rot irving.Rotation) []Query
	Gain(t *prefs.Table, m *match.Matching, rot irving.Rotation, values Lookup) (float64, error)
}

// Options configures Run.
//
// Strategy — rotation scoring rule; defaults to WelfareGain.
// Ctx      — optional cancellation context, checked between eliminations.
// Parallel — solve disconnected submarkets on separate goroutines.
type Options struct {
	Strategy Strategy
	Ctx      context.Context
	Parallel bool
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithStrategy replaces the default WelfareGain scoring rule. A nil
// strategy is ignored.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Strategy = s
		}
	}
}

// WithContext sets a cancellation context, checked between eliminations.
// An in-flight oracle call is never preempted. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelSubmarkets enables per-component parallel solving. The
// oracle must be safe for concurrent use in this mode.
func WithParallelSubmarkets() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// DefaultOptions returns the Run defaults: WelfareGain strategy,
// background context, sequential execution.
func DefaultOptions() Options {
	return Options{
		Strategy: WelfareGain{},
		Ctx:      context.Background(),
		Parallel: false,
	}
}

// WelfareGain is the default Strategy: the gain of a rotation is the sum
// of cardinal deltas it causes — each moved applicant's value for its new
// host minus its current one, plus each affected host's value for its
// incoming applicant minus its outgoing one. A rotation is worth applying
// exactly when this sum is strictly positive.
type WelfareGain struct{}

// Queries names the four values per rotation pair that Gain consults.
func (WelfareGain) Queries(rot irving.Rotation) []Query {
	k := rot.Len()
	out := make([]Query, 0, 4*k)
	for i, p := range rot.Pairs {
		nx := rot.Pairs[(i+1)%k]
		out = append(out,
			Query{Side: prefs.Applicants, Agent: p.Applicant, Alternative: p.Host},
			Query{Side: prefs.Applicants, Agent: p.Applicant, Alternative: nx.Host},
			Query{Side: prefs.Hosts, Agent: nx.Host, Alternative: p.Applicant},
			Query{Side: prefs.Hosts, Agent: nx.Host, Alternative: nx.Applicant},
		)
	}

	return out
}

// Gain sums the elicited welfare deltas across the rotation cycle.
func (WelfareGain) Gain(_ *prefs.Table, _ *match.Matching, rot irving.Rotation, values Lookup) (float64, error) {
	k := rot.Len()
	total := 0.0
	for i, p := range rot.Pairs {
		nx := rot.Pairs[(i+1)%k]

		oldA, err := values.Value(prefs.Applicants, p.Applicant, p.Host)
		if err != nil {
			return 0, err
		}
		newA, err := values.Value(prefs.Applicants, p.Applicant, nx.Host)
		if err != nil {
			return 0, err
		}
		newH, err := values.Value(prefs.Hosts, nx.Host, p.Applicant)
		if err != nil {
			return 0, err
		}
		oldH, err := values.Value(prefs.Hosts, nx.Host, nx.Applicant)
		if err != nil {
			return 0, err
		}
		total += (newA - oldA) + (newH - oldH)
	}

	return total, nil
}
