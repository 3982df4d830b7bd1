package galeshapley

import (
	"errors"

	"github.com/katalvlaran/lvmatch/prefs"
)

// ErrNilTable indicates that a nil *prefs.Table was passed to Run.
var ErrNilTable = errors.New("galeshapley: table is nil")

// Options configures the proposal engine.
//
// ProposingSide — which side issues proposals. The engine returns the
// matching optimal for that side and pessimal for the other.
type Options struct {
	ProposingSide prefs.Side
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// ProposeFrom sets the proposing side. The default is prefs.Applicants,
// which yields the applicant-optimal stable matching.
func ProposeFrom(side prefs.Side) Option {
	return func(o *Options) {
		o.ProposingSide = side
	}
}

// DefaultOptions returns the engine defaults: applicants propose.
func DefaultOptions() Options {
	return Options{ProposingSide: prefs.Applicants}
}
