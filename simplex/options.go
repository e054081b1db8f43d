// SPDX-License-Identifier: MIT

// Package simplex: functional configuration of the solver.
//
// Every WithX constructor validates its argument eagerly and panics on a
// nonsensical value (programmer error). Runtime input problems are reported
// through errors by New and Solve instead.
package simplex

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
)

// PivotRule selects how the entering column and leaving row are chosen.
type PivotRule int

const (
	// Dantzig enters the most negative reduced cost (first occurrence on
	// ties) and leaves the smallest non-negative ratio over positive
	// coefficients (first occurrence). It may cycle on degenerate tableaus;
	// the iteration cap bounds such runs.
	Dantzig PivotRule = iota

	// Bland enters the first negative reduced cost and breaks ratio ties by
	// the smallest basic variable index. In exact arithmetic this rule
	// terminates on degenerate tableaus; rounding can still break ties
	// differently, so the iteration cap stays in force.
	Bland
)

// String returns the lower-case rule name.
func (r PivotRule) String() string {
	switch r {
	case Dantzig:
		return "dantzig"
	case Bland:
		return "bland"
	default:
		return fmt.Sprintf("PivotRule(%d)", int(r))
	}
}

// ParsePivotRule maps a case-insensitive rule name to a PivotRule.
func ParsePivotRule(name string) (PivotRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dantzig":
		return Dantzig, nil
	case "bland":
		return Bland, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPivotRule)
	}
}

// ---------- Defaults ----------

const (
	// DefaultEpsilon is the magnitude under which a reduced cost counts as
	// non-negative and a column coefficient as zero.
	DefaultEpsilon = 1e-9

	// DefaultMaxIterations caps the number of pivots per Solve.
	DefaultMaxIterations = 10000

	// DefaultPivotRule is Dantzig's rule.
	DefaultPivotRule = Dantzig
)

const (
	panicEpsilonInvalid   = "simplex: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid   = "simplex: WithMaxIterations: n must be > 0"
	panicPivotRuleInvalid = "simplex: WithPivotRule: unknown rule"
	panicTimeLimitInvalid = "simplex: WithTimeLimit: d must be >= 0"
)

// Option mutates solver options. Last writer wins.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	eps       float64       // zero tolerance
	maxIter   int           // pivot budget (> 0)
	rule      PivotRule     // entering/leaving rule
	logger    *slog.Logger  // never nil after gatherOptions
	timeLimit time.Duration // 0 disables the wall-clock budget
}

// WithEpsilon sets the zero tolerance for pivot selection and elimination.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the pivot budget; Solve fails with
// ErrIterationLimit once n pivots ran without reaching optimality.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithPivotRule selects Dantzig or Bland.
func WithPivotRule(r PivotRule) Option {
	if r != Dantzig && r != Bland {
		panic(panicPivotRuleInvalid)
	}

	return func(o *Options) { o.rule = r }
}

// WithLogger injects a logger for per-pivot debug records. nil restores the
// silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithTimeLimit bounds the wall-clock time of Solve. Zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *Options) { o.timeLimit = d }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
		rule:    DefaultPivotRule,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
