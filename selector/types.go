package selector

import (
	"errors"
	"log"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// Sentinel errors returned by selector constructors and Select.
var (
	// ErrNilFitter indicates no fitting adapter was supplied.
	ErrNilFitter = errors.New("selector: fitter is nil")

	// ErrUnknownLabel indicates the target label is missing from the
	// sequence set or the concatenation map.
	ErrUnknownLabel = errors.New("selector: label not present in corpus")

	// ErrBadRange indicates MinStates < 1 or MaxStates < MinStates.
	ErrBadRange = errors.New("selector: state range must satisfy 1 <= min <= max")

	// ErrBadNConstant indicates NConstant < 1.
	ErrBadNConstant = errors.New("selector: NConstant must be positive")

	// ErrBadFolds indicates a cross-validation fold count below 2.
	ErrBadFolds = errors.New("selector: fold count must be at least 2")

	// ErrBadStrategy indicates an unrecognized Strategy value.
	ErrBadStrategy = errors.New("selector: unknown strategy")

	// ErrNoModel indicates even the fallback re-fit failed; the label has no
	// usable model and the caller must treat it as unmodeled.
	ErrNoModel = errors.New("selector: no candidate produced a usable model")
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultNConstant is the state count used by the Constant strategy.
	DefaultNConstant = 3

	// DefaultMinStates is the lower bound of the candidate sweep.
	DefaultMinStates = 2

	// DefaultMaxStates is the upper bound of the candidate sweep (inclusive).
	DefaultMaxStates = 10

	// DefaultSeed is handed to every adapter Fit call.
	DefaultSeed int64 = 14
)

// Strategy names one of the four selection criteria.
type Strategy int

const (
	// StrategyConstant always fits NConstant states.
	StrategyConstant Strategy = iota

	// StrategyBIC minimizes the Bayesian Information Criterion.
	StrategyBIC

	// StrategyDIC maximizes the Discriminative Information Criterion.
	StrategyDIC

	// StrategyCV maximizes the best cross-validation fold likelihood.
	StrategyCV
)

// Options configures a selector instance. All knobs are caller-supplied;
// there is no environment or file coupling.
type Options struct {
	// NConstant is the fixed state count for the Constant strategy.
	NConstant int

	// MinStates / MaxStates bound the candidate sweep, inclusive.
	MinStates int
	MaxStates int

	// Folds is the cross-validation fold count for the CV strategy.
	Folds int

	// Seed is forwarded verbatim to every adapter Fit call.
	Seed int64

	// Verbose enables progress logging of per-candidate outcomes.
	Verbose bool

	// Logger receives Verbose output; log.Default() when nil.
	Logger *log.Logger
}

// DefaultOptions returns the standard configuration: NConstant 3, candidate
// range [2,10], 3 folds, seed 14, quiet.
func DefaultOptions() Options {
	return Options{
		NConstant: DefaultNConstant,
		MinStates: DefaultMinStates,
		MaxStates: DefaultMaxStates,
		Folds:     corpus.DefaultFolds,
		Seed:      DefaultSeed,
	}
}

// Validate reports the first configuration sentinel violated, or nil.
func (o Options) Validate() error {
	if o.NConstant < 1 {
		return ErrBadNConstant
	}
	if o.MinStates < 1 || o.MaxStates < o.MinStates {
		return ErrBadRange
	}
	if o.Folds < 2 {
		return ErrBadFolds
	}

	return nil
}

// Result is the outcome of one selection run: the freshly fitted winner and
// the state count it was fit with.
type Result struct {
	Model  model.Model
	States int
}

// Selector is the common face of the four strategies: one call, one winner.
type Selector interface {
	// Select runs the strategy's sweep and returns a fresh fit at the
	// winning state count. Adapter failures never escape; ErrNoModel is the
	// only failure mode, reported when the final fallback fit fails too.
	Select() (Result, error)
}
