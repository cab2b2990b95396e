package ga

import (
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/prdga/construct"
	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/rng"
)

// Observer receives every GenerationStats as it is produced.
type Observer interface {
	Observe(runID string, s GenerationStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(runID string, s GenerationStats)

func (f ObserverFunc) Observe(runID string, s GenerationStats) { f(runID, s) }

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver appends an observer; observers run in registration order.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithRand overrides the random source derived from Config.Seed.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithRunID fixes the run identifier instead of a fresh UUID.
func WithRunID(id string) Option {
	return func(e *Engine) { e.runID = id }
}

// WithSelector, WithCrossover, WithMutator, WithReplacer and WithRepairer
// replace the operators resolved from Config.
func WithSelector(s Selector) Option   { return func(e *Engine) { e.ops.selector = s } }
func WithCrossover(c Crossover) Option { return func(e *Engine) { e.ops.crossover = c } }
func WithMutator(m Mutator) Option     { return func(e *Engine) { e.ops.mutator = m } }
func WithReplacer(r Replacer) Option   { return func(e *Engine) { e.ops.replacer = r } }
func WithRepairer(r Repairer) Option   { return func(e *Engine) { e.ops.repairer = r } }

// Engine runs the GA for one graph and one Config.
type Engine struct {
	g     *core.Graph
	cfg   Config
	ops   strategies
	score scorer
	rng   *rand.Rand

	log       *zap.Logger
	observers []Observer
	runID     string

	state   State
	gen     int
	pop     Population
	best    *Individual
	history []GenerationStats
	initial GenerationStats
	started time.Time
	err     error
}

// NewEngine validates cfg against g and resolves the operators.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrInvalidConfiguration, ErrInsufficientPopulation from ValidateFor.
func NewEngine(g *core.Graph, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.ValidateFor(g); err != nil {
		return nil, err
	}
	ops, err := strategiesFor(cfg)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		g:     g,
		cfg:   cfg,
		ops:   ops,
		score: scorer{g: g, penalty: cfg.PenaltyFactor},
		log:   zap.NewNop(),
		state: Uninitialized,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rng.FromSeed(cfg.Seed)
	}
	if e.runID == "" {
		e.runID = uuid.NewString()
	}
	e.log = e.log.With(zap.String("run_id", e.runID))
	return e, nil
}

// State returns the lifecycle phase.
func (e *Engine) State() State { return e.state }

// RunID returns the run identifier.
func (e *Engine) RunID() string { return e.runID }

// Population returns the current population. Do not modify it.
func (e *Engine) Population() Population { return e.pop }

// Best returns the best individual observed so far, including discarded
// children, or nil before Init.
func (e *Engine) Best() *Individual { return e.best }

// Err returns the error that stopped the Generations stream, if any.
func (e *Engine) Err() error { return e.err }

// Init builds the initial population: Randomized(P-1), then one DegreeBased
// labeling, then uniform random labelings up to P. Calling Init again is a
// no-op.
func (e *Engine) Init() error {
	if e.state != Uninitialized {
		return nil
	}
	e.started = time.Now()
	size := e.cfg.PopulationSize

	labelings := make([]labeling.Labeling, 0, size)
	if size > 1 && e.g.Order() > 0 {
		rs, err := construct.Randomized(e.g, e.rng, size-1)
		if err != nil {
			return fmt.Errorf("ga: init: %w", err)
		}
		labelings = append(labelings, rs...)
	}
	tb, err := construct.ParseTieBreak(e.cfg.TieBreak)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	greedy, err := construct.DegreeBased(e.g, construct.WithTieBreak(tb))
	if err != nil {
		return fmt.Errorf("ga: init: %w", err)
	}
	labelings = append(labelings, greedy)
	for len(labelings) < size {
		labelings = append(labelings, construct.RandomLabeling(e.g.Order(), e.rng))
	}
	labelings = labelings[:size]

	e.pop = make(Population, len(labelings))
	for i, l := range labelings {
		e.pop[i] = e.score.score(l)
		e.consider(e.pop[i])
	}
	e.initial = Summarize(0, e.pop)
	e.state = Initialized

	e.log.Debug("population initialized",
		zap.Int("vertices", e.g.Order()),
		zap.Int("population", len(e.pop)),
		zap.Int("best_fitness", e.initial.BestFitness),
		zap.Float64("validity_rate", e.initial.ValidityRate),
	)
	return nil
}

// Step runs one generation and returns its statistics.
//
// Errors:
//   - ErrNotInitialized before Init.
//   - ErrTerminated once Config.Generations generations have run.
func (e *Engine) Step() (GenerationStats, error) {
	switch e.state {
	case Uninitialized:
		return GenerationStats{}, ErrNotInitialized
	case Terminated:
		return GenerationStats{}, ErrTerminated
	}
	if e.gen >= e.cfg.Generations {
		e.state = Terminated
		return GenerationStats{}, ErrTerminated
	}
	e.state = Evolving

	size := e.cfg.PopulationSize
	pairs, err := e.ops.selector.Select(e.pop, size/2, e.rng)
	if err != nil {
		return GenerationStats{}, err
	}

	children := make(Population, 0, 2*len(pairs))
	for _, p := range pairs {
		c1, c2 := e.ops.crossover.Cross(p.A.Labeling(), p.B.Labeling(), e.rng)
		for _, c := range [2]labeling.Labeling{c1, c2} {
			c = e.ops.mutator.Mutate(c, e.rng)
			if e.ops.repairer != nil {
				if c, err = e.ops.repairer.Repair(e.g, c); err != nil {
					return GenerationStats{}, fmt.Errorf("ga: repair: %w", err)
				}
			}
			child := e.score.score(c)
			e.consider(child)
			children = append(children, child)
		}
	}

	e.pop = e.ops.replacer.Replace(e.pop, children, size)
	e.gen++
	s := Summarize(e.gen, e.pop)
	e.history = append(e.history, s)
	if e.gen >= e.cfg.Generations {
		e.state = Terminated
	}

	e.log.Debug("generation",
		zap.Int("generation", s.Generation),
		zap.Int("best_fitness", s.BestFitness),
		zap.Float64("mean_fitness", s.MeanFitness),
		zap.Float64("validity_rate", s.ValidityRate),
	)
	for _, o := range e.observers {
		o.Observe(e.runID, s)
	}
	return s, nil
}

// Generations returns a lazy stream of per-generation statistics, running
// Init first if needed. The stream ends after Config.Generations items, when
// the consumer stops, or on error; check Err afterwards.
func (e *Engine) Generations() iter.Seq[GenerationStats] {
	return func(yield func(GenerationStats) bool) {
		if err := e.Init(); err != nil {
			e.err = err
			return
		}
		for e.gen < e.cfg.Generations {
			s, err := e.Step()
			if err != nil {
				e.err = err
				return
			}
			if !yield(s) {
				return
			}
		}
		e.state = Terminated
	}
}

// Result is the outcome of a complete run.
type Result struct {
	RunID   string            `json:"run_id"`
	Best    *Individual       `json:"best"`
	Initial GenerationStats   `json:"initial"`
	Stats   []GenerationStats `json:"generations"`
	Final   Population        `json:"-"`
	Elapsed time.Duration     `json:"elapsed"`
}

// Result returns what has been produced so far.
func (e *Engine) Result() *Result {
	return &Result{
		RunID:   e.runID,
		Best:    e.best,
		Initial: e.initial,
		Stats:   e.history,
		Final:   e.pop,
		Elapsed: time.Since(e.started),
	}
}

// Run drains the Generations stream and returns the Result.
func (e *Engine) Run() (*Result, error) {
	for range e.Generations() {
	}
	if e.err != nil {
		return nil, e.err
	}
	res := e.Result()
	e.log.Info("run finished",
		zap.Int("generations", len(res.Stats)),
		zap.Int("best_fitness", res.Best.Fitness()),
		zap.Bool("best_valid", res.Best.Valid()),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// Run builds an Engine for g and cfg and runs it to completion.
//
// Example:
//
//	res, err := ga.Run(g, ga.DefaultConfig())
//	if err != nil { ... }
//	fmt.Println(res.Best.Labeling(), res.Best.Fitness())
func Run(g *core.Graph, cfg Config, opts ...Option) (*Result, error) {
	e, err := NewEngine(g, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// consider updates the best observed individual; ties keep the earlier one.
func (e *Engine) consider(ind *Individual) {
	if e.best == nil || better(ind, e.best) {
		e.best = ind
	}
}
