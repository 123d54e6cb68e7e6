package searcher

import (
	"errors"
	"fmt"
	"multiagent/game"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultDepth      = 2
	DefaultEvaluation = "score"
)

var ErrInvalidDepth = errors.New("search depth must be a positive integer")

type Option func(c *Config)

// Config is fixed for the lifetime of a searcher. Build one with NewConfig.
type Config struct {
	depth          int
	evaluationName string
	evaluate       game.Evaluate
	reflex         game.EvaluateAction
	rng            *rand.Rand
	seed           uint64
	metrics        bool
}

// WithDepth sets the number of full plies searched below the root.
func WithDepth(depth int) Option {
	return func(c *Config) {
		c.depth = depth
	}
}

// WithEvaluationFn selects the cutoff evaluation by its registered name.
func WithEvaluationFn(name string) Option {
	return func(c *Config) {
		c.evaluationName = name
	}
}

// WithReflexEvaluation replaces the action evaluator used by the reflex agent.
func WithReflexEvaluation(evaluate game.EvaluateAction) Option {
	return func(c *Config) {
		if evaluate != nil {
			c.reflex = evaluate
		}
	}
}

// WithSeed makes tie-breaking reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand injects the source used for tie-breaking.
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(c *Config) {
		c.metrics = true
	}
}

// NewConfig applies options over the defaults and fails if the result cannot
// be searched with.
func NewConfig(options ...Option) (*Config, error) {
	c := &Config{ // Default values
		depth:          DefaultDepth,
		evaluationName: DefaultEvaluation,
		reflex:         game.EvaluateReflex,
		seed:           uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(c)
	}

	if c.depth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, c.depth)
	}
	evaluate, err := game.LookupEvaluation(c.evaluationName)
	if err != nil {
		return nil, fmt.Errorf("failed to configure search: %w", err)
	}
	c.evaluate = evaluate
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.seed))
	}
	return c, nil
}

func (c *Config) Depth() int {
	return c.depth
}

func (c *Config) EvaluationName() string {
	return c.evaluationName
}

func (c *Config) newCollector() Collector {
	if c.metrics {
		return NewCollector()
	}
	return NewDummyCollector()
}

// ParseDepth converts a textual depth such as a command line value.
func ParseDepth(s string) (int, error) {
	depth, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDepth, s)
	}
	if depth <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	return depth, nil
}
