package recommend

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultLimit caps matched job and course lists.
	DefaultLimit = 5
	// FallbackLimit caps fallback lists.
	FallbackLimit = 3
	// Threshold is the minimal job score to be recommended.
	Threshold = 5
)

// Mode selects how the soft skill, interest and free answer signals are evaluated.
type Mode string

const (
	// ModeReference fires those signals whenever their second text operand
	// (role, description, qualifications) is non-empty, which keeps scores
	// compatible with the legacy questionnaire.
	ModeReference Mode = "reference"
	// ModeStrict requires a substring match against either text operand.
	ModeStrict Mode = "strict"
)

var ErrUnknownMode = errors.New("unknown match mode")

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeReference:
		return ModeReference, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Engine scores jobs and selects job and course recommendations.
// It never mutates the datasets or the profile passed to it.
type Engine struct {
	mode   Mode
	logger *zap.Logger
}

type Option func(*Engine)

func WithMode(mode Mode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		mode:   ModeReference,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// Step describes how many entries a selection step kept.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

func newStep(initial, left int) Step {
	return Step{Initial: initial, Dropped: initial - left, Left: left}
}

func (e *Engine) logStep(dataset, name string, step Step) {
	e.logger.Debug("recommendation step",
		zap.String("dataset", dataset),
		zap.String("name", name),
		zap.Int("initial", step.Initial),
		zap.Int("dropped", step.Dropped),
		zap.Int("left", step.Left),
	)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
