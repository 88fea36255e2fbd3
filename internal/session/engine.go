package session

import (
	"log"
	"sync"

	"github.com/abhisek/studyquiz/internal/bank"
)

// DefaultQuestionCount is the standard session length.
const DefaultQuestionCount = 50

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithQuestionCount sets how many questions each session draws.
func WithQuestionCount(n int) EngineOption {
	return func(e *Engine) {
		e.count = n
	}
}

// WithSeed makes every session the engine builds reproducible. Successive
// sessions still differ from one another, but the whole sequence repeats
// for the same seed.
func WithSeed(seed uint64) EngineOption {
	return func(e *Engine) {
		e.rng = NewRand(seed)
		e.seeded = true
	}
}

// WithRand injects the randomness source directly.
func WithRand(r Rand) EngineOption {
	return func(e *Engine) {
		e.rng = r
		e.seeded = true
	}
}

// Engine is what a presentation layer talks to: it owns the bank and the
// random source and hands out one active session at a time.
type Engine struct {
	mu      sync.Mutex
	bank    *bank.Bank
	count   int
	rng     Rand
	seeded  bool
	current *Session
}

// NewEngine creates an engine over b.
func NewEngine(b *bank.Bank, opts ...EngineOption) *Engine {
	e := &Engine{
		bank:  b,
		count: DefaultQuestionCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newUnseededRand()
	}
	return e
}

// Bank returns the engine's question bank.
func (e *Engine) Bank() *bank.Bank {
	return e.bank
}

// QuestionCount returns the configured session length.
func (e *Engine) QuestionCount() int {
	return e.count
}

// Current returns the active session, or nil before the first Start.
func (e *Engine) Current() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Start builds a new session and makes it the active one.
func (e *Engine) Start() (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startLocked(e.count, e.rng, e.seeded, "started")
}

// Restart discards the active session and starts a fresh one.
func (e *Engine) Restart() (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil && !e.current.IsComplete() {
		log.Printf("session %s abandoned at %d/%d", e.current.ID(),
			e.current.Progress().Index, e.current.Progress().Total)
	}
	return e.startLocked(e.count, e.rng, e.seeded, "restarted")
}

// StartSeeded builds an n-question session from its own source seeded with
// seed, leaving the engine's source untouched.
func (e *Engine) StartSeeded(n int, seed uint64) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startLocked(n, NewRand(seed), true, "started")
}

func (e *Engine) startLocked(n int, rng Rand, seeded bool, verb string) (*Session, error) {
	s, err := Build(e.bank, n, rng)
	if err != nil {
		return nil, err
	}
	e.current = s

	log.Printf("session %s %s: %d questions from a bank of %d (replacement=%t, seeded=%t)",
		s.ID(), verb, n, e.bank.Size(), WithReplacement(e.bank.Size(), n), seeded)
	return s, nil
}
