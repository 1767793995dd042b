package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/quosi"
)

// PromiseState is the forcing state of a promise. Transitions are
// Unforced → Forcing → Forced, or Unforced → Forcing → Failed; both
// terminal states are permanent.
type PromiseState int8

// Promise states.
const (
	Unforced PromiseState = iota
	Forcing
	Forced
	Failed
)

func (st PromiseState) String() string {
	switch st {
	case Forcing:
		return "Forcing"
	case Forced:
		return "Forced"
	case Failed:
		return "Failed"
	}
	return "Unforced"
}

// Promise is a lazily forced (expression, environment) pair with a
// memoized result. A captured argument is evaluated at most once: the
// first call to Force evaluates the expression against the captured
// environment and caches value or error; every later call returns the
// cached outcome without re-evaluating.
//
// The per-promise mutex serializes state transitions, so already-forced
// promises are safe for concurrent read access. The design assumes a
// single evaluator thread per call frame; it does not arbitrate two
// threads racing for the first force beyond "one force wins".
type Promise struct {
	mu    sync.Mutex
	state PromiseState
	expr  Expr
	env   *Environment
	value Value
	err   error
}

// NewPromise creates an unforced promise over an expression and the
// environment it was written in.
func NewPromise(expr Expr, env *Environment) *Promise {
	return &Promise{
		expr: expr,
		env:  env,
	}
}

// Expr returns the promise's unevaluated expression. Reading it never
// forces the promise, so an expression that would error if evaluated
// can still be captured safely.
func (p *Promise) Expr() Expr {
	return p.expr
}

// Env returns the environment the promise's expression is bound to.
func (p *Promise) Env() *Environment {
	return p.env
}

// State returns the current forcing state.
func (p *Promise) State() PromiseState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Force evaluates the promise's expression on first access and caches
// the result. Re-entrant forcing — the expression's own evaluation
// reaching the same promise again — is a RecursivePromiseError, fatal
// and not retried. A failed evaluation puts the promise into a permanent
// error state; re-forcing re-raises the same error.
func (p *Promise) Force() (Value, error) {
	p.mu.Lock()
	switch p.state {
	case Forced:
		v := p.value
		p.mu.Unlock()
		return v, nil
	case Failed:
		err := p.err
		p.mu.Unlock()
		return nil, err
	case Forcing:
		p.mu.Unlock()
		return nil, &quosi.RecursivePromiseError{Expr: p.expr}
	}
	p.state = Forcing
	p.mu.Unlock()
	tracer().Debugf("forcing promise for %s", p.expr)
	v, err := Eval(p.expr, p.env)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = Failed
		p.err = err
		return nil, err
	}
	p.state = Forced
	p.value = v
	return v, nil
}
