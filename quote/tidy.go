package quote

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/quosi/term"
)

// Quoted is a quoted closure: an expression paired with the environment
// it was captured in, evaluable later regardless of whether the original
// call frame still exists. It is immutable; the environment is borrowed,
// not owned.
type Quoted struct {
	Expr term.Expr
	Env  *term.Environment
}

func (q Quoted) String() string {
	if q.Env == nil {
		return fmt.Sprintf("<quoted %v>", q.Expr)
	}
	return fmt.Sprintf("<quoted %v @ %s>", q.Expr, q.Env)
}

// EvalTidy evaluates a quoted closure against its captured environment,
// optionally overlaid by a data mask. Symbol lookups resolve against the
// combined chain: bindings present in the mask shadow the closure's
// captured scope. A symbol no scope resolves is an UnboundSymbolError,
// as in ordinary evaluation.
func EvalTidy(q Quoted, mask *term.Environment) (term.Value, error) {
	env := q.Env
	if mask != nil {
		overlay := term.NewEnvironment(mask.Name, q.Env)
		mask.Each(func(name string, b *term.Binding) {
			overlay.Def(name, b.Value)
		})
		env = overlay
		tracer().Debugf("tidy eval of %s under mask %s", q, mask)
	}
	p := term.NewPromise(q.Expr, env)
	return p.Force()
}
