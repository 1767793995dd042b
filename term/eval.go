package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/quosi"
)

// Operator is a value callable from a call expression.
type Operator interface {
	String() string
	Call(args []ArgValue, env *Environment) (Value, error)
}

// ArgValue is one evaluated call argument, carrying the argument's name
// for operators which accept named parameters. An empty name means the
// argument was positional.
type ArgValue struct {
	Name  string
	Value Value
}

// BuiltinFunc is the function type behind operator bindings created with
// Environment.Defn.
type BuiltinFunc func(args []ArgValue, env *Environment) (Value, error)

type builtin struct {
	name string
	call BuiltinFunc
}

func (op *builtin) String() string {
	return op.name
}

func (op *builtin) Call(args []ArgValue, env *Environment) (Value, error) {
	return op.call(args, env)
}

var _ Operator = &builtin{}

// --- Symbol resolution ------------------------------------------------------

// SymbolResolver decides how symbols are mapped to values during
// evaluation. asOp is set when the symbol occurs in call-head position.
type SymbolResolver interface {
	Resolve(sym Symbol, env *Environment, asOp bool) (Value, error)
}

// StrictResolver resolves symbols against the environment chain and
// fails on a miss. This is the resolver of ordinary evaluation and of
// promise forcing.
type StrictResolver struct{}

// Resolve is part of the SymbolResolver interface.
func (StrictResolver) Resolve(sym Symbol, env *Environment, asOp bool) (Value, error) {
	b := env.FindBinding(sym.Name, true)
	if b == nil {
		tracer().Debugf("unable to resolve symbol '%s' in %s", sym.Name, env)
		return nil, &quosi.UnboundSymbolError{Name: sym.Name}
	}
	if asOp {
		if _, ok := b.Value.(Operator); !ok {
			return nil, fmt.Errorf("symbol '%s' cannot be resolved as operator", sym.Name)
		}
	}
	return b.Value, nil
}

// PreservingResolver resolves bound symbols to their values and keeps
// unbound symbols as themselves, i.e. as symbol expressions. It makes
// evaluation of an already-literal tree return the tree itself, which is
// exactly what the evaluation of escape-marker operands needs.
type PreservingResolver struct{}

// Resolve is part of the SymbolResolver interface.
func (PreservingResolver) Resolve(sym Symbol, env *Environment, asOp bool) (Value, error) {
	b := env.FindBinding(sym.Name, true)
	if b == nil {
		return sym, nil
	}
	return b.Value, nil
}

var _ SymbolResolver = StrictResolver{}
var _ SymbolResolver = PreservingResolver{}

// --- Evaluation ---------------------------------------------------------------

// Eval evaluates an expression tree against an environment. Symbols must
// resolve (a miss is an UnboundSymbolError) and call heads must resolve
// to operators. Escape markers cannot be evaluated; they are removed by
// quasiquotation resolution before a tree ever reaches evaluation.
func Eval(e Expr, env *Environment) (Value, error) {
	return EvalWith(e, env, StrictResolver{})
}

// EvalQuote evaluates an expression tree with the PreservingResolver:
// bound symbols are replaced by their values, unbound symbols stay as
// themselves, and calls whose head does not resolve to an operator are
// rebuilt as literal call trees over their evaluated arguments.
func EvalQuote(e Expr, env *Environment) (Value, error) {
	return EvalWith(e, env, PreservingResolver{})
}

// EvalWith evaluates an expression tree with a caller-supplied symbol
// resolution policy.
func EvalWith(e Expr, env *Environment, r SymbolResolver) (Value, error) {
	if e == nil {
		return nil, nil
	}
	switch x := e.(type) {
	case Symbol:
		tracer().Debugf("eval of symbol %s", x.Name)
		return r.Resolve(x, env, false)
	case Literal:
		return x.Value, nil
	case *Call:
		tracer().Debugf("eval of call %v", x)
		return evalCall(x, env, r)
	case *Unquote, *Splice, *Define:
		return nil, fmt.Errorf("cannot evaluate unresolved escape marker %s", e)
	}
	return nil, fmt.Errorf("cannot evaluate expression of kind %s", e.Kind())
}

func evalCall(call *Call, env *Environment, r SymbolResolver) (Value, error) {
	var headval Value
	var err error
	if sym, ok := call.Head.(Symbol); ok {
		headval, err = r.Resolve(sym, env, true)
	} else {
		headval, err = EvalWith(call.Head, env, r)
	}
	if err != nil {
		return nil, err
	}
	if op, ok := headval.(Operator); ok {
		args := make([]ArgValue, 0, len(call.Args))
		for _, a := range call.Args {
			v, err := EvalWith(a.Value, env, r)
			if err != nil {
				return nil, err
			}
			args = append(args, ArgValue{Name: a.Name, Value: v})
		}
		tracer().Debugf("%s.call with %d arguments", op, len(args))
		return op.Call(args, env)
	}
	// Head is not an operator: the call stays data. Rebuild it over the
	// evaluated arguments, as a literal tree.
	head, err := AsExpr(headval)
	if err != nil {
		return nil, fmt.Errorf("call head does not evaluate to an operator: %s", call.Head)
	}
	args := make([]Arg, 0, len(call.Args))
	for _, a := range call.Args {
		v, err := EvalWith(a.Value, env, r)
		if err != nil {
			return nil, err
		}
		x, err := AsExpr(v)
		if err != nil {
			return nil, err
		}
		args = append(args, Arg{Name: a.Name, Value: x})
	}
	return NewCall(head, args...), nil
}

// AsExpr coerces a value to its expression form. Expressions pass
// through unchanged; atomic values become literals. Values without an
// expression form (e.g. raw sequences) are an error.
func AsExpr(v Value) (Expr, error) {
	if v == nil {
		return Lit(nil), nil
	}
	switch x := v.(type) {
	case Expr:
		return x, nil
	case bool, string, int, int32, int64, float32, float64:
		return Lit(x), nil
	}
	return nil, fmt.Errorf("value of type %T has no expression form", v)
}
