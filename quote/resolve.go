package quote

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/quosi"
	"github.com/npillmayer/quosi/term"
)

// Resolve rewrites a tree which may contain escape markers at any depth
// into an equivalent fully literal tree, in a single depth-first
// post-order pass. env is the ambient environment: the scope active
// where the escapes occur. It is threaded through the recursion
// explicitly and is the only environment marker operands are evaluated
// in.
//
// Quoted material outside marker operands is never evaluated. A tree
// returned by Resolve contains no markers; resolving a marker-free tree
// returns it unchanged.
func Resolve(root term.Expr, env *term.Environment) (term.Expr, error) {
	if root == nil {
		return nil, nil
	}
	if !HasMarkers(root) {
		tracer().Debugf("tree %s is free of escape markers", root)
		return root, nil
	}
	resolved, err := resolve(root, env)
	if err != nil {
		tracer().Errorf("resolution of %s: %v", root, err)
		return nil, err
	}
	tracer().Debugf("resolved %s", resolved)
	return resolved, nil
}

// ResolveScoped resolves a tree and wraps the resulting literal tree
// with the ambient environment, forming a quoted closure for later
// evaluation.
func ResolveScoped(root term.Expr, env *term.Environment) (Quoted, error) {
	resolved, err := Resolve(root, env)
	if err != nil {
		return Quoted{}, err
	}
	return Quoted{Expr: resolved, Env: env}, nil
}

// Resolution is defined uniformly whether a marker is the whole tree or
// a nested subtree. A bare unquote yields its evaluated value's own
// expression form; a bare define has no argument slot for its name and
// yields its resolved right-hand side; a bare splice has no sibling
// position, so only a one-element sequence is permitted.
func resolve(e term.Expr, env *term.Environment) (term.Expr, error) {
	switch x := e.(type) {
	case *term.Unquote:
		v, err := operandValue(x.Operand, env)
		if err != nil {
			return nil, err
		}
		return term.AsExpr(v)
	case *term.Splice:
		seq, err := spliceSequence(x, env)
		if err != nil {
			return nil, err
		}
		if len(seq) == 1 {
			return seq[0], nil
		}
		return nil, &quosi.SpliceContextError{}
	case *term.Define:
		_, rhs, err := defineArgument(x, env)
		return rhs, err
	case *term.Call:
		return resolveCall(x, env)
	}
	return e, nil // symbols and literals stay quoted
}

func resolveCall(call *term.Call, env *term.Environment) (term.Expr, error) {
	var head term.Expr
	var err error
	switch call.Head.(type) {
	case *term.Splice:
		return nil, &quosi.SpliceContextError{}
	case *term.Define:
		return nil, fmt.Errorf("define marker is not allowed in call-head position")
	default:
		head, err = resolve(call.Head, env)
		if err != nil {
			return nil, err
		}
	}
	args := arraylist.New()
	for _, a := range call.Args {
		switch m := a.Value.(type) {
		case *term.Splice:
			// Elements become separate sibling arguments, in order.
			// One level of flattening only; an argument name on the
			// marker has no elements to attach to and is dropped.
			seq, err := spliceSequence(m, env)
			if err != nil {
				return nil, err
			}
			for _, el := range seq {
				args.Add(term.Arg{Value: el})
			}
		case *term.Define:
			name, rhs, err := defineArgument(m, env)
			if err != nil {
				return nil, err
			}
			args.Add(term.Arg{Name: name, Value: rhs})
		default:
			v, err := resolve(a.Value, env)
			if err != nil {
				return nil, err
			}
			args.Add(term.Arg{Name: a.Name, Value: v})
		}
	}
	flat := make([]term.Arg, 0, args.Size())
	it := args.Iterator()
	for it.Next() {
		flat = append(flat, it.Value().(term.Arg))
	}
	return term.NewCall(head, flat...), nil
}

// operandValue evaluates a marker operand in the ambient environment.
// Nested markers inside the operand are resolved first, in the same
// ambient environment as the rest of the pass; the resolved operand is
// then evaluated symbol-preservingly, so an already-literal tree
// evaluates to itself.
func operandValue(operand term.Expr, env *term.Environment) (term.Value, error) {
	if HasMarkers(operand) {
		resolved, err := resolve(operand, env)
		if err != nil {
			return nil, err
		}
		operand = resolved
	}
	return term.EvalQuote(operand, env)
}

// spliceSequence evaluates a splice operand and coerces the resulting
// sequence elements to expressions.
func spliceSequence(m *term.Splice, env *term.Environment) ([]term.Expr, error) {
	v, err := operandValue(m.Operand, env)
	if err != nil {
		return nil, err
	}
	switch s := v.(type) {
	case []term.Expr:
		return s, nil
	case []interface{}:
		seq := make([]term.Expr, 0, len(s))
		for _, el := range s {
			x, err := term.AsExpr(el)
			if err != nil {
				return nil, err
			}
			seq = append(seq, x)
		}
		return seq, nil
	}
	return nil, fmt.Errorf("unquote-splice operand does not evaluate to a sequence: %v", v)
}

// defineArgument evaluates a define marker's name operand and resolves
// its right-hand side, yielding the parts of a named argument. A name
// operand which does not evaluate to a string is a DefineNameError.
func defineArgument(m *term.Define, env *term.Environment) (string, term.Expr, error) {
	v, err := operandValue(m.Lhs, env)
	if err != nil {
		return "", nil, err
	}
	name, ok := v.(string)
	if !ok {
		return "", nil, &quosi.DefineNameError{Got: v}
	}
	rhs, err := resolve(m.Rhs, env)
	if err != nil {
		return "", nil, err
	}
	return name, rhs, nil
}
