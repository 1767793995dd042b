package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Walk traverses an expression tree depth-first in pre-order, visiting
// every node: call heads, argument values and marker operands. If visit
// returns false for a node, its subtree is not descended into.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil || !visit(e) {
		return
	}
	switch x := e.(type) {
	case *Call:
		Walk(x.Head, visit)
		for _, a := range x.Args {
			Walk(a.Value, visit)
		}
	case *Unquote:
		Walk(x.Operand, visit)
	case *Splice:
		Walk(x.Operand, visit)
	case *Define:
		Walk(x.Lhs, visit)
		Walk(x.Rhs, visit)
	}
}

// Count returns the number of nodes of an expression tree.
func Count(e Expr) int {
	n := 0
	Walk(e, func(Expr) bool {
		n++
		return true
	})
	return n
}
