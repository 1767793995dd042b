package fp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/quosi/term"
)

/*
Note:
=====
The current implementation always pre-fetches the first node.
This could be optimized. For now, we will leave it this way.
*/

// NodeSeq is a lazy sequence over the nodes of an expression tree,
// visiting them depth-first in pre-order.
type NodeSeq struct {
	node term.Expr
	seq  NodeGenerator
}

// NodeGenerator is a function type to generate a node sequence.
type NodeGenerator func() NodeSeq

// Walk wraps an expression tree into a node sequence.
func Walk(e term.Expr) NodeSeq {
	stack := arraystack.New()
	if e != nil {
		stack.Push(e)
	}
	var S NodeGenerator
	S = func() NodeSeq {
		v, ok := stack.Pop()
		if !ok {
			return NodeSeq{nil, nil}
		}
		node := v.(term.Expr)
		pushChildren(stack, node)
		return NodeSeq{node, S}
	}
	return S()
}

// Children are pushed in reverse, so the leftmost child is popped first.
func pushChildren(stack *arraystack.Stack, e term.Expr) {
	switch x := e.(type) {
	case *term.Call:
		for i := len(x.Args) - 1; i >= 0; i-- {
			if x.Args[i].Value != nil {
				stack.Push(x.Args[i].Value)
			}
		}
		if x.Head != nil {
			stack.Push(x.Head)
		}
	case *term.Unquote:
		if x.Operand != nil {
			stack.Push(x.Operand)
		}
	case *term.Splice:
		if x.Operand != nil {
			stack.Push(x.Operand)
		}
	case *term.Define:
		if x.Rhs != nil {
			stack.Push(x.Rhs)
		}
		if x.Lhs != nil {
			stack.Push(x.Lhs)
		}
	}
}

// Break signals a sequence to stop iterating.
func (seq *NodeSeq) Break() {
	seq.seq = nil
}

// Done returns true if a sequence stopped iterating.
func (seq *NodeSeq) Done() bool {
	return seq.seq == nil
}

// First returns the first node of a sequence, together with a sequence
// successor.
func (seq NodeSeq) First() (term.Expr, NodeSeq) {
	return seq.node, seq
}

// Next returns the next node of a sequence, or nil if the sequence is
// exhausted.
func (seq *NodeSeq) Next() term.Expr {
	if seq.Done() {
		return nil
	}
	next := seq.seq()
	seq.node = next.node
	if seq.node == nil {
		seq.seq = nil
	} else {
		seq.seq = next.seq
	}
	return seq.node
}

// A NodeMapper represents an operation on a tree node, resulting in a
// modified node.
type NodeMapper func(term.Expr) term.Expr

// Map creates new nodes from the nodes of a sequence.
func (seq NodeSeq) Map(mapper NodeMapper) NodeSeq {
	node, inner := seq.node, seq
	if node == nil {
		return NodeSeq{nil, nil}
	}
	v := mapper(node)
	var F NodeGenerator
	F = func() NodeSeq {
		node = inner.Next()
		if node == nil {
			return NodeSeq{nil, nil}
		}
		return NodeSeq{mapper(node), F}
	}
	return NodeSeq{v, F}
}

// A NodePredicate decides a yes/no property of a tree node.
type NodePredicate func(term.Expr) bool

// Filter drops all nodes from a sequence for which the predicate does
// not hold.
func (seq NodeSeq) Filter(p NodePredicate) NodeSeq {
	inner := seq
	var F NodeGenerator
	F = func() NodeSeq {
		for {
			node := inner.Next()
			if node == nil {
				return NodeSeq{nil, nil}
			}
			if p(node) {
				return NodeSeq{node, F}
			}
		}
	}
	// pre-fetch the first matching node
	if seq.node != nil && p(seq.node) {
		return NodeSeq{seq.node, F}
	}
	return F()
}

// Slice returns all the nodes of a sequence as an instantiated slice.
func (seq NodeSeq) Slice() []term.Expr {
	var nodes []term.Expr
	S := seq
	for node := S.node; node != nil; node = S.Next() {
		nodes = append(nodes, node)
	}
	return nodes
}
