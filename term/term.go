package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Kind is the type tag of an expression variant. The set of kinds is
// closed: tree walkers switch over kinds exhaustively.
type Kind int8

// Expression variants. The three marker kinds exist only transiently,
// between capture and resolution; a fully resolved tree contains none.
const (
	UndefinedKind Kind = iota
	SymbolKind         // unresolved identifier
	LiteralKind        // self-evaluating atomic value
	CallKind           // function/operator application
	UnquoteKind        // escape marker: substitute one evaluated value
	SpliceKind         // escape marker: splice an evaluated sequence
	DefineKind         // escape marker: computed argument name
)

func (k Kind) String() string {
	switch k {
	case SymbolKind:
		return "Symbol"
	case LiteralKind:
		return "Literal"
	case CallKind:
		return "Call"
	case UnquoteKind:
		return "Unquote"
	case SpliceKind:
		return "Splice"
	case DefineKind:
		return "Define"
	}
	return "Undefined"
}

// IsMarker returns true for the escape-marker kinds.
func (k Kind) IsMarker() bool {
	return k == UnquoteKind || k == SpliceKind || k == DefineKind
}

// Expr is a node of a symbolic expression tree.
type Expr interface {
	Kind() Kind
	String() string
}

// --- Symbols and literals ---------------------------------------------------

// Symbol is an unresolved identifier.
type Symbol struct {
	Name string
}

// Sym creates a symbol expression.
func Sym(name string) Symbol {
	return Symbol{Name: name}
}

// Kind of a symbol is SymbolKind.
func (s Symbol) Kind() Kind { return SymbolKind }

func (s Symbol) String() string { return s.Name }

// Literal is a self-evaluating atomic value: a number, a string, a
// boolean, or nil.
type Literal struct {
	Value interface{}
}

// Lit creates a literal expression. Integer and float values are
// normalized to int64 and float64, so structurally equal trees compare
// equal regardless of which width the caller happened to use.
func Lit(v interface{}) Literal {
	switch n := v.(type) {
	case int:
		return Literal{Value: int64(n)}
	case int32:
		return Literal{Value: int64(n)}
	case float32:
		return Literal{Value: float64(n)}
	}
	return Literal{Value: v}
}

// Kind of a literal is LiteralKind.
func (l Literal) Kind() Kind { return LiteralKind }

func (l Literal) String() string {
	if s, ok := l.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if l.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", l.Value)
}

// --- Calls -------------------------------------------------------------------

// Arg is one argument of a call: an expression, optionally labelled with
// a name. An empty name means the argument is positional.
type Arg struct {
	Name  string
	Value Expr
}

// Pos creates a positional argument.
func Pos(e Expr) Arg {
	return Arg{Value: e}
}

// Named creates a named argument.
func Named(name string, e Expr) Arg {
	return Arg{Name: name, Value: e}
}

func (a Arg) String() string {
	if a.Name == "" {
		if a.Value == nil {
			return "nil"
		}
		return a.Value.String()
	}
	return a.Name + "=" + a.Value.String()
}

// Call is a function or operator application. The head is itself an
// expression (usually a symbol), which allows for computed call targets.
type Call struct {
	Head Expr
	Args []Arg
}

// NewCall creates a call expression.
func NewCall(head Expr, args ...Arg) *Call {
	return &Call{Head: head, Args: args}
}

// Kind of a call is CallKind.
func (c *Call) Kind() Kind { return CallKind }

func (c *Call) String() string {
	var b strings.Builder
	b.WriteString("(")
	if c.Head == nil {
		b.WriteString("nil")
	} else {
		b.WriteString(c.Head.String())
	}
	for _, a := range c.Args {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}

// --- Escape markers ----------------------------------------------------------

// Unquote is the escape marker substituting one evaluated value into a
// quoted tree.
type Unquote struct {
	Operand Expr
}

// NewUnquote creates an unquote marker.
func NewUnquote(operand Expr) *Unquote {
	return &Unquote{Operand: operand}
}

// Kind of an unquote marker is UnquoteKind.
func (u *Unquote) Kind() Kind { return UnquoteKind }

func (u *Unquote) String() string {
	return "(:unquote " + u.Operand.String() + ")"
}

// Splice is the escape marker substituting each element of an evaluated
// sequence as separate sibling arguments.
type Splice struct {
	Operand Expr
}

// NewSplice creates an unquote-splice marker.
func NewSplice(operand Expr) *Splice {
	return &Splice{Operand: operand}
}

// Kind of a splice marker is SpliceKind.
func (s *Splice) Kind() Kind { return SpliceKind }

func (s *Splice) String() string {
	return "(:splice " + s.Operand.String() + ")"
}

// Define is the escape marker for a computed argument name. Ordinary
// named-argument syntax requires the name to be a bare identifier, so
// this marker is the only route to an argument name which is itself the
// result of an evaluation.
type Define struct {
	Lhs Expr // evaluates to the argument name
	Rhs Expr // argument value; may contain nested markers
}

// NewDefine creates a define marker.
func NewDefine(lhs Expr, rhs Expr) *Define {
	return &Define{Lhs: lhs, Rhs: rhs}
}

// Kind of a define marker is DefineKind.
func (d *Define) Kind() Kind { return DefineKind }

func (d *Define) String() string {
	return "(:define " + d.Lhs.String() + " " + d.Rhs.String() + ")"
}
