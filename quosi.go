package quosi

import "fmt"

// --- Error taxonomy ---------------------------------------------------------

// The engine has no retry policy: all operations are deterministic pure
// functions of their inputs, except promise forcing, whose non-idempotent
// first evaluation is why re-entrant forcing is fatal. Every error below is
// propagated to the immediate caller of the operation which detected it.

// UnboundSymbolError flags a lookup miss during evaluation or forcing:
// no scope in an environment chain defines the symbol's name.
type UnboundSymbolError struct {
	Name string // name of the unresolved symbol
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("symbol '%s' is not bound in environment", e.Name)
}

// MissingArgumentError flags the capture of a parameter which has never
// been supplied at the call site.
type MissingArgumentError struct {
	Param string // name of the unsupplied parameter
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' is missing, with no default", e.Param)
}

// RecursivePromiseError flags a promise which, while being forced, is
// forced again by the evaluation of its own expression. This is fatal.
type RecursivePromiseError struct {
	Expr fmt.Stringer // expression of the offending promise, for diagnostics
}

func (e *RecursivePromiseError) Error() string {
	if e.Expr == nil {
		return "promise already under evaluation: recursive reference"
	}
	return fmt.Sprintf("promise already under evaluation: recursive reference in %s", e.Expr)
}

// SpliceContextError flags an unquote-splice marker in a position where
// only a single expression is permitted, e.g. as the head of a call.
type SpliceContextError struct{}

func (e *SpliceContextError) Error() string {
	return "unquote-splice marker used where a single expression is required"
}

// DefineNameError flags a define marker whose name operand does not
// evaluate to a string.
type DefineNameError struct {
	Got interface{} // value the name operand evaluated to
}

func (e *DefineNameError) Error() string {
	return fmt.Sprintf("define marker name must evaluate to a string, got %v", e.Got)
}

// SyntaxError is raised by a surface parser for escape markers in
// grammar-forbidden positions. The engine never creates one; it is
// declared here so collaborators share a single type, and it is passed
// through unmodified should it ever reach engine operations.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}
