/*
Package term provides the symbolic expression model of the quotation
engine, together with environments, promises and a small host evaluator.

Quoting captures a piece of source code as a tree of terms instead of
evaluating it. Such trees are homogenous: every node is one of a closed
set of variants — symbols, literals, calls, and the three escape markers
of quasiquotation (unquote, unquote-splice, define). The markers are
first-class variants of the expression type, so downstream tree walkers
can pattern-match on node kinds exhaustively instead of comparing the
spelling of call heads.

Expression trees are immutable once constructed. Rewriting always
produces new trees; subtrees may therefore be shared freely between
trees without ownership cycles.

Environments are lexically chained scopes mapping names to bindings.
A promise pairs an expression with the environment it was written in
and defers its evaluation until first access, memoizing the result.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quosi.term'.
func tracer() tracing.Trace {
	return tracing.Select("quosi.term")
}
