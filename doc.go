/*
Package quosi is a quotation and quasiquotation engine.

QUOSI captures source code as a symbolic expression tree instead of
evaluating it, and selectively re-introduces computed values into such a
tree before it is finally evaluated. Package structure is as follows:

■ term: Package term implements the expression model (symbols, literals,
calls and escape markers as a closed tagged variant), lexically chained
environments, memoizing promises and a small host evaluator.

■ frame: Package frame provides call frames, which bind parameter names to
unforced promises, together with a call-frame stack.

■ quote: Package quote implements the capture primitives, the
quasiquotation resolver and the tidy evaluator for quoted closures.

The base package contains the error taxonomy which is shared throughout
all the other packages.

Surface-syntax parsing and deparsing are not part of this module; the
engine expects to be handed well-formed expression trees and hands fully
resolved trees back.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quosi
