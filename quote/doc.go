/*
Package quote implements quasiquotation on symbolic expression trees.

Quasiquotation is quoting with selective escape points: a captured tree
stays literal, except where escape markers re-introduce computed values.
Three markers exist (see package term): unquote substitutes one evaluated
value, unquote-splice substitutes each element of an evaluated sequence
as separate siblings, and define produces an argument whose name is
itself the result of an evaluation.

The package covers three concerns:

■ Capture: retrieve the unevaluated expression supplied for a parameter
from a call frame, without forcing the promise it is stored in.

■ Resolution: walk a captured tree, evaluate every marker's operand in
the ambient environment, and substitute/flatten/rename accordingly. The
resolver returns fully literal trees: no marker survives resolution.

■ Tidy evaluation: evaluate a quoted closure — an expression paired with
its captured environment — optionally overlaid by a data mask whose
bindings shadow the captured scope.

The ambient environment is always passed explicitly; resolution never
consults global state.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package quote

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quosi.quote'.
func tracer() tracing.Trace {
	return tracing.Select("quosi.quote")
}
