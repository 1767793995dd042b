package quote

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/quosi"
	"github.com/npillmayer/quosi/frame"
	"github.com/npillmayer/quosi/term"
)

// CaptureOne retrieves the expression stored in the unforced promise
// bound to a parameter at a call frame: the literal expression the
// caller wrote, with no evaluation. Capturing never forces the promise,
// so an argument that would error if evaluated can still be captured
// safely. An unsupplied parameter is a MissingArgumentError.
func CaptureOne(f *frame.CallFrame, param string) (term.Expr, error) {
	p := f.Param(param)
	if p == nil {
		return nil, &quosi.MissingArgumentError{Param: param}
	}
	tracer().Debugf("capture of %s at %s: %s", param, f, p.Expr())
	return p.Expr(), nil
}

// CaptureAll retrieves the expressions of all variadic/excess arguments
// bound at a call frame, preserving call-site order and argument names.
// None of the promises is forced.
func CaptureAll(f *frame.CallFrame) []term.Arg {
	extras := f.Extras()
	args := make([]term.Arg, 0, len(extras))
	for _, x := range extras {
		args = append(args, term.Arg{Name: x.Name, Value: x.Promise.Expr()})
	}
	tracer().Debugf("capture of %d variadic arguments at %s", len(args), f)
	return args
}

// CaptureScoped captures a parameter's expression together with the
// promise's environment, producing a quoted closure usable after the
// original call frame is gone. The promise is not forced.
func CaptureScoped(f *frame.CallFrame, param string) (Quoted, error) {
	p := f.Param(param)
	if p == nil {
		return Quoted{}, &quosi.MissingArgumentError{Param: param}
	}
	return Quoted{Expr: p.Expr(), Env: p.Env()}, nil
}
