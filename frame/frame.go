/*
Package frame implements call frames for the quotation engine.

A call frame binds the parameter names of one call to unforced promises,
i.e. to the unevaluated expressions the caller supplied, each paired with
the environment it was written in. Frames link back to a parent frame,
forming a call chain; a frame stack tracks the currently active frame.

The capture primitives in package quote read promises out of call frames
without ever forcing them.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package frame

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/quosi/term"
)

// T traces to the global syntax tracer
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// ExtraArg is one variadic/excess argument bound at a call frame, in
// call-site order. An empty name means the argument was positional.
type ExtraArg struct {
	Name    string
	Promise *term.Promise
}

// CallFrame represents one call: declared parameters and variadic extras
// are bound to unforced promises.
type CallFrame struct {
	Name   string
	Parent *CallFrame
	params map[string]*term.Promise
	extras []ExtraArg
}

// NewCallFrame creates a new call frame.
func NewCallFrame(nm string, parent *CallFrame) *CallFrame {
	f := &CallFrame{
		Name:   nm,
		Parent: parent,
		params: make(map[string]*term.Promise),
	}
	return f
}

func (f *CallFrame) String() string {
	return fmt.Sprintf("<frame %s>", f.Name)
}

// IsRoot is a predicate: Is this a root frame?
func (f *CallFrame) IsRoot() bool {
	return (f.Parent == nil)
}

// BindParam binds a declared parameter to a promise.
func (f *CallFrame) BindParam(name string, p *term.Promise) {
	f.params[name] = p
}

// Param gets the promise bound to a declared parameter, or nil if the
// parameter has never been supplied.
func (f *CallFrame) Param(name string) *term.Promise {
	return f.params[name]
}

// BindExtra appends a variadic/excess argument. Extras keep call-site
// order; name may be empty for positional arguments.
func (f *CallFrame) BindExtra(name string, p *term.Promise) {
	f.extras = append(f.extras, ExtraArg{Name: name, Promise: p})
}

// Extras returns the variadic/excess arguments of this frame, in
// call-site order.
func (f *CallFrame) Extras() []ExtraArg {
	return f.extras
}
