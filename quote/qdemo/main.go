package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/quosi/quote"
	"github.com/npillmayer/quosi/term"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() runs a small non-interactive tour of the quasiquotation engine:
// it constructs expression trees containing escape markers, resolves
// them against an ambient environment, and tidy-evaluates a quoted
// closure with and without a data mask. There is no surface parser in
// this module, so all trees are built programmatically.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the QUOSI demo")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	env := initSymbols()
	if err := runExamples(env); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "Debug":
		return tracing.LevelDebug
	case "Error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// Pre-load some symbols:
// threshold = a numeric value to splice into a condition
// vars      = a sequence of column symbols for splicing
// +         = numeric addition operator
//
func initSymbols() *term.Environment {
	env := term.NewEnvironment("demo", nil)
	env.Def("threshold", 180.0)
	env.Def("vars", []term.Expr{term.Sym("height"), term.Sym("mass")})
	env.Defn("+", plus)
	return env
}

func runExamples(env *term.Environment) error {
	// Unquote: filter(df, (> height (:unquote threshold)))
	cond := term.NewCall(term.Sym(">"),
		term.Pos(term.Sym("height")),
		term.Pos(term.NewUnquote(term.Sym("threshold"))))
	root := term.NewCall(term.Sym("filter"),
		term.Pos(term.Sym("df")),
		term.Pos(cond))
	resolved, err := quote.Resolve(root, env)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s   resolves to   %s", root, resolved))
	//
	// Splice and define: (summarize df (:splice vars) (:define name expr))
	root = term.NewCall(term.Sym("summarize"),
		term.Pos(term.Sym("df")),
		term.Pos(term.NewSplice(term.Sym("vars"))),
		term.Pos(term.NewDefine(term.Lit("mean_height"),
			term.NewCall(term.Sym("mean"), term.Pos(term.Sym("height"))))))
	resolved, err = quote.Resolve(root, env)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s   resolves to   %s", root, resolved))
	pterm.Info.Println(fmt.Sprintf("free symbols: %v", quote.FreeSymbols(resolved, env)))
	//
	// Tidy evaluation of a quoted closure, with and without a data mask
	captured := term.NewEnvironment("captured", nil)
	captured.Def("a", 5.0)
	q := quote.Quoted{
		Expr: term.NewCall(term.Sym("+"), term.Pos(term.Sym("a")), term.Pos(term.Lit(1.0))),
		Env:  captured,
	}
	captured.Defn("+", plus)
	v, err := quote.EvalTidy(q, nil)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s evaluates to %v", q, v))
	mask := term.NewEnvironment("mask", nil)
	mask.Def("a", 100.0)
	v, err = quote.EvalTidy(q, mask)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s under mask a=100 evaluates to %v", q, v))
	return nil
}

// plus is a numeric addition operator for the demo environment.
func plus(args []term.ArgValue, env *term.Environment) (term.Value, error) {
	sum := 0.0
	for _, a := range args {
		n, ok := asFloat(a.Value)
		if !ok {
			return nil, fmt.Errorf("'+' expects numeric arguments, got %v", a.Value)
		}
		sum += n
	}
	return sum, nil
}

func asFloat(v term.Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
