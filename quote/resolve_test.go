package quote

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/quosi"
	"github.com/npillmayer/quosi/term"
)

func TestResolveUnquoteLiteralOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	// (f (:unquote (g z)) y) with empty ambient environment: the operand
	// is already a literal tree, so evaluating it returns itself.
	env := term.NewEnvironment("ambient", nil)
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.NewUnquote(term.NewCall(term.Sym("g"), term.Pos(term.Sym("z"))))),
		term.Pos(term.Sym("y")))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("f"),
		term.Pos(term.NewCall(term.Sym("g"), term.Pos(term.Sym("z")))),
		term.Pos(term.Sym("y")))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
	if HasMarkers(resolved) {
		t.Error("resolved tree still contains markers")
	}
}

func TestResolveUnquoteBoundOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("threshold", int64(10))
	root := term.NewCall(term.Sym(">"),
		term.Pos(term.Sym("height")),
		term.Pos(term.NewUnquote(term.Sym("threshold"))))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym(">"),
		term.Pos(term.Sym("height")),
		term.Pos(term.Lit(10)))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveDepthIndependence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("v", term.Sym("w"))
	wrap := func(e term.Expr, depth int) term.Expr {
		for i := 0; i < depth; i++ {
			e = term.NewCall(term.Sym("f"), term.Pos(e))
		}
		return e
	}
	for depth := 0; depth < 5; depth++ {
		root := wrap(term.NewUnquote(term.Sym("v")), depth)
		resolved, err := Resolve(root, env)
		if err != nil {
			t.Fatal(err)
		}
		expected := wrap(term.Sym("w"), depth)
		if !term.Equal(resolved, expected) {
			t.Errorf("depth %d: expected %s, got %s", depth, expected, resolved)
		}
	}
}

func TestResolveSpliceFlattening(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	// (f a (:splice xs) b) with xs = [x y z]  =>  (f a x y z b)
	env := term.NewEnvironment("ambient", nil)
	env.Def("xs", []term.Expr{term.Sym("x"), term.Sym("y"), term.Sym("z")})
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.Sym("a")),
		term.Pos(term.NewSplice(term.Sym("xs"))),
		term.Pos(term.Sym("b")))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("f"),
		term.Pos(term.Sym("a")),
		term.Pos(term.Sym("x")),
		term.Pos(term.Sym("y")),
		term.Pos(term.Sym("z")),
		term.Pos(term.Sym("b")))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveSpliceSingleLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	// (f (:splice xs) y) with xs = [(g z) a b]  =>  (f (g z) a b y);
	// the call element stays intact, no re-flattening of its arguments.
	env := term.NewEnvironment("ambient", nil)
	env.Def("xs", []term.Expr{
		term.NewCall(term.Sym("g"), term.Pos(term.Sym("z"))),
		term.Sym("a"),
		term.Sym("b"),
	})
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.NewSplice(term.Sym("xs"))),
		term.Pos(term.Sym("y")))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("f"),
		term.Pos(term.NewCall(term.Sym("g"), term.Pos(term.Sym("z")))),
		term.Pos(term.Sym("a")),
		term.Pos(term.Sym("b")),
		term.Pos(term.Sym("y")))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveSpliceOfCoercibles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("xs", []interface{}{int64(1), "two", term.Sym("three")})
	root := term.NewCall(term.Sym("f"), term.Pos(term.NewSplice(term.Sym("xs"))))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("f"),
		term.Pos(term.Lit(1)),
		term.Pos(term.Lit("two")),
		term.Pos(term.Sym("three")))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveSpliceInHeadPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("xs", []term.Expr{term.Sym("f")})
	root := term.NewCall(term.NewSplice(term.Sym("xs")), term.Pos(term.Sym("a")))
	_, err := Resolve(root, env)
	if err == nil {
		t.Fatal("expected splice marker in head position to fail")
	}
	var ctx *quosi.SpliceContextError
	if !errors.As(err, &ctx) {
		t.Errorf("expected SpliceContextError, got %v", err)
	}
}

func TestResolveSpliceNonSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("xs", int64(1))
	root := term.NewCall(term.Sym("f"), term.Pos(term.NewSplice(term.Sym("xs"))))
	if _, err := Resolve(root, env); err == nil {
		t.Error("expected splice of non-sequence value to fail")
	}
}

func TestResolveDefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	// (:define "x" 10) inside a call is equivalent to the named argument
	// x=10 written directly.
	env := term.NewEnvironment("ambient", nil)
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.NewDefine(term.Lit("x"), term.Lit(10))))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("f"), term.Named("x", term.Lit(10)))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveDefineComputedName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("nm", "mean_height")
	root := term.NewCall(term.Sym("summarize"),
		term.Pos(term.NewDefine(term.Sym("nm"),
			term.NewCall(term.Sym("mean"), term.Pos(term.Sym("height"))))))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("summarize"),
		term.Named("mean_height",
			term.NewCall(term.Sym("mean"), term.Pos(term.Sym("height")))))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveDefineNestedMarkerInRhs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	// The define marker's rhs resolves in the same ambient environment
	// as the rest of the pass.
	env := term.NewEnvironment("ambient", nil)
	env.Def("col", term.Sym("height"))
	root := term.NewCall(term.Sym("summarize"),
		term.Pos(term.NewDefine(term.Lit("m"),
			term.NewCall(term.Sym("mean"), term.Pos(term.NewUnquote(term.Sym("col")))))))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("summarize"),
		term.Named("m", term.NewCall(term.Sym("mean"), term.Pos(term.Sym("height")))))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolveDefineNameError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.NewDefine(term.Lit(42), term.Lit(1))))
	_, err := Resolve(root, env)
	if err == nil {
		t.Fatal("expected non-string define name to fail")
	}
	var dn *quosi.DefineNameError
	if !errors.As(err, &dn) {
		t.Errorf("expected DefineNameError, got %v", err)
	}
}

func TestResolveIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("a", int64(1)) // binding must not leak into quoted material
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.Sym("a")),
		term.Named("n", term.Lit(2)))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	if !term.Equal(resolved, root) {
		t.Errorf("marker-free tree changed under resolution: %s", resolved)
	}
}

func TestResolveBareUnquote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("v", int64(5))
	resolved, err := Resolve(term.NewUnquote(term.Sym("v")), env)
	if err != nil {
		t.Fatal(err)
	}
	if !term.Equal(resolved, term.Lit(5)) {
		t.Errorf("expected Literal(5), got %s", resolved)
	}
}

func TestResolveNamedArgumentKeepsName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("v", int64(3))
	root := term.NewCall(term.Sym("f"),
		term.Named("k", term.NewUnquote(term.Sym("v"))))
	resolved, err := Resolve(root, env)
	if err != nil {
		t.Fatal(err)
	}
	expected := term.NewCall(term.Sym("f"), term.Named("k", term.Lit(3)))
	if !term.Equal(resolved, expected) {
		t.Errorf("expected %s, got %s", expected, resolved)
	}
}

func TestResolvePassesCollaboratorErrorsThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Defn("oops", func(args []term.ArgValue, e *term.Environment) (term.Value, error) {
		return nil, &quosi.SyntaxError{Msg: "escape marker in forbidden position"}
	})
	root := term.NewCall(term.Sym("f"),
		term.Pos(term.NewUnquote(term.NewCall(term.Sym("oops")))))
	_, err := Resolve(root, env)
	if err == nil {
		t.Fatal("expected collaborator error to propagate")
	}
	var syn *quosi.SyntaxError
	if !errors.As(err, &syn) {
		t.Errorf("expected SyntaxError to pass through unmodified, got %v", err)
	}
}

func TestResolveScoped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("v", int64(2))
	q, err := ResolveScoped(term.NewUnquote(term.Sym("v")), env)
	if err != nil {
		t.Fatal(err)
	}
	if q.Env != env {
		t.Error("quoted closure should borrow the ambient environment")
	}
	if !term.Equal(q.Expr, term.Lit(2)) {
		t.Errorf("unexpected closure expression: %s", q.Expr)
	}
}

func TestFreeSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.quote")
	defer teardown()
	//
	env := term.NewEnvironment("ambient", nil)
	env.Def("b", int64(1))
	tree := term.NewCall(term.Sym("f"),
		term.Pos(term.Sym("b")),
		term.Pos(term.Sym("a")),
		term.Pos(term.NewCall(term.Sym("g"), term.Pos(term.Sym("a")))))
	free := FreeSymbols(tree, env)
	expected := []string{"a", "f", "g"}
	if len(free) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, free)
	}
	for i, nm := range expected {
		if free[i] != nm {
			t.Errorf("expected %v, got %v", expected, free)
		}
	}
}
