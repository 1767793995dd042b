package term

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExprConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	call := NewCall(Sym("f"), Pos(Sym("x")), Named("n", Lit(1)))
	if call.Kind() != CallKind {
		t.Errorf("expected call kind, got %s", call.Kind())
	}
	if len(call.Args) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(call.Args))
	}
	if call.String() != "(f x n=1)" {
		t.Errorf("unexpected call string: %s", call.String())
	}
}

func TestLitNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	if !Equal(Lit(10), Lit(int64(10))) {
		t.Errorf("expected Lit(10) to equal Lit(int64(10))")
	}
	if Equal(Lit(10), Lit(10.0)) {
		t.Errorf("integer and float literals should not be equal")
	}
}

func TestStructuralEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	a := NewCall(Sym("f"), Pos(NewCall(Sym("g"), Pos(Sym("z")))), Pos(Sym("y")))
	b := NewCall(Sym("f"), Pos(NewCall(Sym("g"), Pos(Sym("z")))), Pos(Sym("y")))
	if !Equal(a, b) {
		t.Errorf("structurally equal trees compare unequal")
	}
	c := NewCall(Sym("f"), Pos(NewCall(Sym("g"), Pos(Sym("z")))), Named("y", Sym("y")))
	if Equal(a, c) {
		t.Errorf("trees differing in argument names compare equal")
	}
	if Equal(Sym("x"), Lit("x")) {
		t.Errorf("symbol and string literal compare equal")
	}
}

func TestMarkerEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	u1 := NewUnquote(Sym("x"))
	u2 := NewUnquote(Sym("x"))
	if !Equal(u1, u2) {
		t.Errorf("equal unquote markers compare unequal")
	}
	if Equal(u1, NewSplice(Sym("x"))) {
		t.Errorf("unquote and splice markers compare equal")
	}
	d1 := NewDefine(Lit("x"), Lit(1))
	d2 := NewDefine(Lit("x"), Lit(1))
	if !Equal(d1, d2) {
		t.Errorf("equal define markers compare unequal")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	a := NewCall(Sym("f"), Pos(Sym("x")), Pos(Lit(1)))
	b := NewCall(Sym("f"), Pos(Sym("x")), Pos(Lit(1)))
	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("equal trees have different fingerprints")
	}
	c := NewCall(Sym("f"), Pos(Sym("x")), Pos(Lit(2)))
	if Fingerprint(a) == Fingerprint(c) {
		t.Errorf("unequal trees have identical fingerprints")
	}
}

func TestInterner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	ip := NewInterner()
	a := NewCall(Sym("f"), Pos(Sym("x")))
	b := NewCall(Sym("f"), Pos(Sym("x")))
	first := ip.Intern(a)
	second := ip.Intern(b)
	if first != second {
		t.Errorf("interner did not share structurally equal trees")
	}
	if ip.Size() != 1 {
		t.Errorf("expected pool size 1, got %d", ip.Size())
	}
}

func TestWalkPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	tree := NewCall(Sym("f"), Pos(Sym("a")), Pos(NewCall(Sym("g"), Pos(Sym("b")))))
	var visited []string
	Walk(tree, func(e Expr) bool {
		visited = append(visited, e.String())
		return true
	})
	expected := []string{"(f a (g b))", "f", "a", "(g b)", "g", "b"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, visited %d", len(expected), len(visited))
	}
	for i, s := range expected {
		if visited[i] != s {
			t.Errorf("node %d: expected %s, got %s", i, s, visited[i])
		}
	}
}

func TestWalkVisitsMarkerOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quosi.term")
	defer teardown()
	//
	tree := NewCall(Sym("f"), Pos(NewUnquote(NewCall(Sym("g"), Pos(Sym("z"))))))
	if Count(tree) != 6 {
		t.Errorf("expected 6 nodes, counted %d", Count(tree))
	}
}
