package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Equal compares two expression trees structurally: equality of variant
// and value, never identity. Two calls are equal if their heads are
// equal and their argument lists match pairwise in name and value.
func Equal(a Expr, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Symbol:
		return x.Name == b.(Symbol).Name
	case Literal:
		return x.Value == b.(Literal).Value
	case *Call:
		y := b.(*Call)
		if !Equal(x.Head, y.Head) || len(x.Args) != len(y.Args) {
			return false
		}
		for i, arg := range x.Args {
			if arg.Name != y.Args[i].Name || !Equal(arg.Value, y.Args[i].Value) {
				return false
			}
		}
		return true
	case *Unquote:
		return Equal(x.Operand, b.(*Unquote).Operand)
	case *Splice:
		return Equal(x.Operand, b.(*Splice).Operand)
	case *Define:
		y := b.(*Define)
		return Equal(x.Lhs, y.Lhs) && Equal(x.Rhs, y.Rhs)
	}
	return false
}

// Fingerprint returns a structural hash of an expression tree. Trees
// which are Equal produce identical fingerprints, independent of node
// identity, which makes fingerprints usable as map keys for subtree
// sharing and for cheap equality screening.
func Fingerprint(e Expr) string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%x", structhash.Md5(hashableExpr{Node: e}, 1))
}

// hashableExpr wraps an expression for structhash, which expects a struct.
type hashableExpr struct {
	Node Expr
}

// --- Interning ---------------------------------------------------------------

// Interner pools structurally equal subtrees. Trees are immutable, so a
// subtree returned by Intern may be shared by any number of parents.
type Interner struct {
	pool map[string]Expr
}

// NewInterner creates an empty interning pool.
func NewInterner() *Interner {
	return &Interner{
		pool: make(map[string]Expr),
	}
}

// Intern returns the pooled instance of a tree structurally equal to e,
// inserting e if no such instance is pooled yet.
func (ip *Interner) Intern(e Expr) Expr {
	if e == nil {
		return nil
	}
	fp := Fingerprint(e)
	if pooled, ok := ip.pool[fp]; ok && Equal(pooled, e) {
		return pooled
	}
	ip.pool[fp] = e
	return e
}

// Size counts the pooled trees.
func (ip *Interner) Size() int {
	return len(ip.pool)
}
