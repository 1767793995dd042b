package quote

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/quosi/term"
	"github.com/npillmayer/quosi/term/fp"
)

// HasMarkers reports whether an expression tree contains an escape
// marker at any depth. Trees returned by Resolve never do.
func HasMarkers(e term.Expr) bool {
	found := false
	term.Walk(e, func(n term.Expr) bool {
		if n.Kind().IsMarker() {
			found = true
		}
		return !found
	})
	return found
}

// FreeSymbols collects the names of all symbols of a tree which are not
// bound in the given environment chain, sorted alphabetically. With a
// nil environment, every symbol of the tree is free. Useful for checking
// which bindings a data mask has to supply before tidy evaluation.
func FreeSymbols(e term.Expr, env *term.Environment) []string {
	free := treeset.NewWith(utils.StringComparator)
	seq := fp.Walk(e).Filter(func(n term.Expr) bool {
		return n.Kind() == term.SymbolKind
	})
	for n, S := seq.First(); n != nil; n = S.Next() {
		sym := n.(term.Symbol)
		if env == nil || env.FindBinding(sym.Name, true) == nil {
			free.Add(sym.Name)
		}
	}
	names := make([]string, 0, free.Size())
	for _, v := range free.Values() {
		names = append(names, v.(string))
	}
	return names
}
