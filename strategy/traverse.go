package strategy

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/redexlang/redex/term"
)

// Child(i, s) applies s to t's i'th child (1-based) and rebuilds t with
// that one child replaced. Fails if t has fewer than i children or if s
// fails on the selected child. A non-positive i is a programmer error,
// not an ordinary failure, and panics instead.
func Child(i int, s Strategy) Strategy {
	if i < 1 {
		panic(fmt.Errorf("strategy: Child index must be >= 1, got %d", i))
	}
	return Mk("child", func(t term.Term) (term.Term, bool) {
		children := term.Children(t)
		if i > len(children) {
			return nil, false
		}
		idx := i - 1
		r, ok := s.Apply(children[idx])
		if !ok {
			return nil, false
		}
		if term.Same(r, children[idx]) {
			return t, true
		}
		rebuilt := append([]term.Term(nil), children...)
		rebuilt[idx] = r
		return term.Rebuild(t, rebuilt), true
	})
}

// All(s) applies s to every child of t. Succeeds vacuously, returning t
// unchanged, when t has no children — in particular All(Fail) never
// fails on a leaf. Fails as soon as s fails on any child.
func All(s Strategy) Strategy {
	return Mk("all", func(t term.Term) (term.Term, bool) {
		children := term.Children(t)
		if len(children) == 0 {
			return t, true
		}
		results := make([]term.Term, len(children))
		changed := false
		for i, c := range children {
			r, ok := s.Apply(c)
			if !ok {
				return nil, false
			}
			if !term.Same(r, c) {
				changed = true
			}
			results[i] = r
		}
		if !changed {
			return t, true
		}
		return term.Rebuild(t, results), true
	})
}

// One(s) applies s to t's children left-to-right, stopping at the first
// success and rebuilding t with only that child replaced. Fails if s
// fails on every child (or t has none).
func One(s Strategy) Strategy {
	return Mk("one", func(t term.Term) (term.Term, bool) {
		children := term.Children(t)
		for i, c := range children {
			r, ok := s.Apply(c)
			if !ok {
				continue
			}
			if term.Same(r, c) {
				return t, true
			}
			rebuilt := append([]term.Term(nil), children...)
			rebuilt[i] = r
			return term.Rebuild(t, rebuilt), true
		}
		return nil, false
	})
}

// Some(s) applies s to every child, keeping the original for any child
// where s fails. Succeeds if s succeeds on at least one child; fails if
// it succeeds on none, or if t has no children at all.
func Some(s Strategy) Strategy {
	return Mk("some", func(t term.Term) (term.Term, bool) {
		children := term.Children(t)
		if len(children) == 0 {
			return nil, false
		}
		results := make([]term.Term, len(children))
		succeeded, changed := false, false
		for i, c := range children {
			if r, ok := s.Apply(c); ok {
				succeeded = true
				if !term.Same(r, c) {
					changed = true
				}
				results[i] = r
			} else {
				results[i] = c
			}
		}
		if !succeeded {
			return nil, false
		}
		if !changed {
			return t, true
		}
		return term.Rebuild(t, results), true
	})
}

// Congruence applies ss[i] to t's i'th child. Unlike Child/All/One/Some,
// it is defined only for a Product-like subject — a Rewritable value or a
// struct — and fails immediately against a Mapping or Sequence, whose
// children are keyed or order-fungible rather than positional-by-arity.
// Otherwise fails unless t has exactly len(ss) children and every ss[i]
// succeeds on its child.
func Congruence(ss ...Strategy) Strategy {
	return Mk("congruence", func(t term.Term) (term.Term, bool) {
		switch term.ShapeOf(t) {
		case term.RewritableShape, term.ProductShape:
		default:
			return nil, false
		}
		children := term.Children(t)
		if len(ss) != len(children) {
			return nil, false
		}
		results := make([]term.Term, len(children))
		changed := false
		for i, c := range children {
			r, ok := ss[i].Apply(c)
			if !ok {
				return nil, false
			}
			if !term.Same(r, c) {
				changed = true
			}
			results[i] = r
		}
		if !changed {
			return t, true
		}
		return term.Rebuild(t, results), true
	})
}
