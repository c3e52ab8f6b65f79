package strategy

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"sync"

	"github.com/redexlang/redex/term"
)

// Strategy is a named partial function from a Term to a Term. Apply
// reports success or failure the same way a Go map lookup does: a bool
// alongside the value, never a panic, never a sentinel Term.
type Strategy struct {
	name string
	body func(term.Term) (term.Term, bool)
}

// Mk builds a Strategy from a name (used only for diagnostics, see Debug
// and Log) and its body.
func Mk(name string, body func(term.Term) (term.Term, bool)) Strategy {
	return Strategy{name: name, body: body}
}

// Name returns the strategy's diagnostic name.
func (s Strategy) Name() string {
	return s.name
}

// Apply runs s against t.
func (s Strategy) Apply(t term.Term) (term.Term, bool) {
	if s.body == nil {
		return nil, false
	}
	return s.body(t)
}

// Id always succeeds, returning its subject unchanged.
var Id = Mk("id", func(t term.Term) (term.Term, bool) { return t, true })

// Fail always fails.
var Fail = Mk("fail", func(term.Term) (term.Term, bool) { return nil, false })

// Seq(p, q) applies p, and if it succeeds, applies q to p's result. Fails
// if either fails.
func Seq(p, q Strategy) Strategy {
	return Mk("seq", func(t term.Term) (term.Term, bool) {
		t1, ok := p.Apply(t)
		if !ok {
			return nil, false
		}
		return q.Apply(t1)
	})
}

// Choice(p, q) applies p; if p fails, applies q to the original subject.
// q is never applied when p succeeds.
func Choice(p, q Strategy) Strategy {
	return Mk("choice", func(t term.Term) (term.Term, bool) {
		if t1, ok := p.Apply(t); ok {
			return t1, true
		}
		return q.Apply(t)
	})
}

// Guarded(p, q, r) applies p; on success applies q to p's result; on
// failure applies r to the original subject.
func Guarded(p, q, r Strategy) Strategy {
	return Mk("guarded", func(t term.Term) (term.Term, bool) {
		if t1, ok := p.Apply(t); ok {
			return q.Apply(t1)
		}
		return r.Apply(t)
	})
}

// Inclusive(p, q) applies both p and q to the original subject. It
// succeeds with q's result when both succeed, with whichever result
// succeeded when only one does, and fails only when both fail.
func Inclusive(p, q Strategy) Strategy {
	return Mk("ior", func(t term.Term) (term.Term, bool) {
		r1, ok1 := p.Apply(t)
		r2, ok2 := q.Apply(t)
		switch {
		case ok2:
			return r2, true
		case ok1:
			return r1, true
		default:
			return nil, false
		}
	})
}

// Lazy defers construction of the wrapped Strategy until its first Apply,
// building it exactly once. It exists so a Strategy can refer to itself:
//
//	var td Strategy
//	td = Lazy(func() Strategy { return Seq(s, All(td)) })
//
// f closes over td, but by the time Lazy's inner function actually runs
// (on first Apply), the assignment to td above has already completed.
func Lazy(f func() Strategy) Strategy {
	var once sync.Once
	var s Strategy
	return Mk("lazy", func(t term.Term) (term.Term, bool) {
		once.Do(func() { s = f() })
		return s.Apply(t)
	})
}
