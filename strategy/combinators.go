package strategy

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Compound traversal and control combinators. Every recursive combinator
here follows the same shape: a Go variable of type Strategy is declared,
then assigned the result of Lazy(func() Strategy { ... }), whose body
closes over that variable to refer to the combinator itself. This is the
Go rendering of the mutually-recursive strategy equations of the
teacher's rewriting tradition.
*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/redexlang/redex/term"
)

// Attempt(s) = choice(s, id): applies s, falling back to a no-op.
func Attempt(s Strategy) Strategy {
	return Choice(s, Id)
}

// Topdown(s) = seq(s, all(topdown(s))): applies s at every node,
// pre-order. Fails as soon as s fails anywhere.
func Topdown(s Strategy) Strategy {
	var td Strategy
	td = Lazy(func() Strategy { return Seq(s, All(td)) })
	return td
}

// Bottomup(s) = seq(all(bottomup(s)), s): applies s at every node,
// post-order.
func Bottomup(s Strategy) Strategy {
	var bu Strategy
	bu = Lazy(func() Strategy { return Seq(All(bu), s) })
	return bu
}

// TopdownS(s, stop) behaves like Topdown, but at each node first offers
// stop the chance to take over the recursion (e.g. to prune a subtree)
// before falling back to descending into every child.
func TopdownS(s Strategy, stop func(Strategy) Strategy) Strategy {
	var td Strategy
	td = Lazy(func() Strategy { return Seq(s, Choice(stop(td), All(td))) })
	return td
}

// Alltd(s) = choice(s, all(alltd(s))): tries s at a node; if it fails,
// recurses into the children. Never descends into a subtree where s
// already succeeded.
func Alltd(s Strategy) Strategy {
	var a Strategy
	a = Lazy(func() Strategy { return Choice(s, All(a)) })
	return a
}

// Oncetd(s) = choice(s, one(oncetd(s))): finds the first node in
// top-down, left-to-right order where s succeeds.
func Oncetd(s Strategy) Strategy {
	var o Strategy
	o = Lazy(func() Strategy { return Choice(s, One(o)) })
	return o
}

// Oncebu(s) = choice(one(oncebu(s)), s): finds the first node in
// bottom-up, left-to-right order where s succeeds.
func Oncebu(s Strategy) Strategy {
	var o Strategy
	o = Lazy(func() Strategy { return Choice(One(o), s) })
	return o
}

// Sometd(s) = choice(s, some(sometd(s))): like Alltd but only requires
// one successful descendant per branch rather than all of them.
func Sometd(s Strategy) Strategy {
	var so Strategy
	so = Lazy(func() Strategy { return Choice(s, Some(so)) })
	return so
}

// Somebu(s) = choice(some(somebu(s)), s): the bottom-up dual of Sometd.
func Somebu(s Strategy) Strategy {
	var so Strategy
	so = Lazy(func() Strategy { return Choice(Some(so), s) })
	return so
}

// Innermost(s) = bottomup(attempt(seq(s, innermost(s)))): repeatedly
// rewrites each node from the leaves up until s no longer applies
// anywhere, restarting from the (possibly new) innermost redexes s just
// created. This is the workhorse of term-rewriting-to-normal-form.
func Innermost(s Strategy) Strategy {
	var inn Strategy
	inn = Lazy(func() Strategy { return Bottomup(Attempt(Seq(s, inn))) })
	return inn
}

// Innermost2(s) = repeat(oncebu(s)): an alternative innermost-normal-form
// strategy that finds one bottom-up redex at a time.
func Innermost2(s Strategy) Strategy {
	return Repeat(Oncebu(s))
}

// Outermost(s) = repeat(oncetd(s)): repeatedly rewrites the first
// available top-down redex until none remain.
func Outermost(s Strategy) Strategy {
	return Repeat(Oncetd(s))
}

// Reduce(s) = repeat(somebu(s)): repeatedly applies s to as many nodes
// as it can, bottom-up, until a full pass makes no further progress.
func Reduce(s Strategy) Strategy {
	return Repeat(Somebu(s))
}

// Manytd(s) applies s where it can, top-down, but — unlike Alltd —
// continues to recurse into a node's (possibly rewritten) children even
// after a successful application there.
func Manytd(s Strategy) Strategy {
	var m Strategy
	m = Lazy(func() Strategy {
		return Choice(Seq(s, All(m)), All(m))
	})
	return m
}

// Manybu is the bottom-up dual of Manytd.
func Manybu(s Strategy) Strategy {
	var m Strategy
	m = Lazy(func() Strategy {
		return Choice(Seq(All(m), s), All(m))
	})
	return m
}

// Downup(s1, s2) applies s1 to a node before descending into its
// children and s2 after rebuilding them, visiting every node twice.
func Downup(s1, s2 Strategy) Strategy {
	var du Strategy
	du = Lazy(func() Strategy { return Seq(s1, Seq(All(du), s2)) })
	return du
}

// AllDownup2 is the historical library name for Downup.
func AllDownup2(s1, s2 Strategy) Strategy {
	return Downup(s1, s2)
}

// AlltdFold performs an Alltd-shaped search — trying s at a node before
// its children, never descending into a subtree where s already
// succeeded — and folds every successful result into f as a side effect
// instead of rewriting the term. Always succeeds, returning the subject
// unchanged; f is invoked once per node where s matches.
func AlltdFold(s Strategy, f func(term.Term)) Strategy {
	var atf Strategy
	atf = Lazy(func() Strategy {
		return Mk("alltdfold", func(t term.Term) (term.Term, bool) {
			if r, ok := s.Apply(t); ok {
				f(r)
				return t, true
			}
			return All(atf).Apply(t)
		})
	})
	return atf
}

// Leaves(s) descends to the leaf nodes (any node with no children) and
// applies s only there. Fails as soon as s fails on a leaf.
func Leaves(s Strategy) Strategy {
	var lv Strategy
	lv = Lazy(func() Strategy {
		return Mk("leaves", func(t term.Term) (term.Term, bool) {
			if len(term.Children(t)) == 0 {
				return s.Apply(t)
			}
			return All(lv).Apply(t)
		})
	})
	return lv
}

// EverywhereTD(s) = topdown(attempt(s)): a Topdown pass that never fails
// on account of s, since a failed s is simply skipped at that node.
func EverywhereTD(s Strategy) Strategy {
	return Topdown(Attempt(s))
}

// EverywhereBU(s) = bottomup(attempt(s)): the bottom-up counterpart of
// EverywhereTD.
func EverywhereBU(s Strategy) Strategy {
	return Bottomup(Attempt(s))
}

// EverywhereS behaves like EverywhereTD but honors an explicit stop
// predicate for pruning, exactly as TopdownS extends Topdown.
func EverywhereS(s Strategy, stop func(Strategy) Strategy) Strategy {
	return TopdownS(Attempt(s), stop)
}

// Repeat(s) = choice(seq(s, repeat(s)), id): applies s as many times as
// it succeeds, stopping — successfully — the first time it fails.
func Repeat(s Strategy) Strategy {
	var r Strategy
	r = Lazy(func() Strategy { return Choice(Seq(s, r), Id) })
	return r
}

// RepeatN unrolls s exactly n times, failing if any of the n applications
// fails.
func RepeatN(s Strategy, n int) Strategy {
	return Mk("repeatn", func(t term.Term) (term.Term, bool) {
		cur := t
		for i := 0; i < n; i++ {
			r, ok := s.Apply(cur)
			if !ok {
				return nil, false
			}
			cur = r
		}
		return cur, true
	})
}

// Repeat1(s) = seq(s, repeat(s)): like Repeat but requires at least one
// successful application.
func Repeat1(s Strategy) Strategy {
	return Seq(s, Repeat(s))
}

// RepeatUntil behaves like Repeat(s), but also stops successfully the
// moment pred holds for the current subject, even if s would still
// succeed. This supplements the library with a bounded variant of Repeat
// that does not depend on s eventually failing.
func RepeatUntil(s Strategy, pred func(term.Term) bool) Strategy {
	return Mk("repeatuntil", func(t term.Term) (term.Term, bool) {
		cur := t
		for {
			if pred(cur) {
				return cur, true
			}
			r, ok := s.Apply(cur)
			if !ok {
				return cur, true
			}
			cur = r
		}
	})
}

// Loop(r, s) = choice(seq(r, seq(s, loop(r, s))), id): while the guard r
// succeeds on the current subject, applies s and loops; stops
// successfully the first time r fails.
func Loop(r, s Strategy) Strategy {
	var lp Strategy
	lp = Lazy(func() Strategy { return Choice(Seq(r, Seq(s, lp)), Id) })
	return lp
}

// LoopIter applies s once to every element of items in order, ignoring
// its own subject, and returns the slice of results. Fails as soon as s
// fails on any item, matching the library's loop-iter over an external
// worklist rather than a subject's own children.
func LoopIter(s Strategy, items []term.Term) Strategy {
	return Mk("loopiter", func(term.Term) (term.Term, bool) {
		results := make([]term.Term, 0, len(items))
		for _, it := range items {
			r, ok := s.Apply(it)
			if !ok {
				return nil, false
			}
			results = append(results, r)
		}
		return results, true
	})
}

// LoopNot applies body once, then keeps applying it while cond fails on
// the current subject, stopping successfully the first time cond succeeds.
func LoopNot(cond, body Strategy) Strategy {
	return Seq(body, Loop(Not(cond), body))
}

// Doloop(s, r) = seq(s, loop(r, s)): a do-while variant of Loop that
// runs s once unconditionally before checking r.
func Doloop(s, r Strategy) Strategy {
	return Seq(s, Loop(r, s))
}

// Lastly(s, f) runs f as a side effect regardless of whether s succeeds:
// on success it returns s's result after running f; on failure it runs f
// and still fails.
func Lastly(s, f Strategy) Strategy {
	onSuccess := Mk("lastly-then", func(t term.Term) (term.Term, bool) {
		f.Apply(t)
		return t, true
	})
	return Guarded(s, onSuccess, Seq(f, Fail))
}

// Restore(s, r) = choice(s, seq(r, fail)): applies s; if it fails, runs r
// for a compensating side effect and still fails.
func Restore(s, r Strategy) Strategy {
	return Choice(s, Seq(r, Fail))
}

// RestoreAlways(s, r) runs r exactly once after s, regardless of s's
// outcome, and propagates s's own success or failure rather than r's.
func RestoreAlways(s, r Strategy) Strategy {
	return Mk("restorealways", func(t term.Term) (term.Term, bool) {
		result, ok := s.Apply(t)
		r.Apply(t)
		return result, ok
	})
}

// Where(s) tests whether s succeeds on the subject, discarding its
// result: on success it returns the original, unmodified subject.
func Where(s Strategy) Strategy {
	return Mk("where", func(t term.Term) (term.Term, bool) {
		if _, ok := s.Apply(t); ok {
			return t, true
		}
		return nil, false
	})
}

// Test is an alias for Where, matching the library's naming for
// condition strategies that are meant to be read for their pass/fail
// outcome rather than their (discarded) result.
func Test(s Strategy) Strategy {
	return Where(s)
}

// Not(s) = guarded(s, fail, id): succeeds, unchanged, exactly when s
// fails, and fails when s succeeds.
func Not(s Strategy) Strategy {
	return Guarded(s, Fail, Id)
}

// And(p, q) succeeds, returning the subject unchanged, iff both p and q
// succeed as tests.
func And(p, q Strategy) Strategy {
	return Where(Seq(Test(p), Test(q)))
}

// Or(p, q) succeeds, returning the subject unchanged, iff at least one of
// p or q succeeds as a test.
func Or(p, q Strategy) Strategy {
	return Where(Choice(Test(p), Test(q)))
}

// Ior is the control-combinator name for Inclusive.
func Ior(p, q Strategy) Strategy {
	return Inclusive(p, q)
}

// Map lifts s element-wise over a Sequence-shaped subject, rebuilding it
// from the results. Fails if the subject is not a Sequence, or if s
// fails on any element.
func Map(s Strategy) Strategy {
	return Mk("map", func(t term.Term) (term.Term, bool) {
		if term.ShapeOf(t) != term.SequenceShape {
			return nil, false
		}
		return All(s).Apply(t)
	})
}

// levelRecord holds one breadth-first generation's rewritten nodes and
// each node's original child count, so the levels can be regrouped and
// rebuilt bottom-up once every node has been visited.
type levelRecord struct {
	nodes       []term.Term
	childCounts []int
}

// Breadthfirst applies s to every node in level order — a shallower
// node's siblings are all visited before any of their children — using a
// gods arraylist as the per-level worklist. Term reconstruction still
// happens bottom-up once a subtree's full set of rewritten children is
// known, since Rebuild requires a complete child list. Fails as soon as s
// fails on any visited node.
func Breadthfirst(s Strategy) Strategy {
	return Mk("breadthfirst", func(t term.Term) (term.Term, bool) {
		levels, ok := breadthfirstVisit(s, t)
		if !ok {
			return nil, false
		}
		return breadthfirstRebuild(levels), true
	})
}

func breadthfirstVisit(s Strategy, root term.Term) ([]levelRecord, bool) {
	frontier := arraylist.New(root)
	var levels []levelRecord
	for !frontier.Empty() {
		nodes := frontier.Values()
		frontier.Clear()
		rewritten := make([]term.Term, len(nodes))
		for i, n := range nodes {
			r, ok := s.Apply(n)
			if !ok {
				return nil, false
			}
			rewritten[i] = r
		}
		childCounts := make([]int, len(rewritten))
		for i, n := range rewritten {
			cs := term.Children(n)
			childCounts[i] = len(cs)
			for _, c := range cs {
				frontier.Add(c)
			}
		}
		levels = append(levels, levelRecord{nodes: rewritten, childCounts: childCounts})
	}
	return levels, true
}

func breadthfirstRebuild(levels []levelRecord) term.Term {
	var childPool []term.Term
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		rebuilt := make([]term.Term, len(lvl.nodes))
		pos := 0
		for j, n := range lvl.nodes {
			cnt := lvl.childCounts[j]
			if cnt == 0 {
				rebuilt[j] = n
				continue
			}
			rebuilt[j] = term.Rebuild(n, childPool[pos:pos+cnt])
			pos += cnt
		}
		childPool = rebuilt
	}
	return childPool[0]
}
