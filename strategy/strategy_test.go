package strategy

import (
	"testing"

	"github.com/redexlang/redex/internal/arith"
	"github.com/redexlang/redex/term"
)

func addOne(n arith.Num) (term.Term, bool) {
	return arith.Num{V: n.V + 1}, true
}

func TestIdReturnsSameObject(t *testing.T) {
	n := arith.Num{V: 3}
	r, ok := Id.Apply(n)
	if !ok {
		t.Fatalf("Id failed on %v", n)
	}
	if r != n {
		t.Errorf("Id(%v) = %v, want the same value", n, r)
	}
}

func TestFailAlwaysFails(t *testing.T) {
	if _, ok := Fail.Apply(arith.Num{V: 1}); ok {
		t.Errorf("Fail succeeded")
	}
}

func TestSeqIdentityLaws(t *testing.T) {
	s := Rule(addOne)
	n := arith.Num{V: 1}

	r1, ok1 := Seq(Id, s).Apply(n)
	r2, ok2 := s.Apply(n)
	if ok1 != ok2 || r1 != r2 {
		t.Errorf("seq(id, s)(t) = (%v,%v), want s(t) = (%v,%v)", r1, ok1, r2, ok2)
	}

	r3, ok3 := Seq(s, Id).Apply(n)
	if ok3 != ok2 || r3 != r2 {
		t.Errorf("seq(s, id)(t) = (%v,%v), want s(t) = (%v,%v)", r3, ok3, r2, ok2)
	}
}

func TestChoiceIdentityLaws(t *testing.T) {
	s := Rule(addOne)
	n := arith.Num{V: 1}

	r1, ok1 := Choice(Fail, s).Apply(n)
	r2, ok2 := s.Apply(n)
	if ok1 != ok2 || r1 != r2 {
		t.Errorf("choice(fail, s)(t) = (%v,%v), want s(t) = (%v,%v)", r1, ok1, r2, ok2)
	}

	r3, ok3 := Choice(s, Fail).Apply(n)
	if ok3 != ok2 || r3 != r2 {
		t.Errorf("choice(s, fail)(t) = (%v,%v), want s(t) = (%v,%v)", r3, ok3, r2, ok2)
	}
}

func TestAttemptAlwaysSucceeds(t *testing.T) {
	n := arith.Num{V: 5}
	if r, ok := Attempt(Fail).Apply(n); !ok || r != n {
		t.Errorf("attempt(fail)(t) = (%v,%v), want (t,true)", r, ok)
	}
	if _, ok := Attempt(Rule(addOne)).Apply(n); !ok {
		t.Errorf("attempt(s)(t) failed, want always Some(_)")
	}
}

func TestNotSucceedsExactlyWhenSFails(t *testing.T) {
	n := arith.Num{V: 5}
	s := Rule(addOne)
	_, sOk := s.Apply(n)
	r, ok := Not(s).Apply(n)
	if ok == sOk {
		t.Fatalf("not(s)(t) succeeded=%v, want != s succeeded=%v", ok, sOk)
	}
	if !sOk && r != n {
		t.Errorf("not(s)(t) = %v, want t unchanged when s fails", r)
	}
}

func TestLazyBuildsExactlyOnce(t *testing.T) {
	calls := 0
	s := Lazy(func() Strategy {
		calls++
		return Id
	})
	s.Apply(arith.Num{V: 1})
	s.Apply(arith.Num{V: 2})
	if calls != 1 {
		t.Errorf("Lazy invoked its builder %d times, want 1", calls)
	}
}

func TestMemoCachesResult(t *testing.T) {
	calls := 0
	base := Mk("count", func(x term.Term) (term.Term, bool) {
		calls++
		return x, true
	})
	memoized := Memo(base)
	n := arith.Num{V: 7}
	memoized.Apply(n)
	memoized.Apply(n)
	if calls != 1 {
		t.Errorf("Memo re-evaluated an already-cached subject: calls = %d, want 1", calls)
	}
}
