package strategy

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cnf/structhash"
	"github.com/redexlang/redex/emit"
	"github.com/redexlang/redex/term"
)

// Rule lifts a Go function into a Strategy that first tests the subject's
// dynamic type against T. A subject of the wrong type is a failure, not a
// panic: the type switch that other languages perform via pattern
// matching or a caught cast exception is, in Go, simply a comma-ok type
// assertion.
func Rule[T any](p func(T) (term.Term, bool)) Strategy {
	return typedPartial("rule", p)
}

// StrategyOf has the same contract as Rule: it exists as a separate name
// because rule and strategy are distinct builders in the combinator
// library this package implements, even though Go's type system makes
// their bodies identical (see DESIGN.md).
func StrategyOf[T any](p func(T) (term.Term, bool)) Strategy {
	return typedPartial("strategy", p)
}

func typedPartial[T any](name string, p func(T) (term.Term, bool)) Strategy {
	return Mk(name, func(t term.Term) (term.Term, bool) {
		v, ok := t.(T)
		if !ok {
			return nil, false
		}
		return p(v)
	})
}

// RuleF always applies, transforming every subject via f.
func RuleF(f func(term.Term) term.Term) Strategy {
	return Mk("rulef", func(t term.Term) (term.Term, bool) {
		return f(t), true
	})
}

// RuleFS type-tests the subject against T; on match, p yields a Strategy
// to apply to the original subject. Fails if the type test fails or if p
// itself reports no match.
func RuleFS[T any](p func(T) (Strategy, bool)) Strategy {
	return Mk("rulefs", func(t term.Term) (term.Term, bool) {
		v, ok := t.(T)
		if !ok {
			return nil, false
		}
		s, ok := p(v)
		if !ok {
			return nil, false
		}
		return s.Apply(t)
	})
}

// StrategyF always applies f and reports whatever success/failure f
// itself reports; unlike RuleF, f may fail.
func StrategyF(f func(term.Term) (term.Term, bool)) Strategy {
	return Mk("strategyf", f)
}

// Build ignores its subject and always succeeds with t.
func Build(t term.Term) Strategy {
	return Mk("build", func(term.Term) (term.Term, bool) {
		return t, true
	})
}

// TermEq succeeds, returning t, when the subject is structurally equal to
// t; fails otherwise.
func TermEq(t term.Term) Strategy {
	return Mk("term", func(subject term.Term) (term.Term, bool) {
		if reflect.DeepEqual(subject, t) {
			return t, true
		}
		return nil, false
	})
}

// OptionOf lifts an already-computed (Term, bool) pair into a Strategy
// that ignores its subject.
func OptionOf(result term.Term, ok bool) Strategy {
	return Mk("option", func(term.Term) (term.Term, bool) {
		return result, ok
	})
}

// Query type-tests the subject against T; on match it runs p for its
// side effect and succeeds, returning the subject unchanged. Fails on a
// type mismatch.
func Query[T any](p func(T)) Strategy {
	return Mk("query", func(t term.Term) (term.Term, bool) {
		v, ok := t.(T)
		if !ok {
			return nil, false
		}
		p(v)
		return t, true
	})
}

// QueryF always applies, running f for its side effect and succeeding
// with the subject unchanged.
func QueryF(f func(term.Term)) Strategy {
	return Mk("queryf", func(t term.Term) (term.Term, bool) {
		f(t)
		return t, true
	})
}

// Debug always succeeds, emitting msg and the subject to e.
func Debug(msg string, e emit.Emitter) Strategy {
	return Mk("debug", func(t term.Term) (term.Term, bool) {
		e.Emitln(fmt.Sprintf("%s: %v", msg, t))
		return t, true
	})
}

// Log applies s, reporting both success and failure to e.
func Log(s Strategy, msg string, e emit.Emitter) Strategy {
	return Mk("log", func(t term.Term) (term.Term, bool) {
		r, ok := s.Apply(t)
		if ok {
			e.Emitln(fmt.Sprintf("%s: %v -> %v", msg, t, r))
		} else {
			e.Emitln(fmt.Sprintf("%s: %v -> fail", msg, t))
		}
		return r, ok
	})
}

// LogFail applies s, reporting to e only when s fails. If e is a
// *emit.PtermEmitter, the failure line is emitted with Failing set so it
// renders through pterm.Error rather than pterm.Info.
func LogFail(s Strategy, msg string, e emit.Emitter) Strategy {
	return Mk("logfail", func(t term.Term) (term.Term, bool) {
		r, ok := s.Apply(t)
		if !ok {
			if pe, isPterm := e.(*emit.PtermEmitter); isPterm {
				prev := pe.Failing
				pe.Failing = true
				pe.Emitln(fmt.Sprintf("%s: %v -> fail", msg, t))
				pe.Failing = prev
			} else {
				e.Emitln(fmt.Sprintf("%s: %v -> fail", msg, t))
			}
		}
		return r, ok
	})
}

type memoEntry struct {
	result term.Term
	ok     bool
}

// Memo caches s's outcome per distinct subject. Subjects with reference
// identity (pointers, maps, channels, funcs) are keyed by that identity;
// everything else is keyed by a structural hash (structhash), for values
// that can't be compared cheaply any other way. Two goroutines racing on
// the same uncached subject may both compute s(t); the cache only risks
// duplicated work, never an incorrect result, since the last write
// always reflects a real evaluation of s.
func Memo(s Strategy) Strategy {
	var mu sync.Mutex
	cache := make(map[string]memoEntry)
	return Mk("memo", func(t term.Term) (term.Term, bool) {
		key := memoKey(t)
		mu.Lock()
		if e, found := cache[key]; found {
			mu.Unlock()
			return e.result, e.ok
		}
		mu.Unlock()
		r, ok := s.Apply(t)
		mu.Lock()
		cache[key] = memoEntry{result: r, ok: ok}
		mu.Unlock()
		return r, ok
	})
}

func memoKey(t term.Term) string {
	rv := reflect.ValueOf(t)
	if rv.IsValid() {
		switch rv.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return fmt.Sprintf("ptr:%d", rv.Pointer())
		}
	}
	h, err := structhash.Hash(t, 1)
	if err != nil {
		tracer().Debugf("memo: structhash failed for %T, falling back to fmt: %v", t, err)
		return fmt.Sprintf("fmt:%v", t)
	}
	return "hash:" + h
}
