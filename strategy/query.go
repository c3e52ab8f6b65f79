package strategy

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Query aggregators walk a term top-down, left-to-right, gathering results
rather than rewriting. They are plain functions, not Strategy values,
because their output is a collection or a fold, never an Option<Term>.
*/

import (
	"github.com/redexlang/redex/term"
)

// Collect walks root top-down and appends f's result at every node where
// f succeeds.
func Collect[T any](f func(term.Term) (T, bool)) func(root term.Term) []T {
	return func(root term.Term) []T {
		var out []T
		var walk func(term.Term)
		walk = func(t term.Term) {
			if v, ok := f(t); ok {
				out = append(out, v)
			}
			for _, c := range term.Children(t) {
				walk(c)
			}
		}
		walk(root)
		return out
	}
}

// CollectAll is Collect for an f that itself yields a batch of results
// per node; every batch is concatenated in visitation order.
func CollectAll[T any](f func(term.Term) ([]T, bool)) func(root term.Term) []T {
	return func(root term.Term) []T {
		var out []T
		var walk func(term.Term)
		walk = func(t term.Term) {
			if vs, ok := f(t); ok {
				out = append(out, vs...)
			}
			for _, c := range term.Children(t) {
				walk(c)
			}
		}
		walk(root)
		return out
	}
}

// Count sums f's result over every node where f succeeds.
func Count(f func(term.Term) (int, bool)) func(root term.Term) int {
	return func(root term.Term) int {
		total := 0
		var walk func(term.Term)
		walk = func(t term.Term) {
			if v, ok := f(t); ok {
				total += v
			}
			for _, c := range term.Children(t) {
				walk(c)
			}
		}
		walk(root)
		return total
	}
}

// Everything folds f's result at every node into an accumulator seeded
// with zero, via combine, in top-down left-to-right order.
func Everything[T any](zero T, combine func(acc, next T) T, f func(term.Term) (T, bool)) func(root term.Term) T {
	return func(root term.Term) T {
		acc := zero
		var walk func(term.Term)
		walk = func(t term.Term) {
			if v, ok := f(t); ok {
				acc = combine(acc, v)
			}
			for _, c := range term.Children(t) {
				walk(c)
			}
		}
		walk(root)
		return acc
	}
}

// Para is a paramorphism: it folds a term bottom-up, giving f both the
// current node and the already-folded results of its children.
func Para[T any](f func(t term.Term, childResults []T) T) func(root term.Term) T {
	var rec func(term.Term) T
	rec = func(t term.Term) T {
		children := term.Children(t)
		results := make([]T, len(children))
		for i, c := range children {
			results[i] = rec(c)
		}
		return f(t, results)
	}
	return rec
}
