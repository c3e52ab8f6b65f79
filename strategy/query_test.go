package strategy

import (
	"testing"

	"github.com/redexlang/redex/internal/arith"
	"github.com/redexlang/redex/term"
)

func TestCollectVariableNames(t *testing.T) {
	renamed := arith.Add{
		L: arith.Var{Name: "y"},
		R: arith.Mul{L: arith.Var{Name: "y"}, R: arith.Var{Name: "z"}},
	}
	names := Collect(func(t term.Term) (string, bool) {
		v, ok := t.(arith.Var)
		if !ok {
			return "", false
		}
		return v.Name, true
	})(renamed)
	want := []string{"y", "y", "z"}
	if len(names) != len(want) {
		t.Fatalf("collect(var names) = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCountAdditions(t *testing.T) {
	input := arith.Add{L: arith.Num{V: 1}, R: arith.Add{L: arith.Num{V: 2}, R: arith.Num{V: 3}}}
	total := Count(func(t term.Term) (int, bool) {
		if _, ok := t.(arith.Add); ok {
			return 1, true
		}
		return 0, false
	})(input)
	if total != 2 {
		t.Errorf("count(additions) = %d, want 2", total)
	}
}

func TestCollectAllConcatenatesBatches(t *testing.T) {
	input := arith.Add{L: arith.Var{Name: "a"}, R: arith.Var{Name: "b"}}
	letters := CollectAll(func(t term.Term) ([]rune, bool) {
		v, ok := t.(arith.Var)
		if !ok {
			return nil, false
		}
		return []rune(v.Name), true
	})(input)
	if string(letters) != "ab" {
		t.Errorf("collectall(letters) = %q, want %q", string(letters), "ab")
	}
}

func TestEverythingSumsNumericLeaves(t *testing.T) {
	input := arith.Add{L: arith.Num{V: 3}, R: arith.Mul{L: arith.Num{V: 4}, R: arith.Num{V: 5}}}
	total := Everything(0, func(a, b int) int { return a + b }, func(t term.Term) (int, bool) {
		n, ok := t.(arith.Num)
		if !ok {
			return 0, false
		}
		return n.V, true
	})(input)
	if total != 12 {
		t.Errorf("everything(sum)(t) = %d, want 12", total)
	}
}

func TestParaCountsNodes(t *testing.T) {
	input := arith.Add{L: arith.Num{V: 1}, R: arith.Mul{L: arith.Num{V: 2}, R: arith.Num{V: 3}}}
	sizeOf := Para(func(_ term.Term, childSizes []int) int {
		total := 1
		for _, s := range childSizes {
			total += s
		}
		return total
	})
	if got := sizeOf(input); got != 5 {
		t.Errorf("para(size)(t) = %d, want 5", got)
	}
}
