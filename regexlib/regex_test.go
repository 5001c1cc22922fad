package regexlib

import (
	"errors"
	"strings"
	"testing"
)

// ------------------------------------------------------------------- helpers

func newRE(t *testing.T, pat string) *NFA {
	t.Helper()
	n, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return n
}

func acc(t *testing.T, n *NFA, in string, want bool) {
	t.Helper()
	if got := n.Match(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", n.Pattern, in, want, got)
	}
}

// ------------------------------------------------------------------- Normalizer

func TestInsertConcat(t *testing.T) {
	cases := map[string]string{
		"ab":       "a.b",
		"a*b":      "a*.b",
		"(a|b)c":   "(a|b).c",
		"a(bc)":    "a.(b.c)",
		"a|b":      "a|b",
		"a**":      "a**",
		"":         "",
		"(a|b)*ab": "(a|b)*.a.b",
	}
	for in, want := range cases {
		if got := insertConcat(in); got != want {
			t.Fatalf("insertConcat(%q) want %q got %q", in, want, got)
		}
	}
}

// ------------------------------------------------------------------- Matching

func TestConcatenation(t *testing.T) {
	n := newRE(t, "ab")
	acc(t, n, "ab", true)
	acc(t, n, "a", false)
	acc(t, n, "b", false)
	acc(t, n, "abc", false)
	acc(t, n, "", false)
}

func TestAlternation(t *testing.T) {
	n := newRE(t, "a|b")
	acc(t, n, "a", true)
	acc(t, n, "b", true)
	acc(t, n, "ab", false)
	acc(t, n, "c", false)
	acc(t, n, "", false)
}

func TestKleeneStar(t *testing.T) {
	n := newRE(t, "a*")
	acc(t, n, "", true)
	acc(t, n, "a", true)
	acc(t, n, "aaaa", true)
	acc(t, n, "b", false)
	acc(t, n, "ab", false)
}

func TestComposite(t *testing.T) {
	n := newRE(t, "(a|b)*abb")
	acc(t, n, "abb", true)
	acc(t, n, "aababb", true)
	acc(t, n, "bbbabb", true)
	acc(t, n, "ababb", true)
	acc(t, n, "ab", false)
	acc(t, n, "a", false)
	acc(t, n, "", false)
}

func TestEmptyString(t *testing.T) {
	for pat, want := range map[string]bool{
		"a*":     true,
		"(a|b)*": true,
		"a":      false,
		"ab":     false,
		"a|b":    false,
	} {
		acc(t, newRE(t, pat), "", want)
	}
}

func TestOpenAlphabet(t *testing.T) {
	// anything that is not an operator compiles as a literal
	n := newRE(t, "#")
	acc(t, n, "#", true)
	acc(t, n, "a", false)
	acc(t, n, "", false)
}

// ------------------------------------------------------------------- Failures

func TestMalformed(t *testing.T) {
	for pat, want := range map[string]error{
		"":   ErrEmptyPattern,
		"*":  ErrOperandUnderflow,
		"|a": ErrOperandUnderflow,
		"a|": ErrOperandUnderflow,
		"a(": ErrOperandUnderflow,
		// '#' gets no concatenation glue, leaving two dangling fragments
		"a#": ErrUnbalancedPattern,
	} {
		n, err := Compile(pat)
		if n != nil || err == nil {
			t.Fatalf("compile %q: want failure got %v, %v", pat, n, err)
		}
		if !errors.Is(err, want) {
			t.Fatalf("compile %q: want %v got %v", pat, want, err)
		}
	}
}

// ------------------------------------------------------------------- Structure

func TestDeterministicStructure(t *testing.T) {
	a := newRE(t, "(a|b)*abb")
	b := newRE(t, "(a|b)*abb")
	if len(a.States) != len(b.States) || a.Start != b.Start || a.Accept != b.Accept {
		t.Fatalf("recompile differs: %d/%d states", len(a.States), len(b.States))
	}
	for i, s := range a.States {
		o := b.States[i]
		if s.Accept != o.Accept || len(s.Edges) != len(o.Edges) {
			t.Fatalf("state %d differs", i)
		}
		for j, e := range s.Edges {
			if o.Edges[j] != e {
				t.Fatalf("state %d edge %d differs: %v vs %v", i, j, e, o.Edges[j])
			}
		}
	}
}

func TestStateIDsDense(t *testing.T) {
	n := newRE(t, "a*(b|c)")
	for i, s := range n.States {
		if s.ID != i {
			t.Fatalf("state %d carries id %d", i, s.ID)
		}
	}
}

// ------------------------------------------------------------------- Simulation

func TestActiveStatesSorted(t *testing.T) {
	n := newRE(t, "(a|b)*")
	res := n.Simulate("ab")
	for i := 1; i < len(res.ActiveStates); i++ {
		if res.ActiveStates[i-1] >= res.ActiveStates[i] {
			t.Fatalf("active states not sorted: %v", res.ActiveStates)
		}
	}
}

func TestDeadInputEmptiesActiveSet(t *testing.T) {
	n := newRE(t, "ab")
	res := n.Simulate("ax")
	if len(res.ActiveStates) != 0 || res.Match {
		t.Fatalf("want empty active set, got %v", res)
	}
	// and it stays empty
	res = n.Simulate("axb")
	if len(res.ActiveStates) != 0 || res.Match {
		t.Fatalf("want empty active set after more input, got %v", res)
	}
}

// Replaying character by character through closure/step must agree with
// Simulate on every prefix.
func TestReplayEquivalence(t *testing.T) {
	n := newRE(t, "(a|b)*abb")
	input := "aababb"

	curr := n.closure(map[int]struct{}{n.Start: {}})
	for i, ch := range input {
		curr = n.closure(n.step(curr, ch))
		res := n.Simulate(input[:i+1])
		if len(res.ActiveStates) != len(curr) {
			t.Fatalf("prefix %q: replay %v vs simulate %v", input[:i+1], curr, res.ActiveStates)
		}
		for _, id := range res.ActiveStates {
			if _, ok := curr[id]; !ok {
				t.Fatalf("prefix %q: state %d missing from replay set", input[:i+1], id)
			}
		}
	}
}

func TestSimulateRepeatable(t *testing.T) {
	n := newRE(t, "a*b")
	first := n.Simulate("aab")
	for i := 0; i < 3; i++ {
		again := n.Simulate("aab")
		if again.Match != first.Match || len(again.ActiveStates) != len(first.ActiveStates) {
			t.Fatalf("simulation not repeatable: %v vs %v", first, again)
		}
	}
}

// ------------------------------------------------------------------- DOT

func TestExportDOT(t *testing.T) {
	n := newRE(t, "a|b")
	var sb strings.Builder
	ExportDOT(&sb, n)
	out := sb.String()
	if !strings.Contains(out, "digraph G {") || !strings.Contains(out, "doublecircle") {
		t.Fatalf("unexpected dot output:\n%s", out)
	}
	if !strings.Contains(out, "ε") {
		t.Fatalf("dot output lacks epsilon labels:\n%s", out)
	}
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkMillionAs(b *testing.B) {
	n := MustCompile("a*b")
	txt := strings.Repeat("a", 1_000_000) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Match(txt)
	}
}
