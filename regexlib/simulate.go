package regexlib

import (
	"container/list"
	"sort"
)

// Result of running an input string through an automaton.
type Result struct {
	ActiveStates []int // sorted state ids active after the full input
	Match        bool
}

/* ------------------- симуляция NFA ------------------------- */

// Simulate consumes input rune by rune, tracking the epsilon-closure of the
// reachable state set. It never fails: a rune with no outgoing transition
// simply empties the active set, and an empty set stays empty.
func (n *NFA) Simulate(input string) Result {
	curr := n.closure(map[int]struct{}{n.Start: {}})

	for _, ch := range input {
		curr = n.closure(n.step(curr, ch))
	}

	ids := make([]int, 0, len(curr))
	match := false
	for id := range curr {
		ids = append(ids, id)
		if n.States[id].Accept {
			match = true
		}
	}
	sort.Ints(ids)
	return Result{ActiveStates: ids, Match: match}
}

// Match reports whether the automaton accepts input.
func (n *NFA) Match(input string) bool { return n.Simulate(input).Match }

// closure extends set with every state reachable over epsilon edges.
// Worklist traversal with set-membership dedup, safe on epsilon cycles.
func (n *NFA) closure(set map[int]struct{}) map[int]struct{} {
	stack := list.New()
	for id := range set {
		stack.PushBack(id)
	}
	for stack.Len() > 0 {
		id := stack.Remove(stack.Back()).(int)
		for _, e := range n.States[id].Edges {
			if e.Symbol == Epsilon {
				if _, ok := set[e.To]; !ok {
					set[e.To] = struct{}{}
					stack.PushBack(e.To)
				}
			}
		}
	}
	return set
}

// step returns the states reachable from set on a single literal rune.
func (n *NFA) step(set map[int]struct{}, ch rune) map[int]struct{} {
	next := make(map[int]struct{})
	for id := range set {
		for _, e := range n.States[id].Edges {
			if e.Symbol == ch {
				next[e.To] = struct{}{}
			}
		}
	}
	return next
}
