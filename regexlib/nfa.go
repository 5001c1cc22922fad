package regexlib

// Epsilon is the transition symbol consumed without reading input.
const Epsilon rune = 0

// Edge is a labeled transition to a successor state in the same automaton.
type Edge struct {
	Symbol rune // Epsilon or a literal rune
	To     int
}

// State is a node of the automaton graph. Identifiers are assigned
// monotonically from 0 within one compilation and index into NFA.States.
type State struct {
	ID     int
	Accept bool
	Edges  []Edge
}

// NFA is a compiled automaton: an arena of states plus the entry and exit
// identifiers of the outermost fragment. Immutable once Compile returns.
type NFA struct {
	Pattern string
	Start   int
	Accept  int
	States  []*State
}

/* ----------- Thompson construction ----------- */

type frag struct {
	start, end int
}

type builder struct {
	states []*State
}

func (b *builder) newState() int {
	s := &State{ID: len(b.states)}
	b.states = append(b.states, s)
	return s.ID
}

func (b *builder) addEdge(from int, sym rune, to int) {
	s := b.states[from]
	s.Edges = append(s.Edges, Edge{Symbol: sym, To: to})
}

// pushLiteral builds the two-state fragment for a single input rune.
// Every fresh fragment's end starts out accepting; composition clears the
// flag when a larger fragment subsumes it.
func (b *builder) pushLiteral(stack []frag, r rune) []frag {
	s1 := b.newState()
	s2 := b.newState()
	b.addEdge(s1, r, s2)
	b.states[s2].Accept = true
	return append(stack, frag{start: s1, end: s2})
}

func buildNFA(tokens []token) (*NFA, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyPattern
	}

	b := &builder{}
	var stack []frag
	pop := func() (frag, bool) {
		if len(stack) == 0 {
			return frag{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, t := range tokens {
		switch t.kind {
		case tLiteral:
			stack = b.pushLiteral(stack, t.ch)

		case tConcat:
			f2, ok2 := pop()
			f1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, ErrOperandUnderflow
			}
			b.states[f1.end].Accept = false
			b.addEdge(f1.end, Epsilon, f2.start)
			stack = append(stack, frag{start: f1.start, end: f2.end})

		case tAlternate:
			f2, ok2 := pop()
			f1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, ErrOperandUnderflow
			}
			start := b.newState()
			end := b.newState()
			b.addEdge(start, Epsilon, f1.start)
			b.addEdge(start, Epsilon, f2.start)
			b.states[f1.end].Accept = false
			b.states[f2.end].Accept = false
			b.addEdge(f1.end, Epsilon, end)
			b.addEdge(f2.end, Epsilon, end)
			b.states[end].Accept = true
			stack = append(stack, frag{start: start, end: end})

		case tStar:
			f, ok := pop()
			if !ok {
				return nil, ErrOperandUnderflow
			}
			start := b.newState()
			end := b.newState()
			b.addEdge(start, Epsilon, f.start)
			b.addEdge(start, Epsilon, end) // zero-iteration path
			b.states[f.end].Accept = false
			b.addEdge(f.end, Epsilon, f.start) // loop back
			b.addEdge(f.end, Epsilon, end)
			b.states[end].Accept = true
			stack = append(stack, frag{start: start, end: end})
		}
	}

	if len(stack) != 1 {
		return nil, ErrUnbalancedPattern
	}
	final := stack[0]
	b.states[final.end].Accept = true
	return &NFA{Start: final.start, Accept: final.end, States: b.states}, nil
}
