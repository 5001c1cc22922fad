package regexlib

import "errors"

/* ----------- Компиляция ----------- */

var (
	// ErrEmptyPattern: the pattern normalizes to an empty postfix stream.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrOperandUnderflow: an operator had fewer operands than it requires,
	// e.g. a leading '*' or '|'.
	ErrOperandUnderflow = errors.New("operator with missing operand")
	// ErrUnbalancedPattern: more than one fragment survived construction,
	// e.g. adjacent operands with no operator joining them.
	ErrUnbalancedPattern = errors.New("unbalanced pattern")
)

// Compile turns a pattern over {alphanumerics, '(', ')', '|', '*'} into a
// Thompson NFA. Any other rune is treated as a literal. Malformed patterns
// yield a nil automaton and an error, never a panic.
func Compile(pattern string) (*NFA, error) {
	postfix := toPostfix(insertConcat(pattern))
	nfa, err := buildNFA(postfix)
	if err != nil {
		return nil, err
	}
	nfa.Pattern = pattern
	return nfa, nil
}

func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return n
}
