package regexlib

// Shunting-yard translation of a concatenation-normalized pattern into a
// postfix token stream. Precedence: '*' > '.' > '|'; equal precedence pops
// first (left-associative). Unbalanced parentheses are not diagnosed here —
// the compiler rejects the resulting stream instead.

func precedence(r rune) int {
	switch r {
	case '*':
		return 3
	case '.':
		return 2
	case '|':
		return 1
	default: // '(' marker on the stack
		return 0
	}
}

func operatorToken(r rune) token {
	switch r {
	case '.':
		return token{kind: tConcat}
	case '|':
		return token{kind: tAlternate}
	case '*':
		return token{kind: tStar}
	}
	return literalToken(r)
}

func toPostfix(pattern string) []token {
	var out []token
	var ops []rune

	for _, r := range pattern {
		switch r {
		case '(':
			ops = append(ops, r)
		case ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				out = append(out, operatorToken(ops[len(ops)-1]))
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 { // discard the '('
				ops = ops[:len(ops)-1]
			}
		case '*', '.', '|':
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(r) {
				out = append(out, operatorToken(ops[len(ops)-1]))
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, r)
		default:
			out = append(out, literalToken(r))
		}
	}

	for len(ops) > 0 {
		if top := ops[len(ops)-1]; top != '(' {
			out = append(out, operatorToken(top))
		}
		ops = ops[:len(ops)-1]
	}
	return out
}
