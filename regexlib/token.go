package regexlib

type tokenKind int

const (
	tLiteral   tokenKind = iota // literal input rune
	tConcat                     // explicit concatenation '.'
	tAlternate                  // '|'
	tStar                       // '*'
)

type token struct {
	kind tokenKind
	ch   rune // for tLiteral
}

func literalToken(r rune) token { return token{kind: tLiteral, ch: r} }

func (t token) String() string {
	switch t.kind {
	case tConcat:
		return "."
	case tAlternate:
		return "|"
	case tStar:
		return "*"
	default:
		return string(t.ch)
	}
}
