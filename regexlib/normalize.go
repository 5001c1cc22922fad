package regexlib

import "unicode"

// insertConcat rewrites a pattern so every implicit concatenation carries an
// explicit '.' operator: "ab" → "a.b", "a*(b|c)" → "a*.(b|c)". The rewrite is
// purely syntactic; malformed patterns pass through and fail later stages.
func insertConcat(pattern string) string {
	runes := []rune(pattern)
	out := make([]rune, 0, 2*len(runes))
	for i, r := range runes {
		out = append(out, r)
		if i+1 == len(runes) {
			break
		}
		next := runes[i+1]
		if concatLeft(r) && concatRight(next) {
			out = append(out, '.')
		}
	}
	return string(out)
}

func concatLeft(r rune) bool  { return isAlnum(r) || r == '*' || r == ')' }
func concatRight(r rune) bool { return isAlnum(r) || r == '(' }

func isAlnum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
