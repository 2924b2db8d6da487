package roman

// lex segments an alphabet-validated string into tokens, left to right.
// Matching is greedy and never backtracks: at each position the six
// two-letter subtractive pairs are tried first, then the seven single
// letters. On such input lexing cannot fail, and it never detects
// composition errors either — "VX" lexes happily into two tokens; the
// sequence validator is the stage that rejects it.
func lex(s string) []Token {
	toks := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		if i+1 < len(s) {
			if tok, ok := pairToken[s[i:i+2]]; ok {
				toks = append(toks, tok)
				i += 2
				continue
			}
		}
		toks = append(toks, Token{Text: s[i : i+1], Value: letterValue[s[i]]})
		i++
	}

	return toks
}
