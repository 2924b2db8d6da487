package roman

import "fmt"

// MaxNumeral is the largest value expressible as a classical numeral.
const MaxNumeral = 3999

// zeroNumeral is the medieval zero token accepted when Options.Zero is set.
const zeroNumeral = "N"

// letterValue maps each numeral letter to its value. Any byte absent from
// this map is outside the alphabet.
var letterValue = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// pairToken maps the six subtractive pairs to their tokens. The lexer
// consults this map before falling back to single letters, giving
// leftmost-longest matching without backtracking.
var pairToken = map[string]Token{
	"CM": {Text: "CM", Value: 900, Delta: 100},
	"CD": {Text: "CD", Value: 400, Delta: 100},
	"XC": {Text: "XC", Value: 90, Delta: 10},
	"XL": {Text: "XL", Value: 40, Delta: 10},
	"IX": {Text: "IX", Value: 9, Delta: 1},
	"IV": {Text: "IV", Value: 4, Delta: 1},
}

// Token is a value-bearing segment of a numeral: either a single letter or
// one of the six subtractive pairs. Tokens are immutable once constructed.
type Token struct {
	// Text is the source letters, one or two of them.
	Text string
	// Value is the token's combined value (IX carries 9, not 10 or 1).
	Value int
	// Delta is the subtracted amount for a subtractive pair (the smaller
	// letter's value), and 0 for a plain letter.
	Delta int
}

// Subtractive reports whether the token is one of the six subtractive pairs.
func (t Token) Subtractive() bool { return t.Delta > 0 }

// String renders the token as it appears in diagnostics, e.g. "IX (9)".
func (t Token) String() string { return fmt.Sprintf("%s (%d)", t.Text, t.Value) }
