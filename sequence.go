package roman

import "fmt"

// validateSequence enforces the sequence-level composition rules over a
// lexed token sequence. It runs only in strict mode.
//
// Rule A — non-increasing order. Adjacent tokens are compared pairwise by
// combined value (IX counts as 9, not 10), and the left token must be ≥
// the right one.
//
// Rule B — subtraction bound. A subtractive pair establishes an active
// delta, the amount it subtracted. Every later token must stay strictly
// below the active delta; a later subtractive pair is first checked
// against the bound, then supersedes it with its own delta. "CMC" fails
// here: CM sets the bound to 100, and the trailing C (100) is not under it.
//
// Rule A is exhausted before Rule B starts, so inputs violating both
// report the ordering defect. The sequence is returned unchanged on
// success.
func validateSequence(toks []Token) error {
	for i := 1; i < len(toks); i++ {
		left, right := toks[i-1], toks[i]
		if left.Value < right.Value {
			return fmt.Errorf("%w: %s before %s", ErrSequenceIncreasing, left, right)
		}
	}

	var bound Token // zero Delta: no active bound yet
	for _, tok := range toks {
		if bound.Delta > 0 && tok.Value >= bound.Delta {
			return fmt.Errorf("%w: %s after %s set the bound to %d",
				ErrValueExceedsSubtraction, tok, bound.Text, bound.Delta)
		}
		if tok.Subtractive() {
			bound = tok
		}
	}

	return nil
}
