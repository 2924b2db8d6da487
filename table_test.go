package roman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairs_Shape verifies the table contract: exactly 3999 entries,
// strictly ascending values with no gaps, every numeral unique.
func TestPairs_Shape(t *testing.T) {
	pairs := Pairs()
	require.Len(t, pairs, MaxNumeral)

	seen := make(map[string]bool, len(pairs))
	for i, p := range pairs {
		require.Equal(t, i+1, p.Value, "values must be 1..3999 with no gaps")
		require.False(t, seen[p.Numeral], "numeral %q appears twice", p.Numeral)
		seen[p.Numeral] = true
	}
}

// TestPairs_FreshCopy verifies that callers may mutate the returned slice
// without corrupting later enumerations.
func TestPairs_FreshCopy(t *testing.T) {
	first := Pairs()
	first[0].Numeral = "garbage"
	assert.Equal(t, "I", Pairs()[0].Numeral)
}

// TestTable_EntriesAreStrictValid verifies the fast-path soundness
// argument: every canonical numeral passes the full strict pipeline and
// sums back to its own value, so skipping validation on a table hit is
// behaviorally invisible.
func TestTable_EntriesAreStrictValid(t *testing.T) {
	for _, p := range Pairs() {
		require.NoError(t, validateLetters(p.Numeral, true), p.Numeral)
		toks := lex(p.Numeral)
		require.NoError(t, validateSequence(toks), p.Numeral)

		sum := 0
		for _, tok := range toks {
			sum += tok.Value
		}
		require.Equal(t, p.Value, sum, "canonical %q must sum to its value", p.Numeral)
	}
}

// TestTable_KnownAnchors spot-checks a few well-known values against the
// embedded table.
func TestTable_KnownAnchors(t *testing.T) {
	anchors := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		400:  "CD",
		900:  "CM",
		1910: "MCMX",
		1954: "MCMLIV",
		3999: "MMMCMXCIX",
	}
	for v, want := range anchors {
		assert.Equal(t, want, numeralOf[v], "value %d", v)
		assert.Equal(t, v, valueOf[want], "numeral %s", want)
	}
}
