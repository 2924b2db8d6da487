package roman

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

// numeralData is the canonical numeral table: one "<value> <numeral>" line
// per value 1..3999, ascending. It is the single source of truth for
// Encode, the Decode fast path, and Pairs.
//
//go:embed numerals.txt
var numeralData string

// Pair is one (value, canonical numeral) table entry.
type Pair struct {
	Value   int
	Numeral string
}

var (
	// numeralOf[v] is the canonical numeral for v; index 0 is unused.
	numeralOf [MaxNumeral + 1]string
	// valueOf maps each canonical numeral back to its value.
	valueOf map[string]int
)

func init() {
	mustLoadTable()
}

// mustLoadTable parses the embedded table and builds both lookup
// directions. The table is trusted input shipped with the package, so any
// defect — wrong count, gap, bad ordering, duplicate numeral — is a fatal
// initialization error, not something a caller can meet per call.
func mustLoadTable() {
	valueOf = make(map[string]int, MaxNumeral)
	lines := strings.Split(strings.TrimRight(numeralData, "\n"), "\n")
	if len(lines) != MaxNumeral {
		panic(fmt.Sprintf("roman: numeral table holds %d entries, want %d", len(lines), MaxNumeral))
	}
	for i, line := range lines {
		value, numeral, ok := strings.Cut(line, " ")
		if !ok || numeral == "" {
			panic(fmt.Sprintf("roman: malformed numeral table line %d: %q", i+1, line))
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			panic(fmt.Sprintf("roman: malformed numeral table value on line %d: %q", i+1, line))
		}
		if v != i+1 {
			panic(fmt.Sprintf("roman: numeral table out of order on line %d: got value %d", i+1, v))
		}
		if _, dup := valueOf[numeral]; dup {
			panic(fmt.Sprintf("roman: duplicate numeral %q on line %d", numeral, i+1))
		}
		numeralOf[v] = numeral
		valueOf[numeral] = v
	}
}

// Pairs returns all 3999 (value, numeral) pairs ascending by value. The
// slice is freshly allocated on each call; mutate it freely.
func Pairs() []Pair {
	pairs := make([]Pair, MaxNumeral)
	for v := 1; v <= MaxNumeral; v++ {
		pairs[v-1] = Pair{Value: v, Numeral: numeralOf[v]}
	}

	return pairs
}
