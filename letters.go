package roman

import (
	"fmt"
	"strings"
)

// validateLetters enforces the letter-level composition rules over a
// non-empty, already case-folded string:
//
//  1. Alphabet — every character is one of I, V, X, L, C, D, M.
//  2. Run length (strict only) — no 4+ run of one letter.
//  3. Single occurrence (strict only) — V, L, D at most once each.
//
// Checks run in that exact order and the first failing check wins, so an
// input with several defects reports a deterministic rule. The string is
// returned untouched on success; this stage validates, never transforms.
func validateLetters(s string, strict bool) error {
	if err := checkAlphabet(s); err != nil {
		return err
	}
	if !strict {
		return nil
	}
	if err := checkRuns(s); err != nil {
		return err
	}

	return checkSingles(s)
}

// checkAlphabet rejects any character outside the numeral alphabet,
// listing each distinct offender in first-seen order.
func checkAlphabet(s string) error {
	var offenders []string
	seen := make(map[rune]bool)
	for _, r := range s {
		if r < 128 {
			if _, ok := letterValue[byte(r)]; ok {
				continue
			}
		}
		if !seen[r] {
			seen[r] = true
			offenders = append(offenders, fmt.Sprintf("%q", r))
		}
	}
	if len(offenders) > 0 {
		return fmt.Errorf("%w: %s", ErrBadLetter, strings.Join(offenders, ", "))
	}

	return nil
}

// maxRun is the longest permitted run of one letter in strict mode.
const maxRun = 3

// checkRuns rejects any run of more than maxRun identical letters,
// listing every letter with at least one overlong run, first-seen order.
func checkRuns(s string) error {
	var offenders []string
	flagged := make(map[byte]bool)
	run := 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > maxRun && !flagged[s[i]] {
			flagged[s[i]] = true
			offenders = append(offenders, string(s[i]))
		}
	}
	if len(offenders) > 0 {
		return fmt.Errorf("%w: %s", ErrLetterRunTooLong, strings.Join(offenders, ", "))
	}

	return nil
}

// checkSingles rejects a second occurrence of V, L or D, listing offenders
// in the order their second occurrence was found.
func checkSingles(s string) error {
	var offenders []string
	count := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 'V', 'L', 'D':
			count[c]++
			if count[c] == 2 {
				offenders = append(offenders, string(c))
			}
		}
	}
	if len(offenders) > 0 {
		return fmt.Errorf("%w: %s", ErrRepeatedSingleLetter, strings.Join(offenders, ", "))
	}

	return nil
}
