package roman

import "strings"

// Decode converts a Roman numeral string to its integer value. A nil opts
// uses the process-wide defaults (see Configure).
//
// The pipeline runs: empty check → case fold (IgnoreCase) → zero token
// (Zero) → canonical-table fast path → letter validation → lexing →
// sequence validation (Strict) → summation, halting on the first failure.
// The fast path is purely a shortcut: every table entry is itself
// strict-valid, so an exact hit is indistinguishable from a full run.
func Decode(input string, opts *Options) (int, error) {
	o := resolve(opts)
	if input == "" {
		return 0, ErrEmptyString
	}
	s := input
	if o.IgnoreCase {
		s = strings.ToUpper(s)
	}
	if o.Zero && s == zeroNumeral {
		return 0, nil
	}
	if v, ok := valueOf[s]; ok {
		return v, nil
	}
	if err := validateLetters(s, o.Strict); err != nil {
		return 0, report(err, o.Explain)
	}
	toks := lex(s)
	if o.Strict {
		if err := validateSequence(toks); err != nil {
			return 0, report(err, o.Explain)
		}
	}
	sum := 0
	for _, tok := range toks {
		sum += tok.Value
	}

	return sum, nil
}

// MustDecode is Decode for inputs known to be valid: it panics on any
// decoding error instead of returning it.
func MustDecode(input string, opts *Options) int {
	v, err := Decode(input, opts)
	if err != nil {
		panic(err)
	}

	return v
}

// IsNumeral reports whether input decodes successfully under opts.
func IsNumeral(input string, opts *Options) bool {
	_, err := Decode(input, opts)

	return err == nil
}

// report applies the Explain policy to a validation error: pass the
// diagnostic through when explaining, otherwise collapse it to the bare
// ErrNumeral. ErrEmptyString never reaches here; it is always verbatim.
func report(err error, explain bool) error {
	if explain {
		return err
	}

	return ErrNumeral
}
