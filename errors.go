package roman

import "errors"

// Sentinel errors for decoding and encoding. Detailed diagnostics are
// attached by wrapping, so callers match with errors.Is.
var (
	// ErrEmptyString indicates an empty input; it is never collapsed into
	// ErrNumeral, regardless of Options.Explain.
	ErrEmptyString = errors.New("roman: empty string is not a valid numeral")

	// ErrBadLetter indicates a character outside the numeral alphabet
	// I, V, X, L, C, D, M.
	ErrBadLetter = errors.New("roman: invalid letter")

	// ErrRepeatedSingleLetter indicates V, L or D occurring more than once.
	ErrRepeatedSingleLetter = errors.New("roman: letter allowed at most once")

	// ErrLetterRunTooLong indicates a run of four or more identical letters.
	ErrLetterRunTooLong = errors.New("roman: identical letter sequence too long")

	// ErrSequenceIncreasing indicates a token followed by a strictly
	// larger one, e.g. V before X.
	ErrSequenceIncreasing = errors.New("roman: sequence must be non-increasing")

	// ErrValueExceedsSubtraction indicates a token at or above the active
	// subtraction bound set by an earlier subtractive pair, e.g. the C in CMC.
	ErrValueExceedsSubtraction = errors.New("roman: value not under active subtraction")

	// ErrNumeral is the generic rejection reported when Options.Explain is
	// false; it carries no diagnostic detail.
	ErrNumeral = errors.New("roman: invalid numeral")

	// ErrIntegerRange indicates an Encode value outside 1..3999.
	ErrIntegerRange = errors.New("roman: integer out of range 1..3999")
)
