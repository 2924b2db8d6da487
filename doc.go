// Package roman converts between Roman numeral strings and integers in
// 1..3999, enforcing the classical composition grammar instead of accepting
// every string that merely looks numeral-ish.
//
// What:
//
//   - Decode / MustDecode — numeral string → integer, through a staged
//     validation pipeline (alphabet → repetition limits → lexing →
//     ordering & subtraction bounds → summation).
//   - Encode — integer → canonical numeral, a pure table lookup.
//   - IsNumeral — boolean convenience over Decode.
//   - Pairs — ordered enumeration of all 3999 (value, numeral) pairs.
//
// Why:
//
//   - "VX", "CMC" and "VIV" lex into perfectly valid tokens yet are not
//     Roman numerals; catching them needs context-sensitive state (the
//     active subtraction bound), not a character filter.
//   - Errors are diagnosable: each failure names the exact rule violated
//     and the offending letters or tokens, so callers can explain *why*
//     an input was rejected, not merely that it was.
//
// Options:
//
//   - Options.Strict: enforce repetition and ordering rules (default true).
//     Disabling it accepts historically attested forms like "IIII" or
//     "MDCCCCX".
//   - Options.IgnoreCase: fold input to upper case before validation.
//   - Options.Explain: surface the specific rule violation instead of the
//     generic ErrNumeral.
//   - Options.Zero: accept the medieval zero token "N" as 0.
//   - Configure seeds process-wide defaults once; every call may still
//     override them with an explicit *Options.
//
// Errors:
//
//   - ErrEmptyString: input is empty (always reported verbatim).
//   - ErrBadLetter: a character outside I, V, X, L, C, D, M.
//   - ErrRepeatedSingleLetter: V, L or D occurs more than once.
//   - ErrLetterRunTooLong: four or more identical letters in a row.
//   - ErrSequenceIncreasing: a token precedes a strictly larger one.
//   - ErrValueExceedsSubtraction: a token is not under the active
//     subtraction bound established by an earlier subtractive pair.
//   - ErrNumeral: generic collapse of the above when Explain is off.
//   - ErrIntegerRange: Encode input outside 1..3999.
//
// Complexity:
//
//	Decode: O(n) time, O(n) memory (n = letter count, bounded by the
//	repetition rules in strict mode). Encode: O(1). All operations are
//	pure and safe for unbounded concurrent use.
package roman
