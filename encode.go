package roman

import "fmt"

// Encode converts an integer in 1..3999 to its canonical Roman numeral.
// It is a pure table lookup and shares no logic with Decode. Any other
// value fails ErrIntegerRange.
func Encode(value int) (string, error) {
	if value < 1 || value > MaxNumeral {
		return "", fmt.Errorf("%w: %d", ErrIntegerRange, value)
	}

	return numeralOf[value], nil
}
