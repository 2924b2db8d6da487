package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidsulc/roman"
)

// TestConvert_Directions verifies that integers encode and everything
// else decodes.
func TestConvert_Directions(t *testing.T) {
	out, err := convert("1999")
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIX", out)

	out, err = convert("MCMXCIX")
	require.NoError(t, err)
	assert.Equal(t, "1999", out)
}

// TestConvert_Errors verifies that both directions surface their errors.
func TestConvert_Errors(t *testing.T) {
	_, err := convert("4000")
	assert.ErrorIs(t, err, roman.ErrIntegerRange)

	_, err = convert("VX")
	assert.Error(t, err)
}

// TestPrintTable_Bounds verifies bound validation without caring about
// stdout contents.
func TestPrintTable_Bounds(t *testing.T) {
	assert.Error(t, printTable([]string{"0"}))
	assert.Error(t, printTable([]string{"10", "5"}))
	assert.Error(t, printTable([]string{"1", "4000"}))
	assert.Error(t, printTable([]string{"x"}))
	assert.NoError(t, printTable([]string{"3999", "3999"}))
}
