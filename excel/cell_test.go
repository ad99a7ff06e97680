package excel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input  string
		column string
		row    int
	}{
		{"A1", "A", 1},
		{"A3", "A", 3},
		{"Z99", "Z", 99},
		{"AB12", "AB", 12},
		{"xfd1048576", "XFD", 1048576},
	}

	for _, tt := range tests {
		addr, err := ParseAddress(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.column, addr.Column, tt.input)
		assert.Equal(t, tt.row, addr.Row, tt.input)
	}
}

func TestParseAddressInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"A",
		"3",
		"3A",
		"A0",
		"A03",
		"A1B",
		"A-1",
		"$A$1",
		"A 1",
		"AÄ1",
		"A99999999999999999999999",
	} {
		_, err := ParseAddress(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, ErrInvalidAddress, input)

		var addrErr *InvalidAddressError
		require.True(t, errors.As(err, &addrErr), input)
		assert.Equal(t, input, addrErr.Input)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	for _, s := range []string{"A1", "A3", "Z26", "AA27", "AB12", "XFD1048576"} {
		addr, err := ParseAddress(s)
		require.NoError(t, err)
		assert.Equal(t, s, addr.String())

		again, err := ParseAddress(s)
		require.NoError(t, err)
		assert.Equal(t, addr, again)
	}
}

func TestNextRow(t *testing.T) {
	addr, err := ParseAddress("A3")
	require.NoError(t, err)

	next := addr.NextRow()
	assert.Equal(t, "A", next.Column)
	assert.Equal(t, 4, next.Row)
	assert.Equal(t, 3, addr.Row, "NextRow must not modify the receiver")

	addr, err = ParseAddress("AB12")
	require.NoError(t, err)
	assert.Equal(t, Address{Column: "AB", Row: 13}, addr.NextRow())
	assert.Equal(t, "AB20", addr.Advance(8).String())
}

func TestAdvanceKeepsRowInRange(t *testing.T) {
	last := Address{Column: "A", Row: math.MaxInt}
	assert.Equal(t, last, last.NextRow())
	assert.Equal(t, last, Address{Column: "A", Row: 10}.Advance(math.MaxInt))

	addr, err := ParseAddress("C3")
	require.NoError(t, err)
	assert.Equal(t, "C2", addr.Advance(-1).String())
	assert.Equal(t, "C1", addr.Advance(-10).String())
	assert.Equal(t, "C1", addr.Advance(math.MinInt).String())
}

func TestSequentialRows(t *testing.T) {
	cursor, err := ParseAddress("A3")
	require.NoError(t, err)

	var got []string
	for range 3 {
		got = append(got, cursor.String())
		cursor = cursor.NextRow()
	}
	assert.Equal(t, []string{"A3", "A4", "A5"}, got)
}

func TestColumnNumber(t *testing.T) {
	addr, err := ParseAddress("AB12")
	require.NoError(t, err)

	n, err := addr.ColumnNumber()
	require.NoError(t, err)
	assert.Equal(t, 28, n)

	moved, err := addr.WithColumnNumber(4)
	require.NoError(t, err)
	assert.Equal(t, "D12", moved.String())

	_, err = Address{Column: "XFE", Row: 1}.ColumnNumber()
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("A1:D4")
	require.NoError(t, err)
	assert.Equal(t, "A1", from.String())
	assert.Equal(t, "D4", to.String())
	assert.Equal(t, "A1:D4", Range(from, to))

	from, to, err = ParseRange("C7")
	require.NoError(t, err)
	assert.Equal(t, from, to)

	_, _, err = ParseRange("A1:4D")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
