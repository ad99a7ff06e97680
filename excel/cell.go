package excel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Address is a cell reference split into its column letters and 1-based row.
// Values are immutable; methods return new addresses.
type Address struct {
	Column string
	Row    int
}

// ParseAddress splits a reference such as "A3" or "AB12" into column and row.
// Only letters followed by digits are accepted; lowercase letters are upper-cased.
func ParseAddress(s string) (Address, error) {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 {
		if s == "" {
			return Address{}, invalidAddress(s, "empty")
		}
		return Address{}, invalidAddress(s, "missing column letters")
	}

	digits := s[i:]
	if digits == "" {
		return Address{}, invalidAddress(s, "missing row number")
	}
	for j := 0; j < len(digits); j++ {
		if !isDigit(digits[j]) {
			return Address{}, invalidAddress(s, fmt.Sprintf("unexpected character %q", digits[j]))
		}
	}
	if digits[0] == '0' {
		return Address{}, invalidAddress(s, "row must be a positive number without leading zeros")
	}

	row, err := strconv.Atoi(digits)
	if err != nil {
		return Address{}, invalidAddress(s, "row out of range")
	}

	return Address{Column: strings.ToUpper(s[:i]), Row: row}, nil
}

// String formats the address back into its reference form (e.g. "A3").
func (a Address) String() string {
	return a.Column + strconv.Itoa(a.Row)
}

// NextRow returns the address one row below a in the same column.
func (a Address) NextRow() Address {
	return a.Advance(1)
}

// Advance returns the address n rows below a in the same column (above for
// negative n). The row saturates at 1 and math.MaxInt.
func (a Address) Advance(n int) Address {
	row := a.Row
	switch {
	case n > 0 && row > math.MaxInt-n:
		row = math.MaxInt
	case row+n < 1:
		row = 1
	default:
		row += n
	}
	return Address{Column: a.Column, Row: row}
}

// ColumnNumber returns the 1-based column index (A→1, Z→26, AA→27).
func (a Address) ColumnNumber() (int, error) {
	return excelize.ColumnNameToNumber(a.Column)
}

// WithColumnNumber returns the address in the same row at the 1-based column n.
func (a Address) WithColumnNumber(n int) (Address, error) {
	col, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return Address{}, err
	}
	return Address{Column: col, Row: a.Row}, nil
}

// Range formats two addresses as an area reference (e.g. "A1:D1").
func Range(from, to Address) string {
	return from.String() + ":" + to.String()
}

// ParseRange parses "A1:D4". A single cell reference yields from == to.
func ParseRange(s string) (from, to Address, err error) {
	first, second, found := strings.Cut(s, ":")
	if from, err = ParseAddress(first); err != nil {
		return Address{}, Address{}, err
	}
	if !found {
		return from, from, nil
	}
	if to, err = ParseAddress(second); err != nil {
		return Address{}, Address{}, err
	}
	return from, to, nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
