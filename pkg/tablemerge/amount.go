package tablemerge

import (
	"math"
	"strconv"
	"unicode"
)

// NaNText is how a poisoned amount is written to a cell.
const NaNText = "NaN"

// Amount is an accumulated numeric value. A malformed input makes it NaN,
// and NaN survives every later addition.
type Amount float64

// NaN returns the not-a-number amount.
func NaN() Amount {
	return Amount(math.NaN())
}

// IsNaN reports whether the amount was poisoned by a malformed value.
func (a Amount) IsNaN() bool {
	return math.IsNaN(float64(a))
}

// Add returns a+b.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) String() string {
	if a.IsNaN() {
		return NaNText
	}
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

// CellValue returns the value to write into a cell: an int64 when the amount
// is integral, a float64 otherwise and NaNText for NaN.
func (a Amount) CellValue() any {
	f := float64(a)
	switch {
	case math.IsNaN(f):
		return NaNText
	case f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63:
		return int64(f)
	default:
		return f
	}
}

// MarshalJSON encodes NaN as the string "NaN" since JSON has no such number.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsNaN() {
		return []byte(strconv.Quote(NaNText)), nil
	}
	return []byte(a.String()), nil
}

// ParseInt parses the leading integer of s the permissive way spreadsheet
// scripts do: leading whitespace and trailing garbage are ignored, a "0x"
// prefix selects hexadecimal and text without digits yields NaN.
func ParseInt(s string) Amount {
	rs := []rune(s)
	i := 0
	for i < len(rs) && isLeadingSpace(rs[i]) {
		i++
	}

	sign := 1.0
	if i < len(rs) && (rs[i] == '+' || rs[i] == '-') {
		if rs[i] == '-' {
			sign = -1
		}
		i++
	}

	base := 10
	if i+1 < len(rs) && rs[i] == '0' && (rs[i+1] == 'x' || rs[i+1] == 'X') {
		base = 16
		i += 2
	}

	var n float64
	digits := 0
	for ; i < len(rs); i++ {
		d := digitValue(rs[i])
		if d < 0 || d >= base {
			break
		}
		n = n*float64(base) + float64(d)
		digits++
	}

	if digits == 0 {
		return NaN()
	}
	return Amount(sign * n)
}

// isLeadingSpace reports whether r is skipped before an integer: tab, vertical
// tab, form feed, line terminators, BOM and space separators. U+0085 is not.
func isLeadingSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\n', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}
