// =============================================================================
// Dataset Report Tools - Base Conversion Module
// =============================================================================

// Package baseconv converts integers to binary and hexadecimal strings using
// repeated division by the base, never the standard library's radix
// formatting. Remainders are collected as digits (hex 10-15 map to 'A'-'F')
// until the quotient reaches zero, then reversed. Zero maps to "0"; negative
// numbers are converted by magnitude and re-prefixed with a minus sign, so
// parsing the result back in the same base always recovers the magnitude.
package baseconv

const hexDigits = "0123456789ABCDEF"

// ToBinary converts n to its base-2 string representation.
func ToBinary(n int64) string {
	return convert(n, 2)
}

// ToHex converts n to its base-16 string representation with upper-case
// digits.
func ToHex(n int64) string {
	return convert(n, 16)
}

func convert(n int64, base uint64) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	m := magnitude(n)

	var digits []byte
	for m > 0 {
		digits = append(digits, hexDigits[m%base])
		m /= base
	}

	// Digits come out least-significant first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// magnitude returns |n| as uint64, safe for math.MinInt64 where plain
// negation overflows.
func magnitude(n int64) uint64 {
	if n >= 0 {
		return uint64(n)
	}
	return uint64(-(n + 1)) + 1
}
