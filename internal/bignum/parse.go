package bignum

import (
	"errors"
	"fmt"
)

// ErrFormat indicates text that is not a signed decimal integer.
var ErrFormat = errors.New("invalid decimal integer")

// ParseInt parses an optional '+' or '-' followed by one or more decimal
// digits. Nothing else is accepted: no whitespace, no underscores, no base
// prefixes. Leading zeros are allowed and "-0" parses as zero.
func ParseInt(s string) (BigInt, error) {
	digits := s
	neg := false
	if digits != "" {
		switch digits[0] {
		case '+':
			digits = digits[1:]
		case '-':
			neg = true
			digits = digits[1:]
		}
	}
	if digits == "" {
		return BigInt{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	for k := range len(digits) {
		if ch := digits[k]; ch < '0' || ch > '9' {
			return BigInt{}, fmt.Errorf("%w: %q: unexpected %q at offset %d", ErrFormat, s, ch, k+len(s)-len(digits))
		}
	}
	return normalize(neg, natFromDecimal(digits)), nil
}

// MustParseInt is like ParseInt but panics on malformed input.
func MustParseInt(s string) BigInt {
	v, err := ParseInt(s)
	if err != nil {
		panic(err)
	}
	return v
}
