package bignum

// FormatInt renders i in canonical decimal form: a leading '-' only for
// negative values, no leading zeros.
func FormatInt(i BigInt) string {
	return string(i.appendText(nil))
}

// String implements fmt.Stringer.
func (i BigInt) String() string { return FormatInt(i) }

func (i BigInt) appendText(buf []byte) []byte {
	m := i.mag()
	if m.isZero() {
		return append(buf, '0')
	}
	if i.neg {
		buf = append(buf, '-')
	}
	return m.appendDecimal(buf)
}
