package bignum

// Cmp compares i and j and returns -1, 0 or +1.
//
// Signs decide first; equal signs compare magnitudes, inverted for negatives.
func (i BigInt) Cmp(j BigInt) int {
	ia, ja := i.mag(), j.mag()
	switch {
	case ia.isZero() && ja.isZero():
		return 0
	case i.neg != j.neg:
		if i.neg {
			return -1
		}
		return 1
	default:
		cmp := ia.cmp(ja)
		if i.neg {
			return -cmp
		}
		return cmp
	}
}

// CmpAbs compares |i| and |j|.
func (i BigInt) CmpAbs(j BigInt) int { return i.mag().cmp(j.mag()) }

// Equal reports whether i == j.
func (i BigInt) Equal(j BigInt) bool { return i.Cmp(j) == 0 }

// NotEqual reports whether i != j.
func (i BigInt) NotEqual(j BigInt) bool { return i.Cmp(j) != 0 }

// Less reports whether i < j.
func (i BigInt) Less(j BigInt) bool { return i.Cmp(j) < 0 }

// LessOrEqual reports whether i <= j.
func (i BigInt) LessOrEqual(j BigInt) bool { return i.Cmp(j) <= 0 }

// Greater reports whether i > j.
func (i BigInt) Greater(j BigInt) bool { return i.Cmp(j) > 0 }

// GreaterOrEqual reports whether i >= j.
func (i BigInt) GreaterOrEqual(j BigInt) bool { return i.Cmp(j) >= 0 }
