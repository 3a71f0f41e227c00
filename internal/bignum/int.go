package bignum

import (
	"math"

	"fortio.org/safecast"
)

// BigInt represents an arbitrary-precision signed integer.
//
// Values are immutable: every operation returns a fresh, normalized BigInt and
// never writes into the digits of its operands, so a BigInt may be copied and
// shared between goroutines freely. Inc and Dec are the only mutating methods.
//
// The zero value is 0.
type BigInt struct {
	neg bool
	// abs is the magnitude. Canonical zero is neg=false with a single zero
	// limb (or an empty slice for the zero value).
	abs nat
}

// normalize is the single exit point for every constructed value: it trims
// the magnitude and forces zero to be non-negative.
func normalize(neg bool, abs nat) BigInt {
	abs = abs.norm()
	if abs.isZero() {
		return BigInt{abs: natZero}
	}
	return BigInt{neg: neg, abs: abs}
}

func (i BigInt) mag() nat {
	if len(i.abs) == 0 {
		return natZero
	}
	return i.abs
}

// IntZero returns a zero BigInt.
func IntZero() BigInt { return BigInt{abs: natZero} }

// IntFromInt64 creates a BigInt from an int64.
func IntFromInt64(v int64) BigInt {
	if v >= 0 {
		return normalize(false, natFromUint64(uint64(v)))
	}
	// -(v+1) cannot overflow, even for math.MinInt64.
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	return normalize(true, natFromUint64(u))
}

// IntFromUint64 creates a BigInt from a uint64.
func IntFromUint64(v uint64) BigInt {
	return normalize(false, natFromUint64(v))
}

// Sign returns -1, 0 or +1.
func (i BigInt) Sign() int {
	switch {
	case i.mag().isZero():
		return 0
	case i.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether the integer is zero.
func (i BigInt) IsZero() bool { return i.mag().isZero() }

// Abs returns the absolute value.
func (i BigInt) Abs() BigInt { return normalize(false, i.mag()) }

// Negated returns -i. Zero stays non-negative.
func (i BigInt) Negated() BigInt { return normalize(!i.neg, i.mag()) }

// Limbs returns a copy of the magnitude in base Radix, least significant
// limb first. The result always holds at least one limb.
func (i BigInt) Limbs() []uint32 {
	m := i.mag()
	out := make([]uint32, len(m))
	copy(out, m)
	return out
}

// Int64 converts BigInt to int64 if possible.
func (i BigInt) Int64() (int64, bool) {
	mag, ok := i.mag().uint64()
	if !ok {
		return 0, false
	}
	if !i.neg {
		v, err := safecast.Conv[int64](mag)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	// Negative: allow magnitude up to 2^63.
	const minMag = uint64(math.MaxInt64) + 1
	switch {
	case mag > minMag:
		return 0, false
	case mag == minMag:
		return math.MinInt64, true
	default:
		return -int64(mag), true //nolint:gosec // G115: mag < 2^63.
	}
}
