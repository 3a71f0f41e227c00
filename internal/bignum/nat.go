package bignum

import "strconv"

const (
	// Radix is the base of one limb.
	Radix = 1_000_000_000
	// radixDigits is the number of decimal digits held by one limb.
	radixDigits = 9
)

// nat is an unsigned magnitude stored as base-Radix limbs, least significant
// first. A normalized nat has at least one limb and no most-significant zero
// limb unless it is the single limb of zero.
type nat []uint32

var (
	natZero = nat{0}
	natOne  = nat{1}
)

// norm trims most-significant zero limbs, keeping one limb for zero.
func (x nat) norm() nat {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return natZero
	}
	return x[:i]
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

func natFromUint64(v uint64) nat {
	if v == 0 {
		return natZero
	}
	out := make(nat, 0, 3)
	for v != 0 {
		out = append(out, uint32(v%Radix)) //nolint:gosec // G115: v%Radix < 1e9.
		v /= Radix
	}
	return out
}

// uint64 returns x as a uint64 and whether it fits.
func (x nat) uint64() (uint64, bool) {
	x = x.norm()
	if len(x) > 3 {
		return 0, false
	}
	const maxU64 = ^uint64(0)
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		if v > (maxU64-uint64(x[i]))/Radix {
			return 0, false
		}
		v = v*Radix + uint64(x[i])
	}
	return v, true
}

// cmp compares two normalized magnitudes: longer is larger, equal lengths
// compare limb by limb from the most significant end.
func (x nat) cmp(y nat) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// natAdd returns x + y.
func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		sum := uint64(x[i]) + carry
		if i < len(y) {
			sum += uint64(y[i])
		}
		out[i] = uint32(sum % Radix) //nolint:gosec // G115: limb arithmetic.
		carry = sum / Radix
	}
	out[len(x)] = uint32(carry) //nolint:gosec // G115: carry is 0 or 1.
	return out.norm()
}

// natSub returns x - y. The caller guarantees x >= y.
func natSub(x, y nat) nat {
	out := make(nat, len(x))
	var borrow int64
	for i := range x {
		diff := int64(x[i]) - borrow
		if i < len(y) {
			diff -= int64(y[i])
		}
		if diff < 0 {
			diff += Radix
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(diff) //nolint:gosec // G115: 0 <= diff < Radix.
	}
	if borrow != 0 {
		panic("bignum: natSub underflow")
	}
	return out.norm()
}

// natMul returns x * y using the schoolbook method.
func natMul(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return natZero
	}
	out := make(nat, len(x)+len(y))
	for i := range x {
		xi := uint64(x[i])
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := range y {
			k := i + j
			// (Radix-1)^2 + 2*(Radix-1) < 2^63, no overflow.
			sum := uint64(out[k]) + xi*uint64(y[j]) + carry
			out[k] = uint32(sum % Radix) //nolint:gosec // G115: limb arithmetic.
			carry = sum / Radix
		}
		for k := i + len(y); carry != 0; k++ {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum % Radix) //nolint:gosec // G115: limb arithmetic.
			carry = sum / Radix
		}
	}
	return out.norm()
}

// natMulSmall returns x * m for a single limb m.
func natMulSmall(x nat, m uint32) nat {
	if m == 0 || x.isZero() {
		return natZero
	}
	out := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		prod := uint64(x[i])*uint64(m) + carry
		out[i] = uint32(prod % Radix) //nolint:gosec // G115: limb arithmetic.
		carry = prod / Radix
	}
	out[len(x)] = uint32(carry) //nolint:gosec // G115: carry < Radix.
	return out.norm()
}

// natDivSmall divides x by a single nonzero limb d.
func natDivSmall(x nat, d uint32) (q nat, r uint32) {
	out := make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*Radix + uint64(x[i])
		out[i] = uint32(cur / uint64(d)) //nolint:gosec // G115: quotient limb < Radix.
		rem = cur % uint64(d)
	}
	return out.norm(), uint32(rem) //nolint:gosec // G115: rem < d.
}

// natDivMod returns the truncated quotient and remainder of u / v.
// v must be nonzero.
//
// Long division: each step brings down the next limb of u into the running
// remainder and picks the largest digit q with q*v <= remainder. The search
// is bounded by estimates taken from the leading limbs, so it only spans a
// handful of candidates.
func natDivMod(u, v nat) (q, r nat) {
	u, v = u.norm(), v.norm()
	if v.isZero() {
		panic("bignum: division by zero")
	}
	if u.cmp(v) < 0 {
		return natZero, u
	}
	if len(v) == 1 {
		qs, rs := natDivSmall(u, v[0])
		return qs, nat{rs}
	}

	n := len(v)
	vt := uint64(v[n-1])
	quot := make(nat, len(u))
	rem := natZero
	for i := len(u) - 1; i >= 0; i-- {
		rem = shiftIn(rem, u[i])
		if len(rem) < n {
			continue
		}

		var rt uint64
		if len(rem) > n {
			rt = uint64(rem[n])*Radix + uint64(rem[n-1])
		} else {
			rt = uint64(rem[n-1])
		}
		lo := rt / (vt + 1)
		hi := (rt + 1) / vt
		if hi > Radix-1 {
			hi = Radix - 1
		}
		if lo > hi {
			lo = hi
		}
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if natMulSmall(v, uint32(mid)).cmp(rem) <= 0 { //nolint:gosec // G115: mid < Radix.
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		if lo != 0 {
			d := uint32(lo) //nolint:gosec // G115: lo < Radix.
			rem = natSub(rem, natMulSmall(v, d))
			quot[i] = d
		}
	}
	return quot.norm(), rem
}

// shiftIn returns x*Radix + d.
func shiftIn(x nat, d uint32) nat {
	if x.isZero() {
		return nat{d}
	}
	out := make(nat, len(x)+1)
	out[0] = d
	copy(out[1:], x)
	return out
}

// appendDecimal appends the decimal digits of x to buf.
func (x nat) appendDecimal(buf []byte) []byte {
	x = x.norm()
	top := len(x) - 1
	buf = strconv.AppendUint(buf, uint64(x[top]), 10)
	var chunk [radixDigits]byte
	for i := top - 1; i >= 0; i-- {
		v := x[i]
		for j := radixDigits - 1; j >= 0; j-- {
			chunk[j] = byte('0' + v%10)
			v /= 10
		}
		buf = append(buf, chunk[:]...)
	}
	return buf
}

// natFromDecimal converts a string of ASCII digits (already validated) to a
// nat, consuming nine digits per limb from the least significant end.
func natFromDecimal(digits string) nat {
	out := make(nat, 0, (len(digits)+radixDigits-1)/radixDigits)
	for end := len(digits); end > 0; end -= radixDigits {
		start := end - radixDigits
		if start < 0 {
			start = 0
		}
		var limb uint32
		for k := start; k < end; k++ {
			limb = limb*10 + uint32(digits[k]-'0')
		}
		out = append(out, limb)
	}
	return out.norm()
}
