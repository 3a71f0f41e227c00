package bignum

import "errors"

// ErrDivByZero indicates an attempt to divide by zero.
var ErrDivByZero = errors.New("division by zero")

var intOne = BigInt{abs: natOne}

// Add returns i + j.
func (i BigInt) Add(j BigInt) BigInt {
	ia, ja := i.mag(), j.mag()

	if i.neg == j.neg {
		return normalize(i.neg, natAdd(ia, ja))
	}

	// Differing signs: subtract the smaller magnitude from the larger one,
	// the result takes the sign of the larger.
	switch cmp := ia.cmp(ja); {
	case cmp == 0:
		return IntZero()
	case cmp > 0:
		return normalize(i.neg, natSub(ia, ja))
	default:
		return normalize(j.neg, natSub(ja, ia))
	}
}

// Sub returns i - j.
func (i BigInt) Sub(j BigInt) BigInt {
	return i.Add(j.Negated())
}

// Mul returns i * j.
func (i BigInt) Mul(j BigInt) BigInt {
	return normalize(i.neg != j.neg, natMul(i.mag(), j.mag()))
}

// QuoRem returns the quotient truncated toward zero and the remainder,
// which carries the sign of i. It fails with ErrDivByZero when j is zero.
//
// q*j + r == i and |r| < |j| hold for every successful call.
func (i BigInt) QuoRem(j BigInt) (q, r BigInt, err error) {
	ia, ja := i.mag(), j.mag()
	if ja.isZero() {
		return BigInt{}, BigInt{}, ErrDivByZero
	}
	if ia.isZero() {
		return IntZero(), IntZero(), nil
	}
	qMag, rMag := natDivMod(ia, ja)
	return normalize(i.neg != j.neg, qMag), normalize(i.neg, rMag), nil
}

// Quo returns i / j truncated toward zero.
func (i BigInt) Quo(j BigInt) (BigInt, error) {
	q, _, err := i.QuoRem(j)
	return q, err
}

// Rem returns i % j with the sign of i.
func (i BigInt) Rem(j BigInt) (BigInt, error) {
	_, r, err := i.QuoRem(j)
	return r, err
}

// Inc adds one to the receiver in place and returns it.
//
// The receiver's fields are replaced with a new value; copies taken before
// the call are unaffected. Not safe for concurrent use on the same value.
func (i *BigInt) Inc() *BigInt {
	*i = i.Add(intOne)
	return i
}

// Dec subtracts one from the receiver in place and returns it.
func (i *BigInt) Dec() *BigInt {
	*i = i.Sub(intOne)
	return i
}
