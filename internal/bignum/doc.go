// Package bignum implements arbitrary-precision signed integers.
//
// A BigInt stores a sign flag and a magnitude of base-1e9 limbs. Every value
// produced by this package is normalized: the magnitude has no
// most-significant zero limbs and zero is never negative, so two BigInt
// values are numerically equal exactly when their representations are.
//
// Construction
//
//	a := bignum.IntFromInt64(-42)
//	b, err := bignum.ParseInt("-293457029837456029384750239485720394857230948572304985")
//
// Arithmetic returns new values and never touches its operands:
//
//	sum := a.Add(b)
//	q, r, err := a.QuoRem(b) // truncates toward zero, r has the sign of a
//
// Division by zero fails with ErrDivByZero; malformed text fails with
// ErrFormat.
package bignum
