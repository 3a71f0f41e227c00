// Package fuzztests houses Go fuzz harnesses for the integer core and the
// expression layer. They guard against panics, non-canonical results and
// broken algebraic laws on arbitrary inputs; math/big is the oracle.
package fuzztests
