package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"bigint/internal/bignum"
)

// CheckIntInvariants runs the canonical-form invariants on a BigInt:
// 1) the magnitude holds at least one limb and every limb is below the radix
// 2) there is no redundant most-significant zero limb
// 3) zero is non-negative
// 4) rendering and re-parsing yields a structurally equal value
func CheckIntInvariants(v bignum.BigInt) error {
	limbs := v.Limbs()

	// 1) limb sanity
	if len(limbs) == 0 {
		return fmt.Errorf("empty magnitude")
	}
	for idx, limb := range limbs {
		if limb >= bignum.Radix {
			return fmt.Errorf("limb %d out of range: %d >= %d", idx, limb, bignum.Radix)
		}
	}

	// 2) canonical length
	n, err := safecast.Conv[uint32](len(limbs))
	if err != nil {
		return fmt.Errorf("limb count overflow: %w", err)
	}
	if n > 1 && limbs[n-1] == 0 {
		return fmt.Errorf("redundant leading zero limb in %v", limbs)
	}

	// 3) zero sign
	isZero := n == 1 && limbs[0] == 0
	if isZero != v.IsZero() {
		return fmt.Errorf("IsZero()=%v disagrees with limbs %v", v.IsZero(), limbs)
	}
	if isZero && v.Sign() != 0 {
		return fmt.Errorf("zero carries sign %d", v.Sign())
	}

	// 4) round trip
	s := v.String()
	back, err := bignum.ParseInt(s)
	if err != nil {
		return fmt.Errorf("rendered %q does not parse: %w", s, err)
	}
	if back.Sign() != v.Sign() || !equalLimbs(back.Limbs(), limbs) {
		return fmt.Errorf("round trip of %q changed representation", s)
	}
	return nil
}

func equalLimbs(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
