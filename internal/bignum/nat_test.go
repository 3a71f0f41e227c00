package bignum

import "testing"

func TestNatNorm(t *testing.T) {
	cases := []struct {
		in   nat
		want int
	}{
		{nil, 1},
		{nat{}, 1},
		{nat{0}, 1},
		{nat{0, 0, 0}, 1},
		{nat{5, 0, 0}, 1},
		{nat{5, 1, 0}, 2},
		{nat{0, 0, 7}, 3},
	}
	for _, tc := range cases {
		if got := tc.in.norm(); len(got) != tc.want {
			t.Fatalf("norm(%v) has %d limbs, want %d", tc.in, len(got), tc.want)
		}
	}
}

func TestNatAppendDecimalPadsInnerLimbs(t *testing.T) {
	x := nat{7, 0, 12}
	if got := string(x.appendDecimal(nil)); got != "12000000000000000007" {
		t.Fatalf("appendDecimal = %q", got)
	}
}

func TestNatFromDecimalChunks(t *testing.T) {
	cases := []struct {
		in   string
		want nat
	}{
		{"0", nat{0}},
		{"000000000000", nat{0}},
		{"999999999", nat{999999999}},
		{"1000000000", nat{0, 1}},
		{"1000000000000000000", nat{0, 0, 1}},
		{"0001000000002", nat{2, 1}},
	}
	for _, tc := range cases {
		got := natFromDecimal(tc.in)
		if got.cmp(tc.want) != 0 || len(got) != len(tc.want) {
			t.Fatalf("natFromDecimal(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNatUint64(t *testing.T) {
	if v, ok := natFromUint64(^uint64(0)).uint64(); !ok || v != ^uint64(0) {
		t.Fatalf("max uint64 round trip = %d, %v", v, ok)
	}
	// 18446744073709551616 = 2^64
	if _, ok := (nat{709551616, 446744073, 18}).uint64(); ok {
		t.Fatal("2^64 must not fit in uint64")
	}
	if _, ok := (nat{0, 0, 0, 1}).uint64(); ok {
		t.Fatal("four limbs must not fit in uint64")
	}
}

func TestNatSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("natSub should panic when x < y")
		}
	}()
	natSub(nat{1}, nat{2})
}

func TestNatDivModSmallDivisor(t *testing.T) {
	q, r := natDivMod(nat{1, 0, 1}, nat{7})
	// (1e18 + 1) / 7 = 142857142857142857, rem 2
	if s := string(q.appendDecimal(nil)); s != "142857142857142857" {
		t.Fatalf("quotient = %s", s)
	}
	if len(r) != 1 || r[0] != 2 {
		t.Fatalf("remainder = %v", r)
	}
}

func TestNatDivModInnerZeroDigits(t *testing.T) {
	// Dividend with runs of zero limbs keeps quotient digits at zero.
	u := natFromDecimal("5000000000000000000000000000000000000000000")
	v := natFromDecimal("5000000000000000000")
	q, r := natDivMod(u, v)
	if s := string(q.appendDecimal(nil)); s != "1000000000000000000000000" {
		t.Fatalf("quotient = %s", s)
	}
	if !r.isZero() {
		t.Fatalf("remainder = %v", r)
	}
}
