package bignum_test

import (
	"testing"

	"bigint/internal/bignum"
)

func TestComparators(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "1", 0},
		{"1", "2", -1},
		{"0", "2345", -1},
		{"3545", "7132", -1},
		{"2345", "23", 1},
		{"3545", "-3456", 1},
		{"-0", "0", 0},
		{"-5", "-50", 1},
		{"-1000000000", "-999999999", -1},
		{"1000000000", "999999999", 1},
		{"123456789123456789", "123456789123456788", 1},
		{"-123456789123456789", "-123456789123456788", -1},
		{"-1", "0", -1},
	}
	for _, tc := range cases {
		a, b := bignum.MustParseInt(tc.a), bignum.MustParseInt(tc.b)
		if got := a.Cmp(b); got != tc.want {
			t.Fatalf("Cmp(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := b.Cmp(a); got != -tc.want {
			t.Fatalf("Cmp(%s, %s) = %d, want %d", tc.b, tc.a, got, -tc.want)
		}
		checks := []struct {
			name string
			got  bool
			want bool
		}{
			{"Equal", a.Equal(b), tc.want == 0},
			{"NotEqual", a.NotEqual(b), tc.want != 0},
			{"Less", a.Less(b), tc.want < 0},
			{"LessOrEqual", a.LessOrEqual(b), tc.want <= 0},
			{"Greater", a.Greater(b), tc.want > 0},
			{"GreaterOrEqual", a.GreaterOrEqual(b), tc.want >= 0},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Fatalf("%s.%s(%s) = %v, want %v", tc.a, c.name, tc.b, c.got, c.want)
			}
		}
	}
}

func TestTotalOrder(t *testing.T) {
	values := []bignum.BigInt{
		bignum.MustParseInt("-1000000000000000000000"),
		bignum.MustParseInt("-999999999999"),
		bignum.IntFromInt64(-1),
		bignum.IntZero(),
		bignum.IntFromInt64(1),
		bignum.MustParseInt("999999999"),
		bignum.MustParseInt("1000000000"),
		bignum.MustParseInt("1000000000000000000000"),
	}
	for i := range values {
		for j := range values {
			a, b := values[i], values[j]
			n := 0
			if a.Less(b) {
				n++
			}
			if a.Equal(b) {
				n++
			}
			if a.Greater(b) {
				n++
			}
			if n != 1 {
				t.Fatalf("exactly one of <,==,> must hold for %s, %s", a, b)
			}
			if (i < j) != a.Less(b) {
				t.Fatalf("order mismatch for %s, %s", a, b)
			}
		}
	}
}

func TestSignAbsNegated(t *testing.T) {
	cases := []struct {
		in      string
		sign    int
		abs     string
		negated string
	}{
		{"0", 0, "0", "0"},
		{"-0", 0, "0", "0"},
		{"42", 1, "42", "-42"},
		{"-42", -1, "42", "42"},
		{"-1000000000000", -1, "1000000000000", "1000000000000"},
	}
	for _, tc := range cases {
		v := bignum.MustParseInt(tc.in)
		if v.Sign() != tc.sign {
			t.Fatalf("Sign(%s) = %d, want %d", tc.in, v.Sign(), tc.sign)
		}
		if got := v.Abs().String(); got != tc.abs {
			t.Fatalf("Abs(%s) = %s, want %s", tc.in, got, tc.abs)
		}
		if got := v.Negated().String(); got != tc.negated {
			t.Fatalf("Negated(%s) = %s, want %s", tc.in, got, tc.negated)
		}
	}
}
