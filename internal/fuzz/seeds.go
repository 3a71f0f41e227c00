package fuzztests

import (
	"strings"
	"testing"
)

const maxSeedBytes = 4 << 10

var decimalSeeds = []string{
	"0", "-0", "+0", "1", "-1", "123", "348975",
	"999999999", "1000000000", "-1000000001",
	"9223372036854775807", "-9223372036854775808",
	"99999999999999999999999999999999",
	"100000000000000000000000000000000000000001",
	"0001000000002",
	"", "+", "-", "12a", " 1", "1_000", "٣",
}

var exprSeeds = []string{
	"348975 + 123", "348975 % 123", "-7 / 2", "7 % -2",
	"1 == 1", "3545 >= -3456", "1 / 0", "1 ^ 2", "１２３ ＋ ４", "a b c", "",
}

func addDecimalSeeds(f *testing.F) {
	for _, s := range decimalSeeds {
		f.Add(s)
	}
}

func addPairSeeds(f *testing.F) {
	for i, a := range decimalSeeds {
		b := decimalSeeds[(i*7+3)%len(decimalSeeds)]
		f.Add(a, b)
	}
}

func addExprSeeds(f *testing.F) {
	for _, s := range exprSeeds {
		f.Add(s)
	}
}

// clampSeed bounds fuzz inputs; quadratic multiplication and division on
// multi-megabyte operands would dominate every run.
func clampSeed(s string) string {
	if len(s) <= maxSeedBytes {
		return s
	}
	return strings.Clone(s[:maxSeedBytes])
}
