package largeuint

import (
	"math/big"
	"slices"
	"testing"
)

// testLayouts covers both historical layouts and an intermediate width.
var testLayouts = []Layout{
	BitLayout,
	ByteLayout,
	{Width: 4, Capacity: 60},
}

func mustFromUint64(t testing.TB, layout Layout, v uint64) *Uint {
	t.Helper()
	x, err := FromUint64(layout, v)
	if err != nil {
		t.Fatalf("FromUint64(%s, %d) error: %v", layout, v, err)
	}
	return x
}

func mustParseDecimal(t testing.TB, layout Layout, s string) *Uint {
	t.Helper()
	x, err := ParseDecimal(layout, s)
	if err != nil {
		t.Fatalf("ParseDecimal(%s, %q) error: %v", layout, s, err)
	}
	return x
}

func mustLoadBits(t testing.TB, s string) *Uint {
	t.Helper()
	x, err := LoadBits(BitLayout, s)
	if err != nil {
		t.Fatalf("LoadBits(%q) error: %v", s, err)
	}
	return x
}

// toBig converts x to a math/big value for use as a test oracle.
func toBig(x *Uint) *big.Int {
	b := x.Bytes()
	slices.Reverse(b)
	return new(big.Int).SetBytes(b)
}

func fromBig(t testing.TB, layout Layout, v *big.Int) *Uint {
	t.Helper()
	b := v.Bytes()
	slices.Reverse(b)
	x, err := SetBytes(layout, b)
	if err != nil {
		t.Fatalf("SetBytes(%s, %s) error: %v", layout, v, err)
	}
	return x
}

// isTrimmed reports whether Trim would be a no-op on x.
func isTrimmed(x *Uint) bool {
	return x.length == 0 || x.limbs[x.length-1] != 0
}

func assertTrimmed(t testing.TB, name string, x *Uint) {
	t.Helper()
	if !isTrimmed(x) {
		t.Errorf("%s is not trimmed: length %d, limbs %v", name, x.length, x.limbs[:x.length])
	}
}

func assertValue(t testing.TB, name string, x *Uint, want uint64) {
	t.Helper()
	got, ok := x.Uint64()
	if !ok || got != want {
		t.Errorf("%s = %s, want %d", name, x, want)
	}
	assertTrimmed(t, name, x)
}
