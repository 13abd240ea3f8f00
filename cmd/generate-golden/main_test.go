package main

import (
	"math/big"
	"testing"
)

// TestCeilSqrt tests the oracle square root with known values.
func TestCeilSqrt(t *testing.T) {
	tests := []struct {
		name     string
		n        string
		expected string
	}{
		{"zero", "0", "0"},
		{"one", "1", "1"},
		{"two rounds up", "2", "2"},
		{"perfect square", "100", "10"},
		{"just below a square", "99", "10"},
		{"just above a square", "3000", "55"},
		{"large perfect square", "1934725265902144", "43985512"},
		{"large non-square", "1934725265902145", "43985513"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := new(big.Int).SetString(tt.n, 10)
			if got := ceilSqrt(n).String(); got != tt.expected {
				t.Errorf("ceilSqrt(%s) = %s, want %s", tt.n, got, tt.expected)
			}
		})
	}
}

// TestBuildCases checks the generated vectors against the arithmetic laws
// they encode.
func TestBuildCases(t *testing.T) {
	cases, err := buildCases(operands)
	if err != nil {
		t.Fatalf("buildCases error: %v", err)
	}

	counts := make(map[string]int)
	limit := new(big.Int).Lsh(big.NewInt(1), 200)
	for _, c := range cases {
		counts[c.Op]++
		want, _ := new(big.Int).SetString(c.Want, 10)
		if want.Cmp(limit) >= 0 {
			t.Errorf("%s(%s, %s) = %s does not fit 200 bits", c.Op, c.A, c.B, c.Want)
		}
		if c.Op != "div" {
			continue
		}
		a, _ := new(big.Int).SetString(c.A, 10)
		b, _ := new(big.Int).SetString(c.B, 10)
		r, _ := new(big.Int).SetString(c.Rem, 10)
		back := new(big.Int).Mul(want, b)
		back.Add(back, r)
		if back.Cmp(a) != 0 || r.Cmp(b) >= 0 {
			t.Errorf("div(%s, %s) = (%s, %s) breaks the division law", c.A, c.B, c.Want, c.Rem)
		}
	}

	n := len(operands)
	if counts["add"] != n*n || counts["mul"] != n*n {
		t.Errorf("add/mul counts = %d/%d, want %d", counts["add"], counts["mul"], n*n)
	}
	if counts["sqrt"] != n {
		t.Errorf("sqrt count = %d, want %d", counts["sqrt"], n)
	}
	if counts["div"] != n*(n-1) {
		t.Errorf("div count = %d, want %d", counts["div"], n*(n-1))
	}
}

func TestBuildCasesRejectsBadOperands(t *testing.T) {
	for _, bad := range []string{"", "-1", "12x"} {
		if _, err := buildCases([]string{"1", bad}); err == nil {
			t.Errorf("buildCases accepted %q", bad)
		}
	}
}
