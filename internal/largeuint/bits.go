package largeuint

import (
	"fmt"
	"strings"
)

// LoadBits decodes the leading run of '0' and '1' characters of s as a
// little-endian bit string (first character is bit 0). Decoding stops at the
// first other character. High zero bits are trimmed.
func LoadBits(layout Layout, s string) (*Uint, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("load bits: %w", err)
	}
	n := 0
	for n < len(s) && (s[n] == '0' || s[n] == '1') {
		n++
	}
	top := n
	for top > 0 && s[top-1] == '0' {
		top--
	}
	if layout.limbsFor(top) > layout.Capacity {
		return nil, fmt.Errorf("load bits: %d bits into %s: %w", top, layout, ErrCapacityExceeded)
	}
	x := zero(layout)
	for i := 0; i < top; i++ {
		if s[i] == '1' {
			x.setBit(i)
		}
	}
	return x, nil
}

// StoreBits renders x as a little-endian bit string. Zero renders as "".
func StoreBits(x *Uint) string {
	n := x.BitLen()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + x.Bit(i)))
	}
	return sb.String()
}
