package prime

import (
	"slices"

	"github.com/agbru/primecalc/internal/largeuint"
)

// bigEndian returns the magnitude of x as big-endian bytes, the order both
// math/big and GMP import from.
func bigEndian(x *largeuint.Uint) []byte {
	b := x.Bytes()
	slices.Reverse(b)
	return b
}
