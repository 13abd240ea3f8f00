//go:build gmp

package prime

import (
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/ncw/gmp"
)

// ProbablyPrime runs reps rounds of GMP's Miller-Rabin test on x. It never
// reports a prime as composite.
func ProbablyPrime(x *largeuint.Uint, reps int) bool {
	return new(gmp.Int).SetBytes(bigEndian(x)).ProbablyPrime(reps)
}

// Backend names the implementation of ProbablyPrime.
const Backend = "gmp"
