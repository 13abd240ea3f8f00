//go:build !gmp

package prime

import (
	"math/big"

	"github.com/agbru/primecalc/internal/largeuint"
)

// ProbablyPrime runs reps rounds of Miller-Rabin plus a Baillie-PSW test on
// x. It never reports a prime as composite.
func ProbablyPrime(x *largeuint.Uint, reps int) bool {
	return new(big.Int).SetBytes(bigEndian(x)).ProbablyPrime(reps)
}

// Backend names the implementation of ProbablyPrime.
const Backend = "math/big"
