package prime

import (
	"context"
	"math/big"
	"testing"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFindNearbyPrime_PropertyBased checks that the result is the first
// prime at or above the start, using math/big as the reference.
func TestFindNearbyPrime_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("result is the next prime", prop.ForAll(
		func(start uint32) bool {
			x, err := largeuint.FromUint64(largeuint.ByteLayout, uint64(start))
			if err != nil {
				return false
			}
			res, err := FindNearbyPrime(context.Background(), x, Options{})
			if err != nil {
				return false
			}
			got, ok := res.Prime.Uint64()
			if !ok || got < uint64(start) || !big.NewInt(int64(got)).ProbablyPrime(20) {
				return false
			}
			for v := uint64(start); v < got; v++ {
				if big.NewInt(int64(v)).ProbablyPrime(20) {
					return false
				}
			}
			return true
		},
		gen.UInt32Range(0, 1<<22),
	))

	properties.TestingRun(t)
}

// TestFindNearbyPrime_LayoutsAgree runs the same search on both layouts.
func TestFindNearbyPrime_LayoutsAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("bit and byte layouts find the same prime", prop.ForAll(
		func(start uint16) bool {
			var found [2]uint64
			for i, layout := range []largeuint.Layout{largeuint.BitLayout, largeuint.ByteLayout} {
				x, err := largeuint.FromUint64(layout, uint64(start))
				if err != nil {
					return false
				}
				res, err := FindNearbyPrime(context.Background(), x, Options{})
				if err != nil {
					return false
				}
				found[i], _ = res.Prime.Uint64()
			}
			return found[0] == found[1]
		},
		gen.UInt16(),
	))

	properties.TestingRun(t)
}
