package prime_test

import (
	"context"
	"fmt"
	"time"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/prime"
)

// ExampleFindNearbyPrime searches upward from one million.
func ExampleFindNearbyPrime() {
	start, _ := largeuint.FromUint64(largeuint.ByteLayout, 1000000)

	res, err := prime.FindNearbyPrime(context.Background(), start, prime.Options{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(res.Prime, largeuint.FormatHex(res.Prime), res.Candidates)
	// Output:
	// 1000003 0300_43420F 2
}

// ExampleVerify classifies a Carmichael number and a prime.
func ExampleVerify() {
	for _, v := range []uint64{561, 7919} {
		x, _ := largeuint.FromUint64(largeuint.ByteLayout, v)
		status, _ := prime.Verify(context.Background(), x, time.Minute, prime.Options{})
		fmt.Println(v, status)
	}
	// Output:
	// 561 not prime
	// 7919 prime
}
