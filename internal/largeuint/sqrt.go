package largeuint

import "fmt"

// ApproximateSqrt returns the ceiling square root of n: the smallest r with
// r*r >= n. It never underestimates, which makes it a safe upper bound for
// trial division.
//
// The estimate starts at n/2 + 1 and follows the integer Newton step
// (e + n/e) / 2 while it keeps decreasing. The round that stops the descent
// decides the result: the estimate is returned as is only when n/e divided
// exactly with quotient e, i.e. n is the square of e; otherwise it is
// incremented.
func ApproximateSqrt(n *Uint) (*Uint, error) {
	layout := n.layout
	if n.IsZero() {
		return zero(layout), nil
	}
	two := zero(layout)
	if err := two.setUint64(2); err != nil {
		return nil, fmt.Errorf("sqrt: %w", err)
	}

	estimate, _, err := Divide(n, two)
	if err != nil {
		return nil, fmt.Errorf("sqrt: %w", err)
	}
	if err := Increment(estimate); err != nil {
		return nil, fmt.Errorf("sqrt: %w", err)
	}

	exact := false
	for {
		q, rem, err := Divide(n, estimate)
		if err != nil {
			return nil, fmt.Errorf("sqrt: %w", err)
		}
		exact = rem.IsZero() && Equal(q, estimate)

		if err := Add(estimate, q); err != nil {
			return nil, fmt.Errorf("sqrt: %w", err)
		}
		next, _, err := Divide(q, two)
		if err != nil {
			return nil, fmt.Errorf("sqrt: %w", err)
		}

		cmp := Compare(next, estimate)
		if cmp == CmpLess {
			estimate = next
			continue
		}
		if cmp == CmpGreater {
			exact = false
		}
		break
	}

	if !exact {
		if err := Increment(estimate); err != nil {
			return nil, fmt.Errorf("sqrt: %w", err)
		}
	}
	return estimate, nil
}
