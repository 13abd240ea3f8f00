package largeuint

import "fmt"

// Divide returns the quotient and remainder of numerator / denominator using
// restoring long division. The numerator's limbs are consumed from the most
// significant end; each step shifts the partial remainder up one limb, brings
// down the next numerator limb and finds the quotient limb by repeated
// subtraction of the denominator.
func Divide(numerator, denominator *Uint) (quotient, remainder *Uint, err error) {
	if err := sameWidth("divide", numerator, denominator); err != nil {
		return nil, nil, err
	}
	if denominator.IsZero() {
		return nil, nil, fmt.Errorf("divide: %w", ErrDivisionByZero)
	}
	layout := numerator.layout
	q, r := zero(layout), zero(layout)
	if numerator.IsZero() {
		return q, r, nil
	}
	q.length = numerator.length
	for i := numerator.length - 1; i >= 0; i-- {
		if err := r.shiftIn(numerator.limbs[i]); err != nil {
			return nil, nil, fmt.Errorf("divide: %w", err)
		}
		var digit uint8
		for !LessThan(r, denominator) {
			sub(denominator, r)
			digit++
		}
		q.limbs[i] = digit
	}
	q.Trim()
	r.Trim()
	return q, r, nil
}

// Modulo returns numerator mod divisor. It does not share the long division
// loop of Divide: the divisor is shifted up until its highest limb lines up
// with the highest limb of the running remainder and subtracted from it,
// until the remainder falls below the divisor.
func Modulo(numerator, divisor *Uint) (*Uint, error) {
	if err := sameWidth("modulo", numerator, divisor); err != nil {
		return nil, err
	}
	if divisor.IsZero() {
		return nil, fmt.Errorf("modulo: %w", ErrDivisionByZero)
	}
	r := numerator.Clone()
	r.Trim()
	aligned := zero(r.layout)
	for !LessThan(r, divisor) {
		shift := r.length - divisor.length
		aligned.assign(divisor)
		if err := ShiftUp(aligned, shift); err != nil {
			return nil, fmt.Errorf("modulo: %w", err)
		}
		if LessThan(r, aligned) {
			aligned.assign(divisor)
			if err := ShiftUp(aligned, shift-1); err != nil {
				return nil, fmt.Errorf("modulo: %w", err)
			}
		}
		sub(aligned, r)
	}
	return r, nil
}
