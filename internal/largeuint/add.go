package largeuint

import "fmt"

// Add sets acc to acc + addend. addend is not modified. On a carry past the
// highest limb acc grows by one limb; if acc is already at capacity the call
// fails with ErrCapacityExceeded and acc is left unchanged.
func Add(addend, acc *Uint) error {
	if err := sameWidth("add", addend, acc); err != nil {
		return err
	}
	if addend == acc {
		addend = addend.Clone()
	}
	n := max(addend.length, acc.length)
	if n > acc.layout.Capacity {
		return fmt.Errorf("add %d limbs into capacity %d: %w", n, acc.layout.Capacity, ErrCapacityExceeded)
	}
	if n == acc.layout.Capacity && addCarry(addend, acc, n) != 0 {
		return fmt.Errorf("add: %w", ErrCapacityExceeded)
	}
	w, mask := acc.layout.Width, uint(acc.layout.mask())
	var carry uint
	for i := 0; i < n; i++ {
		s := uint(acc.limbs[i]) + uint(addend.at(i)) + carry
		acc.limbs[i] = uint8(s & mask)
		carry = s >> w
	}
	acc.length = n
	if carry != 0 {
		if err := acc.grow(uint8(carry)); err != nil {
			return fmt.Errorf("add: %w", err)
		}
	}
	acc.Trim()
	return nil
}

// addCarry returns the carry out of limb n-1 of addend + acc without
// modifying either.
func addCarry(addend, acc *Uint, n int) uint {
	w := acc.layout.Width
	var carry uint
	for i := 0; i < n; i++ {
		carry = (uint(acc.limbs[i]) + uint(addend.at(i)) + carry) >> w
	}
	return carry
}

// AddSmall sets acc to acc + v. v may be wider than a single limb, in which
// case the carry spills over as many limbs as needed.
func AddSmall(v uint8, acc *Uint) error {
	if v == 0 {
		return nil
	}
	w, mask := acc.layout.Width, uint(acc.layout.mask())

	carry := uint(v)
	for i := 0; carry != 0 && i < acc.length; i++ {
		carry = (uint(acc.limbs[i]) + carry) >> w
	}
	extra := 0
	for c := carry; c != 0; c >>= w {
		extra++
	}
	if acc.length+extra > acc.layout.Capacity {
		return fmt.Errorf("add %d: %w", v, ErrCapacityExceeded)
	}

	carry = uint(v)
	for i := 0; carry != 0 && i < acc.length; i++ {
		s := uint(acc.limbs[i]) + carry
		acc.limbs[i] = uint8(s & mask)
		carry = s >> w
	}
	for carry != 0 {
		if err := acc.grow(uint8(carry & mask)); err != nil {
			return fmt.Errorf("add %d: %w", v, err)
		}
		carry >>= w
	}
	acc.Trim()
	return nil
}

// Increment sets x to x + 1.
func Increment(x *Uint) error {
	return AddSmall(1, x)
}

// Decrement sets x to x - 1. Decrementing zero fails with ErrUnderflow.
func Decrement(x *Uint) error {
	if x.IsZero() {
		return fmt.Errorf("decrement: %w", ErrUnderflow)
	}
	mask := x.layout.mask()
	i := 0
	for x.limbs[i] == 0 {
		x.limbs[i] = mask
		i++
	}
	x.limbs[i]--
	x.Trim()
	return nil
}

// Subtract sets minuend to minuend - subtrahend. The subtrahend must not
// exceed the minuend; otherwise the call fails with ErrNegativeResult and
// minuend is left unchanged.
func Subtract(subtrahend, minuend *Uint) error {
	if err := sameWidth("subtract", subtrahend, minuend); err != nil {
		return err
	}
	if subtrahend == minuend {
		minuend.SetZero()
		return nil
	}
	if Compare(subtrahend, minuend) == CmpGreater {
		return fmt.Errorf("subtract: %w", ErrNegativeResult)
	}
	sub(subtrahend, minuend)
	return nil
}

// sub sets x to x - y assuming y <= x.
func sub(y, x *Uint) {
	base := int(x.layout.base())
	borrow := 0
	for i := 0; i < x.length; i++ {
		d := int(x.limbs[i]) - int(y.at(i)) - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		x.limbs[i] = uint8(d)
	}
	x.Trim()
}
