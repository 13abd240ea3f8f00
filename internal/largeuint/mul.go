package largeuint

import "fmt"

// Multiply sets acc to acc * multiplier using binary double-and-add: the
// multiplier's bits are scanned from the most significant end, the partial
// product is doubled at every step and the original accumulator is added for
// each set bit. On overflow acc is left unchanged.
func Multiply(multiplier, acc *Uint) error {
	if err := sameWidth("multiply", multiplier, acc); err != nil {
		return err
	}
	if multiplier.IsZero() || acc.IsZero() {
		acc.SetZero()
		return nil
	}
	orig := acc.Clone()
	if multiplier == acc {
		multiplier = orig
	}
	product := zero(acc.layout)
	for i := multiplier.BitLen() - 1; i >= 0; i-- {
		if err := Double(product); err != nil {
			return fmt.Errorf("multiply: %w", err)
		}
		if multiplier.Bit(i) == 1 {
			if err := Add(orig, product); err != nil {
				return fmt.Errorf("multiply: %w", err)
			}
		}
	}
	acc.assign(product)
	return nil
}

// Double sets x to 2x.
func Double(x *Uint) error {
	if x.length == 0 {
		return nil
	}
	w, mask := x.layout.Width, uint(x.layout.mask())
	if x.length == x.layout.Capacity && x.limbs[x.length-1]>>(w-1) != 0 {
		return fmt.Errorf("double: %w", ErrCapacityExceeded)
	}
	var carry uint
	for i := 0; i < x.length; i++ {
		s := uint(x.limbs[i])<<1 | carry
		x.limbs[i] = uint8(s & mask)
		carry = s >> w
	}
	if carry != 0 {
		if err := x.grow(uint8(carry)); err != nil {
			return fmt.Errorf("double: %w", err)
		}
	}
	x.Trim()
	return nil
}

// Halve sets x to x / 2 and returns the bit shifted out.
func Halve(x *Uint) uint8 {
	if x.length == 0 {
		return 0
	}
	w := x.layout.Width
	dropped := x.limbs[0] & 1
	for i := 0; i < x.length; i++ {
		x.limbs[i] = x.limbs[i]>>1 | (x.at(i+1)&1)<<(w-1)
	}
	x.Trim()
	return dropped
}

// ShiftUp multiplies x by base^n, moving every limb n positions up. Zero
// stays zero.
func ShiftUp(x *Uint, n int) error {
	if n < 0 {
		return fmt.Errorf("shift up by %d: %w", n, ErrInvalidSize)
	}
	if x.length == 0 || n == 0 {
		return nil
	}
	if x.length+n > x.layout.Capacity {
		return fmt.Errorf("shift up %d limbs by %d: %w", x.length, n, ErrCapacityExceeded)
	}
	copy(x.limbs[n:x.length+n], x.limbs[:x.length])
	clear(x.limbs[:n])
	x.length += n
	return nil
}

// ShiftDown divides x by base^n, discarding the n lowest limbs.
func ShiftDown(x *Uint, n int) {
	if n <= 0 {
		return
	}
	if n >= x.length {
		x.SetZero()
		return
	}
	copy(x.limbs, x.limbs[n:x.length])
	clear(x.limbs[x.length-n : x.length])
	x.length -= n
	x.Trim()
}

// shiftIn multiplies x by base and stores limb v in the lowest position.
func (x *Uint) shiftIn(v uint8) error {
	if x.length == 0 {
		if v != 0 {
			x.limbs[0] = v
			x.length = 1
		}
		return nil
	}
	if err := ShiftUp(x, 1); err != nil {
		return err
	}
	x.limbs[0] = v
	return nil
}
