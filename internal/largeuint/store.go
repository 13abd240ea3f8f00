package largeuint

import (
	"fmt"
	"math/bits"
)

// Uint is a fixed-capacity unsigned integer stored as little-endian limbs.
//
// Limbs at or above length are always zero, so reading past the significant
// part of a value yields zero limbs.
type Uint struct {
	layout Layout
	length int
	limbs  []uint8
}

// New returns a zero-valued Uint with length significant limbs. The limbs are
// all zero, so a non-zero length yields an untrimmed value until the caller
// sets its limbs or calls Trim.
func New(layout Layout, length int) (*Uint, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if length < 0 || length > layout.Capacity {
		return nil, fmt.Errorf("new: length %d outside [0, %d]: %w", length, layout.Capacity, ErrInvalidSize)
	}
	x := zero(layout)
	x.length = length
	return x, nil
}

// zero allocates a zero value for an already validated layout.
func zero(layout Layout) *Uint {
	return &Uint{layout: layout, limbs: make([]uint8, layout.Capacity)}
}

// FromUint64 returns v in the given layout.
func FromUint64(layout Layout, v uint64) (*Uint, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("from uint64: %w", err)
	}
	x := zero(layout)
	if err := x.setUint64(v); err != nil {
		return nil, fmt.Errorf("from uint64 %d: %w", v, err)
	}
	return x, nil
}

func (x *Uint) setUint64(v uint64) error {
	if x.layout.limbsFor(bits.Len64(v)) > x.layout.Capacity {
		return ErrCapacityExceeded
	}
	x.SetZero()
	mask := uint64(x.layout.mask())
	for v != 0 {
		x.limbs[x.length] = uint8(v & mask)
		x.length++
		v >>= x.layout.Width
	}
	return nil
}

// Layout returns the layout x was created with.
func (x *Uint) Layout() Layout { return x.layout }

// Len returns the number of significant limbs.
func (x *Uint) Len() int { return x.length }

// IsZero reports whether x has the value zero.
func (x *Uint) IsZero() bool {
	for i := 0; i < x.length; i++ {
		if x.limbs[i] != 0 {
			return false
		}
	}
	return true
}

// IsEven reports whether the lowest bit of x is clear.
func (x *Uint) IsEven() bool {
	return x.limbs[0]&1 == 0
}

// Limb returns the limb at index i.
func (x *Uint) Limb(i int) (uint8, error) {
	if i < 0 || i >= x.length {
		return 0, fmt.Errorf("get limb %d of %d: %w", i, x.length, ErrIndexOutOfBounds)
	}
	return x.limbs[i], nil
}

// SetLimb stores v at index i. Setting the highest limb to zero leaves x
// untrimmed.
func (x *Uint) SetLimb(i int, v uint8) error {
	if i < 0 || i >= x.length {
		return fmt.Errorf("set limb %d of %d: %w", i, x.length, ErrIndexOutOfBounds)
	}
	if v > x.layout.mask() {
		return fmt.Errorf("set limb %d to %d with %d-bit limbs: %w", i, v, x.layout.Width, ErrInvalidLimbValue)
	}
	x.limbs[i] = v
	return nil
}

// at returns the limb at i, or zero past the end of the store.
func (x *Uint) at(i int) uint8 {
	if i < len(x.limbs) {
		return x.limbs[i]
	}
	return 0
}

// grow appends v as the new highest limb.
func (x *Uint) grow(v uint8) error {
	if x.length == x.layout.Capacity {
		return fmt.Errorf("grow past %d limbs: %w", x.layout.Capacity, ErrCapacityExceeded)
	}
	x.limbs[x.length] = v
	x.length++
	return nil
}

// Trim drops zero high limbs so that the highest significant limb is
// non-zero. A zero value ends with length 0.
func (x *Uint) Trim() {
	for x.length > 0 && x.limbs[x.length-1] == 0 {
		x.length--
	}
}

// SetZero sets x to zero.
func (x *Uint) SetZero() {
	clear(x.limbs[:x.length])
	x.length = 0
}

// Clone returns an independent copy of x.
func (x *Uint) Clone() *Uint {
	c := &Uint{layout: x.layout, length: x.length, limbs: make([]uint8, len(x.limbs))}
	copy(c.limbs, x.limbs)
	return c
}

// Set copies the value of y into x. Both must use the same limb width and
// y must fit the capacity of x.
func (x *Uint) Set(y *Uint) error {
	if x == y {
		return nil
	}
	if err := sameWidth("set", y, x); err != nil {
		return err
	}
	if y.length > x.layout.Capacity {
		return fmt.Errorf("set %d limbs into capacity %d: %w", y.length, x.layout.Capacity, ErrCapacityExceeded)
	}
	x.assign(y)
	return nil
}

// assign copies y into x without checks.
func (x *Uint) assign(y *Uint) {
	clear(x.limbs[:x.length])
	copy(x.limbs, y.limbs[:y.length])
	x.length = y.length
}

// BitLen returns the number of bits needed to represent x.
func (x *Uint) BitLen() int {
	n := x.length
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return 0
	}
	return (n-1)*int(x.layout.Width) + bits.Len8(x.limbs[n-1])
}

// Bit returns bit i of the value.
func (x *Uint) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	w := int(x.layout.Width)
	return uint(x.at(i/w)>>(i%w)) & 1
}

// setBit sets bit i, growing the length as needed. The caller checks the
// capacity.
func (x *Uint) setBit(i int) {
	w := int(x.layout.Width)
	x.limbs[i/w] |= 1 << (i % w)
	if i/w >= x.length {
		x.length = i/w + 1
	}
}

// Uint64 returns the value of x and whether it fits in 64 bits.
func (x *Uint) Uint64() (uint64, bool) {
	if x.BitLen() > 64 {
		return 0, false
	}
	var v uint64
	for i := x.length - 1; i >= 0; i-- {
		v = v<<x.layout.Width | uint64(x.limbs[i])
	}
	return v, true
}

// Bytes returns the value as little-endian bytes without trailing zero
// bytes. Zero yields an empty slice.
func (x *Uint) Bytes() []byte {
	if x.layout.Width == 8 {
		n := x.length
		for n > 0 && x.limbs[n-1] == 0 {
			n--
		}
		return append([]byte(nil), x.limbs[:n]...)
	}
	n := x.BitLen()
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		out[i/8] |= byte(x.Bit(i) << (i % 8))
	}
	return out
}

// SetBytes returns the value of the little-endian bytes b in the given
// layout, trimmed.
func SetBytes(layout Layout, b []byte) (*Uint, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("set bytes: %w", err)
	}
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	nbits := 0
	if n > 0 {
		nbits = (n-1)*8 + bits.Len8(b[n-1])
	}
	if layout.limbsFor(nbits) > layout.Capacity {
		return nil, fmt.Errorf("set bytes: %d bits into %s: %w", nbits, layout, ErrCapacityExceeded)
	}
	x := zero(layout)
	if layout.Width == 8 {
		copy(x.limbs, b[:n])
		x.length = n
		return x, nil
	}
	for i := 0; i < nbits; i++ {
		if b[i/8]>>(i%8)&1 == 1 {
			x.setBit(i)
		}
	}
	return x, nil
}

func sameWidth(op string, a, b *Uint) error {
	if a.layout.Width != b.layout.Width {
		return fmt.Errorf("%s: %d-bit and %d-bit limbs: %w", op, a.layout.Width, b.layout.Width, ErrLayoutMismatch)
	}
	return nil
}
