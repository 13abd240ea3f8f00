package largeuint

import "fmt"

// MaxCapacity is the largest capacity a Layout may declare. The hex
// persistence format stores the limb count in 16 bits.
const MaxCapacity = 0xFFFF

// Layout fixes the limb width and the maximum number of limbs of a Uint.
type Layout struct {
	// Width is the number of bits stored per limb, 1 through 8.
	Width uint
	// Capacity is the maximum number of significant limbs.
	Capacity int
}

var (
	// BitLayout stores one bit per limb, 200 limbs.
	BitLayout = Layout{Width: 1, Capacity: 200}
	// ByteLayout stores one byte per limb, 30 limbs.
	ByteLayout = Layout{Width: 8, Capacity: 30}
)

// WithCapacity returns a copy of l with the given capacity.
func (l Layout) WithCapacity(capacity int) Layout {
	l.Capacity = capacity
	return l
}

// Validate reports whether l can back a Uint.
func (l Layout) Validate() error {
	if l.Width < 1 || l.Width > 8 {
		return fmt.Errorf("width %d: %w", l.Width, ErrInvalidLayout)
	}
	if l.Capacity < 1 || l.Capacity > MaxCapacity {
		return fmt.Errorf("capacity %d: %w", l.Capacity, ErrInvalidLayout)
	}
	return nil
}

// MaxBits returns the number of value bits the layout can hold.
func (l Layout) MaxBits() int {
	return int(l.Width) * l.Capacity
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("%d-bit limbs x %d", l.Width, l.Capacity)
}

func (l Layout) mask() uint8 {
	return uint8(uint(1)<<l.Width - 1)
}

func (l Layout) base() uint {
	return uint(1) << l.Width
}

// limbsFor returns how many limbs are needed to hold nbits value bits.
func (l Layout) limbsFor(nbits int) int {
	return (nbits + int(l.Width) - 1) / int(l.Width)
}
