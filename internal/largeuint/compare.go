package largeuint

// Compare results. The polarity is inverted with respect to the usual
// cmp convention and is part of the persisted test contract: a negative
// result means the first operand is the larger one.
const (
	CmpGreater = -1
	CmpEqual   = 0
	CmpLess    = 1
)

// Compare returns CmpEqual if a == b, CmpGreater (-1) if a is numerically
// larger than b and CmpLess (+1) if a is smaller.
//
// Both values must be trimmed. The significant lengths decide first; equal
// lengths are compared limb by limb from the most significant end.
func Compare(a, b *Uint) int {
	if a.layout.Width != b.layout.Width {
		return compareBits(a, b)
	}
	switch {
	case a.length > b.length:
		return CmpGreater
	case a.length < b.length:
		return CmpLess
	}
	for i := a.length - 1; i >= 0; i-- {
		switch {
		case a.limbs[i] > b.limbs[i]:
			return CmpGreater
		case a.limbs[i] < b.limbs[i]:
			return CmpLess
		}
	}
	return CmpEqual
}

// compareBits compares values of different limb widths bit by bit.
func compareBits(a, b *Uint) int {
	na, nb := a.BitLen(), b.BitLen()
	switch {
	case na > nb:
		return CmpGreater
	case na < nb:
		return CmpLess
	}
	for i := na - 1; i >= 0; i-- {
		ba, bb := a.Bit(i), b.Bit(i)
		switch {
		case ba > bb:
			return CmpGreater
		case ba < bb:
			return CmpLess
		}
	}
	return CmpEqual
}

// LessThan reports whether a < b.
func LessThan(a, b *Uint) bool {
	return Compare(a, b) == CmpLess
}

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b *Uint) bool {
	return Compare(a, b) != CmpGreater
}

// Equal reports whether a == b.
func Equal(a, b *Uint) bool {
	return Compare(a, b) == CmpEqual
}
