package largeuint

import (
	"fmt"
	"slices"
)

const digitChars = "0123456789abcdefghijklmnopqrstuv"

// DecimalDigits returns the decimal digits of x, least significant first,
// obtained by repeated division by ten. Zero yields an empty slice; callers
// render it as "0".
func DecimalDigits(x *Uint) ([]uint8, error) {
	return digits(x, 10)
}

// digits divides x repeatedly by base, collecting the remainders.
func digits(x *Uint, base int) ([]uint8, error) {
	radix := zero(x.layout)
	if err := radix.setUint64(uint64(base)); err != nil {
		return nil, fmt.Errorf("base %d in %s: %w", base, x.layout, err)
	}
	var out []uint8
	value := x.Clone()
	value.Trim()
	for !value.IsZero() {
		q, r, err := Divide(value, radix)
		if err != nil {
			return nil, err
		}
		d, _ := r.Uint64()
		out = append(out, uint8(d))
		value = q
	}
	return out, nil
}

// FormatDecimal renders x in base 10.
func FormatDecimal(x *Uint) (string, error) {
	return FormatBase(x, 10)
}

// FormatBase renders x in the given base (2 through 32) with lower-case
// digits.
func FormatBase(x *Uint, base int) (string, error) {
	if base < 2 || base > len(digitChars) {
		return "", fmt.Errorf("format base %d: %w", base, ErrInvalidBase)
	}
	ds, err := digits(x, base)
	if err != nil {
		return "", fmt.Errorf("format base %d: %w", base, err)
	}
	if len(ds) == 0 {
		return "0", nil
	}
	out := make([]byte, len(ds))
	for i, d := range ds {
		out[i] = digitChars[d]
	}
	slices.Reverse(out)
	return string(out), nil
}

// ParseDecimal decodes a base-10 digit string.
func ParseDecimal(layout Layout, s string) (*Uint, error) {
	return ParseBase(layout, s, 10)
}

// ParseBase decodes s, written in the given base (2 through 32), into the
// layout. Letters are accepted in either case.
func ParseBase(layout Layout, s string, base int) (*Uint, error) {
	if base < 2 || base > len(digitChars) {
		return nil, fmt.Errorf("parse base %d: %w", base, ErrInvalidBase)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("parse base %d: %w", base, err)
	}
	if s == "" {
		return nil, fmt.Errorf("parse base %d: empty string: %w", base, ErrMalformed)
	}
	radix := zero(layout)
	if err := radix.setUint64(uint64(base)); err != nil {
		return nil, fmt.Errorf("parse base %d in %s: %w", base, layout, err)
	}
	acc := zero(layout)
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			return nil, fmt.Errorf("parse base %d: invalid digit %q at %d: %w", base, s[i], i, ErrMalformed)
		}
		if err := Multiply(radix, acc); err != nil {
			return nil, fmt.Errorf("parse base %d %q: %w", base, s, err)
		}
		if err := AddSmall(uint8(d), acc); err != nil {
			return nil, fmt.Errorf("parse base %d %q: %w", base, s, err)
		}
	}
	return acc, nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'v':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'V':
		return int(c-'A') + 10
	}
	return -1
}

// String renders x in base 10. If the layout is too narrow to hold the
// constant ten, the hex persistence form is returned instead.
func (x *Uint) String() string {
	s, err := FormatDecimal(x)
	if err != nil {
		return FormatHex(x)
	}
	return s
}
