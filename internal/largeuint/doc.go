// Package largeuint implements fixed-capacity arbitrary-precision unsigned
// integers on top of a limb store whose limb width is a parameter of the
// value's Layout.
//
// Two layouts mirror the historical representations: BitLayout stores one bit
// per limb and ByteLayout one byte per limb. Both share the same arithmetic
// engine: carry/borrow propagation, double-and-add multiplication, restoring
// long division, a ceiling square root by Newton iteration and the textual
// codecs (hex persistence format, decimal and bit strings).
//
// # Ownership
//
// Operations follow an accumulator convention: the last *Uint argument is
// mutated in place, the others are read only. A failed call leaves the
// accumulator unchanged. Passing the same value as both operands is
// supported; the read-only side is snapshotted first.
//
// # Comparison polarity
//
// Compare keeps the inverted polarity of the persisted data and tests it was
// designed against: it returns CmpGreater (-1) when the first operand is the
// larger value and CmpLess (+1) when it is the smaller one. LessThan,
// LessOrEqual and Equal have their conventional meaning.
package largeuint
