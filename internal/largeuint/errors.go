package largeuint

import "errors"

// Sentinel errors returned (wrapped with operation context) by the engine.
// Callers test them with errors.Is.
var (
	// ErrInvalidLayout reports a limb width outside 1..8 or a capacity
	// outside 1..65535.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrInvalidSize reports a length outside [0, capacity].
	ErrInvalidSize = errors.New("invalid size")
	// ErrIndexOutOfBounds reports a limb index outside [0, length).
	ErrIndexOutOfBounds = errors.New("limb index out of bounds")
	// ErrInvalidLimbValue reports a limb value wider than the layout width.
	ErrInvalidLimbValue = errors.New("invalid limb value")
	// ErrCapacityExceeded reports a result that does not fit the capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrUnderflow reports a decrement of zero.
	ErrUnderflow = errors.New("arithmetic underflow")
	// ErrNegativeResult reports a subtraction whose subtrahend exceeds the
	// minuend.
	ErrNegativeResult = errors.New("negative result")
	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformed reports text that does not decode to a value.
	ErrMalformed = errors.New("malformed input")
	// ErrLayoutMismatch reports operands with different limb widths.
	ErrLayoutMismatch = errors.New("layout mismatch")
	// ErrInvalidBase reports a radix outside 2..32.
	ErrInvalidBase = errors.New("invalid base")
)
