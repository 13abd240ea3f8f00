package largeuint

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  Layout
		length  int
		wantErr error
	}{
		{"zero length", ByteLayout, 0, nil},
		{"full capacity", ByteLayout, 30, nil},
		{"negative length", ByteLayout, -1, ErrInvalidSize},
		{"past capacity", ByteLayout, 31, ErrInvalidSize},
		{"bit layout past capacity", BitLayout, 201, ErrInvalidSize},
		{"zero width", Layout{Width: 0, Capacity: 4}, 0, ErrInvalidLayout},
		{"wide limbs", Layout{Width: 9, Capacity: 4}, 0, ErrInvalidLayout},
		{"zero capacity", Layout{Width: 8, Capacity: 0}, 0, ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, err := New(tt.layout, tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%v, %d) error = %v, want %v", tt.layout, tt.length, err, tt.wantErr)
			}
			if err == nil && x.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", x.Len(), tt.length)
			}
		})
	}
}

func TestGetSetLimb(t *testing.T) {
	t.Parallel()

	num, err := New(ByteLayout, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range []uint8{255, 1, 76} {
		if err := num.SetLimb(i, v); err != nil {
			t.Fatalf("SetLimb(%d, %d) error: %v", i, v, err)
		}
	}
	for i, want := range []uint8{255, 1, 76} {
		got, err := num.Limb(i)
		if err != nil || got != want {
			t.Errorf("Limb(%d) = %d, %v; want %d", i, got, err, want)
		}
	}

	if _, err := num.Limb(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Limb(3) error = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := num.Limb(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Limb(-1) error = %v, want ErrIndexOutOfBounds", err)
	}
	if err := num.SetLimb(3, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("SetLimb(3) error = %v, want ErrIndexOutOfBounds", err)
	}

	bit, _ := New(BitLayout, 1)
	if err := bit.SetLimb(0, 2); !errors.Is(err, ErrInvalidLimbValue) {
		t.Errorf("SetLimb(0, 2) on bit layout error = %v, want ErrInvalidLimbValue", err)
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()

	x, _ := New(ByteLayout, 4)
	_ = x.SetLimb(0, 7)
	x.Trim()
	if x.Len() != 1 {
		t.Fatalf("Len() after Trim = %d, want 1", x.Len())
	}
	x.Trim()
	if x.Len() != 1 {
		t.Errorf("second Trim changed Len() to %d", x.Len())
	}

	z, _ := New(BitLayout, 5)
	z.Trim()
	if z.Len() != 0 || !z.IsZero() {
		t.Errorf("trimmed zero has Len() %d", z.Len())
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	a := mustLoadBits(t, "11101")
	b := a.Clone()
	if got := StoreBits(b); got != "11101" {
		t.Fatalf("clone = %q, want 11101", got)
	}
	if err := Increment(b); err != nil {
		t.Fatal(err)
	}
	if got := StoreBits(a); got != "11101" {
		t.Errorf("source changed after mutating the clone: %q", got)
	}
	if Compare(a, a.Clone()) != CmpEqual {
		t.Error("Compare(x, clone(x)) != CmpEqual")
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	x := mustFromUint64(t, ByteLayout, 0xABCDEF)
	y := mustFromUint64(t, ByteLayout, 5)
	if err := x.Set(y); err != nil {
		t.Fatal(err)
	}
	assertValue(t, "x", x, 5)

	small := mustFromUint64(t, ByteLayout.WithCapacity(1), 1)
	if err := small.Set(mustFromUint64(t, ByteLayout, 0x1FF)); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Set into small capacity error = %v, want ErrCapacityExceeded", err)
	}
	if err := x.Set(mustFromUint64(t, BitLayout, 1)); !errors.Is(err, ErrLayoutMismatch) {
		t.Errorf("Set across widths error = %v, want ErrLayoutMismatch", err)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	t.Parallel()

	values := []uint64{0, 1, 2, 255, 256, 0xFFFFFF, 1 << 40, 1<<64 - 1}
	for _, layout := range testLayouts {
		for _, v := range values {
			x := mustFromUint64(t, layout, v)
			assertValue(t, layout.String(), x, v)
		}
	}

	if _, err := FromUint64(ByteLayout.WithCapacity(2), 0x10000); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("FromUint64 overflow error = %v, want ErrCapacityExceeded", err)
	}
}

func TestBitLen(t *testing.T) {
	t.Parallel()

	for _, layout := range testLayouts {
		for _, tc := range []struct {
			v    uint64
			want int
		}{{0, 0}, {1, 1}, {2, 2}, {255, 8}, {256, 9}, {1767, 11}} {
			if got := mustFromUint64(t, layout, tc.v).BitLen(); got != tc.want {
				t.Errorf("%s: BitLen(%d) = %d, want %d", layout, tc.v, got, tc.want)
			}
		}
	}
}

func TestBytesAcrossLayouts(t *testing.T) {
	t.Parallel()

	want := []byte{0x43, 0x12, 0x32}
	for _, layout := range testLayouts {
		x, err := SetBytes(layout, []byte{0x43, 0x12, 0x32, 0x00})
		if err != nil {
			t.Fatalf("%s: SetBytes error: %v", layout, err)
		}
		assertValue(t, layout.String(), x, 0x321243)
		if got := x.Bytes(); !slices.Equal(got, want) {
			t.Errorf("%s: Bytes() = %x, want %x", layout, got, want)
		}
	}

	if _, err := SetBytes(BitLayout.WithCapacity(8), []byte{0xFF, 0x01}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("SetBytes overflow error = %v, want ErrCapacityExceeded", err)
	}
}

func TestIsEven(t *testing.T) {
	t.Parallel()

	for _, layout := range testLayouts {
		if !mustFromUint64(t, layout, 0).IsEven() {
			t.Errorf("%s: 0 should be even", layout)
		}
		if mustFromUint64(t, layout, 77).IsEven() {
			t.Errorf("%s: 77 should be odd", layout)
		}
		if !mustFromUint64(t, layout, 1024).IsEven() {
			t.Errorf("%s: 1024 should be even", layout)
		}
	}
}
