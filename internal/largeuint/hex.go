package largeuint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Hex persistence format
//
//	CCCC_HHLL...
//
// CCCC is the byte count as four upper-case hex digits in the order
// bits [4:8], [0:4], [12:16], [8:12] (the two bytes of a little-endian
// 16-bit value, each written high nibble first). An underscore follows, then
// count bytes, least significant byte first, each written high nibble first.
// A '#' starts a comment that runs to the end of the line. Readers skip any
// other character that is not an upper-case hex digit.
//
// The value 0x3D4A50 is written 0300_504A3D.

const hexDigits = "0123456789ABCDEF"

// FormatHex renders x in the hex persistence format. High zero limbs are
// dropped, so an untrimmed value prints like its trimmed form.
func FormatHex(x *Uint) string {
	data := x.Bytes()
	count := len(data)

	var sb strings.Builder
	sb.Grow(5 + 2*count)
	sb.WriteByte(hexDigits[count>>4&0x0F])
	sb.WriteByte(hexDigits[count&0x0F])
	sb.WriteByte(hexDigits[count>>12&0x0F])
	sb.WriteByte(hexDigits[count>>8&0x0F])
	sb.WriteByte('_')
	for _, b := range data {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}
	return sb.String()
}

// WriteHex writes the hex persistence form of x to w.
func WriteHex(w io.Writer, x *Uint) error {
	_, err := io.WriteString(w, FormatHex(x))
	return err
}

// ParseHex decodes the first value of s in the given layout.
func ParseHex(layout Layout, s string) (*Uint, error) {
	x, err := NewHexReader(strings.NewReader(s), layout).Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse hex %q: no value: %w", s, ErrMalformed)
	}
	return x, err
}

// HexReader decodes a stream of values written in the hex persistence
// format.
type HexReader struct {
	r      io.ByteReader
	layout Layout
}

// NewHexReader returns a reader decoding values of the given layout from r.
func NewHexReader(r io.Reader, layout Layout) *HexReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &HexReader{r: br, layout: layout}
}

type hexState int

const (
	hexCount0 hexState = iota
	hexCount1
	hexCount2
	hexCount3
	hexSeparator
	hexHigh
	hexLow
)

// Next decodes the next value. It returns io.EOF when the stream ends before
// a value starts and ErrMalformed when it ends inside one.
func (h *HexReader) Next() (*Uint, error) {
	if err := h.layout.Validate(); err != nil {
		return nil, fmt.Errorf("read hex: %w", err)
	}
	var (
		state   = hexCount0
		comment bool
		count   int
		data    []byte
	)
	for {
		c, err := h.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read hex: %w", err)
			}
			if state == hexCount0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("read hex: value ends after %d of %d bytes: %w", len(data), count, ErrMalformed)
		}

		if c == '#' {
			comment = true
		}
		if comment {
			comment = c != '\n'
			continue
		}

		if state == hexSeparator {
			if c != '_' {
				continue
			}
			if count == 0 {
				return zero(h.layout), nil
			}
			data = make([]byte, 0, count)
			state = hexHigh
			continue
		}

		nibble := hexNibble(c)
		if nibble < 0 {
			continue
		}
		switch state {
		case hexCount0:
			count = nibble << 4
			state = hexCount1
		case hexCount1:
			count += nibble
			state = hexCount2
		case hexCount2:
			count += nibble << 12
			state = hexCount3
		case hexCount3:
			count += nibble << 8
			state = hexSeparator
		case hexHigh:
			data = append(data, byte(nibble<<4))
			state = hexLow
		case hexLow:
			data[len(data)-1] |= byte(nibble)
			if len(data) == count {
				return h.finish(data)
			}
			state = hexHigh
		}
	}
}

func (h *HexReader) finish(data []byte) (*Uint, error) {
	x, err := SetBytes(h.layout, data)
	if err != nil {
		return nil, fmt.Errorf("read hex: %d bytes: %w", len(data), err)
	}
	return x, nil
}

// hexNibble returns the value of an upper-case hex digit, or -1.
func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
