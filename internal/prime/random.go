package prime

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/agbru/primecalc/internal/largeuint"
	"golang.org/x/crypto/chacha20"
)

// RandomSource is an io.Reader over a ChaCha20 keystream. Sources created
// with the same non-zero seed and stream produce the same bytes.
type RandomSource struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
}

// NewRandomSource creates a keystream for the given seed and stream number.
// A zero seed draws the key from crypto/rand. Distinct streams of one seed
// are independent, which gives each concurrent search its own sequence.
func NewRandomSource(seed uint64, stream uint32) (*RandomSource, error) {
	key := make([]byte, chacha20.KeySize)
	if seed == 0 {
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return nil, fmt.Errorf("random source: %w", err)
		}
	} else {
		for i := 0; i < len(key); i += 8 {
			binary.LittleEndian.PutUint64(key[i:], seed)
		}
	}
	nonce := make([]byte, chacha20.NonceSize)
	binary.LittleEndian.PutUint32(nonce, stream)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("random source: %w", err)
	}
	return &RandomSource{cipher: c}, nil
}

// Read fills p with keystream bytes. It never fails.
func (r *RandomSource) Read(p []byte) (int, error) {
	clear(p)
	r.mu.Lock()
	r.cipher.XORKeyStream(p, p)
	r.mu.Unlock()
	return len(p), nil
}

// RandomCandidate returns a value made of nbytes random bytes. The top
// bytes may be zero, so the value can be shorter than nbytes.
func RandomCandidate(layout largeuint.Layout, nbytes int, rng io.Reader) (*largeuint.Uint, error) {
	if nbytes < 1 {
		return nil, fmt.Errorf("random candidate of %d bytes: %w", nbytes, largeuint.ErrInvalidSize)
	}
	b := make([]byte, nbytes)
	if _, err := io.ReadFull(rng, b); err != nil {
		return nil, fmt.Errorf("random candidate: %w", err)
	}
	x, err := largeuint.SetBytes(layout, b)
	if err != nil {
		return nil, fmt.Errorf("random candidate: %w", err)
	}
	return x, nil
}

// RandomDecimal returns a value made of the given number of uniformly
// random decimal digits. Leading zeros are allowed.
func RandomDecimal(layout largeuint.Layout, digits int, rng io.Reader) (*largeuint.Uint, error) {
	if digits < 1 {
		return nil, fmt.Errorf("random decimal of %d digits: %w", digits, largeuint.ErrInvalidSize)
	}
	out := make([]byte, 0, digits)
	buf := make([]byte, digits)
	for len(out) < digits {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("random decimal: %w", err)
		}
		for _, b := range buf {
			// 250 is the largest multiple of 10 below 256.
			if b < 250 && len(out) < digits {
				out = append(out, '0'+b%10)
			}
		}
	}
	x, err := largeuint.ParseDecimal(layout, string(out))
	if err != nil {
		return nil, fmt.Errorf("random decimal: %w", err)
	}
	return x, nil
}
