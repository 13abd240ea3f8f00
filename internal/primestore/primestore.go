// Package primestore persists the list of primes found in resume mode.
//
// The list is a text file with one prime per line in the hex persistence
// format of package largeuint, followed by a comment holding its decimal
// value:
//
//	0300_43420F # int value: 1000003
//
// Readers ignore the comments, so the decimal part is informative only.
package primestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/agbru/primecalc/internal/largeuint"
)

// CommentPrefix separates the hex value of an entry from its decimal value.
const CommentPrefix = " # int value: "

// FormatEntry returns the line recording p, newline included.
func FormatEntry(p *largeuint.Uint) (string, error) {
	dec, err := largeuint.FormatDecimal(p)
	if err != nil {
		return "", fmt.Errorf("format entry: %w", err)
	}
	return largeuint.FormatHex(p) + CommentPrefix + dec + "\n", nil
}

// FindHighest returns the last prime recorded in the file at path, decoded
// in the given layout. A missing or empty file yields zero.
func FindHighest(path string, layout largeuint.Layout) (*largeuint.Uint, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return largeuint.New(layout, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("open prime list: %w", err)
	}
	defer f.Close()
	return ReadLast(f, layout)
}

// ReadLast decodes every value of r and returns the last one, or zero when
// r holds none.
func ReadLast(r io.Reader, layout largeuint.Layout) (*largeuint.Uint, error) {
	last, err := largeuint.New(layout, 0)
	if err != nil {
		return nil, fmt.Errorf("read prime list: %w", err)
	}
	hr := largeuint.NewHexReader(r, layout)
	for n := 1; ; n++ {
		x, err := hr.Next()
		if errors.Is(err, io.EOF) {
			return last, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read prime list: entry %d: %w", n, err)
		}
		last = x
	}
}

// Append records p at the end of the file at path, creating it if needed.
// The file is locked while the entry is written so that concurrent
// processes sharing one list do not interleave lines.
func Append(path string, p *largeuint.Uint) error {
	entry, err := FormatEntry(p)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open prime list: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return fmt.Errorf("lock prime list: %w", err)
	}
	_, werr := io.WriteString(f, entry)
	uerr := unlockFile(f)
	cerr := f.Close()
	if err := errors.Join(werr, uerr, cerr); err != nil {
		return fmt.Errorf("append to prime list: %w", err)
	}
	return nil
}

// Store binds a prime list file to the layout its values are decoded in.
type Store struct {
	path   string
	layout largeuint.Layout
}

// New returns a store for the file at path.
func New(path string, layout largeuint.Layout) *Store {
	return &Store{path: path, layout: layout}
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Highest returns the last recorded prime, or zero for a new list.
func (s *Store) Highest() (*largeuint.Uint, error) {
	return FindHighest(s.path, s.layout)
}

// Append records p.
func (s *Store) Append(p *largeuint.Uint) error {
	return Append(s.path, p)
}

// Resume returns the value just above the last recorded prime, the starting
// point of the next search. A new list resumes at 1, so its first prime is 2.
func (s *Store) Resume() (*largeuint.Uint, error) {
	last, err := s.Highest()
	if err != nil {
		return nil, err
	}
	if err := largeuint.Increment(last); err != nil {
		return nil, fmt.Errorf("resume after %s: %w", last, err)
	}
	return last, nil
}
