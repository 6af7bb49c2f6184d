// Package ownership walks through copy, move and clone of values.
package ownership

import (
	"fmt"
	"io"
)

// Updates copies start into two ints and bumps each by its own delta.
func Updates(start, dx, dy int) (x, y int) {
	x = start
	y = x
	x += dx
	y += dy
	return x, y
}

// Run prints the four ownership lines to w.
func Run(w io.Writer) error {
	const s1 = "meow"
	if _, err := fmt.Fprintf(w, "Immutable %s\n", s1); err != nil {
		return fmt.Errorf("write immutable: %w", err)
	}

	s2 := NewString("meow")
	if err := s2.PushStr(" meow"); err != nil {
		return err
	}
	mutable, err := s2.Value()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Mutable %s\n", mutable); err != nil {
		return fmt.Errorf("write mutable: %w", err)
	}

	x, y := Updates(5, 1, 2)
	if _, err := fmt.Fprintf(w, "updates %d %d\n", x, y); err != nil {
		return fmt.Errorf("write updates: %w", err)
	}

	moved, cloned, err := moveAndClone()
	if err != nil {
		return fmt.Errorf("move and clone: %w", err)
	}
	if _, err := fmt.Fprintf(w, "strings s2: %s | s3: %s\n", moved, cloned); err != nil {
		return fmt.Errorf("write strings: %w", err)
	}
	return nil
}

// moveAndClone moves "hello s1" into a new owner, extends it, then clones
// and extends the clone. The moved-from value is never touched again.
func moveAndClone() (string, string, error) {
	s1 := NewString("hello s1")
	s2 := s1.Move()

	if err := s2.PushStr("hello s2"); err != nil {
		return "", "", err
	}

	s3, err := s2.Clone()
	if err != nil {
		return "", "", err
	}
	if err := s3.PushStr("hello s3"); err != nil {
		return "", "", err
	}

	v2, err := s2.Value()
	if err != nil {
		return "", "", err
	}
	v3, err := s3.Value()
	if err != nil {
		return "", "", err
	}
	return v2, v3, nil
}
