package ownership

import "errors"

// ErrMoved is returned when a String is used after its contents were moved.
var ErrMoved = errors.New("value used after move")

// String is a growable text value with a single owner. The zero value is an
// empty, usable String.
type String struct {
	buf   []byte
	moved bool
}

// NewString returns a String holding s.
func NewString(s string) *String {
	return &String{buf: []byte(s)}
}

// PushStr appends s in place.
func (s *String) PushStr(v string) error {
	if s.moved {
		return ErrMoved
	}
	s.buf = append(s.buf, v...)
	return nil
}

// Move hands the buffer to a new String. The receiver is unusable afterwards.
func (s *String) Move() *String {
	if s.moved {
		return &String{moved: true}
	}
	n := &String{buf: s.buf}
	s.buf = nil
	s.moved = true
	return n
}

// Clone returns an independent copy of the current contents.
func (s *String) Clone() (*String, error) {
	if s.moved {
		return nil, ErrMoved
	}
	return &String{buf: append([]byte(nil), s.buf...)}, nil
}

// Value returns the current contents.
func (s *String) Value() (string, error) {
	if s.moved {
		return "", ErrMoved
	}
	return string(s.buf), nil
}

// Moved reports whether the contents were handed to another String.
func (s *String) Moved() bool {
	return s.moved
}
