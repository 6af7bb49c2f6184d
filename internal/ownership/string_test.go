package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_PushStr(t *testing.T) {
	s := NewString("meow")

	require.NoError(t, s.PushStr(" meow"))

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "meow meow", v)
}

func TestString_MoveInvalidatesSource(t *testing.T) {
	s1 := NewString("hello s1")
	s2 := s1.Move()

	assert.True(t, s1.Moved())
	assert.False(t, s2.Moved())

	assert.ErrorIs(t, s1.PushStr("x"), ErrMoved)
	_, err := s1.Value()
	assert.ErrorIs(t, err, ErrMoved)
	_, err = s1.Clone()
	assert.ErrorIs(t, err, ErrMoved)

	v, err := s2.Value()
	require.NoError(t, err)
	assert.Equal(t, "hello s1", v)
}

func TestString_MoveTwice(t *testing.T) {
	s1 := NewString("a")
	_ = s1.Move()

	again := s1.Move()
	assert.True(t, again.Moved())
	assert.ErrorIs(t, again.PushStr("b"), ErrMoved)
}

func TestString_CloneIsIndependent(t *testing.T) {
	orig := NewString("hello")
	dup, err := orig.Clone()
	require.NoError(t, err)

	require.NoError(t, dup.PushStr(" dup"))
	require.NoError(t, orig.PushStr(" orig"))

	o, err := orig.Value()
	require.NoError(t, err)
	d, err := dup.Value()
	require.NoError(t, err)

	assert.Equal(t, "hello orig", o)
	assert.Equal(t, "hello dup", d)
}

func TestString_ZeroValue(t *testing.T) {
	var s String

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, s.PushStr("x"))

	dup, err := s.Clone()
	require.NoError(t, err)
	require.NoError(t, dup.PushStr("y"))

	moved := s.Move()
	require.NoError(t, moved.PushStr("z"))

	v, err = moved.Value()
	require.NoError(t, err)
	assert.Equal(t, "xz", v)

	d, err := dup.Value()
	require.NoError(t, err)
	assert.Equal(t, "xy", d)
}

func TestString_ZeroValueMove(t *testing.T) {
	var s String
	moved := s.Move()

	require.NoError(t, moved.PushStr("a"))
	v, err := moved.Value()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.ErrorIs(t, s.PushStr("b"), ErrMoved)
}
