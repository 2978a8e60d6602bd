package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err1 := fmt.Errorf("my new error")
	err2 := Wrap("reading left header", err1)
	assert.Equal(t, "reading left header: my new error", err2.Error())
	assert.Equal(t, err1, Unwrap(err2))
	assert.Nil(t, Wrap("nothing", nil))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(io.ErrUnexpectedEOF, "reading %s row %d", "right", 3)
	assert.Equal(t, "reading right row 3: unexpected EOF", err.Error())
	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Nil(t, Wrapf(nil, "row %d", 1))
}

func TestAs(t *testing.T) {
	err := Wrap("outer", Wrap("inner", io.EOF))
	var e *Error
	assert.True(t, As(err, &e))
	assert.Equal(t, "outer: inner: EOF", e.Error())
}

func TestContains(t *testing.T) {
	err1 := fmt.Errorf("my new error")
	err2 := Wrap("err 2", err1)
	err3 := fmt.Errorf("another error")
	assert.True(t, Contains(err1, err1))
	assert.True(t, Contains(err2, err1))
	assert.True(t, Contains(err1, err1.Error()))
	assert.True(t, Contains(err2, err1.Error()))
	assert.False(t, Contains(err3, err1))
	assert.False(t, Contains(err3, err1.Error()))
	assert.False(t, Contains(err1, 123))
	assert.True(t, Contains(nil, nil))
	assert.False(t, Contains(nil, ""))
	assert.False(t, Contains(err1, nil))
	assert.False(t, Contains(nil, err1))
}
