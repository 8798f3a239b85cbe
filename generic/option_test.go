package generic

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	assert := assert_.New(t)

	some := Some("a")
	assert.True(some.IsSome())
	assert.False(some.IsNone())
	assert.Equal("a", some.Unwrap())
	assert.Equal("a", some.UnwrapOr("b"))

	none := None[string]()
	assert.True(none.IsNone())
	assert.Equal("b", none.UnwrapOr("b"))
	assert.Equal("", none.UnwrapOrDefault())
	assert.Panics(func() { none.Unwrap() })
	assert.Equal(some, none.Or(some))
}

func TestOptionPtr(t *testing.T) {
	assert := assert_.New(t)

	assert.Nil(None[int]().Ptr())
	p := Some(5).Ptr()
	if assert.NotNil(p) {
		assert.Equal(5, *p)
	}
	assert.Equal(Some(5), FromPtr(p))
	assert.Equal(None[int](), FromPtr[int](nil))

	v, ok := Some(1).Get()
	assert.True(ok)
	assert.Equal(1, v)
	_, ok = None[int]().Get()
	assert.False(ok)
}
