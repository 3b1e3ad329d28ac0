package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageResponse(t *testing.T) {
	t.Run("FirstOfMany", func(t *testing.T) {
		page := NewPageResponse([]string{"a", "b", "c"}, 0, 3, 10)
		assert.Equal(t, int32(0), page.Number)
		assert.Equal(t, int64(10), page.TotalElements)
		assert.Equal(t, int32(4), page.TotalPages)
		assert.True(t, page.First)
		assert.False(t, page.Last)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		page := NewPageResponse([]string{"j"}, 3, 3, 10)
		assert.Equal(t, int32(4), page.TotalPages)
		assert.False(t, page.First)
		assert.True(t, page.Last)
	})

	t.Run("ExactFit", func(t *testing.T) {
		page := NewPageResponse([]int{1, 2}, 4, 2, 10)
		assert.Equal(t, int32(5), page.TotalPages)
		assert.True(t, page.Last)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		page := NewPageResponse[string](nil, 0, 10, 0)
		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
		assert.Equal(t, int32(0), page.TotalPages)
		assert.True(t, page.First)
		assert.True(t, page.Last)
	})
}

func TestOperationNotPermittedError(t *testing.T) {
	err := NotPermitted(ReasonAlreadyBorrowed)
	assert.True(t, IsNotPermitted(err))
	assert.False(t, IsNotFound(err))
	assert.EqualError(t, err, ReasonAlreadyBorrowed)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("book", 42)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotPermitted(err))
	assert.EqualError(t, err, "no book found with ID:: 42")
}
