package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceWritesCells(t *testing.T) {
	b := New(3)

	_, err := b.Place(1, []int{0, 1, 0})
	require.NoError(t, err)
	_, err = b.Place(1, []int{0, 1, 1})
	require.NoError(t, err)

	expected := make([]Cell, 27)
	expected[3] = 1  // (0,1,0)
	expected[12] = 1 // (0,1,1)
	assert.Equal(t, expected, b.Cells)
}

func TestPlaceUnsupported(t *testing.T) {
	b := New(3)
	_, err := b.Place(1, []int{0, 1, 1})
	assert.ErrorIs(t, err, ErrUnsupported)

	// once the supporting cell is filled the same move works
	_, err = b.Place(1, []int{0, 1, 0})
	require.NoError(t, err)
	_, err = b.Place(1, []int{0, 1, 1})
	assert.NoError(t, err)
}

func TestPlaceOccupied(t *testing.T) {
	b := New(3)
	_, err := b.Place(1, []int{0, 1, 0})
	require.NoError(t, err)

	before := make([]Cell, len(b.Cells))
	copy(before, b.Cells)

	_, err = b.Place(2, []int{0, 1, 0})
	assert.ErrorIs(t, err, ErrOccupied)
	assert.Equal(t, before, b.Cells)
}

func TestPlaceBasePlaneNeedsNoSupport(t *testing.T) {
	// axes 0 and 1 are the original 2D board; nothing lies below them
	b := New(4)
	won, err := b.Place(1, []int{2, 2, 0, 0})
	require.NoError(t, err)
	assert.False(t, won)
}

func TestPlaceSupportOnHighestAxis(t *testing.T) {
	b := New(4)

	// (1,1,0,2) rests on (1,1,0,1), which rests on (1,1,0,0)
	_, err := b.Place(1, []int{1, 1, 0, 2})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = b.Place(1, []int{1, 1, 0, 0})
	require.NoError(t, err)
	_, err = b.Place(1, []int{1, 1, 0, 1})
	require.NoError(t, err)
	won, err := b.Place(1, []int{1, 1, 0, 2})
	require.NoError(t, err)
	assert.True(t, won, "three stacked pieces form a line")
}

func TestPlaceIndexErrors(t *testing.T) {
	b := New(2)
	_, err := b.Place(1, []int{1})
	assert.ErrorIs(t, err, ErrOutOfDimension)
	_, err = b.Place(1, []int{0, 3})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
