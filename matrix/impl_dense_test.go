// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hill/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 2)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFrom verifies row-major layout and length validation.
func TestNewDenseFrom(t *testing.T) {
	src := []int64{11, 3, 8, 7}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	CompareExact(t, [][]int64{{11, 3}, {8, 7}}, m)

	src[0] = 99 // caller keeps ownership of its slice
	require.Equal(t, int64(11), MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom(2, 2, []int64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4), matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, -42))
	require.Equal(t, int64(-42), MustAt(t, m, 1, 2))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	require.Equal(t, int64(1), MustAt(t, m, 0, 0))     // original unchanged
	require.Equal(t, int64(3), MustAt(t, clone, 0, 0)) // clone mutated

	vals := m.Values()
	vals[3] = 100
	require.Equal(t, int64(2), MustAt(t, m, 1, 1)) // Values is a copy too
}

// TestIdentityAndString checks the identity layout and the Stringer format.
func TestIdentityAndString(t *testing.T) {
	id := IdentityDense(t, 3)
	CompareExact(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
	require.Equal(t, "[11, 3]\n[8, 7]\n", NewFilledDense(t, 2, 2, 11, 3, 8, 7).String())

	_, err := matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestEqual covers shape, value, nil and fallback comparisons.
func TestEqual(t *testing.T) {
	a := NewFilledDense(t, 2, 2, 1, 2, 3, 4)
	b := NewFilledDense(t, 2, 2, 1, 2, 3, 4)
	c := NewFilledDense(t, 2, 2, 1, 2, 3, 5)
	d := NewFilledDense(t, 1, 4, 1, 2, 3, 4)

	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(hide{a}, b)) // generic path
	require.False(t, matrix.Equal(a, c))
	require.False(t, matrix.Equal(hide{a}, c))
	require.False(t, matrix.Equal(a, d))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(nil, nil))
}
