// SPDX-License-Identifier: MIT

package hill_test

import (
	"testing"

	"github.com/katalvlaran/hill/hill"
	"github.com/katalvlaran/hill/matrix"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	k, err := hill.BuildKeyMatrix("LDIH", 2)
	require.NoError(t, err)
	inv, err := hill.InvertMatrix(k)
	require.NoError(t, err)

	in := hill.Block{9, 20} // "JU"
	out, err := hill.Transform(k, in)
	require.NoError(t, err)
	require.Equal(t, hill.Block{3, 4}, out) // "DE"
	require.Equal(t, hill.Block{9, 20}, in, "input block must not be modified")

	back, err := hill.Transform(inv, out)
	require.NoError(t, err)
	require.Equal(t, in, back)

	// Any square Reader works, not only the key wrappers.
	d, err := matrix.NewDenseFrom(2, 2, []int64{11, 3, 8, 7})
	require.NoError(t, err)
	out, err = hill.Transform(d, in)
	require.NoError(t, err)
	require.Equal(t, hill.Block{3, 4}, out)
}

func TestTransformErrors(t *testing.T) {
	t.Parallel()

	k, err := hill.BuildKeyMatrix("LDIH", 2)
	require.NoError(t, err)

	_, err = hill.Transform(k, hill.Block{1, 2, 3})
	require.ErrorIs(t, err, hill.ErrDimensionMismatch)

	_, err = hill.Transform(k, hill.Block{})
	require.ErrorIs(t, err, hill.ErrDimensionMismatch)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = hill.Transform(rect, hill.Block{1, 2})
	require.ErrorIs(t, err, hill.ErrInvalidDimension)

	_, err = hill.Transform(nil, hill.Block{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilKey *hill.KeyMatrix
	_, err = hill.Transform(nilKey, hill.Block{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilInv *hill.InverseKeyMatrix
	_, err = hill.Transform(nilInv, hill.Block{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
