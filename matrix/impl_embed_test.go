// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/householder/matrix"
)

// TestEmbed_IdentityBlock: embedding [[1]] at the last diagonal slot yields I.
func TestEmbed_IdentityBlock(t *testing.T) {
	got, err := matrix.Embed(mustRows(t, [][]float64{{1}}), 3, 2)
	require.NoError(t, err)

	I, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, I.ToRows(), got.ToRows())
}

func TestEmbed_PlacesBlock(t *testing.T) {
	h := mustRows(t, [][]float64{{2, 3}, {4, 5}})

	got, err := matrix.Embed(h, 4, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{1, 0, 0, 0},
		{0, 2, 3, 0},
		{0, 4, 5, 0},
		{0, 0, 0, 1},
	}, got.ToRows())

	full, err := matrix.Embed(h, 2, 0)
	require.NoError(t, err)
	require.Equal(t, h.ToRows(), full.ToRows())
}

func TestEmbed_Errors(t *testing.T) {
	h := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	tests := []struct {
		name      string
		h         *matrix.Dense
		n, offset int
		wantErr   error
	}{
		{"nil block", nil, 3, 0, matrix.ErrNilMatrix},
		{"non-square block", mustRows(t, [][]float64{{1, 2}}), 3, 0, matrix.ErrNonSquare},
		{"negative offset", h, 3, -1, matrix.ErrOutOfRange},
		{"overflow", h, 3, 2, matrix.ErrOutOfRange},
		{"block larger than n", h, 1, 0, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Embed(tc.h, tc.n, tc.offset)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestColumnAndSubColumn(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	c, err := matrix.Column(m, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8}, c.Elements())

	s, err := matrix.SubColumn(m, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 8}, s.Elements())

	s, err = matrix.SubColumn(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{9}, s.Elements())

	_, err = matrix.Column(m, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.SubColumn(m, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	wide := mustRows(t, [][]float64{{1, 2, 3}})
	_, err = matrix.SubColumn(wide, 1) // j >= Rows
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
