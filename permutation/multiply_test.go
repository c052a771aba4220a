package permutation_test

import (
	"testing"

	"github.com/crossopt/semilocal-lcs/mongematrix"
	"github.com/crossopt/semilocal-lcs/permutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permutationsOf returns every permutation of {1..n} as a dense
// 1-indexed vector (index 0 unused).
func permutationsOf(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i + 1
	}
	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			v := make([]int, n+1)
			copy(v[1:], base)
			out = append(out, v)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			rec(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	rec(0)
	return out
}

func storeFromDense(t *testing.T, n int, dense []int) *permutation.Store {
	t.Helper()
	pairs := make([]permutation.Pair, 0, n)
	for i := 1; i <= n; i++ {
		pairs = append(pairs, permutation.Pair{Row: i, Col: dense[i]})
	}
	s, err := permutation.New(n, n, pairs)
	require.NoError(t, err)
	return s
}

// TestMultiply_MatchesTropicalReference exhaustively checks that
// Steady-Ant sticky multiplication agrees with tropical multiplication of
// the corresponding Monge matrices, for every pair of permutations of
// {1..5} (5! * 5! = 14400 cases).
func TestMultiply_MatchesTropicalReference(t *testing.T) {
	const n = 5
	perms := permutationsOf(n)

	for _, dp := range perms {
		p := storeFromDense(t, n, dp)
		pm, err := mongematrix.FromPermutation(p, n, n)
		require.NoError(t, err)

		for _, dq := range perms {
			q := storeFromDense(t, n, dq)
			qm, err := mongematrix.FromPermutation(q, n, n)
			require.NoError(t, err)

			got, err := permutation.Multiply(p, q)
			require.NoError(t, err)
			gotDense, err := got.Expand(n, n)
			require.NoError(t, err)

			wantM, err := pm.TropicalMultiply(qm)
			require.NoError(t, err)
			want, err := wantM.ToPermutation()
			require.NoError(t, err)
			wantDense, err := want.Expand(n, n)
			require.NoError(t, err)

			assert.Equal(t, wantDense, gotDense)
		}
	}
}

func TestMultiply_IdentityIsNeutral(t *testing.T) {
	p := storeFromDense(t, 4, []int{0, 3, 1, 4, 2})
	id := permutation.Identity(4)

	left, err := permutation.Multiply(p, id)
	require.NoError(t, err)
	right, err := permutation.Multiply(id, p)
	require.NoError(t, err)

	wantDense, _ := p.Expand(4, 4)
	leftDense, err := left.Expand(4, 4)
	require.NoError(t, err)
	rightDense, err := right.Expand(4, 4)
	require.NoError(t, err)

	assert.Equal(t, wantDense, leftDense)
	assert.Equal(t, wantDense, rightDense)
}

func TestMultiply_Associative(t *testing.T) {
	p := storeFromDense(t, 4, []int{0, 2, 4, 1, 3})
	q := storeFromDense(t, 4, []int{0, 3, 1, 4, 2})
	r := storeFromDense(t, 4, []int{0, 4, 3, 2, 1})

	pq, err := permutation.Multiply(p, q)
	require.NoError(t, err)
	left, err := permutation.Multiply(pq, r)
	require.NoError(t, err)

	qr, err := permutation.Multiply(q, r)
	require.NoError(t, err)
	right, err := permutation.Multiply(p, qr)
	require.NoError(t, err)

	leftDense, err := left.Expand(4, 4)
	require.NoError(t, err)
	rightDense, err := right.Expand(4, 4)
	require.NoError(t, err)
	assert.Equal(t, leftDense, rightDense)
}

func TestMultiply_ShapeMismatch(t *testing.T) {
	p := storeFromDense(t, 3, []int{0, 1, 2, 3})
	q, err := permutation.New(4, 4, []permutation.Pair{{Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}})
	require.NoError(t, err)
	_, err = permutation.Multiply(p, q)
	assert.ErrorIs(t, err, permutation.ErrShapeMismatch)
}
