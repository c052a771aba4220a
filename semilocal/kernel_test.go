package semilocal_test

import (
	"testing"

	"github.com/crossopt/semilocal-lcs/semilocal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernel_EndToEndScenario(t *testing.T) {
	a := "BAABCBCA"
	b := "BAABCABCABACA"

	k, err := semilocal.BuildKernel(a, b)
	require.NoError(t, err)

	got, err := k.LCSWholeA(0, len(b))
	require.NoError(t, err)
	assert.Equal(t, semilocal.DPLongestCommonSubsequence(a, b), got)

	got, err = k.LCSWholeB(0, len(a))
	require.NoError(t, err)
	assert.Equal(t, semilocal.DPLongestCommonSubsequence(a, b), got)

	got, err = k.LCSPrefixASuffixB(4, 5)
	require.NoError(t, err)
	assert.Equal(t, semilocal.DPLongestCommonSubsequence("BAAB", "BCABACA"), got)

	got, err = k.LCSSuffixAPrefixB(3, 6)
	require.NoError(t, err)
	assert.Equal(t, semilocal.DPLongestCommonSubsequence("BCBCA", "BAABCA"), got)
}

func TestKernel_LCSWholeA_AgreesWithDPForEverySubstring(t *testing.T) {
	a := "BAABCBCA"
	b := "BAABCABCABACA"

	k, err := semilocal.BuildKernel(a, b)
	require.NoError(t, err)

	for l := 0; l <= len(b); l++ {
		for r := l; r <= len(b); r++ {
			got, err := k.LCSWholeA(l, r)
			require.NoError(t, err)
			want := semilocal.DPLongestCommonSubsequence(a, b[l:r])
			assert.Equal(t, want, got, "l=%d r=%d", l, r)
		}
	}
}

func TestKernel_EmptyStrings(t *testing.T) {
	k, err := semilocal.BuildKernel("", "abc")
	require.NoError(t, err)

	got, err := k.LCSWholeA(0, 3)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = k.LCSWholeB(0, 0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestKernel_IdenticalStrings(t *testing.T) {
	s := "ABCDE"
	k, err := semilocal.BuildKernel(s, s)
	require.NoError(t, err)

	got, err := k.LCSWholeA(0, len(s))
	require.NoError(t, err)
	assert.Equal(t, len(s), got)
}

func TestKernel_SingleCharacterMismatchIsOneLess(t *testing.T) {
	same, err := semilocal.BuildKernel("ABCDE", "ABCDE")
	require.NoError(t, err)
	sameLen, err := same.LCSWholeA(0, 5)
	require.NoError(t, err)

	diff, err := semilocal.BuildKernel("ABCDE", "ABCDX")
	require.NoError(t, err)
	diffLen, err := diff.LCSWholeA(0, 5)
	require.NoError(t, err)

	assert.Equal(t, sameLen-1, diffLen)
}

func TestKernel_QueriesRejectOutOfRange(t *testing.T) {
	k, err := semilocal.BuildKernel("AB", "ABC")
	require.NoError(t, err)

	_, err = k.LCSWholeA(-1, 2)
	assert.ErrorIs(t, err, semilocal.ErrOutOfRange)

	_, err = k.LCSWholeA(2, 1)
	assert.ErrorIs(t, err, semilocal.ErrOutOfRange)

	_, err = k.LCSWholeA(0, 10)
	assert.ErrorIs(t, err, semilocal.ErrOutOfRange)

	_, err = k.LCSWholeB(0, 10)
	assert.ErrorIs(t, err, semilocal.ErrOutOfRange)
}
