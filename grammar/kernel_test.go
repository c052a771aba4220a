package grammar_test

import (
	"testing"

	"github.com/crossopt/semilocal-lcs/grammar"
	"github.com/crossopt/semilocal-lcs/semilocal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fibonacciGrammar builds F0 = "A", F1 = "AB", Fi = F(i-1) . F(i-2), up to
// Fn, and returns the rule set together with Fn's rule index.
func fibonacciGrammar(n int) (*grammar.RuleSet, int) {
	rs := grammar.NewRuleSet()
	f0 := rs.AddTerminal('A')
	if n == 0 {
		return rs, f0
	}
	fPrev2 := f0
	a := rs.AddTerminal('A')
	b := rs.AddTerminal('B')
	fPrev1 := rs.AddRule(a, b)
	if n == 1 {
		return rs, fPrev1
	}
	var current int
	for i := 2; i <= n; i++ {
		current = rs.AddRule(fPrev1, fPrev2)
		fPrev2, fPrev1 = fPrev1, current
	}
	return rs, current
}

func TestGrammarKernel_FibonacciMatchesDPOracle(t *testing.T) {
	rs, final := fibonacciGrammar(8)
	p := "ABACABABDAABAAAB"

	text, err := rs.Decompress(final)
	require.NoError(t, err)

	k, err := grammar.BuildKernel(p, rs, final)
	require.NoError(t, err)

	want := semilocal.DPLongestCommonSubsequence(p, text)
	assert.Equal(t, want, k.LCS())
}

func TestGrammarKernel_FibonacciAgreesAcrossSmallIndices(t *testing.T) {
	for n := 0; n <= 6; n++ {
		rs, final := fibonacciGrammar(n)
		text, err := rs.Decompress(final)
		require.NoError(t, err)

		for _, p := range []string{"A", "B", "AB", "BA", "ABBA", "AAAB"} {
			k, err := grammar.BuildKernel(p, rs, final)
			require.NoError(t, err)
			want := semilocal.DPLongestCommonSubsequence(p, text)
			assert.Equal(t, want, k.LCS(), "n=%d p=%q text=%q", n, p, text)
		}
	}
}

func TestGrammarKernel_SingleRuleGrammar(t *testing.T) {
	rs := grammar.NewRuleSet()
	a := rs.AddTerminal('A')
	k, err := grammar.BuildKernel("A", rs, a)
	require.NoError(t, err)
	assert.Equal(t, 1, k.LCS())

	k, err = grammar.BuildKernel("B", rs, a)
	require.NoError(t, err)
	assert.Equal(t, 0, k.LCS())
}
