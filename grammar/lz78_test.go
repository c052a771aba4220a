package grammar_test

import (
	"testing"

	"github.com/crossopt/semilocal-lcs/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTn constructs Tn = concat(Ei for i=0..n), where Ei = E(i-1) .
// alphabet[i mod 26] and E0 = e0.
func buildTn(n int, e0 string) string {
	es := make([]string, n+1)
	es[0] = e0
	for i := 1; i <= n; i++ {
		es[i] = es[i-1] + string(rune('A'+(i%26)))
	}
	out := ""
	for _, e := range es {
		out += e
	}
	return out
}

func TestLZ78_RoundTripsAndCountsRulesQuadratically(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s := buildTn(n, "A")
		rs, final, err := grammar.LZ78(s)
		require.NoError(t, err)

		got, err := rs.Decompress(final)
		require.NoError(t, err)
		assert.Equal(t, s, got)

		// The dictionary parse of this specific Tn family yields n+1
		// phrases. Each creates one fresh terminal; every phrase after the
		// first also creates one concatenation rule and one string-joining
		// rule: 3n+1 rules in total for n>=1.
		assert.Equal(t, 3*n+1, rs.Len(), "n=%d", n)
	}
}

func TestLZ78_RejectsNonAlphabetInput(t *testing.T) {
	_, _, err := grammar.LZ78("AB1")
	assert.ErrorIs(t, err, grammar.ErrIllFormedGrammar)
}

func TestLZ78_RejectsEmptyInput(t *testing.T) {
	_, _, err := grammar.LZ78("")
	assert.ErrorIs(t, err, grammar.ErrIllFormedGrammar)
}
