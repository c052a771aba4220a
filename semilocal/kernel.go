package semilocal

import (
	"sort"

	"github.com/crossopt/semilocal-lcs/mongematrix"
	"github.com/crossopt/semilocal-lcs/permutation"
)

// Kernel is the semi-local LCS kernel for one pair of strings a (length m)
// and b (length n): a permutation on {1..m+n}, stored as the
// distribution-sum Monge matrix H used to answer every semi-local query.
type Kernel struct {
	a, b string
	m, n int
	h    *mongematrix.Matrix
}

// BuildKernel constructs the semi-local LCS kernel for a and b by
// recursive halving (spec Variant A): single-character base kernels are
// combined pairwise via permutation.Multiply until the whole pair is
// covered, then the resulting permutation is expanded into its
// distribution-sum Monge matrix.
func BuildKernel(a, b string) (*Kernel, error) {
	m, n := len(a), len(b)
	perm, err := calculateKernel(a, b, 0, m, 0, n)
	if err != nil {
		return nil, err
	}
	h, err := mongematrix.FromPermutation(perm, m+n, m+n)
	if err != nil {
		return nil, err
	}
	return &Kernel{a: a, b: b, m: m, n: n, h: h}, nil
}

// CharKernel builds the semi-local LCS kernel permutation of pattern p
// against the single character c directly, by one O(len(p)) left-to-right
// combing scan (spec Variant B, run with the second string's length fixed
// at 1) instead of calculateKernel's O(len(p) log len(p)) recursive
// halving. It is exported for the grammar package, whose
// grammar-compressed kernel treats a terminal rule's kernel as exactly
// this base case, and runs it once per terminal in the grammar.
//
// The scan keeps, for each prefix p[:i], the column still owed to the
// "no match yet" row (lastRow) and the column p[i] itself would take if
// nothing later displaces it (lastCol[i]); a character matching c, or one
// whose own column would otherwise collide with the currently pending
// row, swaps the two. The two tracking arrays together describe a dense
// permutation vector, which recompressPairs then turns into a Store.
func CharKernel(p string, c byte) (*permutation.Store, error) {
	n := len(p)
	if n == 0 {
		return permutation.New(1, 1, []permutation.Pair{{Row: 1, Col: 1}})
	}

	lastRow := n
	lastCol := make([]int, n+1)
	for i := 0; i < n; i++ {
		lastCol[i] = n - i - 1
		if p[i] == c || lastCol[i] > lastRow {
			lastCol[i], lastRow = lastRow, lastCol[i]
		}
	}
	lastCol[n] = lastRow

	result := make([]int, n+1)
	for i := 0; i <= n; i++ {
		result[lastCol[i]] = n + 1 - i
	}
	if lastRow == n {
		// c never matched: the row reserved for it was never claimed, and
		// the slot it would have occupied carries no information.
		result = result[:n]
	}

	pairs := make([]permutation.Pair, len(result))
	for row, col := range result {
		pairs[row] = permutation.Pair{Row: row + 1, Col: col}
	}
	return recompressPairs(pairs)
}

// recompressPairs renumbers a pair list's row and column values
// independently to a dense 1..len(pairs) range, preserving each axis's
// relative order. CharKernel's raw column values are a contiguous
// 1..n+1 range only when c occurs in p; when it does not, the dropped
// row leaves columns 2..n+1. Recompressing unconditionally is a no-op in
// the first case and closes the gap in the second.
func recompressPairs(pairs []permutation.Pair) (*permutation.Store, error) {
	rowVals := make([]int, len(pairs))
	colVals := make([]int, len(pairs))
	for i, p := range pairs {
		rowVals[i] = p.Row
		colVals[i] = p.Col
	}
	sort.Ints(rowVals)
	sort.Ints(colVals)

	rowRank := make(map[int]int, len(pairs))
	colRank := make(map[int]int, len(pairs))
	for i, v := range rowVals {
		rowRank[v] = i + 1
	}
	for i, v := range colVals {
		colRank[v] = i + 1
	}

	out := make([]permutation.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = permutation.Pair{Row: rowRank[p.Row], Col: colRank[p.Col]}
	}
	return permutation.New(len(pairs), len(pairs), out)
}

// calculateKernel recursively builds the kernel permutation for a[aL:aR]
// versus b[bL:bR], on the combined boundary {1 .. (aR-aL)+(bR-bL)}.
func calculateKernel(a, b string, aL, aR, bL, bR int) (*permutation.Store, error) {
	sumLength := (aR - aL) + (bR - bL)

	switch {
	case aL >= aR || bL >= bR:
		// One side is empty: no strands cross, so the kernel is the
		// identity on the combined boundary.
		return permutation.Identity(sumLength), nil

	case aL+1 == aR && bL+1 == bR:
		if a[aL] == b[bL] {
			// Matching characters: two parallel, non-crossing strands.
			return permutation.New(2, 2, []permutation.Pair{{Row: 1, Col: 1}, {Row: 2, Col: 2}})
		}
		// Mismatching characters: two crossing strands.
		return permutation.New(2, 2, []permutation.Pair{{Row: 1, Col: 2}, {Row: 2, Col: 1}})

	case aL+1 < aR:
		// Split a in half, recurse on each half against the whole of b,
		// then glue the two kernels with a sticky multiplication.
		aM := (aL + aR) / 2
		first, err := calculateKernel(a, b, aL, aM, bL, bR)
		if err != nil {
			return nil, err
		}
		second, err := calculateKernel(a, b, aM, aR, bL, bR)
		if err != nil {
			return nil, err
		}
		if err := first.GrowFront(sumLength); err != nil {
			return nil, err
		}
		if err := second.GrowBack(sumLength); err != nil {
			return nil, err
		}
		return permutation.Multiply(first, second)

	default:
		// a has length 1 and b has length >= 2: split b instead, swapping
		// which half grows its front versus its back.
		bM := (bL + bR) / 2
		first, err := calculateKernel(a, b, aL, aR, bL, bM)
		if err != nil {
			return nil, err
		}
		second, err := calculateKernel(a, b, aL, aR, bM, bR)
		if err != nil {
			return nil, err
		}
		if err := first.GrowBack(sumLength); err != nil {
			return nil, err
		}
		if err := second.GrowFront(sumLength); err != nil {
			return nil, err
		}
		return permutation.Multiply(first, second)
	}
}
