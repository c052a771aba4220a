package grammar

import (
	"sort"

	"github.com/crossopt/semilocal-lcs/permutation"
	"github.com/crossopt/semilocal-lcs/semilocal"
)

// Kernel is the semi-local LCS kernel of a plain pattern against a
// grammar-compressed text: built by one boundary-pruned sticky
// multiplication per grammar rule rather than one per text character, so
// construction cost tracks grammar size instead of decompressed text
// length.
type Kernel struct {
	patternLen int
	textLen    int
	lcs        int
}

// LCS returns the LCS length between the pattern and the full text
// generated by the grammar.
func (k *Kernel) LCS() int { return k.lcs }

// BuildKernel builds the semi-local LCS kernel of pattern against the
// string generated by rs's rule finalRule, by recursing over the grammar
// bottom-up and merging each rule's two children through calculateGCKernel,
// memoized per rule index so that a rule referenced from multiple places is
// only kernel-built once.
func BuildKernel(pattern string, rs *RuleSet, finalRule int) (*Kernel, error) {
	if err := rs.validate(finalRule); err != nil {
		return nil, err
	}
	lens := rs.lengths()

	memo := make([]*permutation.Store, len(rs.rules))
	perm, err := calculateGCKernel(memo, pattern, rs, finalRule)
	if err != nil {
		return nil, err
	}

	m := len(pattern)
	return &Kernel{patternLen: m, textLen: lens[finalRule], lcs: wholePatternLCS(perm, m)}, nil
}

// calculateGCKernel returns the kernel permutation for rs.rules[index]
// against pattern, pruned to the part of the boundary that can still
// affect a future merge. A rule's two children are two text chunks
// concatenated one after the other: getRight strips the left child's
// kernel down to the strands touching the shared seam (at most m of
// them, m the pattern length), getLeft does the same for the right
// child, one bounded sticky multiply resolves the strands that cross
// the seam, and combine reassembles the surviving pieces into a single
// dense permutation. Because every stored rule kernel stays O(m)
// regardless of the rule's own decompressed length, a merge costs
// O(m log m) rather than O((m+|left|+|right|) log(...)), so a grammar of
// g rules costs O(g) such bounded multiplications in total instead of
// one multiplication sized to the decompressed text.
func calculateGCKernel(memo []*permutation.Store, pattern string, rs *RuleSet, index int) (*permutation.Store, error) {
	if memo[index] != nil {
		return memo[index], nil
	}
	r := rs.rules[index]
	if r.isBase {
		k, err := semilocal.CharKernel(pattern, r.value)
		if err != nil {
			return nil, err
		}
		memo[index] = k
		return k, nil
	}

	first, err := calculateGCKernel(memo, pattern, rs, r.first)
	if err != nil {
		return nil, err
	}
	second, err := calculateGCKernel(memo, pattern, rs, r.second)
	if err != nil {
		return nil, err
	}

	m := len(pattern)
	ruleLen1 := first.RowDim() - m
	ruleLen2 := second.RowDim() - m

	toRightLow, toRightHigh := getRight(first, m, ruleLen1)
	fromLeftLow, fromLeftHigh := getLeft(second, m, ruleLen2)

	intersection, err := boundaryIntersect(toRightHigh, fromLeftLow, first.RowDim(), ruleLen1, second.ColDim(), m)
	if err != nil {
		return nil, err
	}

	combined, err := combine(toRightLow, intersection, fromLeftHigh, ruleLen1, ruleLen1)
	if err != nil {
		return nil, err
	}
	memo[index] = combined
	return combined, nil
}

// getLeft splits the right child's kernel at row pivot left (the pattern
// length) and column pivot right: the pairs with rows <= left, which
// cross the seam shared with the left child, and the pairs with
// rows > left and cols > right. Pairs with rows > left and cols <= right
// are dropped.
func getLeft(p *permutation.Store, left, right int) (touchingSeam, pastSeam *permutation.Store) {
	low, high := p.SplitRow(left)
	_, highHigh := high.SplitCol(right)
	return low, highHigh
}

// getRight is getLeft's column-axis mirror, applied to the left child:
// the pairs with rows <= left and cols <= right, and every pair with
// cols > right regardless of row, which cross the seam shared with the
// right child. Pairs with rows > left and cols <= right are dropped.
func getRight(p *permutation.Store, left, right int) (awayFromSeam, touchingSeam *permutation.Store) {
	low, high := p.SplitCol(right)
	lowLow, _ := low.SplitRow(left)
	return lowLow, high
}

// boundaryIntersect multiplies the two O(m)-sized strand sets that cross
// the seam between a rule's two children. toRightHigh always has exactly
// the m highest columns of first's domain, a contiguous block starting at
// ruleLen1+1, since first is a dense permutation on its whole domain;
// fromLeftLow always has exactly rows 1..m of second, for the same
// reason. Multiply requires its operands' inner dimension to agree
// numerically, so both are re-declared onto that shared m-wide axis
// (toRightHigh's columns shifted down into it) without touching the real
// row label of toRightHigh or the real column label of fromLeftLow, which
// combine still needs on the other side of the product.
func boundaryIntersect(toRightHigh, fromLeftLow *permutation.Store, firstRowDim, ruleLen1, secondColDim, m int) (*permutation.Store, error) {
	shifted := make([]permutation.Pair, 0, toRightHigh.Size())
	for _, p := range toRightHigh.RowsDescending() {
		shifted = append(shifted, permutation.Pair{Row: p.Row, Col: p.Col - ruleLen1})
	}
	toRightHighLocal, err := permutation.New(firstRowDim, m, shifted)
	if err != nil {
		return nil, err
	}

	fromLeftLowLocal, err := permutation.New(m, secondColDim, append([]permutation.Pair(nil), fromLeftLow.RowsDescending()...))
	if err != nil {
		return nil, err
	}

	return permutation.Multiply(toRightHighLocal, fromLeftLowLocal)
}

// combine reassembles the three boundary pieces produced above: the part
// already anchored to the pattern on both sides keeps its labels, the
// resolved crossing strands and the part anchored only to the right
// child are shifted past it by the left child's own boundary width, and
// the merged set is recompressed to a dense domain sized to whatever
// actually survived pruning.
func combine(leftSide, bothSides, rightSide *permutation.Store, rowAdd, colAdd int) (*permutation.Store, error) {
	all := make([]permutation.Pair, 0, leftSide.Size()+bothSides.Size()+rightSide.Size())
	all = append(all, leftSide.RowsDescending()...)
	for _, p := range bothSides.RowsDescending() {
		all = append(all, permutation.Pair{Row: p.Row, Col: p.Col + colAdd})
	}
	for _, p := range rightSide.RowsDescending() {
		all = append(all, permutation.Pair{Row: p.Row + rowAdd, Col: p.Col + colAdd})
	}
	return recompress(all)
}

// recompress renumbers a pair list's row and column values independently
// to a dense 1..len(pairs) range, preserving each axis's relative order.
// This is what keeps a rule's stored kernel bounded: combine's absolute
// labels can range arbitrarily far apart, but only their relative order
// across the three boundary pieces matters for the dominance count a
// later merge or the final LCS read performs.
func recompress(pairs []permutation.Pair) (*permutation.Store, error) {
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

// wholePatternLCS reads the LCS length off perm using perm's own surviving
// domain rather than the grammar rule's true decompressed length: perm may
// be a pruned boundary kernel whose column count is smaller than the
// rule's real text length, and size must track whatever boundary perm
// actually spans for the dominance count to mean anything.
func wholePatternLCS(perm *permutation.Store, patternLen int) int {
	size := perm.ColDim() - patternLen
	dominant := 0
	for _, p := range perm.RowsDescending() {
		if p.Row <= patternLen && p.Col > size {
			dominant++
		}
	}
	return patternLen - dominant
}
