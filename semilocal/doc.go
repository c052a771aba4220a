// Package semilocal builds the semi-local LCS kernel for a pair of plain
// strings and answers the four semi-local LCS queries off it in O(1),
// plus a DP oracle kept around purely as a correctness reference (never
// on the hot path).
//
// BuildKernel constructs the kernel by recursive halving: the m*n
// single-character base kernels are glued pairwise with
// permutation.Multiply, which itself runs the Steady-Ant algorithm, and
// the result is expanded into its (m+n+1) x (m+n+1) distribution-sum
// matrix in O((m+n)^2). Once built, a Kernel is read-only; every query is
// a single lookup into that precomputed matrix.
package semilocal
