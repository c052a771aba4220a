// Package mongematrix is the dense side of the Monge/permutation bijection:
// a (R+1) x (C+1) simple subunit-Monge matrix, its conversions to and from
// a permutation.Store, and a naive tropical (min,+) multiplication used
// only as a reference oracle for sticky multiplication.
//
// Distribution-sum and cross-difference are exact inverses of one another
// (see mongematrix_test.go); building the dense form at all is O(R*C) and
// is meant for small kernels or correctness tests, not for the sticky
// multiplication hot path, which stays entirely inside permutation.Store.
package mongematrix
