// Package permutation implements the sparse sub-permutation algebra that
// underlies the semi-local LCS kernel: a (sub)permutation matrix stored as
// two index-sorted views, the Steady-Ant conquer step, and the
// divide-and-conquer sticky-multiplication driver built on top of it.
//
// A Store never materializes its R*C matrix; all structural operations
// (split, grow, iteration) run in time proportional to its non-zero count.
// Use Expand when the dense 0/1 form is actually needed, e.g. for a
// reference tropical multiplication against mongematrix.Matrix.
package permutation
