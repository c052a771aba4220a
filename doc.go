// Package lcs is the root of semilocal-lcs, a library for the semi-local
// longest common subsequence problem on strings and on grammar-compressed
// texts.
//
// What is semilocal-lcs?
//
//	A synchronous, in-memory, zero-network library that brings together:
//
//	  - permutation/  — the sparse sub-permutation algebra and the
//	                    Steady-Ant sticky-multiplication kernel
//	  - mongematrix/  — the dense simple subunit-Monge matrix and its
//	                    bijection with a sub-permutation
//	  - semilocal/    — the plain-string LCS kernel and its four
//	                    semi-local queries, plus a DP reference oracle
//	  - grammar/      — the LCS kernel for a pattern against a
//	                    straight-line-grammar-compressed text
//
// Given a pattern p of length m and a text t of length n (or a grammar of
// size g describing t), the kernel in semilocal/ or grammar/ answers every
// semi-local LCS query — whole pattern vs. any text substring, any pattern
// substring vs. whole text, and prefix/suffix combinations — in O(1) time
// once the kernel is built. The plain-string construction glues m*n
// single-character base kernels and fills an O((m+n)^2) matrix; the
// grammar construction costs O(g*m^2*polylog(m)).
//
// There is no code in this file; it exists to anchor package-level
// documentation for godoc.
//
//	go get github.com/crossopt/semilocal-lcs
package lcs
