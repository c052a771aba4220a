// Package grammar builds the semi-local LCS kernel of a plain pattern
// against a straight-line grammar-compressed text: a context-free grammar
// in which every rule expands to exactly one terminal or exactly two
// earlier rules, generating a single string. The kernel is built bottom-up,
// one permutation per rule, memoized so that each rule's kernel is computed
// once regardless of how many times it is referenced.
//
// LZ78 and LZW build such a grammar from a plain string, mirroring the
// dictionary construction of the respective compression schemes; any other
// source (for instance a UNIX-compress .Z file reader) can supply a grammar
// by implementing GrammarSource.
package grammar
