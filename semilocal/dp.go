package semilocal

// DPLongestCommonSubsequence computes the LCS length of a and b by the
// textbook O(m*n) dynamic program, using two rolling rows. It exists
// purely as a test oracle for the kernel-based queries in queries.go; it is never
// used internally by BuildKernel or by any query.
func DPLongestCommonSubsequence(a, b string) int {
	m, n := len(a), len(b)
	prevRow := make([]int, n+1)
	currRow := make([]int, n+1)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				currRow[j] = prevRow[j-1] + 1
			} else if prevRow[j] >= currRow[j-1] {
				currRow[j] = prevRow[j]
			} else {
				currRow[j] = currRow[j-1]
			}
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[n]
}
