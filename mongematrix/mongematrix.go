package mongematrix

import "github.com/crossopt/semilocal-lcs/permutation"

// Matrix is a dense, row-major (R+1) x (C+1) simple subunit-Monge matrix:
// M[i][0] = 0, M[R][j] = 0, and its cross-difference is a 0/1 matrix with
// at most one 1 per row and per column (see FromPermutation/ToPermutation).
type Matrix struct {
	rows, cols int // R, C; the stored grid is (rows+1) x (cols+1)
	data       [][]int
}

// FromPermutation builds the distribution-sum Monge matrix of s, sized
// (R+1) x (C+1) for the given logical dimensions. Time O(R*C).
func FromPermutation(s *permutation.Store, rowDim, colDim int) (*Matrix, error) {
	dense, err := s.Expand(rowDim, colDim)
	if err != nil {
		return nil, err
	}

	data := make([][]int, rowDim+1)
	for i := range data {
		data[i] = make([]int, colDim+1)
	}

	// Bottom-left fill: M[R][*] and M[*][0] stay zero by initialization.
	for i := rowDim; i >= 1; i-- {
		for j := 1; j <= colDim; j++ {
			d := 0
			if dense[i] == j {
				d = 1
			}
			data[i-1][j] = d + data[i-1][j-1] + data[i][j] - data[i][j-1]
		}
	}

	return &Matrix{rows: rowDim, cols: colDim, data: data}, nil
}

// Rows returns R, the Monge matrix's logical row dimension.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns C, the Monge matrix's logical column dimension.
func (m *Matrix) Cols() int { return m.cols }

// At returns M[i][j] for 0 <= i <= R, 0 <= j <= C.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i > m.rows || j < 0 || j > m.cols {
		return 0, ErrOutOfRange
	}
	return m.data[i][j], nil
}

// ToPermutation computes the cross-difference (density) of m and returns
// it as a permutation.Store. It fails with ErrIllFormedMonge if the
// cross-difference is not a 0/1 matrix with at most one 1 per row/column,
// i.e. if m was not actually a simple subunit-Monge matrix. Time O(R*C).
func (m *Matrix) ToPermutation() (*permutation.Store, error) {
	usedCol := make(map[int]bool, m.cols)
	dense := make([]int, m.rows+1)

	for i := 1; i <= m.rows; i++ {
		for j := 1; j <= m.cols; j++ {
			d, err := m.crossDifference(i, j)
			if err != nil {
				return nil, err
			}
			if d == 0 {
				continue
			}
			if dense[i] != 0 || usedCol[j] {
				return nil, ErrIllFormedMonge
			}
			dense[i] = j
			usedCol[j] = true
		}
	}

	var pairs []permutation.Pair
	for i := 1; i <= m.rows; i++ {
		if dense[i] != 0 {
			pairs = append(pairs, permutation.Pair{Row: i, Col: dense[i]})
		}
	}
	return permutation.New(m.rows, m.cols, pairs)
}

// crossDifference computes D[i][j] = M[i-1][j] + M[i][j-1] - M[i][j] - M[i-1][j-1]
// and fails unless it is 0 or 1.
func (m *Matrix) crossDifference(i, j int) (int, error) {
	d := m.data[i-1][j] + m.data[i][j-1] - m.data[i][j] - m.data[i-1][j-1]
	if d != 0 && d != 1 {
		return 0, ErrIllFormedMonge
	}
	return d, nil
}

// TropicalMultiply computes (m * n)[i][k] = min_j(m[i][j] + n[j][k]) over
// the tropical (min,+) semiring. This is a naive O(R*C*K) reference
// implementation used only to cross-check sticky multiplication in tests.
func (m *Matrix) TropicalMultiply(n *Matrix) (*Matrix, error) {
	if m.cols != n.rows {
		return nil, mongeErrorf("TropicalMultiply", ErrShapeMismatch)
	}

	result := make([][]int, m.rows+1)
	for i := range result {
		result[i] = make([]int, n.cols+1)
	}
	for i := 0; i <= m.rows; i++ {
		for k := 0; k <= n.cols; k++ {
			best := m.data[i][0] + n.data[0][k]
			for j := 1; j <= m.cols; j++ {
				if v := m.data[i][j] + n.data[j][k]; v < best {
					best = v
				}
			}
			result[i][k] = best
		}
	}
	return &Matrix{rows: m.rows, cols: n.cols, data: result}, nil
}
