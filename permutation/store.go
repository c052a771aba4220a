package permutation

import "sort"

// Pair is a single (row, col) element of a (sub)permutation, 1-based in
// both coordinates. Row 0 / Col 0 never appear in a valid Store; index 0
// is reserved by the kernel layer to mean "absent element".
type Pair struct {
	Row int
	Col int
}

// Store is a sparse sub-permutation: a set of Pairs such that no two pairs
// share a row and no two pairs share a column. It is held as two
// independently sorted views so that both split operations, and the
// Steady-Ant scan in this package, run in O(k) over the k pairs present.
//
// RowDim and ColDim are logical dimensions (spec.md's R and C); they may
// exceed the largest row/col actually present, since an all-zero row or
// column is simply unrepresented.
//
// A Store is immutable after construction except for GrowFront/GrowBack,
// which extend it in place.
type Store struct {
	rows   []Pair // sorted by Row, descending
	cols   []Pair // sorted by Col, ascending
	rowDim int
	colDim int
}

// New validates permutation and builds a Store from an unordered pair
// list. rowDim and colDim must be at least as large as the largest row and
// column present.
func New(rowDim, colDim int, pairs []Pair) (*Store, error) {
	rows := make([]Pair, len(pairs))
	copy(rows, pairs)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Row > rows[j].Row })

	seenRow := make(map[int]bool, len(rows))
	seenCol := make(map[int]bool, len(rows))
	for _, p := range rows {
		if p.Row <= 0 || p.Row > rowDim || p.Col <= 0 || p.Col > colDim {
			return nil, ErrOutOfRange
		}
		if seenRow[p.Row] || seenCol[p.Col] {
			return nil, ErrDuplicateIndex
		}
		seenRow[p.Row] = true
		seenCol[p.Col] = true
	}

	cols := make([]Pair, len(pairs))
	copy(cols, rows)
	sort.Slice(cols, func(i, j int) bool { return cols[i].Col < cols[j].Col })

	return &Store{rows: rows, cols: cols, rowDim: rowDim, colDim: colDim}, nil
}

// fromSorted builds a Store from already row-descending/col-ascending
// slices without re-validating. Used internally by split and Steady-Ant,
// where the invariant is maintained by construction.
func fromSorted(rows, cols []Pair, rowDim, colDim int) *Store {
	return &Store{rows: rows, cols: cols, rowDim: rowDim, colDim: colDim}
}

// Identity returns the n x n identity permutation {(1,1), ..., (n,n)}.
func Identity(n int) *Store {
	rows := make([]Pair, n)
	cols := make([]Pair, n)
	for i := 0; i < n; i++ {
		rows[i] = Pair{Row: n - i, Col: n - i}
		cols[i] = Pair{Row: i + 1, Col: i + 1}
	}
	return fromSorted(rows, cols, n, n)
}

// Empty returns the zero-element sub-permutation on an rowDim x colDim
// logical space.
func Empty(rowDim, colDim int) *Store {
	return fromSorted(nil, nil, rowDim, colDim)
}

// Size returns the number of non-zero pairs.
func (s *Store) Size() int { return len(s.rows) }

// RowDim returns the logical row dimension R.
func (s *Store) RowDim() int { return s.rowDim }

// ColDim returns the logical column dimension C.
func (s *Store) ColDim() int { return s.colDim }

// RowsDescending returns the pairs sorted by Row, descending. The caller
// must not mutate the returned slice.
func (s *Store) RowsDescending() []Pair { return s.rows }

// ColsAscending returns the pairs sorted by Col, ascending. The caller
// must not mutate the returned slice.
func (s *Store) ColsAscending() []Pair { return s.cols }

// SplitRow partitions the permutation into two: pairs with Row <= pivot,
// and pairs with Row > pivot. Both halves keep the parent's logical
// dimensions; order is preserved in both the row- and col-sorted views.
func (s *Store) SplitRow(pivot int) (low, high *Store) {
	var rowsLow, rowsHigh, colsLow, colsHigh []Pair
	for _, p := range s.rows {
		if p.Row <= pivot {
			rowsLow = append(rowsLow, p)
		} else {
			rowsHigh = append(rowsHigh, p)
		}
	}
	for _, p := range s.cols {
		if p.Row <= pivot {
			colsLow = append(colsLow, p)
		} else {
			colsHigh = append(colsHigh, p)
		}
	}
	return fromSorted(rowsLow, colsLow, s.rowDim, s.colDim),
		fromSorted(rowsHigh, colsHigh, s.rowDim, s.colDim)
}

// SplitRowMedian splits at the row of the element at position
// floor((k-1)/2) of the row-descending view, and also returns that pivot.
// If the Store is empty, pivot is 0 and both halves are empty.
func (s *Store) SplitRowMedian() (low, high *Store, pivot int) {
	if len(s.rows) == 0 {
		return Empty(s.rowDim, s.colDim), Empty(s.rowDim, s.colDim), 0
	}
	pivot = s.rows[(len(s.rows)-1)/2].Row
	low, high = s.SplitRow(pivot)
	return low, high, pivot
}

// SplitCol partitions the permutation into two: pairs with Col <= pivot,
// and pairs with Col > pivot. Both halves keep the parent's logical
// dimensions.
func (s *Store) SplitCol(pivot int) (low, high *Store) {
	var rowsLow, rowsHigh, colsLow, colsHigh []Pair
	for _, p := range s.rows {
		if p.Col <= pivot {
			rowsLow = append(rowsLow, p)
		} else {
			rowsHigh = append(rowsHigh, p)
		}
	}
	for _, p := range s.cols {
		if p.Col <= pivot {
			colsLow = append(colsLow, p)
		} else {
			colsHigh = append(colsHigh, p)
		}
	}
	return fromSorted(rowsLow, colsLow, s.rowDim, s.colDim),
		fromSorted(rowsHigh, colsHigh, s.rowDim, s.colDim)
}

// SplitColMedian splits at the col of the element at position
// floor((k-1)/2) of the col-ascending view, and also returns that pivot.
func (s *Store) SplitColMedian() (low, high *Store, pivot int) {
	if len(s.cols) == 0 {
		return Empty(s.rowDim, s.colDim), Empty(s.rowDim, s.colDim), 0
	}
	pivot = s.cols[(len(s.cols)-1)/2].Col
	low, high = s.SplitCol(pivot)
	return low, high, pivot
}

// Expand builds the dense matrix[1..rowDim] form: matrix[i] = col if
// (i, col) is present, else 0. It fails if any pair falls outside the
// requested rowDim x colDim window.
func (s *Store) Expand(rowDim, colDim int) ([]int, error) {
	dense := make([]int, rowDim+1)
	for _, p := range s.rows {
		if p.Row > rowDim || p.Col > colDim {
			return nil, ErrOutOfRange
		}
		dense[p.Row] = p.Col
	}
	return dense, nil
}

// GrowFront extends the permutation to a new row (and column) dimension
// by prepending an identity block and shifting every existing pair's row
// and column by the same delta. newRowDim must exceed RowDim().
func (s *Store) GrowFront(newRowDim int) error {
	if newRowDim <= s.rowDim {
		return ErrGrowInvalid
	}
	delta := newRowDim - s.rowDim

	shifted := make([]Pair, len(s.rows))
	for i, p := range s.rows {
		shifted[i] = Pair{Row: p.Row + delta, Col: p.Col + delta}
	}
	identity := make([]Pair, delta)
	for i := 0; i < delta; i++ {
		identity[i] = Pair{Row: delta - i, Col: delta - i}
	}
	// shifted rows are all > delta, identity rows are <= delta: shifted
	// comes first to keep the overall list sorted descending by Row.
	s.rows = append(shifted, identity...)

	shiftedCols := make([]Pair, len(s.cols))
	for i, p := range s.cols {
		shiftedCols[i] = Pair{Row: p.Row + delta, Col: p.Col + delta}
	}
	identityCols := make([]Pair, delta)
	for i := 0; i < delta; i++ {
		identityCols[i] = Pair{Row: i + 1, Col: i + 1}
	}
	s.cols = append(identityCols, shiftedCols...)

	s.rowDim = newRowDim
	s.colDim += delta
	return nil
}

// GrowBack extends the permutation to a new column (and row) dimension by
// appending an identity block after the existing pairs, leaving existing
// pairs' keys unchanged. newColDim must exceed ColDim().
func (s *Store) GrowBack(newColDim int) error {
	if newColDim <= s.colDim {
		return ErrGrowInvalid
	}
	delta := newColDim - s.colDim

	identity := make([]Pair, delta)
	for i := 0; i < delta; i++ {
		identity[i] = Pair{Row: s.rowDim + 1 + i, Col: s.colDim + 1 + i}
	}
	// identity is already Row-descending-compatible only if appended in
	// reverse; rows view must stay sorted descending overall, and every
	// identity row exceeds every existing row, so it goes in front.
	reversedIdentity := make([]Pair, delta)
	for i, p := range identity {
		reversedIdentity[delta-1-i] = p
	}
	s.rows = append(reversedIdentity, s.rows...)
	s.cols = append(s.cols, identity...)

	s.rowDim += delta
	s.colDim = newColDim
	return nil
}
