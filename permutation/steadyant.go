package permutation

// antEngine holds all state for one Steady-Ant traversal. Grouping the
// four cursors and the ant position into a dedicated struct (instead of
// closures) keeps the transition relation explicit and the recursion in
// multiply.go free of hidden state, matching the divide-and-conquer
// engine shape used elsewhere in this codebase for search-style drivers.
//
// "Up" means towards a smaller row and "right" towards a larger column.
// low is the candidate whose elements are correct in the upper-left
// region of the ant's path; high is correct in the lower-right region.
// Good elements are accumulated as the ant sweeps from the bottom-left
// corner (largest row, smallest column) towards the top-right.
type antEngine struct {
	low, high *Store

	lowRowIdx, highRowIdx int // cursor into Rows Descending (row_it)
	lowColIdx, highColIdx int // cursor into ColsAscending (col_it)

	minRow int // one below the smallest row present, sentinel
	maxCol int // one above the largest col present, sentinel

	antRow, antCol int

	goodRows []Pair // accumulated descending by Row
	goodCols []Pair // accumulated ascending by Col
}

// steadyAnt runs the conquer step of sticky multiplication on two
// over-approximate candidate permutations and returns the exact product.
// low and high must already share the same logical dimensions.
func steadyAnt(low, high *Store) *Store {
	if low.Size() == 0 {
		return high
	}
	if high.Size() == 0 {
		return low
	}

	e := &antEngine{low: low, high: high}
	e.minRow = min(firstRowOr(low, 1), firstRowOr(high, 1)) - 1
	e.maxCol = max(lastColOr(low, 1), lastColOr(high, 1)) + 1

	e.antRow = e.nextRow()
	e.antCol = e.nextCol()

	for !e.rowsExhausted() || !e.colsExhausted() {
		switch {
		case e.canMoveUp():
			e.moveUp()
		case e.canMoveRight():
			e.moveRight()
		default:
			// Stuck: the diagonal element at the ant's current position
			// belongs to the product.
			e.goodRows = append(e.goodRows, Pair{Row: e.antRow, Col: e.antCol})
			e.goodCols = append(e.goodCols, Pair{Row: e.antRow, Col: e.antCol})
			e.moveUp()
			e.moveRight()
		}
	}

	return fromSorted(e.goodRows, e.goodCols, low.RowDim(), high.ColDim())
}

func firstRowOr(s *Store, fallback int) int {
	rows := s.RowsDescending()
	if len(rows) == 0 {
		return fallback
	}
	return rows[len(rows)-1].Row
}

func lastColOr(s *Store, fallback int) int {
	cols := s.ColsAscending()
	if len(cols) == 0 {
		return fallback
	}
	return cols[len(cols)-1].Col
}

func (e *antEngine) rowsExhausted() bool {
	return e.lowRowIdx == len(e.low.rows) && e.highRowIdx == len(e.high.rows)
}

func (e *antEngine) colsExhausted() bool {
	return e.lowColIdx == len(e.low.cols) && e.highColIdx == len(e.high.cols)
}

func (e *antEngine) nextRow() int {
	lr, hr := e.minRow, e.minRow
	if e.lowRowIdx < len(e.low.rows) {
		lr = e.low.rows[e.lowRowIdx].Row
	}
	if e.highRowIdx < len(e.high.rows) {
		hr = e.high.rows[e.highRowIdx].Row
	}
	return max(lr, hr)
}

func (e *antEngine) nextCol() int {
	lc, hc := e.maxCol, e.maxCol
	if e.lowColIdx < len(e.low.cols) {
		lc = e.low.cols[e.lowColIdx].Col
	}
	if e.highColIdx < len(e.high.cols) {
		hc = e.high.cols[e.highColIdx].Col
	}
	return min(lc, hc)
}

// canMoveUp reports whether no high element at the current row lies
// strictly left of antCol, no low element at the current row lies at or
// right of antCol, and at least one row cursor has not ended.
func (e *antEngine) canMoveUp() bool {
	for i := e.highRowIdx; i < len(e.high.rows) && e.high.rows[i].Row == e.antRow; i++ {
		if e.high.rows[i].Col < e.antCol {
			return false
		}
	}
	for i := e.lowRowIdx; i < len(e.low.rows) && e.low.rows[i].Row == e.antRow; i++ {
		if e.low.rows[i].Col >= e.antCol {
			return false
		}
	}
	return !e.rowsExhausted()
}

// canMoveRight is the column-axis mirror of canMoveUp.
func (e *antEngine) canMoveRight() bool {
	for i := e.highColIdx; i < len(e.high.cols) && e.high.cols[i].Col == e.antCol; i++ {
		if e.high.cols[i].Row <= e.antRow {
			return false
		}
	}
	for i := e.lowColIdx; i < len(e.low.cols) && e.low.cols[i].Col == e.antCol; i++ {
		if e.low.cols[i].Row > e.antRow {
			return false
		}
	}
	return !e.colsExhausted()
}

func (e *antEngine) moveUp() {
	for e.highRowIdx < len(e.high.rows) && e.high.rows[e.highRowIdx].Row == e.antRow {
		if e.high.rows[e.highRowIdx].Col >= e.antCol {
			e.goodRows = append(e.goodRows, e.high.rows[e.highRowIdx])
		}
		e.highRowIdx++
	}
	for e.lowRowIdx < len(e.low.rows) && e.low.rows[e.lowRowIdx].Row == e.antRow {
		if e.low.rows[e.lowRowIdx].Col < e.antCol {
			e.goodRows = append(e.goodRows, e.low.rows[e.lowRowIdx])
		}
		e.lowRowIdx++
	}
	e.antRow = e.nextRow()
}

func (e *antEngine) moveRight() {
	for e.highColIdx < len(e.high.cols) && e.high.cols[e.highColIdx].Col == e.antCol {
		if e.high.cols[e.highColIdx].Row > e.antRow {
			e.goodCols = append(e.goodCols, e.high.cols[e.highColIdx])
		}
		e.highColIdx++
	}
	for e.lowColIdx < len(e.low.cols) && e.low.cols[e.lowColIdx].Col == e.antCol {
		if e.low.cols[e.lowColIdx].Row <= e.antRow {
			e.goodCols = append(e.goodCols, e.low.cols[e.lowColIdx])
		}
		e.lowColIdx++
	}
	e.antCol = e.nextCol()
}

func reverse(p []Pair) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
