// Package linkgraph builds sparse page-link adjacency matrices and scores
// pages against a set of seed pages by the cosine similarity of their link
// profiles.
package linkgraph

import "sort"

// Matrix is a sparse binary matrix in compressed sparse row form.
// Rows are source pages, columns are the union of all target pages.
type Matrix struct {
	RowLabels []string
	ColLabels []string

	// rowPtr has len(RowLabels)+1 entries; row i's column indices are
	// colIdx[rowPtr[i]:rowPtr[i+1]], sorted ascending.
	rowPtr []int
	colIdx []int
}

// NewMatrix builds a binary link matrix from a mapping of source page to
// target pages. Row labels are the map keys in sorted order; column labels
// are the sorted union of all targets. Duplicate edges collapse to one.
func NewMatrix(links map[string][]string) *Matrix {
	rows := make([]string, 0, len(links))
	for source := range links {
		rows = append(rows, source)
	}
	sort.Strings(rows)
	return NewMatrixWithRows(rows, links)
}

// NewMatrixWithRows builds a binary link matrix with an explicit row order.
// Rows without an entry in links are empty.
func NewMatrixWithRows(rows []string, links map[string][]string) *Matrix {
	colSet := make(map[string]struct{})
	for _, targets := range links {
		for _, t := range targets {
			colSet[t] = struct{}{}
		}
	}
	cols := make([]string, 0, len(colSet))
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	colIndex := make(map[string]int, len(cols))
	for i, c := range cols {
		colIndex[c] = i
	}

	m := &Matrix{
		RowLabels: rows,
		ColLabels: cols,
		rowPtr:    make([]int, 1, len(rows)+1),
	}
	seen := make(map[int]struct{})
	for _, source := range rows {
		clear(seen)
		var rowCols []int
		for _, target := range links[source] {
			j := colIndex[target]
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			rowCols = append(rowCols, j)
		}
		sort.Ints(rowCols)
		m.colIdx = append(m.colIdx, rowCols...)
		m.rowPtr = append(m.rowPtr, len(m.colIdx))
	}
	return m
}

// Shape returns the matrix dimensions (rows, columns).
func (m *Matrix) Shape() (int, int) {
	return len(m.RowLabels), len(m.ColLabels)
}

// NNZ returns the number of stored (nonzero) entries.
func (m *Matrix) NNZ() int {
	return len(m.colIdx)
}

// Row returns the sorted column indices of row i's nonzero entries.
func (m *Matrix) Row(i int) []int {
	return m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]]
}

// Has reports whether the edge (source row i, target column j) is set.
func (m *Matrix) Has(i, j int) bool {
	row := m.Row(i)
	k := sort.SearchInts(row, j)
	return k < len(row) && row[k] == j
}

// RowIndex returns the index of a row label, or -1 if absent.
func (m *Matrix) RowIndex(label string) int {
	for i, l := range m.RowLabels {
		if l == label {
			return i
		}
	}
	return -1
}
