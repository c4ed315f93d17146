/*
 * MatrixDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package matrix contains a Boolean sparse matrix kernel.

Matrices are square or rectangular Boolean sparse matrices which store only
present (true) entries. The nonzero pattern is kept in a B-tree ordered by
packed (column, row) keys so extracting a column is a contiguous range scan.

Element updates are buffered as pending operations and materialised by any
reading operation. Asking a matrix for its number of stored values forces
all pending work to be executed.

Operations which take a mask treat it as a structural mask: an index is
selected if the mask has an entry for it. A Descriptor can transpose the
input matrix, complement the mask and request output replacement.

All operations panic on index or dimension violations. There are no
recoverable errors at this level.
*/
package matrix

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/errorutil"
	"github.com/tidwall/btree"
)

/*
MaxDimension is the maximum number of rows or columns of a matrix.
*/
const MaxDimension = 1 << 32

/*
packKey packs a matrix coordinate into a single B-tree key. The column
occupies the high bits so all entries of a column are adjacent in key order.
*/
func packKey(row uint64, col uint64) uint64 {
	return col<<32 | row
}

/*
keyRow extracts the row from a packed key.
*/
func keyRow(key uint64) uint64 {
	return key & 0xFFFFFFFF
}

/*
keyCol extracts the column from a packed key.
*/
func keyCol(key uint64) uint64 {
	return key >> 32
}

/*
Matrix is a Boolean sparse matrix.
*/
type Matrix struct {
	nrows   uint64              // Number of rows
	ncols   uint64              // Number of columns
	elems   *btree.BTreeG[uint64] // Stored entries as packed (col, row) keys
	pending []uint64            // Buffered element updates
}

/*
NewMatrix creates a new Boolean sparse matrix of the given dimensions.
*/
func NewMatrix(nrows uint64, ncols uint64) *Matrix {
	errorutil.AssertTrue(nrows <= MaxDimension && ncols <= MaxDimension,
		fmt.Sprintf("Cannot create matrix of dimension %vx%v - max dimension: %v",
			nrows, ncols, uint64(MaxDimension)))

	return &Matrix{nrows, ncols, btree.NewBTreeG[uint64](
		func(a, b uint64) bool { return a < b }), nil}
}

/*
NRows returns the number of rows.
*/
func (m *Matrix) NRows() uint64 {
	return m.nrows
}

/*
NCols returns the number of columns.
*/
func (m *Matrix) NCols() uint64 {
	return m.ncols
}

/*
NVals returns the number of stored entries. All pending operations are
executed before the entries are counted.
*/
func (m *Matrix) NVals() uint64 {
	m.materialise()

	return uint64(m.elems.Len())
}

/*
SetElement sets the entry at the given row and column. The update is
buffered until the next reading operation.
*/
func (m *Matrix) SetElement(row uint64, col uint64) {
	m.checkBounds(row, col)

	m.pending = append(m.pending, packKey(row, col))
}

/*
ExtractElement returns true if the entry at the given row and column is set.
*/
func (m *Matrix) ExtractElement(row uint64, col uint64) bool {
	m.checkBounds(row, col)

	m.materialise()

	_, ok := m.elems.Get(packKey(row, col))

	return ok
}

/*
Resize changes the dimensions of the matrix. Entries outside of the new
dimensions are removed.
*/
func (m *Matrix) Resize(nrows uint64, ncols uint64) {
	errorutil.AssertTrue(nrows <= MaxDimension && ncols <= MaxDimension,
		fmt.Sprintf("Cannot resize matrix to dimension %vx%v - max dimension: %v",
			nrows, ncols, uint64(MaxDimension)))

	m.materialise()

	if nrows < m.nrows || ncols < m.ncols {

		// Shrinking - collect all entries which fall outside the new
		// dimensions and remove them

		var out []uint64

		m.elems.Scan(func(key uint64) bool {
			if keyRow(key) >= nrows || keyCol(key) >= ncols {
				out = append(out, key)
			}
			return true
		})

		for _, key := range out {
			m.elems.Delete(key)
		}
	}

	m.nrows = nrows
	m.ncols = ncols
}

/*
ColExtract extracts a column of the matrix into a given vector. If the
descriptor requests a transposed input then a row is extracted instead. The
target vector is replaced by the result. If a mask is given then only
indices selected by the mask are written - a complemented mask selects all
indices the mask has no entry for.
*/
func (m *Matrix) ColExtract(w *Vector, mask *Vector, col uint64, desc *Descriptor) {
	transpose := desc != nil && desc.TransposeInput
	complement := desc != nil && desc.ComplementMask

	if transpose {
		errorutil.AssertTrue(col < m.nrows,
			fmt.Sprintf("Row index %v out of range - rows: %v", col, m.nrows))
		errorutil.AssertTrue(w.Size() == m.ncols,
			fmt.Sprintf("Vector size %v does not match columns: %v", w.Size(), m.ncols))
	} else {
		errorutil.AssertTrue(col < m.ncols,
			fmt.Sprintf("Column index %v out of range - columns: %v", col, m.ncols))
		errorutil.AssertTrue(w.Size() == m.nrows,
			fmt.Sprintf("Vector size %v does not match rows: %v", w.Size(), m.nrows))
	}

	m.materialise()

	w.clear()

	selected := func(i uint64) bool {
		if mask == nil {
			return true
		}
		return mask.ExtractElement(i) != complement
	}

	if transpose {

		// Extracting a row means visiting every column - the pattern is
		// ordered by column so this is a full scan

		m.elems.Scan(func(key uint64) bool {
			if keyRow(key) == col && selected(keyCol(key)) {
				w.SetElement(keyCol(key))
			}
			return true
		})

	} else {

		m.scanColumn(col, func(row uint64) {
			if selected(row) {
				w.SetElement(row)
			}
		})
	}
}

/*
ColAssign assigns a vector to a column of the matrix. The column pattern is
replaced by the vector pattern - assigning an empty vector clears the
column. If a mask is given then only indices selected by the mask are
touched.
*/
func (m *Matrix) ColAssign(mask *Vector, col uint64, u *Vector) {
	errorutil.AssertTrue(col < m.ncols,
		fmt.Sprintf("Column index %v out of range - columns: %v", col, m.ncols))
	errorutil.AssertTrue(u.Size() == m.nrows,
		fmt.Sprintf("Vector size %v does not match rows: %v", u.Size(), m.nrows))

	m.materialise()

	var out []uint64

	m.scanColumn(col, func(row uint64) {
		if mask == nil || mask.ExtractElement(row) {
			out = append(out, packKey(row, col))
		}
	})

	for _, key := range out {
		m.elems.Delete(key)
	}

	u.Each(func(row uint64) bool {
		if mask == nil || mask.ExtractElement(row) {
			m.elems.Set(packKey(row, col))
		}
		return true
	})
}

/*
RowAssign assigns a vector to a row of the matrix. The row pattern is
replaced by the vector pattern. If a mask is given then only indices
selected by the mask are touched.
*/
func (m *Matrix) RowAssign(mask *Vector, row uint64, u *Vector) {
	errorutil.AssertTrue(row < m.nrows,
		fmt.Sprintf("Row index %v out of range - rows: %v", row, m.nrows))
	errorutil.AssertTrue(u.Size() == m.ncols,
		fmt.Sprintf("Vector size %v does not match columns: %v", u.Size(), m.ncols))

	m.materialise()

	var out []uint64

	m.elems.Scan(func(key uint64) bool {
		if keyRow(key) == row && (mask == nil || mask.ExtractElement(keyCol(key))) {
			out = append(out, key)
		}
		return true
	})

	for _, key := range out {
		m.elems.Delete(key)
	}

	u.Each(func(col uint64) bool {
		if mask == nil || mask.ExtractElement(col) {
			m.elems.Set(packKey(row, col))
		}
		return true
	})
}

/*
String returns a string representation of this matrix.
*/
func (m *Matrix) String() string {
	m.materialise()

	buf := new(bytes.Buffer)

	buf.WriteString(fmt.Sprintf("Matrix %vx%v\n", m.nrows, m.ncols))

	m.elems.Scan(func(key uint64) bool {
		buf.WriteString(fmt.Sprintf("(%v, %v)\n", keyRow(key), keyCol(key)))
		return true
	})

	return buf.String()
}

/*
scanColumn visits all stored entries of a given column in row order.
*/
func (m *Matrix) scanColumn(col uint64, visit func(row uint64)) {
	m.elems.Ascend(packKey(0, col), func(key uint64) bool {
		if keyCol(key) != col {
			return false
		}
		visit(keyRow(key))
		return true
	})
}

/*
materialise executes all pending element updates.
*/
func (m *Matrix) materialise() {
	if m.pending == nil {
		return
	}

	for _, key := range m.pending {
		m.elems.Set(key)
	}

	m.pending = nil
}

/*
checkBounds panics if a given coordinate is outside of the matrix.
*/
func (m *Matrix) checkBounds(row uint64, col uint64) {
	errorutil.AssertTrue(row < m.nrows && col < m.ncols,
		fmt.Sprintf("Coordinate (%v, %v) out of range - dimension: %vx%v",
			row, col, m.nrows, m.ncols))
}
