/*
 * MatrixDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package matrix

import "gonum.org/v1/gonum/mat"

/*
ToDense exports the matrix as a dense gonum matrix with 1 for present and
0 for absent entries. External linear-algebra engines can run traversal
products directly on the result.
*/
func (m *Matrix) ToDense() *mat.Dense {
	m.materialise()

	d := mat.NewDense(int(m.nrows), int(m.ncols), nil)

	m.elems.Scan(func(key uint64) bool {
		d.Set(int(keyRow(key)), int(keyCol(key)), 1)
		return true
	})

	return d
}

/*
ColVector exports a column of the matrix as a dense gonum vector. Columns
represent source nodes so the result of this call for column s is the
outgoing edge vector of s.
*/
func (m *Matrix) ColVector(col uint64) *mat.VecDense {
	m.materialise()

	v := mat.NewVecDense(int(m.nrows), nil)

	m.scanColumn(col, func(row uint64) {
		v.SetVec(int(row), 1)
	})

	return v
}
