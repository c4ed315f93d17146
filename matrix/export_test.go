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

import "testing"

func TestToDense(t *testing.T) {
	m := NewMatrix(3, 3)

	m.SetElement(1, 0)
	m.SetElement(2, 2)

	d := m.ToDense()

	rows, cols := d.Dims()

	if rows != 3 || cols != 3 {
		t.Error("Unexpected dense dimensions:", rows, cols)
		return
	}

	if d.At(1, 0) != 1 || d.At(2, 2) != 1 {
		t.Error("Expected entries not present in dense export")
		return
	}

	if d.At(0, 0) != 0 || d.At(0, 1) != 0 {
		t.Error("Unexpected entries present in dense export")
		return
	}
}

func TestColVector(t *testing.T) {
	m := NewMatrix(4, 4)

	m.SetElement(1, 2)
	m.SetElement(3, 2)
	m.SetElement(0, 1)

	v := m.ColVector(2)

	if v.Len() != 4 {
		t.Error("Unexpected vector length:", v.Len())
		return
	}

	if v.AtVec(1) != 1 || v.AtVec(3) != 1 {
		t.Error("Expected entries not present in vector export")
		return
	}

	if v.AtVec(0) != 0 || v.AtVec(2) != 0 {
		t.Error("Unexpected entries present in vector export")
		return
	}
}
