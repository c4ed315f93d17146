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

func TestMatrixSetExtract(t *testing.T) {
	m := NewMatrix(10, 10)

	if m.NRows() != 10 || m.NCols() != 10 {
		t.Error("Unexpected dimensions:", m.NRows(), m.NCols())
		return
	}

	if m.NVals() != 0 {
		t.Error("New matrix should be empty")
		return
	}

	m.SetElement(1, 0)
	m.SetElement(5, 3)

	if !m.ExtractElement(1, 0) || !m.ExtractElement(5, 3) {
		t.Error("Expected entries not present")
		return
	}

	if m.ExtractElement(0, 1) {
		t.Error("Unexpected entry present")
		return
	}

	if m.NVals() != 2 {
		t.Error("Unexpected number of entries:", m.NVals())
		return
	}

	// Setting the same entry again must not change anything

	m.SetElement(1, 0)

	if m.NVals() != 2 {
		t.Error("Repeated set should be idempotent:", m.NVals())
		return
	}
}

func TestMatrixPendingOps(t *testing.T) {
	m := NewMatrix(4, 4)

	m.SetElement(2, 1)

	if m.pending == nil {
		t.Error("Element update should be buffered")
		return
	}

	// Asking for the number of entries forces materialisation

	if m.NVals() != 1 {
		t.Error("Unexpected number of entries:", m.NVals())
		return
	}

	if m.pending != nil {
		t.Error("Pending operations should have been executed")
		return
	}
}

func TestMatrixResize(t *testing.T) {
	m := NewMatrix(5, 5)

	m.SetElement(1, 0)
	m.SetElement(4, 4)
	m.SetElement(2, 3)

	// Shrinking removes all entries outside the new dimensions

	m.Resize(3, 3)

	if m.NRows() != 3 || m.NCols() != 3 {
		t.Error("Unexpected dimensions:", m.NRows(), m.NCols())
		return
	}

	if m.NVals() != 1 || !m.ExtractElement(1, 0) {
		t.Error("Unexpected entries after shrinking:", m.String())
		return
	}

	// Growing keeps all entries

	m.Resize(10, 10)

	if m.NVals() != 1 || !m.ExtractElement(1, 0) {
		t.Error("Unexpected entries after growing:", m.String())
		return
	}
}

func TestMatrixColExtract(t *testing.T) {
	m := NewMatrix(5, 5)

	m.SetElement(1, 2)
	m.SetElement(3, 2)
	m.SetElement(4, 2)
	m.SetElement(2, 0)

	w := NewVector(5)

	m.ColExtract(w, nil, 2, nil)

	if w.NVals() != 3 || !w.ExtractElement(1) || !w.ExtractElement(3) || !w.ExtractElement(4) {
		t.Error("Unexpected column content:", w.String())
		return
	}

	// The target vector is replaced by the result

	m.ColExtract(w, nil, 0, nil)

	if w.NVals() != 1 || !w.ExtractElement(2) {
		t.Error("Unexpected column content:", w.String())
		return
	}

	// A mask selects indices

	mask := NewVector(5)
	mask.SetElement(3)

	m.ColExtract(w, mask, 2, nil)

	if w.NVals() != 1 || !w.ExtractElement(3) {
		t.Error("Unexpected masked column content:", w.String())
		return
	}

	// A complemented mask selects all other indices

	m.ColExtract(w, mask, 2, &Descriptor{ReplaceOutput: true, ComplementMask: true})

	if w.NVals() != 2 || !w.ExtractElement(1) || !w.ExtractElement(4) {
		t.Error("Unexpected complement masked column content:", w.String())
		return
	}
}

func TestMatrixTransposedExtract(t *testing.T) {
	m := NewMatrix(5, 5)

	m.SetElement(2, 0)
	m.SetElement(2, 3)
	m.SetElement(1, 2)

	// Extracting a column of the transposed input extracts a row

	w := NewVector(5)

	m.ColExtract(w, nil, 2, &Descriptor{TransposeInput: true})

	if w.NVals() != 2 || !w.ExtractElement(0) || !w.ExtractElement(3) {
		t.Error("Unexpected row content:", w.String())
		return
	}
}

func TestMatrixAssign(t *testing.T) {
	m := NewMatrix(4, 4)

	m.SetElement(0, 1)
	m.SetElement(2, 1)
	m.SetElement(3, 0)

	// Column assignment replaces the column pattern

	u := NewVector(4)
	u.SetElement(3)

	m.ColAssign(nil, 1, u)

	if m.NVals() != 2 || !m.ExtractElement(3, 1) || !m.ExtractElement(3, 0) {
		t.Error("Unexpected matrix content:", m.String())
		return
	}

	// Assigning an empty vector clears the column

	m.ColAssign(nil, 1, NewVector(4))

	if m.NVals() != 1 || !m.ExtractElement(3, 0) {
		t.Error("Unexpected matrix content:", m.String())
		return
	}

	// Row assignment replaces the row pattern

	u = NewVector(4)
	u.SetElement(2)

	m.RowAssign(nil, 3, u)

	if m.NVals() != 1 || !m.ExtractElement(3, 2) {
		t.Error("Unexpected matrix content:", m.String())
		return
	}
}

func TestMatrixString(t *testing.T) {
	m := NewMatrix(3, 3)

	m.SetElement(1, 0)
	m.SetElement(0, 2)

	if out := m.String(); out != "Matrix 3x3\n(1, 0)\n(0, 2)\n" {
		t.Error("Unexpected output:", out)
		return
	}
}

func TestMatrixBoundsPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Out of range set did not cause a panic.")
		}
	}()

	m := NewMatrix(3, 3)
	m.SetElement(3, 0)
}

func TestMatrixVectorSizePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Vector size mismatch did not cause a panic.")
		}
	}()

	m := NewMatrix(3, 3)
	m.ColExtract(NewVector(4), nil, 0, nil)
}

func TestVector(t *testing.T) {
	v := NewVector(6)

	if v.Size() != 6 || v.NVals() != 0 {
		t.Error("Unexpected new vector state:", v.String())
		return
	}

	v.SetElement(4)
	v.SetElement(1)

	if v.NVals() != 2 || !v.ExtractElement(4) || !v.ExtractElement(1) || v.ExtractElement(0) {
		t.Error("Unexpected vector content:", v.String())
		return
	}

	// Entries are visited in ascending order

	var got []uint64

	v.Each(func(i uint64) bool {
		got = append(got, i)
		return true
	})

	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Error("Unexpected iteration order:", got)
		return
	}

	if out := v.String(); out != "Vector 6\n(1)\n(4)\n" {
		t.Error("Unexpected output:", out)
		return
	}
}

func TestVectorBoundsPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Out of range set did not cause a panic.")
		}
	}()

	v := NewVector(2)
	v.SetElement(2)
}
