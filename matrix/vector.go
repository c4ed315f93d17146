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

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/errorutil"
	"github.com/tidwall/btree"
)

/*
Vector is a Boolean sparse vector. Vectors are used as extraction targets
and as structural masks for matrix operations.
*/
type Vector struct {
	size  uint64                // Dimension of the vector
	elems *btree.BTreeG[uint64] // Stored entry indices
}

/*
NewVector creates a new Boolean sparse vector of the given size.
*/
func NewVector(size uint64) *Vector {
	errorutil.AssertTrue(size <= MaxDimension,
		fmt.Sprintf("Cannot create vector of size %v - max dimension: %v",
			size, uint64(MaxDimension)))

	return &Vector{size, btree.NewBTreeG[uint64](
		func(a, b uint64) bool { return a < b })}
}

/*
Size returns the dimension of the vector.
*/
func (v *Vector) Size() uint64 {
	return v.size
}

/*
NVals returns the number of stored entries.
*/
func (v *Vector) NVals() uint64 {
	return uint64(v.elems.Len())
}

/*
SetElement sets the entry at the given index.
*/
func (v *Vector) SetElement(i uint64) {
	errorutil.AssertTrue(i < v.size,
		fmt.Sprintf("Index %v out of range - size: %v", i, v.size))

	v.elems.Set(i)
}

/*
ExtractElement returns true if the entry at the given index is set.
*/
func (v *Vector) ExtractElement(i uint64) bool {
	errorutil.AssertTrue(i < v.size,
		fmt.Sprintf("Index %v out of range - size: %v", i, v.size))

	_, ok := v.elems.Get(i)

	return ok
}

/*
Each visits all stored entries in ascending index order. The visit function
can abort the iteration by returning false.
*/
func (v *Vector) Each(visit func(i uint64) bool) {
	v.elems.Scan(visit)
}

/*
String returns a string representation of this vector.
*/
func (v *Vector) String() string {
	buf := new(bytes.Buffer)

	buf.WriteString(fmt.Sprintf("Vector %v\n", v.size))

	v.elems.Scan(func(i uint64) bool {
		buf.WriteString(fmt.Sprintf("(%v)\n", i))
		return true
	})

	return buf.String()
}

/*
clear removes all stored entries.
*/
func (v *Vector) clear() {
	v.elems = btree.NewBTreeG[uint64](func(a, b uint64) bool { return a < b })
}
