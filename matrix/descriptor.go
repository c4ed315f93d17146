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

/*
Descriptor modifies the behaviour of matrix operations which accept one.
A nil descriptor leaves all behaviour at its default.
*/
type Descriptor struct {

	/*
		TransposeInput operates on the transpose of the input matrix.
		A column extract with a transposed input extracts a row.
	*/
	TransposeInput bool

	/*
		ReplaceOutput clears the output object before the result is
		written. Operations without an accumulator replace the output
		pattern in any case.
	*/
	ReplaceOutput bool

	/*
		ComplementMask selects all indices the mask has no entry for
		instead of the indices it has an entry for.
	*/
	ComplementMask bool
}
