/*
 * MatrixDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"fmt"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/matrixdb/matrix"
	"devt.de/krotik/matrixdb/metrics"
)

/*
DeleteNodes deletes all nodes of a given sorted ID list. The deletion is
performed by swapping higher-ID nodes not scheduled for deletion into the
vacated lower slots until all IDs greater than the updated node count are
scheduled for deletion. Afterwards the node IDs again form a dense
interval starting at 0. The adjacency matrix is resized immediately - all
other matrices resize on their next access.

The ID list must be sorted in ascending order and free of duplicates.
*/
func (g *Graph) DeleteNodes(ids []uint64) {
	g.checkDeleteIDs(ids)

	if len(ids) == 0 {
		return
	}

	postDeleteCount := g.nodeCount - uint64(len(ids))

	// Track the highest remaining ID in the graph

	idToSave := g.nodeCount - 1

	// Track the highest ID scheduled for deletion below idToSave

	largestDeleteIdx := len(ids) - 1

	zero := matrix.NewVector(g.nodeCount)

	// Track the lowest ID scheduled for deletion as the destination slot
	// for idToSave

	idToReplaceIdx := 0

	for ids[idToReplaceIdx] < postDeleteCount {

		// Make sure the node being saved is not itself scheduled for
		// deletion

		for largestDeleteIdx >= 0 && idToSave == ids[largestDeleteIdx] {
			idToSave--
			largestDeleteIdx--
		}

		// Perform all necessary substitutions in node storage and
		// adjacency, relation and label matrices

		g.replaceNode(zero, idToSave, ids[idToReplaceIdx])

		idToReplaceIdx++
		if idToReplaceIdx >= len(ids) {
			break
		}
		idToSave--
	}

	g.nodeCount = postDeleteCount

	// Force adjacency matrix resizing

	g.resizeMatrix(g.adjacency)

	metrics.NodesDeleted.Add(float64(len(ids)))
	metrics.CurrentNodes.WithLabelValues(g.name).Set(float64(g.nodeCount))
}

/*
replaceNode relocates the replacement node into the slot of the node to
delete, overriding it in node storage and all matrices.
*/
func (g *Graph) replaceNode(zero *matrix.Vector, replacement uint64, toDelete uint64) {

	// Update label matrices - labels live on the diagonal so the bit at
	// the destination has to be replaced by the bit at the source

	for i := range g.labels {
		m := g.LabelMatrix(i)

		srcHasLabel := m.ExtractElement(replacement, replacement)
		destHasLabel := m.ExtractElement(toDelete, toDelete)

		if destHasLabel && !srcHasLabel {

			// Clear the destination column if the deleted node carries
			// the label and the replacement does not

			m.ColAssign(nil, toDelete, zero)

		} else if !destHasLabel && srcHasLabel {

			// Set the destination diagonal entry if the replacement
			// carries the label and the deleted node does not

			m.SetElement(toDelete, toDelete)
		}
	}

	g.migrateRowCol(replacement, toDelete)

	g.pool.MigrateNode(replacement, toDelete)
}

/*
migrateRowCol relocates the src row and column of every edge matrix into
the dest row and column, overriding dest.
*/
func (g *Graph) migrateRowCol(src uint64, dest uint64) {
	nrows := g.nodeCount

	transposed := &matrix.Descriptor{TransposeInput: true}

	row := matrix.NewVector(nrows)
	col := matrix.NewVector(nrows)
	zero := matrix.NewVector(nrows)

	migrate := func(m *matrix.Matrix) {

		// Clear dest column

		m.ColAssign(nil, dest, zero)

		// Migrate row

		m.ColExtract(row, nil, src, transposed)
		m.RowAssign(nil, dest, row)

		// Migrate column

		m.ColExtract(col, nil, src, nil)
		m.ColAssign(nil, dest, col)
	}

	migrate(g.AdjacencyMatrix())

	for i := range g.relations {
		migrate(g.RelationMatrix(i))
	}
}

/*
checkDeleteIDs checks the precondition of the deletion ID list.
*/
func (g *Graph) checkDeleteIDs(ids []uint64) {
	for i, id := range ids {
		errorutil.AssertTrue(id < g.nodeCount,
			fmt.Sprintf("Node id %v out of range - node count: %v", id, g.nodeCount))

		if i > 0 {
			errorutil.AssertTrue(ids[i-1] < id,
				fmt.Sprintf("Deletion ids must be sorted and unique - got %v after %v",
					id, ids[i-1]))
		}
	}
}
