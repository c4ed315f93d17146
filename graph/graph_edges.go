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
Connection describes a single edge from a source node to a destination
node. Relation is either a relation matrix index or RelationNone for an
untyped edge.
*/
type Connection struct {
	Src      uint64 // Source node ID
	Dest     uint64 // Destination node ID
	Relation int    // Relation type or RelationNone
}

/*
ConnectNodes creates all edges of a given connection list. Every edge is
entered into the adjacency matrix - typed edges are also entered into
their relation matrix. The matrices are Boolean so connecting the same
pair twice is a no-op.
*/
func (g *Graph) ConnectNodes(conns []Connection) {
	adj := g.AdjacencyMatrix()

	for _, c := range conns {
		errorutil.AssertTrue(c.Src < g.nodeCount && c.Dest < g.nodeCount,
			fmt.Sprintf("Connection (%v, %v) out of range - node count: %v",
				c.Src, c.Dest, g.nodeCount))

		// Columns represent source nodes, rows represent destination nodes

		adj.SetElement(c.Dest, c.Src)

		if c.Relation != RelationNone {
			g.RelationMatrix(c.Relation).SetElement(c.Dest, c.Src)
		}
	}

	metrics.EdgesConnected.Add(float64(len(conns)))
}

/*
DeleteEdge deletes edges between two nodes. Given RelationNone every edge
connecting source to destination is removed. Given a relation type only
the typed edge is removed - the adjacency entry is also removed if no
other typed edge connects the pair. Deleting a non-existing edge is a
no-op.
*/
func (g *Graph) DeleteEdge(src uint64, dest uint64, relation int) {
	errorutil.AssertTrue(src < g.nodeCount && dest < g.nodeCount,
		fmt.Sprintf("Edge (%v, %v) out of range - node count: %v",
			src, dest, g.nodeCount))

	// See if there is an edge between src and dest

	if !g.AdjacencyMatrix().ExtractElement(dest, src) {
		return
	}

	if relation == RelationNone {
		g.deleteEdges(src, dest)
	} else {
		g.deleteTypedEdges(src, dest, relation)
	}

	metrics.EdgesDeleted.Inc()
}

/*
deleteEdges deletes all edges connecting source to destination.
*/
func (g *Graph) deleteEdges(src uint64, dest uint64) {
	g.clearMatrixEntry(g.AdjacencyMatrix(), src, dest)

	// Update relation matrices

	for i := range g.relations {
		m := g.RelationMatrix(i)

		if m.ExtractElement(dest, src) {
			g.clearMatrixEntry(m, src, dest)
		}
	}
}

/*
deleteTypedEdges deletes the edge of a given relation type connecting
source to destination.
*/
func (g *Graph) deleteTypedEdges(src uint64, dest uint64, relation int) {
	m := g.RelationMatrix(relation)

	if !m.ExtractElement(dest, src) {
		return
	}

	g.clearMatrixEntry(m, src, dest)

	// See if source is connected to destination with additional edges

	connected := false

	for i := range g.relations {
		if g.RelationMatrix(i).ExtractElement(dest, src) {
			connected = true
			break
		}
	}

	// No other typed edge connects source to destination - remove the
	// entry from the adjacency matrix as well

	if !connected {
		g.clearMatrixEntry(g.AdjacencyMatrix(), src, dest)
	}
}

/*
clearMatrixEntry removes a single entry from a given matrix. The source
column is extracted with a complemented mask on the destination row and
assigned back - all entries of the column survive except the target.
*/
func (g *Graph) clearMatrixEntry(m *matrix.Matrix, src uint64, dest uint64) {
	nrows := g.nodeCount

	mask := matrix.NewVector(nrows)
	mask.SetElement(dest)

	col := matrix.NewVector(nrows)

	desc := &matrix.Descriptor{ReplaceOutput: true, ComplementMask: true}

	m.ColExtract(col, mask, src, desc)
	m.ColAssign(nil, src, col)
}
