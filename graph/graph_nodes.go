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
	"devt.de/krotik/matrixdb/graph/data"
	"devt.de/krotik/matrixdb/metrics"
)

/*
CreateNodes creates n new nodes. The new nodes receive the IDs
[NodeCount(), NodeCount()+n). If labels is not nil it must hold one label
per new node - nodes whose label is not LabelNone get their diagonal entry
in the corresponding label matrix. The returned iterator covers the new
nodes.
*/
func (g *Graph) CreateNodes(n uint64, labels []int) *data.NodeIterator {
	g.pool.Grow(g.nodeCount + n)

	it := g.pool.Iterator(g.nodeCount, g.nodeCount+n, 1)

	nodeID := g.nodeCount
	g.nodeCount += n

	g.resizeMatrix(g.adjacency)

	if labels != nil {
		errorutil.AssertTrue(uint64(len(labels)) == n,
			fmt.Sprintf("Expected %v label(s) but got %v", n, len(labels)))

		for _, l := range labels {
			if l != LabelNone {
				m := g.LabelMatrix(l)
				m.SetElement(nodeID, nodeID)
			}
			nodeID++
		}
	}

	metrics.NodesCreated.Add(float64(n))
	metrics.CurrentNodes.WithLabelValues(g.name).Set(float64(g.nodeCount))

	return it
}

/*
Node returns the node record for a given ID. The ID field of the returned
record is authoritative after this call.
*/
func (g *Graph) Node(id uint64) *data.Node {
	errorutil.AssertTrue(id < g.nodeCount,
		fmt.Sprintf("Node id %v out of range - node count: %v", id, g.nodeCount))

	return g.pool.Node(id)
}

/*
LabelNodes sets a given label on all nodes of the inclusive ID range
[start, end]. The returned iterator covers the labeled nodes.
*/
func (g *Graph) LabelNodes(start uint64, end uint64, label int) *data.NodeIterator {
	errorutil.AssertTrue(start <= end,
		fmt.Sprintf("Invalid node range: %v - %v", start, end))
	errorutil.AssertTrue(end < g.nodeCount,
		fmt.Sprintf("Node id %v out of range - node count: %v", end, g.nodeCount))

	m := g.LabelMatrix(label)

	for nodeID := start; nodeID <= end; nodeID++ {
		m.SetElement(nodeID, nodeID)
	}

	return g.pool.Iterator(start, end+1, 1)
}

/*
ScanNodes returns an iterator over all live nodes in ascending ID order.
*/
func (g *Graph) ScanNodes() *data.NodeIterator {
	return g.pool.Iterator(0, g.nodeCount, 1)
}
