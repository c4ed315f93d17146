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
	"bytes"
	"fmt"
	"sync"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/matrixdb/graph/data"
	"devt.de/krotik/matrixdb/matrix"
	"devt.de/krotik/matrixdb/metrics"
)

/*
Graph data structure
*/
type Graph struct {
	name      string           // Name of the graph
	pool      *data.Pool       // Block pool holding all node records
	nodeCount uint64           // Number of live nodes
	adjacency *matrix.Matrix   // Adjacency matrix over all edges
	relations []*matrix.Matrix // Relation matrices - one per relation type
	labels    []*matrix.Matrix // Label matrices - one per label
	mutex     *sync.Mutex      // Mutex to protect matrix resizing
}

/*
NewGraph creates a new graph with an initial capacity hint of n nodes.
*/
func NewGraph(name string, n uint64) *Graph {
	errorutil.AssertTrue(n > 0, "Graph capacity hint must be positive")

	pool := data.NewPool(n)

	g := &Graph{name, pool, 0,
		matrix.NewMatrix(pool.Capacity(), pool.Capacity()),
		make([]*matrix.Matrix, 0, DefaultRelationCap),
		make([]*matrix.Matrix, 0, DefaultLabelCap),
		&sync.Mutex{}}

	return g
}

/*
Name returns the name of this graph.
*/
func (g *Graph) Name() string {
	return g.name
}

/*
NodeCount returns the number of live nodes.
*/
func (g *Graph) NodeCount() uint64 {
	return g.nodeCount
}

/*
RelationCount returns the number of relation matrices.
*/
func (g *Graph) RelationCount() int {
	return len(g.relations)
}

/*
LabelCount returns the number of label matrices.
*/
func (g *Graph) LabelCount() int {
	return len(g.labels)
}

/*
AdjacencyMatrix returns the adjacency matrix. The returned handle is
resized to the current node count.
*/
func (g *Graph) AdjacencyMatrix() *matrix.Matrix {
	m := g.adjacency
	g.resizeMatrix(m)

	return m
}

/*
RelationMatrix returns the matrix of a given relation type. The returned
handle is resized to the current node count.
*/
func (g *Graph) RelationMatrix(relation int) *matrix.Matrix {
	errorutil.AssertTrue(relation >= 0 && relation < len(g.relations),
		fmt.Sprintf("Unknown relation matrix: %v", relation))

	m := g.relations[relation]
	g.resizeMatrix(m)

	return m
}

/*
LabelMatrix returns the matrix of a given label. The returned handle is
resized to the current node count.
*/
func (g *Graph) LabelMatrix(label int) *matrix.Matrix {
	errorutil.AssertTrue(label >= 0 && label < len(g.labels),
		fmt.Sprintf("Unknown label matrix: %v", label))

	m := g.labels[label]
	g.resizeMatrix(m)

	return m
}

/*
AddRelationMatrix adds a new relation matrix and returns its index.
*/
func (g *Graph) AddRelationMatrix() int {
	g.relations = appendMatrix(g.relations,
		matrix.NewMatrix(g.pool.Capacity(), g.pool.Capacity()))

	return len(g.relations) - 1
}

/*
AddLabelMatrix adds a new label matrix and returns its index.
*/
func (g *Graph) AddLabelMatrix() int {
	g.labels = appendMatrix(g.labels,
		matrix.NewMatrix(g.pool.Capacity(), g.pool.Capacity()))

	return len(g.labels) - 1
}

/*
CommitPendingOps forces execution of all deferred matrix work by querying
the number of stored entries of every matrix.
*/
func (g *Graph) CommitPendingOps() {
	g.AdjacencyMatrix().NVals()

	for i := range g.relations {
		g.RelationMatrix(i).NVals()
	}

	for i := range g.labels {
		g.LabelMatrix(i).NVals()
	}
}

/*
SetNodeFinalizer sets a finalizer which is run for every live node when
the graph is closed.
*/
func (g *Graph) SetNodeFinalizer(f func(*data.Node)) {
	g.pool.SetFinalizer(f)
}

/*
Close releases all node blocks and matrices. Node finalizers are run for
all live nodes.
*/
func (g *Graph) Close() error {
	err := g.pool.Close(g.nodeCount)

	g.adjacency = nil
	g.relations = nil
	g.labels = nil
	g.nodeCount = 0

	metrics.CurrentNodes.WithLabelValues(g.name).Set(0)

	return err
}

/*
String returns a string representation of this graph.
*/
func (g *Graph) String() string {
	buf := new(bytes.Buffer)

	buf.WriteString(fmt.Sprintf("Graph %v: %v node(s), %v relation(s), %v label(s)\n",
		g.name, g.nodeCount, len(g.relations), len(g.labels)))
	buf.WriteString(g.pool.String())
	buf.WriteString("\n")

	return buf.String()
}

/*
resizeMatrix resizes a given matrix to match the current node count. The
check is done twice - the second time under the resize lock.
*/
func (g *Graph) resizeMatrix(m *matrix.Matrix) {
	if m.NRows() != g.nodeCount {
		g.mutex.Lock()

		// Double check now that the lock is held

		if m.NRows() != g.nodeCount {
			m.Resize(g.nodeCount, g.nodeCount)

			metrics.MatrixResizes.Inc()
		}

		g.mutex.Unlock()
	}
}

/*
appendMatrix appends a matrix to a pool slice. A full pool is grown by a
fixed number of slots.
*/
func appendMatrix(pool []*matrix.Matrix, m *matrix.Matrix) []*matrix.Matrix {
	if len(pool) == cap(pool) {
		grown := make([]*matrix.Matrix, len(pool), cap(pool)+matrixPoolGrowth)
		copy(grown, pool)
		pool = grown
	}

	return append(pool, m)
}
