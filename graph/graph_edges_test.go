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

import "testing"

func TestGraphConnectIdempotence(t *testing.T) {
	g := NewGraph("main", 10)

	g.CreateNodes(2, nil)

	g.ConnectNodes([]Connection{{0, 1, RelationNone}})
	g.ConnectNodes([]Connection{{0, 1, RelationNone}})

	if g.AdjacencyMatrix().NVals() != 1 {
		t.Error("Connecting the same pair twice should be a no-op")
		return
	}
}

func TestGraphDeleteTypedEdge(t *testing.T) {
	g := NewGraph("main", 10)

	knows := g.AddRelationMatrix()
	likes := g.AddRelationMatrix()

	g.CreateNodes(2, nil)

	g.ConnectNodes([]Connection{{0, 1, knows}, {0, 1, likes}})

	// Deleting one typed edge keeps the adjacency entry alive through
	// the remaining relation

	g.DeleteEdge(0, 1, knows)

	if g.RelationMatrix(knows).ExtractElement(1, 0) {
		t.Error("Deleted relation entry still present")
		return
	}

	if !g.RelationMatrix(likes).ExtractElement(1, 0) {
		t.Error("Other relation entry should survive")
		return
	}

	if !g.AdjacencyMatrix().ExtractElement(1, 0) {
		t.Error("Adjacency entry should survive while a typed edge remains")
		return
	}

	// Deleting the last typed edge also clears the adjacency entry

	g.DeleteEdge(0, 1, likes)

	if g.RelationMatrix(likes).ExtractElement(1, 0) {
		t.Error("Deleted relation entry still present")
		return
	}

	if g.AdjacencyMatrix().ExtractElement(1, 0) {
		t.Error("Adjacency entry should have been removed")
		return
	}
}

func TestGraphDeleteUntypedEdge(t *testing.T) {
	g := NewGraph("main", 10)

	knows := g.AddRelationMatrix()

	g.CreateNodes(3, nil)

	g.ConnectNodes([]Connection{
		{0, 1, RelationNone},
		{0, 1, knows},
		{2, 1, knows},
	})

	// Deleting without a relation type removes every edge connecting
	// the pair

	g.DeleteEdge(0, 1, RelationNone)

	if g.AdjacencyMatrix().ExtractElement(1, 0) {
		t.Error("Adjacency entry still present")
		return
	}

	if g.RelationMatrix(knows).ExtractElement(1, 0) {
		t.Error("Relation entry still present")
		return
	}

	// Other edges are untouched

	if !g.AdjacencyMatrix().ExtractElement(1, 2) || !g.RelationMatrix(knows).ExtractElement(1, 2) {
		t.Error("Unrelated edge should survive")
		return
	}
}

func TestGraphDeleteEdgeNoop(t *testing.T) {
	g := NewGraph("main", 10)

	g.AddRelationMatrix()
	g.CreateNodes(2, nil)

	// Deleting a non-existing edge is a no-op

	g.DeleteEdge(0, 1, RelationNone)
	g.DeleteEdge(1, 0, 0)

	if g.AdjacencyMatrix().NVals() != 0 {
		t.Error("Graph should have no edges")
		return
	}

	// Deleting a typed edge which only exists untyped keeps the
	// adjacency entry

	g.ConnectNodes([]Connection{{0, 1, RelationNone}})
	g.DeleteEdge(0, 1, 0)

	if !g.AdjacencyMatrix().ExtractElement(1, 0) {
		t.Error("Adjacency entry should survive")
		return
	}
}

func TestGraphConnectPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Out of range connection did not cause a panic.")
		}
	}()

	g := NewGraph("main", 10)
	g.CreateNodes(2, nil)

	g.ConnectNodes([]Connection{{0, 2, RelationNone}})
}

func TestGraphUnknownRelationPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Unknown relation did not cause a panic.")
		}
	}()

	g := NewGraph("main", 10)
	g.CreateNodes(2, nil)

	g.ConnectNodes([]Connection{{0, 1, 0}})
}
