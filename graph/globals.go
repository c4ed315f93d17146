/*
 * MatrixDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package graph contains the main API to the matrix-backed graph store.

Graph API

The main API is provided by a Graph object which can be created with the
NewGraph() constructor function. The graph provides atomic bulk operations
to create nodes, connect nodes, label node ranges and delete nodes or
edges.

Matrix representation

All connectivity lives in Boolean sparse matrices which share a common
square dimension equal to the current node count. Columns represent source
nodes and rows represent destination nodes - an entry at (d, s) is an edge
from s to d. The adjacency matrix holds every edge, each relation matrix
holds the edges of one relation type and each label matrix marks labeled
nodes on its diagonal.

The adjacency matrix and the relation matrices store redundant information
on purpose: an entry in a relation matrix implies the same entry in the
adjacency matrix, and an adjacency entry is backed by at least one relation
entry unless the edge was created without a relation type. Typed traversals
can run on a single relation matrix without masking the adjacency matrix.

Node storage

Node records live in a chained block pool (see the data package) which
keeps node pointers stable while the graph grows. Node IDs form the dense
interval [0, NodeCount()) - deleting nodes compacts the ID space by moving
surviving high-ID nodes into the vacated low slots.

Concurrency

A single mutex guards matrix resizing. All other operations are not
internally synchronised - the caller is responsible for serialising
writers with readers. Matrix handles returned by the accessor functions
are always consistent with the node count at the time of return.
*/
package graph

/*
RelationNone is the relation value of an edge without a relation type.
*/
const RelationNone = -1

/*
LabelNone is the label value of a node without a label.
*/
const LabelNone = -1

/*
DefaultRelationCap is the initial capacity of the relation matrix pool.
*/
const DefaultRelationCap = 4

/*
DefaultLabelCap is the initial capacity of the label matrix pool.
*/
const DefaultLabelCap = 4

/*
matrixPoolGrowth is the number of slots added to a full matrix pool.
*/
const matrixPoolGrowth = 4
