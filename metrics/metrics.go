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
Package metrics contains prometheus instrumentation for graph operations.

All collectors register themselves with the default registry - exposing
them is up to the embedding process.
*/
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (

	/*
		NodesCreated counts created nodes.
	*/
	NodesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matrixdb_nodes_created_total",
		Help: "Total number of created nodes",
	})

	/*
		NodesDeleted counts deleted nodes.
	*/
	NodesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matrixdb_nodes_deleted_total",
		Help: "Total number of deleted nodes",
	})

	/*
		EdgesConnected counts edge creations.
	*/
	EdgesConnected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matrixdb_edges_connected_total",
		Help: "Total number of connected edges",
	})

	/*
		EdgesDeleted counts edge deletions.
	*/
	EdgesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matrixdb_edges_deleted_total",
		Help: "Total number of deleted edges",
	})

	/*
		MatrixResizes counts lazy matrix resize operations.
	*/
	MatrixResizes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matrixdb_matrix_resizes_total",
		Help: "Total number of matrix resize operations",
	})

	/*
		CurrentNodes tracks the current node count per graph.
	*/
	CurrentNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matrixdb_nodes",
		Help: "Current number of nodes",
	}, []string{"graph"})
)
