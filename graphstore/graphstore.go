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
Package graphstore contains the host registry which keeps graphs under
typed keys.

A MemoryStore holds named graphs for the embedding process. Lookup by name
yields the graph pointer - query engines hold the pointer for the duration
of a query. Removing a graph from the store does not close it.
*/
package graphstore

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"devt.de/krotik/common/logutil"
	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/matrixdb/config"
	"devt.de/krotik/matrixdb/graph"
)

/*
StoreError is a graph store related error
*/
type StoreError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (se *StoreError) Error() string {
	if se.Detail != "" {
		return fmt.Sprintf("StoreError: %v (%v)", se.Type, se.Detail)
	}

	return fmt.Sprintf("StoreError: %v", se.Type)
}

/*
Graph store related error types
*/
var (
	ErrInvalidName  = errors.New("Invalid graph name")
	ErrUnknownGraph = errors.New("Unknown graph")
	ErrGraphExists  = errors.New("Graph exists already")
	ErrClosing      = errors.New("Failed to close graph")
)

/*
Logger for the graph store
*/
var log = logutil.GetLogger("matrixdb.graphstore")

/*
MemoryStore is an in-memory registry of named graphs.
*/
type MemoryStore struct {
	name   string                  // Name of the store
	graphs map[string]*graph.Graph // Registered graphs
	mutex  *sync.RWMutex           // Mutex to protect registry operations
}

/*
NewMemoryStore creates a new named graph registry.
*/
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name, make(map[string]*graph.Graph), &sync.RWMutex{}}
}

/*
Name returns the name of this store.
*/
func (ms *MemoryStore) Name() string {
	return ms.name
}

/*
CreateGraph creates a new graph and registers it under a given name. The
initial node capacity is taken from the configuration.
*/
func (ms *MemoryStore) CreateGraph(name string) (*graph.Graph, error) {
	if err := checkGraphName(name); err != nil {
		return nil, err
	}

	if config.Config == nil {
		config.LoadDefaultConfig()
	}

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, ok := ms.graphs[name]; ok {
		return nil, &StoreError{ErrGraphExists, name}
	}

	g := graph.NewGraph(name, uint64(config.Int(config.InitialNodeCapacity)))
	ms.graphs[name] = g

	log.Info("Created graph ", name)

	return g, nil
}

/*
StoreGraph registers an existing graph under a given name. A graph already
registered under the name is replaced.
*/
func (ms *MemoryStore) StoreGraph(name string, g *graph.Graph) error {
	if err := checkGraphName(name); err != nil {
		return err
	}

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	ms.graphs[name] = g

	log.Info("Stored graph ", name)

	return nil
}

/*
Graph looks up a graph by name. Returns nil if no graph is registered
under the name.
*/
func (ms *MemoryStore) Graph(name string) *graph.Graph {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	return ms.graphs[name]
}

/*
RemoveGraph removes a graph from the registry. The graph itself is not
closed.
*/
func (ms *MemoryStore) RemoveGraph(name string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, ok := ms.graphs[name]; !ok {
		return &StoreError{ErrUnknownGraph, name}
	}

	delete(ms.graphs, name)

	log.Info("Removed graph ", name)

	return nil
}

/*
List returns the names of all registered graphs in sorted order.
*/
func (ms *MemoryStore) List() []string {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	var ret []string

	for name := range ms.graphs {
		ret = append(ret, name)
	}

	sort.StringSlice(ret).Sort()

	return ret
}

/*
Close closes all registered graphs and empties the registry.
*/
func (ms *MemoryStore) Close() error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for name, g := range ms.graphs {
		if err := g.Close(); err != nil {
			return &StoreError{ErrClosing, fmt.Sprint(name, " - ", err.Error())}
		}
	}

	ms.graphs = make(map[string]*graph.Graph)

	return nil
}

/*
checkGraphName checks if a given graph name is valid.
*/
func checkGraphName(name string) error {
	if !stringutil.IsAlphaNumeric(name) || name == "" {
		return &StoreError{
			Type:   ErrInvalidName,
			Detail: fmt.Sprintf("Graph name %v is not alphanumeric - can only contain [a-zA-Z0-9_]", name),
		}
	}

	return nil
}
