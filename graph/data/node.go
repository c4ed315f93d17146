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
Package data contains node storage objects for the graph.

Nodes live inside fixed-capacity blocks which are chained together. A block
never moves in memory once it has been allocated which makes node pointers
stable for the lifetime of the pool. A flat index of block pointers gives
constant time random access by node ID.
*/
package data

/*
Node is a single node record. The ID of a node is assigned on creation and
rewritten when the node is relocated during deletion compaction. The
attribute map is opaque to the storage layer.
*/
type Node struct {
	ID   uint64                 // Node ID - rewritten on relocation
	Data map[string]interface{} // Attributes of the node
}

/*
Attr returns a given attribute of the node.
*/
func (n *Node) Attr(attr string) interface{} {
	if n.Data == nil {
		return nil
	}

	return n.Data[attr]
}

/*
SetAttr sets a given attribute of the node.
*/
func (n *Node) SetAttr(attr string, val interface{}) {
	if n.Data == nil {
		n.Data = make(map[string]interface{})
	}

	n.Data[attr] = val
}
