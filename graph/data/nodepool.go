/*
 * MatrixDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"fmt"

	"devt.de/krotik/common/errorutil"
)

/*
BlockCap is the number of node slots per block. Node IDs map to blocks by
integer division so the value should be a power of two.
*/
const BlockCap = 16384

/*
nodeBlock is a fixed-capacity array of node slots with a link to the next
block in the chain.
*/
type nodeBlock struct {
	nodes [BlockCap]Node // Node slots of this block
	next  *nodeBlock     // Next block in the chain
}

/*
Pool is a chained block pool for node records. Blocks are only ever added,
never moved - growing reallocates the block index but leaves all existing
blocks in place.
*/
type Pool struct {
	blocks    []*nodeBlock // Index of all blocks for random access
	capacity  uint64       // Total number of node slots
	finalizer func(*Node)  // Optional finalizer for node attributes
}

/*
NewPool creates a new node pool with enough blocks for n nodes.
*/
func NewPool(n uint64) *Pool {
	blockCount := blocksFor(n)

	p := &Pool{make([]*nodeBlock, blockCount), blockCount * BlockCap, nil}

	for i := range p.blocks {
		p.blocks[i] = &nodeBlock{}
		if i > 0 {

			// Link blocks

			p.blocks[i-1].next = p.blocks[i]
		}
	}

	return p
}

/*
Capacity returns the total number of node slots.
*/
func (p *Pool) Capacity() uint64 {
	return p.capacity
}

/*
BlockCount returns the number of allocated blocks.
*/
func (p *Pool) BlockCount() int {
	return len(p.blocks)
}

/*
Node returns the node record for a given ID. The ID field of the returned
record is made authoritative by this call.
*/
func (p *Pool) Node(id uint64) *Node {
	errorutil.AssertTrue(id < p.capacity,
		fmt.Sprintf("Node id %v out of range - capacity: %v", id, p.capacity))

	n := &p.blocks[id/BlockCap].nodes[id%BlockCap]
	n.ID = id

	return n
}

/*
Grow makes sure the pool can hold at least newTotal nodes. Growing
multiplies the block count - existing blocks are never moved, only the
block index is reallocated.
*/
func (p *Pool) Grow(newTotal uint64) {

	// Make sure there is room to store the nodes

	if newTotal < p.capacity {
		return
	}

	lastBlock := len(p.blocks) - 1

	// Multiply the block count by newTotal/capacity + 2 which always covers
	// the requested total

	increaseFactor := int(newTotal/p.capacity) + 2
	blockCount := len(p.blocks) * increaseFactor

	blocks := make([]*nodeBlock, blockCount)
	copy(blocks, p.blocks)
	p.blocks = blocks

	// Create and link the new blocks

	for i := lastBlock; i < blockCount-1; i++ {
		p.blocks[i+1] = &nodeBlock{}
		p.blocks[i].next = p.blocks[i+1]
	}

	p.capacity = uint64(blockCount) * BlockCap
}

/*
MigrateNode relocates the node record at src into the slot of dest,
overriding dest. The ID field of the relocated record is rewritten.
*/
func (p *Pool) MigrateNode(src uint64, dest uint64) {
	srcNode := p.Node(src)

	srcNode.ID = dest

	// Replace the dest node with the src node

	p.blocks[dest/BlockCap].nodes[dest%BlockCap] = *srcNode
}

/*
SetFinalizer sets a finalizer which is run for every live node when the
pool is closed. The pool owns the attribute memory of its nodes through
this hook.
*/
func (p *Pool) SetFinalizer(f func(*Node)) {
	p.finalizer = f
}

/*
Iterator returns an iterator over the node IDs [start, end) with a given
stride.
*/
func (p *Pool) Iterator(start uint64, end uint64, stride uint64) *NodeIterator {
	errorutil.AssertTrue(end <= p.capacity,
		fmt.Sprintf("Iterator end %v out of range - capacity: %v", end, p.capacity))
	errorutil.AssertTrue(stride > 0, "Iterator stride must be positive")

	return &NodeIterator{p.blocks[start/BlockCap], start / BlockCap, start, end, stride}
}

/*
Close releases all blocks. The finalizer, if one was set, is run for the
given number of live nodes before the storage is dropped.
*/
func (p *Pool) Close(live uint64) error {
	if p.finalizer != nil && p.blocks != nil {
		it := p.Iterator(0, live, 1)

		for it.HasNext() {
			p.finalizer(it.Next())
		}
	}

	p.blocks = nil
	p.capacity = 0

	return nil
}

/*
String returns a string representation of this pool.
*/
func (p *Pool) String() string {
	return fmt.Sprintf("NodePool %v block(s), capacity %v", len(p.blocks), p.capacity)
}

/*
blocksFor computes the number of blocks required to hold n nodes.
*/
func blocksFor(n uint64) uint64 {
	if n < BlockCap {
		return 1
	}

	return (n + BlockCap - 1) / BlockCap
}
