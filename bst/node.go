// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"strconv"

	"github.com/bitmark-inc/bstree/fault"
)

// Key - the ordering value held by a node
type Key int32

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree, owned
	right  *Node // right sub-tree, owned
	up     *Node // back-reference to parent, never owns
	key    Key   // ordering key, only valid if hasKey
	hasKey bool  // false for a sentinel
}

func newNode(key Key, up *Node) *Node {
	globalData.created.Increment()
	return &Node{
		up:     up,
		key:    key,
		hasKey: true,
	}
}

// New - create a node that has no parent and no children
func New(key Key) *Node {
	return newNode(key, nil)
}

// NewChild - create a node whose back-reference points at parent
//
// the node is not attached: parent does not own it until one of its
// links is set, see AddLeft and AddRight
func NewChild(parent *Node, key Key) *Node {
	return newNode(key, parent)
}

// NewSentinel - create a placeholder node without a key
//
// a sentinel is never a valid position in a tree; any operation that
// meets one while descending reports fault.ErrMissingKey
func NewSentinel() *Node {
	return &Node{}
}

// AddLeft - create and attach a new left child, replacing any
// existing left sub-tree
//
// no ordering check is made, this is for assembling trees by hand
func (p *Node) AddLeft(key Key) *Node {
	p.left = NewChild(p, key)
	return p.left
}

// AddRight - create and attach a new right child, replacing any
// existing right sub-tree
//
// no ordering check is made, this is for assembling trees by hand
func (p *Node) AddRight(key Key) *Node {
	p.right = NewChild(p, key)
	return p.right
}

// Copy - a detached handle with the same key and links
//
// no parent owns the copy, so resolving its parent fails; use the
// handles returned by queries to refer to positions in a tree
func (p *Node) Copy() *Node {
	c := *p
	return &c
}

// Key - read the key from a node, false for a sentinel
func (p *Node) Key() (Key, bool) {
	return p.key, p.hasKey
}

// HasKey - false for a sentinel
func (p *Node) HasKey() bool {
	return p.hasKey
}

// Parent - the raw back-reference, nil for a root
func (p *Node) Parent() *Node {
	return p.up
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Depth - number of back-references between the node and its root
func (p *Node) Depth() uint {
	count := uint(0)
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}

// String - key as decimal, "nil" for a sentinel or nil node
func (p *Node) String() string {
	if nil == p || !p.hasKey {
		return "nil"
	}
	return strconv.FormatInt(int64(p.key), 10)
}

// resolve the back-reference: the parent must still own p
func (p *Node) resolveUp() (*Node, error) {
	up := p.up
	if nil == up {
		return nil, nil
	}
	if up.left != p && up.right != p {
		return nil, violation(fault.ErrStaleParent, "node: %s  parent: %s", p, up)
	}
	return up, nil
}

// clear every link of a node removed from a tree
func (p *Node) detach() {
	p.up = nil
	p.left = nil
	p.right = nil
	globalData.detached.Increment()
}

// compare by key value, two sentinels are equal
func sameKey(a *Node, b *Node) bool {
	return a.hasKey == b.hasKey && a.key == b.key
}
