// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// NewTree - create an initially empty tree
func NewTree() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Insert - add a node for key, duplicates are kept
func (tree *Tree) Insert(key Key) (*Node, error) {
	node, err := Insert(&tree.root, key)
	if nil != err {
		return nil, err
	}
	tree.count += 1
	return node, nil
}

// Delete - remove one node holding key, the root is updated when
// necessary
func (tree *Tree) Delete(key Key) error {
	if _, err := Delete(&tree.root, key); nil != err {
		return err
	}
	tree.count -= 1
	return nil
}

// Search - find a node holding key, nil if absent
func (tree *Tree) Search(key Key) (*Node, error) {
	return Search(tree.root, key)
}

// Minimum - the node with the lowest key, nil for an empty tree
func (tree *Tree) Minimum() *Node {
	return Minimum(tree.root)
}

// Maximum - the node with the highest key, nil for an empty tree
func (tree *Tree) Maximum() *Node {
	return Maximum(tree.root)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() ([]Key, error) {
	return InOrder(tree.root)
}

// Check - verify back-references, ordering and node count
func (tree *Tree) Check() error {
	if err := CheckUp(tree.root); nil != err {
		return err
	}
	if err := CheckOrder(tree.root); nil != err {
		return err
	}
	if n := Count(tree.root); n != tree.count {
		return violation(fault.ErrTreeCountMismatch, "nodes: %d  count: %d", n, tree.count)
	}
	return nil
}

// Print - display the tree, returns its depth
func (tree *Tree) Print(w io.Writer) int {
	return Print(w, tree.root)
}

// Clear - drop every node
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// String - keys in order, for debugging
func (tree *Tree) String() string {
	keys, err := tree.Keys()
	if nil != err {
		return fmt.Sprintf("<%s>", err)
	}
	return fmt.Sprint(keys)
}
