// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Successor - given a node, return the node with the next key in
// order or nil if the node holds the highest key
//
// on the upward walk an ancestor is accepted when its left child has
// the same key as the node just left, the two nodes are not compared
// for identity
func Successor(node *Node) (*Node, error) {
	if nil == node {
		return nil, nil
	}
	if nil != node.right {
		return Minimum(node.right), nil
	}

	x := node
	for {
		y, err := x.resolveUp()
		if nil != err {
			return nil, err
		}
		if nil == y {
			return nil, nil
		}
		if nil != y.left && sameKey(y.left, x) {
			return y, nil
		}
		x = y
	}
}

// Predecessor - given a node, return the node with the previous key
// in order or nil if the node holds the lowest key
func Predecessor(node *Node) (*Node, error) {
	if nil == node {
		return nil, nil
	}
	if nil != node.left {
		return Maximum(node.left), nil
	}

	x := node
	for {
		y, err := x.resolveUp()
		if nil != err {
			return nil, err
		}
		if nil == y {
			return nil, nil
		}
		if y.right == x {
			return y, nil
		}
		x = y
	}
}

// InOrder - all keys of a tree in ascending order by walking the
// successor chain from the minimum
//
// root must be the top of a tree, the walk gives up with
// fault.ErrCycleDetected if it visits more nodes than the tree holds
func InOrder(root *Node) ([]Key, error) {
	if nil == root {
		return []Key{}, nil
	}
	if nil != root.up {
		return nil, violation(fault.ErrRootHasParent, "root: %s  parent: %s", root, root.up)
	}

	limit := Count(root)
	keys := make([]Key, 0, limit)
	for p := Minimum(root); nil != p; {
		if len(keys) == limit {
			return nil, violation(fault.ErrCycleDetected, "successor walk passed %d nodes at: %s", limit, p)
		}
		if !p.hasKey {
			return nil, violation(fault.ErrMissingKey, "in order walk after: %d keys", len(keys))
		}
		keys = append(keys, p.key)

		next, err := Successor(p)
		if nil != err {
			return nil, err
		}
		p = next
	}
	return keys, nil
}
