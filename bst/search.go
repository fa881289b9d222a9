// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Search - find the first node holding key in the sub-tree below tree
//
// returns nil, nil if the key is not present; an error only for a
// damaged tree
func Search(tree *Node, key Key) (*Node, error) {
	p := tree
	for nil != p {
		if !p.hasKey {
			return nil, violation(fault.ErrMissingKey, "search: %d  parent: %s", key, p.up)
		}
		switch {
		case key == p.key:
			return p, nil
		case key < p.key && nil != p.left:
			p = p.left
		default:
			// also taken for a smaller key when there is no left
			// sub-tree; search continues on the right
			p = p.right
		}
	}
	return nil, nil
}

// Minimum - lowest node in a sub-tree
func Minimum(tree *Node) *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.left {
		tree = tree.left
	}
	return tree
}

// Maximum - highest node in a sub-tree
func Maximum(tree *Node) *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.right {
		tree = tree.right
	}
	return tree
}

// Root - follow the resolved back-references to the top of the tree
func Root(node *Node) (*Node, error) {
	if nil == node {
		return nil, nil
	}
	for {
		up, err := node.resolveUp()
		if nil != err {
			return nil, err
		}
		if nil == up {
			return node, nil
		}
		node = up
	}
}
