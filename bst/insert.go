// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Insert - add a new leaf holding key, returns the new node
//
// an empty tree (*root == nil) gets the node as its root; equal keys
// are placed in the right sub-tree, there is no rebalancing
func Insert(root **Node, key Key) (*Node, error) {
	if nil == root {
		return nil, fault.ErrNilNode
	}
	if nil == *root {
		*root = New(key)
		debugf("insert: %d as root", key)
		return *root, nil
	}

	p := *root
	for {
		if !p.hasKey {
			return nil, violation(fault.ErrMissingKey, "insert: %d  parent: %s", key, p.up)
		}
		if key < p.key {
			if nil == p.left {
				p.left = NewChild(p, key)
				debugf("insert: %d left of: %s", key, p)
				return p.left, nil
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = NewChild(p, key)
				debugf("insert: %d right of: %s", key, p)
				return p.right, nil
			}
			p = p.right
		}
	}
}
