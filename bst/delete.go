// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Delete - remove the first node found holding key
//
// *root is replaced when the node removed is the root itself, it
// becomes nil once the last node is gone.  The removed node is
// returned with all of its links cleared.
func Delete(root **Node, key Key) (*Node, error) {
	if nil == root {
		return nil, fault.ErrNilNode
	}

	z, err := Search(*root, key)
	if nil != err {
		return nil, err
	}
	if nil == z {
		return nil, fault.ErrKeyNotFound
	}

	// nothing may change if z cannot be unlinked from its parent
	if _, err := z.resolveUp(); nil != err {
		return nil, err
	}

	var replacement *Node
	switch {
	case nil == z.left:
		replacement = z.right

	case nil == z.right:
		replacement = z.left

	default:
		// successor: lowest node of the right sub-tree, has no
		// left child
		y := Minimum(z.right)
		if y != z.right {
			if _, err := Transplant(y, y.right); nil != err {
				return nil, err
			}
			y.right = z.right
			y.right.up = y
		}
		y.left = z.left
		y.left.up = y
		replacement = y
	}

	if _, err := Transplant(z, replacement); nil != err {
		return nil, err
	}
	if z == *root {
		*root = replacement
	}
	z.detach()

	debugf("delete: %d  replaced by: %s", key, replacement)
	return z, nil
}
