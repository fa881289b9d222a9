// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Transplant - put the sub-tree v in the position held by u
//
// v (which may be nil) takes over u's parent link and u's parent
// back-reference.  u itself keeps its own links.  When u was a root
// v is returned as the new root, otherwise the result is nil and
// the caller keeps its root.
func Transplant(u *Node, v *Node) (*Node, error) {
	if nil == u {
		return nil, fault.ErrNilNode
	}

	up := u.up
	if nil != up {
		switch u {
		case up.left:
			up.left = v
		case up.right:
			up.right = v
		default:
			return nil, violation(fault.ErrStaleParent, "transplant: %s  parent: %s", u, up)
		}
	}

	if nil != v {
		v.up = up
	}

	if nil == up {
		return v, nil
	}
	return nil, nil
}
