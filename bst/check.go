// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math"

	"github.com/bitmark-inc/bstree/fault"
)

// CheckUp - check the up pointers for consistency
//
// root must have no parent, every child must point back at the node
// owning it, no node may be reached twice and every node must have
// a key
func CheckUp(root *Node) error {
	if nil == root {
		return nil
	}
	if nil != root.up {
		return violation(fault.ErrRootHasParent, "root: %s  parent: %s", root, root.up)
	}
	return checkUp(root, nil, make(map[*Node]struct{}))
}

// internal: consistency checker
func checkUp(p *Node, up *Node, seen map[*Node]struct{}) error {
	if nil == p {
		return nil
	}
	if _, ok := seen[p]; ok {
		return violation(fault.ErrCycleDetected, "node: %s  parent: %s", p, up)
	}
	seen[p] = struct{}{}

	if !p.hasKey {
		return violation(fault.ErrMissingKey, "parent: %s", up)
	}
	if p.up != up {
		return violation(fault.ErrBrokenBackReference, "node: %s  actual: %s  expected: %s", p, p.up, up)
	}
	if err := checkUp(p.left, p, seen); nil != err {
		return err
	}
	return checkUp(p.right, p, seen)
}

// CheckOrder - check that every key of a left sub-tree is lower than
// its node and every key of a right sub-tree is equal or higher
func CheckOrder(root *Node) error {
	return checkOrder(root, math.MinInt32, math.MaxInt32+1)
}

// internal: low is inclusive, high is exclusive
func checkOrder(p *Node, low int64, high int64) error {
	if nil == p {
		return nil
	}
	if !p.hasKey {
		return violation(fault.ErrMissingKey, "parent: %s", p.up)
	}
	k := int64(p.key)
	if k < low || k >= high {
		return violation(fault.ErrOrderViolation, "node: %d  parent: %s  range: [%d, %d)", k, p.up, low, high)
	}
	if err := checkOrder(p.left, low, k); nil != err {
		return err
	}
	return checkOrder(p.right, k, high)
}

// Count - number of nodes in a sub-tree
func Count(tree *Node) int {
	if nil == tree {
		return 0
	}
	return 1 + Count(tree.left) + Count(tree.right)
}

// Height - number of nodes on the longest downward path
func Height(tree *Node) int {
	if nil == tree {
		return 0
	}
	l := Height(tree.left)
	r := Height(tree.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
