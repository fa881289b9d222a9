// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
	"github.com/xlab/treeprint"

	"github.com/bitmark-inc/bstree/bst"
)

func runOutline(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fmt.Fprint(m.w, outline(m.tree.Root()))
	return nil
}

// render as an indented outline, each child tagged L or R
func outline(root *bst.Node) string {
	if nil == root {
		return "empty tree\n"
	}
	tree := treeprint.NewWithRoot(root.String())
	addChildren(tree, root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, node *bst.Node) {
	for _, child := range []struct {
		meta string
		node *bst.Node
	}{
		{"L", node.Left()},
		{"R", node.Right()},
	} {
		switch {
		case nil == child.node:
		case child.node.IsLeaf():
			tree.AddMetaNode(child.meta, child.node.String())
		default:
			addChildren(tree.AddMetaBranch(child.meta, child.node.String()), child.node)
		}
	}
}
