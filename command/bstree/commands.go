// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if m.tree.IsEmpty() {
		fmt.Fprintf(m.w, "empty tree\n")
		return nil
	}
	depth := m.tree.Print(m.w)
	fmt.Fprintf(verboseWriter(m), "nodes: %d  depth: %d\n", m.tree.Count(), depth)
	return nil
}

func runKeys(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	keys, err := m.tree.Keys()
	if nil != err {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(m.w, "%d\n", k)
	}
	return nil
}

func runSearch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := singleKey(c)
	if nil != err {
		return err
	}
	node, err := m.tree.Search(key)
	if nil != err {
		return err
	}
	printNode(m, node)
	return nil
}

func runSuccessor(c *cli.Context) error {
	return neighbour(c, bst.Successor)
}

func runPredecessor(c *cli.Context) error {
	return neighbour(c, bst.Predecessor)
}

// search for the argument key then step to an adjacent node
func neighbour(c *cli.Context, step func(*bst.Node) (*bst.Node, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := singleKey(c)
	if nil != err {
		return err
	}
	node, err := m.tree.Search(key)
	if nil != err {
		return err
	}
	if nil == node {
		return fmt.Errorf("%w: %d", fault.ErrKeyNotFound, key)
	}
	next, err := step(node)
	if nil != err {
		return err
	}
	printNode(m, next)
	return nil
}

func runMinimum(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	printNode(m, m.tree.Minimum())
	return nil
}

func runMaximum(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	printNode(m, m.tree.Maximum())
	return nil
}

func runDelete(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrMissingArgument
	}
	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	for _, k := range keys {
		if err := m.tree.Delete(k); nil != err {
			return fmt.Errorf("delete: %d: %w", k, err)
		}
		fmt.Fprintf(verboseWriter(m), "deleted: %d  remaining: %d\n", k, m.tree.Count())
	}

	if m.tree.IsEmpty() {
		fmt.Fprintf(m.w, "empty tree\n")
		return nil
	}
	m.tree.Print(m.w)
	return nil
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := m.tree.Check(); nil != err {
		color.New(color.FgRed).Fprintf(m.w, "failed: %s\n", err)
		return err
	}
	color.New(color.FgGreen).Fprintf(m.w, "ok: %d nodes  height: %d\n", m.tree.Count(), bst.Height(m.tree.Root()))
	return nil
}

// exactly one key argument
func singleKey(c *cli.Context) (bst.Key, error) {
	switch c.NArg() {
	case 0:
		return 0, fault.ErrMissingArgument
	case 1:
		return parseKey(c.Args().First())
	default:
		return 0, fmt.Errorf("%w: %q", fault.ErrUnknownCommandArgument, c.Args().Tail())
	}
}

func printNode(m *metadata, node *bst.Node) {
	if nil == node {
		fmt.Fprintf(m.w, "not found\n")
		return
	}
	if m.verbose {
		fmt.Fprintf(m.w, "%s  parent: %s  left: %s  right: %s\n", node, node.Parent(), node.Left(), node.Right())
		return
	}
	fmt.Fprintf(m.w, "%s\n", node)
}
