// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

func TestTree(t *testing.T) {
	tree := bst.NewTree()
	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Nil(t, tree.Minimum(), "minimum of empty tree")
	assert.Nil(t, tree.Maximum(), "maximum of empty tree")

	for _, k := range sampleKeys {
		_, err := tree.Insert(k)
		require.NoError(t, err, "insert: %d", k)
	}
	require.NoError(t, tree.Check(), "check")

	assert.False(t, tree.IsEmpty(), "tree is empty")
	assert.Equal(t, len(sampleKeys), tree.Count(), "count")
	assert.Equal(t, bst.Key(1), keyOf(t, tree.Minimum()), "minimum")
	assert.Equal(t, bst.Key(9), keyOf(t, tree.Maximum()), "maximum")
	assert.Equal(t, "[1 3 4 5 7 8 9]", tree.String(), "string")

	n, err := tree.Search(4)
	require.NoError(t, err, "search")
	assert.Equal(t, bst.Key(4), keyOf(t, n), "search")

	require.NoError(t, tree.Delete(5), "delete root")
	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, bst.Key(7), keyOf(t, tree.Root()), "root")
	assert.Equal(t, len(sampleKeys)-1, tree.Count(), "count")

	err = tree.Delete(5)
	assert.True(t, fault.IsErrNotFound(err), "second delete: %v", err)
	assert.Equal(t, len(sampleKeys)-1, tree.Count(), "count changed by failed delete")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "cleared tree not empty")
	assert.Equal(t, 0, tree.Count(), "count after clear")
	require.NoError(t, tree.Check(), "check empty")
}

func TestPrint(t *testing.T) {
	tree := bst.NewTree()
	for _, k := range []bst.Key{5, 3, 8} {
		_, err := tree.Insert(k)
		require.NoError(t, err, "insert: %d", k)
	}

	var b bytes.Buffer
	depth := tree.Print(&b)

	expected := "       /------+ 8 ^5\n" +
		"|------+ 5 ^nil\n" +
		"       \\------+ 3 ^5\n"

	assert.Equal(t, 2, depth, "depth")
	assert.Equal(t, expected, b.String(), "output")
}

func TestCheckDetectsDamage(t *testing.T) {
	// right child key lower than parent
	root := bst.New(10)
	root.AddRight(3)
	err := bst.CheckOrder(root)
	assert.Equal(t, true, fault.IsErrInvariant(err), "order violation not detected: %v", err)
	assert.NoError(t, bst.CheckUp(root), "links are consistent")

	// equal keys are allowed on the right only
	root = bst.New(10)
	root.AddLeft(10)
	err = bst.CheckOrder(root)
	assert.True(t, fault.IsErrInvariant(err), "equal key on the left not detected: %v", err)

	// a sub-tree handle is not a root
	root = bst.New(10)
	left := root.AddLeft(5)
	err = bst.CheckUp(left)
	assert.True(t, fault.IsErrInvariant(err), "root with parent not detected: %v", err)

	// right child pointing back at its sibling
	root = bst.New(10)
	left = root.AddLeft(5)
	right := root.AddRight(15)
	*right = *bst.NewChild(left, 15)
	err = bst.CheckUp(root)
	assert.True(t, fault.IsErrInvariant(err), "broken back-reference not detected: %v", err)
}
