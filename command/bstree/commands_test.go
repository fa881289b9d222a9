// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

//	        5
//	      /   \
//	     3     8
//	    / \   / \
//	   1   4 7   9
var sampleKeys = []bst.Key{5, 3, 8, 1, 4, 7, 9}

// run one subcommand against a tree built from keys
func runCommand(t *testing.T, keys []bst.Key, arguments ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	tree := bst.NewTree()
	for _, k := range keys {
		_, err := tree.Insert(k)
		require.NoError(t, err, "insert: %d", k)
	}

	w := &bytes.Buffer{}
	app := cli.NewApp()
	app.Name = "bstree"
	app.Writer = w
	app.ErrWriter = ioutil.Discard
	app.Commands = commandList()
	app.Before = func(c *cli.Context) error {
		if nil == c.App.Metadata {
			c.App.Metadata = make(map[string]interface{})
		}
		c.App.Metadata["config"] = &metadata{
			tree: tree,
			e:    ioutil.Discard,
			w:    w,
		}
		return nil
	}

	err := app.Run(append([]string{"bstree"}, arguments...))
	return w.String(), err
}

func TestQueryCommands(t *testing.T) {
	items := []struct {
		arguments []string
		expected  string
	}{
		{[]string{"search", "4"}, "4\n"},
		{[]string{"search", "6"}, "not found\n"},
		{[]string{"successor", "4"}, "5\n"},
		{[]string{"successor", "3"}, "4\n"},
		{[]string{"successor", "8"}, "9\n"},
		{[]string{"successor", "9"}, "not found\n"},
		{[]string{"predecessor", "7"}, "5\n"},
		{[]string{"predecessor", "1"}, "not found\n"},
		{[]string{"minimum"}, "1\n"},
		{[]string{"maximum"}, "9\n"},
		{[]string{"keys"}, "1\n3\n4\n5\n7\n8\n9\n"},
	}

	for i, item := range items {
		s, err := runCommand(t, sampleKeys, item.arguments...)
		require.NoError(t, err, "%d: %q", i, item.arguments)
		assert.Equal(t, item.expected, s, "%d: %q", i, item.arguments)
	}
}

func TestEmptyTreeCommands(t *testing.T) {
	for _, command := range []string{"print", "outline"} {
		s, err := runCommand(t, nil, command)
		require.NoError(t, err, command)
		assert.Equal(t, "empty tree\n", s, command)
	}

	s, err := runCommand(t, nil, "minimum")
	require.NoError(t, err, "minimum")
	assert.Equal(t, "not found\n", s, "minimum")
}

func TestNeighbourOfAbsentKey(t *testing.T) {
	for _, command := range []string{"successor", "predecessor"} {
		_, err := runCommand(t, sampleKeys, command, "6")
		assert.True(t, errors.Is(err, fault.ErrKeyNotFound), "%s: error: %v", command, err)
		assert.True(t, fault.IsErrNotFound(err), "%s: error class: %v", command, err)
	}
}

func TestCommandArguments(t *testing.T) {
	for _, command := range []string{"search", "successor", "predecessor", "delete"} {
		_, err := runCommand(t, sampleKeys, command)
		assert.Equal(t, fault.ErrMissingArgument, err, "%s: missing argument", command)

		_, err = runCommand(t, sampleKeys, command, "x")
		assert.True(t, fault.IsErrInvalid(err), "%s: bad key: %v", command, err)
		assert.True(t, errors.Is(err, fault.ErrInvalidKey), "%s: bad key: %v", command, err)
	}

	for _, command := range []string{"search", "successor", "predecessor"} {
		_, err := runCommand(t, sampleKeys, command, "1", "2")
		assert.True(t, errors.Is(err, fault.ErrUnknownCommandArgument), "%s: extra argument: %v", command, err)
	}
}

func TestDeleteCommand(t *testing.T) {
	s, err := runCommand(t, sampleKeys, "delete", "5")
	require.NoError(t, err, "delete")

	// root is replaced by its successor
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Equal(t, 6, len(lines), "lines: %q", s)
	assert.Contains(t, s, "|------+ 7 ^nil\n", "new root")
	assert.NotContains(t, s, " 5 ^", "deleted key still drawn")

	s, err = runCommand(t, sampleKeys, "delete", "1", "3", "4", "5", "7", "8", "9")
	require.NoError(t, err, "delete all")
	assert.Equal(t, "empty tree\n", s, "delete all")

	_, err = runCommand(t, sampleKeys, "delete", "3", "6")
	require.Error(t, err, "delete absent")
	assert.True(t, errors.Is(err, fault.ErrKeyNotFound), "delete absent: %v", err)
	assert.Contains(t, err.Error(), "delete: 6", "failing key named")
}

func TestCheckCommand(t *testing.T) {
	s, err := runCommand(t, sampleKeys, "check")
	require.NoError(t, err, "check")
	assert.Equal(t, "ok: 7 nodes  height: 3\n", s, "check")

	s, err = runCommand(t, []bst.Key{1, 2, 3, 4}, "check")
	require.NoError(t, err, "check")
	assert.Equal(t, "ok: 4 nodes  height: 4\n", s, "check chain")
}
