// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

// summary of one replay
type result struct {
	inserted int
	deleted  int
	height   int
	keys     []bst.Key
}

// build the tree from the configured keys, then delete the configured
// keys, checking the whole tree after every step
func replay(config *configuration.Configuration, w io.Writer, log *logger.L) (*result, error) {

	insertKeys, err := config.InsertKeys()
	if nil != err {
		return nil, err
	}
	deleteKeys, err := config.DeleteKeys()
	if nil != err {
		return nil, err
	}

	tree := bst.NewTree()
	r := &result{}

	for i, k := range insertKeys {
		if _, err := tree.Insert(k); nil != err {
			return r, stepFailed(log, "insert", i, k, err)
		}
		if err := tree.Check(); nil != err {
			return r, stepFailed(log, "insert", i, k, err)
		}
		r.inserted += 1
		log.Debugf("insert[%d]: %d  count: %d", i, k, tree.Count())
	}

	for i, k := range deleteKeys {
		if err := tree.Delete(k); nil != err {
			return r, stepFailed(log, "delete", i, k, err)
		}
		if err := tree.Check(); nil != err {
			return r, stepFailed(log, "delete", i, k, err)
		}
		r.deleted += 1
		log.Debugf("delete[%d]: %d  count: %d", i, k, tree.Count())
	}

	keys, err := tree.Keys()
	if nil != err {
		return r, fmt.Errorf("%w: in order walk: %s", fault.ErrCheckFailed, err)
	}
	r.keys = keys
	r.height = bst.Height(tree.Root())

	if tree.IsEmpty() {
		fmt.Fprintf(w, "empty tree\n")
	} else {
		tree.Print(w)
	}
	fmt.Fprintf(w, "inserted: %d  deleted: %d  remaining: %d  height: %d\n", r.inserted, r.deleted, len(r.keys), r.height)
	log.Infof("replay ok: inserted: %d  deleted: %d  keys: %v", r.inserted, r.deleted, r.keys)

	return r, nil
}

func stepFailed(log *logger.L, operation string, index int, key bst.Key, err error) error {
	log.Errorf("%s[%d]: %d  error: %s", operation, index, key, err)
	return fmt.Errorf("%w: %s[%d]: %d: %s", fault.ErrCheckFailed, operation, index, key, err)
}
