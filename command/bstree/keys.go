// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// parse "5, 3,8" style lists, empty string is an empty list
func parseKeyList(s string) ([]bst.Key, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return []bst.Key{}, nil
	}
	return parseKeys(strings.Split(s, ","))
}

func parseKeys(items []string) ([]bst.Key, error) {
	keys := make([]bst.Key, 0, len(items))
	for _, item := range items {
		k, err := parseKey(item)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseKey(s string) (bst.Key, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 32)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
	}
	return bst.Key(n), nil
}
