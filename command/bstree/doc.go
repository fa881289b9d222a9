// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree - build a binary search tree and query it
//
// The tree is built from the "keys" list of an optional Lua
// configuration file followed by any --keys flag values, then one
// subcommand is applied and its result printed.
//
//   bstree --keys=5,3,8,1,4,7,9 print
//   bstree -k 5,3,8 successor 5
//   bstree -k 5,3,8,4 outline
//   bstree --config=tree.conf delete 3 8
package main
