// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bst-check - replay a tree script and verify every step
//
// The configuration file lists keys to insert and keys to delete.
// After each insert and each delete the whole tree is checked:
// back-references, key ordering and node count.  With --watch the
// script is replayed again each time the file is written.
//
// example configuration:
//
//   local M = {}
//   M.tree = { strict = false }
//   M.keys = { 5, 3, 8, 1, 4, 7, 9 }
//   M.delete = { 3, 5 }
//   M.logging = { levels = { DEFAULT = "info" } }
//   return M
package main
