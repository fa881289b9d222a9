// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent
// pointers to allow upward walks (root finding, successor)
//
// Children are owned by their parent through the left and right
// links.  The up link is only a back-reference: before it is used it
// is resolved, i.e. the parent must still own the node through one of
// its links, otherwise the back-reference is stale and an invariant
// error is returned.
//
// Keys are signed 32 bit integers.  Smaller keys go left, equal or
// larger keys go right, so duplicates form a chain on the right.
//
// Two historical behaviours are kept on purpose:
//
//   Search: when the key is smaller than a node that has no left
//           child the search continues into the right sub-tree
//           instead of stopping.
//
//   Successor: the upward walk recognises "came from the left" by
//           comparing keys, not node identity.
//
// Both only change results on trees that were assembled by hand
// (AddLeft/AddRight) in violation of the ordering invariant.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access to
//       whole operations.
package bst
