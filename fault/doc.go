// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Invariant errors are defects in a tree's link structure, never an
// expected outcome of a query.  Absence of a key is expressed either
// by a nil result or by one of the NotFoundError instances.
package fault
