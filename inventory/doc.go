// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package inventory - apply inventory update files to a set of trees
//
// each line of an update file is "<action> <key>", an action starting
// with a or A adds the key and one starting with d or D deletes it.
// Every update is applied to each tree of a Set in turn, so the
// unbalanced and balanced trees can be compared when the file has
// been processed.
package inventory
