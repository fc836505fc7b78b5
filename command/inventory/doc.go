// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// inventory - apply an inventory update file to an unbalanced and a
// balanced tree and report the size, height and shape of each
//
// usage:
//
//	inventory [--config-file=FILE] [--follow] [--check] [--graph] inventory-file
//
// every line of the file is "<action> <key>" where an action starting
// with a or A adds the key and one starting with d or D deletes it.
// With --follow the file is watched for appended lines until it is
// removed or the program is interrupted, then the report is printed.
package main
