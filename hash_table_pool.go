// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "sync"

// hashTablePool is a pool of compressor hash tables.
var hashTablePool = sync.Pool{
	New: func() any {
		table := make([]int32, tableLen)
		return &table
	},
}

// acquireHashTable acquires a zeroed hash table from the pool.
// Zeroing on acquire keeps compression deterministic across reused tables.
func acquireHashTable() *[]int32 {
	table := hashTablePool.Get().(*[]int32)
	clear(*table)
	return table
}

// releaseHashTable releases a hash table to the pool.
func releaseHashTable(table *[]int32) {
	if table == nil {
		return
	}

	hashTablePool.Put(table)
}
