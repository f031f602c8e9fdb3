// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Acceleration trades ratio for speed by widening the match-search skip
	// step. Values below 1 are clamped to 1 (the default). Output stays
	// deterministic for a given (input, acceleration) pair.
	Acceleration int
}

// DefaultCompressOptions returns options for default compression (acceleration 1).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Acceleration: 1}
}
