// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements LZ4 block compression and decompression
(LZ4_decompress_safe–compatible), including partial decompression of a block prefix.

A block is a sequence of tokens: a literal run followed by a back-reference
into already-decoded output (2-byte little-endian offset, 64 KiB window,
minimum match 4). Run lengths of 15 and above escalate via 255-continuation
bytes; a block ends with a literals-only token. There is no framing: the
caller carries the compressed and decompressed lengths alongside the block.

# Compress

Options may be nil (default acceleration). Size the destination with
CompressBound, or let Compress allocate and shrink:

	out, err := lz4.Compress(data, nil)

	bound, err := lz4.CompressBound(len(data))
	dst := make([]byte, bound)
	n, err := lz4.CompressInto(data, dst, nil)
	// compressed block is dst[:n]

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := lz4.Decompress(compressed, lz4.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(compressed, dst)

From an io.Reader (e.g. stream with known decompressed size):

	out, err := lz4.DecompressFromReader(r, lz4.DefaultDecompressOptions(expectedLen))

# Partial decompression

Reconstruct only the first targetLen bytes of a block without decoding the
rest and without knowing the full decompressed size:

	prefix, err := lz4.DecompressPartial(compressed, targetLen)

	dst := make([]byte, capacity)
	prefix, err := lz4.DecompressPartialInto(compressed, dst, targetLen)
*/
package lz4
