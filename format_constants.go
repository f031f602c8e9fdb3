// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants: token layout, match bounds, end-of-block rules,
// and compressor hash table parameters.

// Token layout. The high nibble of a token byte is the literal-run length, the
// low nibble is the match length minus minMatch. A nibble of litMask/mlMask
// escalates into 255-continuation bytes.
const (
	litBits = 4
	litMask = (1 << litBits) - 1
	mlMask  = litMask
)

// Match bounds.
const (
	minMatch  = 4      // shorter matches never beat the token overhead
	maxOffset = 0xffff // back-reference window addressed by the 2-byte offset
)

// End-of-block rules: the final lastLiterals source bytes are always encoded
// as literals, and no match may begin within the final matchFindLimit bytes.
const (
	lastLiterals   = 5
	matchFindLimit = minMatch + lastLiterals + 3
)

// MaxBlockSize is the largest source length a single block may encode.
const MaxBlockSize = 0x7E000000

// Hash table parameters used by the compressor.
const (
	hashBits = 14         // number of bits in the hash table index
	hashMult = 2654435761 // Knuth multiplicative hash constant
	tableLen = 1 << hashBits
)
