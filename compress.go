// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// Compress compresses src as a single LZ4 block. opts may be nil (default
// acceleration). The returned slice has the exact compressed length.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	bound, err := CompressBound(len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]byte, bound)
	n, err := CompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src into the caller-provided dst and returns the
// number of bytes written. Returns ErrSizeTooLarge when src exceeds
// MaxBlockSize and ErrDstTooSmall when dst cannot hold the compressed block;
// the latter never happens when len(dst) >= CompressBound(len(src)).
// Nothing is ever written past len(dst).
func CompressInto(src, dst []byte, opts *CompressOptions) (int, error) {
	if len(src) > MaxBlockSize {
		return 0, ErrSizeTooLarge
	}

	if opts == nil {
		opts = DefaultCompressOptions()
	}
	accel := max(opts.Acceleration, 1)

	return compressCore(src, dst, accel)
}

// compressCore performs the greedy single-pass LZ4 parse: scan left to right,
// probe the hash table for a prior occurrence of the current 4-byte sequence
// within the offset window, and emit a sequence token whenever a match of at
// least minMatch is confirmed by content comparison.
func compressCore(src, dst []byte, accel int) (int, error) {
	srcLen := len(src)

	// Too short to hold a match plus the mandatory literal tail.
	if srcLen < matchFindLimit+1 {
		return emitLastLiterals(dst, 0, src)
	}

	tablePtr := acquireHashTable()
	defer releaseHashTable(tablePtr)
	table := *tablePtr

	var (
		dstPos int
		err    error
	)

	anchor := 0
	inputPos := 0
	inputLimit := srcLen - matchFindLimit
	matchCeil := srcLen - lastLiterals

	for inputPos <= inputLimit {
		seq := binary.LittleEndian.Uint32(src[inputPos:])
		slot := (seq * hashMult) >> (32 - hashBits)
		matchPos := int(table[slot]) - 1
		table[slot] = int32(inputPos + 1) //nolint:gosec // G115: input position fits int32 for LZ4 block sizes

		if matchPos < 0 || inputPos-matchPos > maxOffset ||
			binary.LittleEndian.Uint32(src[matchPos:]) != seq {
			// Literal step with an acceleration-scaled lazy skip.
			inputPos += accel + (inputPos-anchor)>>6
			continue
		}

		// Extend the match backwards over pending literals.
		matchLen := minMatch
		for inputPos > anchor && matchPos > 0 && src[inputPos-1] == src[matchPos-1] {
			inputPos--
			matchPos--
			matchLen++
		}

		// Extend forwards, keeping the mandatory literal tail intact.
		for inputPos+matchLen < matchCeil && src[matchPos+matchLen] == src[inputPos+matchLen] {
			matchLen++
		}

		dstPos, err = emitSequence(dst, dstPos, src[anchor:inputPos], inputPos-matchPos, matchLen)
		if err != nil {
			return 0, err
		}

		inputPos += matchLen
		anchor = inputPos
	}

	return emitLastLiterals(dst, dstPos, src[anchor:])
}

// emitSequence appends one full sequence: the token byte, the pending literal
// run, the little-endian back-reference offset, and the match length with the
// minMatch bias subtracted.
func emitSequence(dst []byte, dstPos int, literals []byte, offset, matchLen int) (int, error) {
	litLen := len(literals)
	mlCode := matchLen - minMatch

	need := 1 + litLen + 2
	if litLen >= litMask {
		need += 1 + (litLen-litMask)/255
	}
	if mlCode >= mlMask {
		need += 1 + (mlCode-mlMask)/255
	}
	if dstPos+need > len(dst) {
		return 0, ErrDstTooSmall
	}

	dst[dstPos] = byte(min(litLen, litMask)<<litBits | min(mlCode, mlMask))
	dstPos++

	if litLen >= litMask {
		dstPos = putLengthExtension(dst, dstPos, litLen-litMask)
	}

	copy(dst[dstPos:], literals)
	dstPos += litLen

	binary.LittleEndian.PutUint16(dst[dstPos:], uint16(offset)) //nolint:gosec // G115: offset is bounded by maxOffset
	dstPos += 2

	if mlCode >= mlMask {
		dstPos = putLengthExtension(dst, dstPos, mlCode-mlMask)
	}

	return dstPos, nil
}

// emitLastLiterals writes the closing literals-only token. Every block ends
// with one, even for empty input (a lone zero token).
func emitLastLiterals(dst []byte, dstPos int, literals []byte) (int, error) {
	litLen := len(literals)

	need := 1 + litLen
	if litLen >= litMask {
		need += 1 + (litLen-litMask)/255
	}
	if dstPos+need > len(dst) {
		return 0, ErrDstTooSmall
	}

	dst[dstPos] = byte(min(litLen, litMask) << litBits)
	dstPos++

	if litLen >= litMask {
		dstPos = putLengthExtension(dst, dstPos, litLen-litMask)
	}

	copy(dst[dstPos:], literals)
	return dstPos + litLen, nil
}

// putLengthExtension writes a length continuation: full 255 bytes until the
// remainder fits one byte. The caller has already reserved the space.
func putLengthExtension(dst []byte, dstPos, v int) int {
	for v >= 255 {
		dst[dstPos] = 255
		dstPos++
		v -= 255
	}

	dst[dstPos] = byte(v)
	return dstPos + 1
}
