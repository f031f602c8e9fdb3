// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrSizeTooLarge is returned when the source length exceeds MaxBlockSize.
	ErrSizeTooLarge = errors.New("source exceeds MaxBlockSize")
	// ErrDstTooSmall is returned by the compressor when the destination buffer
	// cannot hold the compressed block. Size the buffer with CompressBound.
	ErrDstTooSmall = errors.New("destination buffer too small")
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference has a zero offset
	// or points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrNegativeOutLen is returned when a requested output length is negative.
	ErrNegativeOutLen = errors.New("output length must be non-negative")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
