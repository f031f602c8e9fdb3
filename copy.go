// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// copyBackRef copies length bytes from dst[outputPos-offset:outputPos-offset+length] to dst[outputPos:outputPos+length].
// An offset of zero or past the start of the output means "no such prior data".
// If offset < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. The built-in copy does not handle overlapping regions
// where src precedes dst.
func copyBackRef(dst []byte, outputPos, offset, length int) error {
	if offset <= 0 || offset > outputPos {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	mPos := outputPos - offset
	if offset >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}
