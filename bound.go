// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// CompressBound returns the worst-case compressed size for a source of srcLen
// bytes: even fully incompressible input fits, because literal runs carry only
// one continuation byte per 255 literals plus a constant per-block overhead.
// The result is monotonically non-decreasing in srcLen.
// Returns ErrSizeTooLarge when srcLen is negative or exceeds MaxBlockSize.
func CompressBound(srcLen int) (int, error) {
	if srcLen < 0 || srcLen > MaxBlockSize {
		return 0, ErrSizeTooLarge
	}

	return srcLen + srcLen/255 + 16, nil
}
