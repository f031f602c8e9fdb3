// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecompressPartial decodes only the first targetLen bytes of the block in src
// into a new buffer. The full decompressed size does not need to be known: the
// stream only has to be well-formed up to the target. If the block ends before
// targetLen bytes, the full decoded output is returned.
func DecompressPartial(src []byte, targetLen int) ([]byte, error) {
	if targetLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]byte, targetLen)
	n, err := decompressPartialCore(src, dst, targetLen)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressPartialInto decodes only the first targetLen bytes of the block in
// src into the caller-provided dst and returns the decoded prefix of dst.
// targetLen must not exceed len(dst); nothing is ever written past len(dst).
func DecompressPartialInto(src, dst []byte, targetLen int) ([]byte, error) {
	if targetLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if targetLen > len(dst) {
		return nil, ErrOutputOverrun
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := decompressPartialCore(src, dst, targetLen)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// decompressPartialCore decodes tokens until targetLen output bytes exist,
// truncating the final literal run or back-reference copy. Stream bytes past
// the truncation point are never read, so the remainder of the block does not
// have to be well-formed.
func decompressPartialCore(src, dst []byte, targetLen int) (int, error) {
	var inPos, outPos int

	for outPos < targetLen {
		token, err := readCompressedByte(src, &inPos)
		if err != nil {
			return 0, err
		}

		litLen := int(token >> litBits)
		if litLen == litMask {
			ext, err := readLengthExtension(src, &inPos)
			if err != nil {
				return 0, err
			}

			litLen += ext
		}

		if remaining := targetLen - outPos; litLen > remaining {
			// Truncated literal run: only the needed prefix has to be present.
			if err := copyLiteralRun(src, &inPos, dst, &outPos, remaining); err != nil {
				return 0, err
			}

			return outPos, nil
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, litLen); err != nil {
			return 0, err
		}

		// A literal run ending exactly at the end of input closes the block
		// before the target; that is still a complete decode.
		if inPos == len(src) {
			return outPos, nil
		}

		if outPos == targetLen {
			return outPos, nil
		}

		offset, err := readCompressedLE16(src, &inPos)
		if err != nil {
			return 0, err
		}

		matchLen := int(token&mlMask) + minMatch
		if token&mlMask == mlMask {
			ext, err := readLengthExtension(src, &inPos)
			if err != nil {
				return 0, err
			}

			matchLen += ext
		}

		// Truncated back-reference copy: the offset must still be valid.
		matchLen = min(matchLen, targetLen-outPos)

		if err := copyBackRef(dst, outPos, int(offset), matchLen); err != nil {
			return 0, err
		}

		outPos += matchLen
	}

	return outPos, nil
}
