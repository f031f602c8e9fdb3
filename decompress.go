// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "io"

// Decompress decompresses a single LZ4 block from src into a buffer of length opts.OutLen.
// Returns ErrOptionsRequired if opts is nil; ErrEmptyInput if src is empty.
// On success returns the decompressed slice (length may be less than OutLen).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.OutLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]byte, opts.OutLen)
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses a single LZ4 block from src into the
// caller-provided dst (no per-call output allocation) and returns the decoded
// prefix of dst. Nothing is ever written past len(dst).
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore decodes the complete token stream from src into dst.
// A block is valid only if the final literal run ends exactly at len(src):
// trailing bytes and tokens that read past the end are both ErrInputOverrun.
// Returns the number of bytes written.
func decompressCore(src, dst []byte) (int, error) {
	var inPos, outPos int

	for {
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

		if err := copyLiteralRun(src, &inPos, dst, &outPos, litLen); err != nil {
			return 0, err
		}

		// A literal run ending exactly at the end of input closes the block.
		if inPos == len(src) {
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

		if err := copyBackRef(dst, outPos, int(offset), matchLen); err != nil {
			return 0, err
		}

		outPos += matchLen
	}
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readCompressedLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// readLengthExtension consumes 255-continuation bytes and returns the extra
// length. Accumulation is capped so malformed runs cannot overflow the
// run-length reconstruction math.
func readLengthExtension(src []byte, inPos *int) (int, error) {
	total := 0

	for {
		b, err := readCompressedByte(src, inPos)
		if err != nil {
			return 0, err
		}

		total += int(b)
		if b != 255 {
			return total, nil
		}

		if total > MaxBlockSize {
			return 0, ErrInputOverrun
		}
	}
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both pointers.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if *inPos+n > len(src) {
		return ErrInputOverrun
	}

	if *outPos+n > len(dst) {
		return ErrOutputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
