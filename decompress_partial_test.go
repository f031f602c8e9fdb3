package lz4

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressPartial_PrefixLaw(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data, nil)
			require.NoError(t, err)

			targets := []int{0, 1, 7, 48, len(in.data) / 2, len(in.data) - 1, len(in.data)}
			for _, k := range targets {
				if k < 0 || k > len(in.data) {
					continue
				}

				prefix, err := DecompressPartial(cmp, k)
				require.NoError(t, err, "target %d", k)
				require.Len(t, prefix, k, "target %d", k)
				assert.True(t, bytes.Equal(prefix, in.data[:k]), "target %d", k)
			}
		})
	}
}

// Scenario from the reference example program: seven little-endian 64-bit
// integers packed into 56 bytes, of which only the first six (48 bytes) are
// reconstructed. The seventh integer's encoding does not have to be intact.
func TestDecompressPartial_PackedIntegers(t *testing.T) {
	values := []uint64{123123124, 334234, 454365346, 23123123, 3423423, 123123123, 5454552342}

	src := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(src[i*8:], v)
	}

	cmp, err := Compress(src, nil)
	require.NoError(t, err)

	target := (len(values) - 1) * 8
	prefix, err := DecompressPartial(cmp, target)
	require.NoError(t, err)
	require.Equal(t, src[:target], prefix)

	for i := 0; i < len(values)-1; i++ {
		assert.Equal(t, values[i], binary.LittleEndian.Uint64(prefix[i*8:]))
	}

	// Damaging the last compressed byte only touches trailing literal data,
	// so the 48-byte prefix must still decode unchanged.
	damaged := append([]byte{}, cmp...)
	damaged[len(damaged)-1] ^= 0xFF
	prefix, err = DecompressPartial(damaged, target)
	require.NoError(t, err)
	assert.Equal(t, src[:target], prefix)

	// Cutting trailing bytes off the block removes only literals belonging to
	// the seventh integer: partial decode still works, full decode must fail.
	for cut := 1; cut <= 4; cut++ {
		truncated := cmp[:len(cmp)-cut]

		prefix, err := DecompressPartial(truncated, target)
		require.NoError(t, err, "cut %d", cut)
		assert.Equal(t, src[:target], prefix, "cut %d", cut)

		_, err = Decompress(truncated, DefaultDecompressOptions(len(src)))
		require.ErrorIs(t, err, ErrInputOverrun, "cut %d", cut)
	}
}

func TestDecompressPartial_TargetBeyondDecodedLength(t *testing.T) {
	data := bytes.Repeat([]byte("partial-beyond"), 100)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	// A well-formed block that ends before the target is a complete decode:
	// the result is min(target, decoded length) bytes.
	out, err := DecompressPartial(cmp, len(data)+512)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	dst := make([]byte, len(data)+512)
	out, err = DecompressPartialInto(cmp, dst, len(data)+512)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompressPartialInto_Validation(t *testing.T) {
	data := []byte("validation-input")
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	_, err = DecompressPartialInto(cmp, make([]byte, 4), 5)
	require.ErrorIs(t, err, ErrOutputOverrun, "target above destination capacity")

	_, err = DecompressPartialInto(cmp, make([]byte, 4), -1)
	require.ErrorIs(t, err, ErrNegativeOutLen)

	_, err = DecompressPartial(cmp, -1)
	require.ErrorIs(t, err, ErrNegativeOutLen)

	_, err = DecompressPartial(nil, 4)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestDecompressPartial_ZeroTargetSkipsValidation(t *testing.T) {
	// With a zero target no token is ever parsed, so even a garbage stream
	// yields an empty prefix.
	out, err := DecompressPartial([]byte{0xFF}, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecompressPartial_MalformedBeforeTarget(t *testing.T) {
	zeroOffset := []byte{0x10, 'x', 0x00, 0x00, 0x00}
	_, err := DecompressPartial(zeroOffset, 5)
	require.ErrorIs(t, err, ErrLookBehindUnderrun)

	truncatedRun := []byte{0x70, 'a', 'b'}
	_, err = DecompressPartial(truncatedRun, 5)
	require.ErrorIs(t, err, ErrInputOverrun)
}

func TestDecompressPartial_TruncatesBackReference(t *testing.T) {
	// 'x' followed by a 20-byte RLE copy; a 10-byte target cuts the copy short
	// and never reads past it.
	stream := []byte{0x1F, 'x', 0x01, 0x00, 0x01, 0x00}

	out, err := DecompressPartial(stream, 10)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{'x'}, 10), out)

	// The bytes after the match header are never touched, so garbage there
	// does not break a decode that stops inside the match.
	garbageTail := []byte{0x1F, 'x', 0x01, 0x00, 0x01, 0xFF, 0xFF}
	out, err = DecompressPartial(garbageTail, 10)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{'x'}, 10), out)
}
