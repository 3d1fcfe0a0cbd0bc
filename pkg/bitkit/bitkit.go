// Package bitkit wraps math/bits with generic, width-aware helpers
// and offers byte level views of floating point values.
package bitkit

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"
	"unsafe"

	"go.llib.dev/featurebook/internal/constraints"
)

type Unsigned constraints.UInt

func width[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// HasSingleBit reports whether v is an integral power of two.
func HasSingleBit[T Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// PopCount returns the number of one bits in v.
func PopCount[T Unsigned](v T) int {
	return bits.OnesCount64(uint64(v))
}

// BitWidth returns the number of bits needed to represent v. BitWidth(0) == 0.
func BitWidth[T Unsigned](v T) int {
	return bits.Len64(uint64(v))
}

// BitFloor returns the largest power of two not greater than v, or 0 when v is 0.
func BitFloor[T Unsigned](v T) T {
	if v == 0 {
		return 0
	}
	return T(1) << (BitWidth(v) - 1)
}

// BitCeil returns the smallest power of two not less than v.
// The second return value is false when the result does not fit into T.
func BitCeil[T Unsigned](v T) (T, bool) {
	if v <= 1 {
		return 1, true
	}
	shift := BitWidth(v - 1)
	if width[T]() <= shift {
		return 0, false
	}
	return T(1) << shift, true
}

// RotateLeft rotates v left by k bits within the width of T. Negative k rotates right.
func RotateLeft[T Unsigned](v T, k int) T {
	w := width[T]()
	k %= w
	if k < 0 {
		k += w
	}
	if k == 0 {
		return v
	}
	return v<<k | v>>(w-k)
}

func RotateRight[T Unsigned](v T, k int) T {
	return RotateLeft(v, -k)
}

// Float32Bytes returns the in-memory representation of f using the native byte order.
func Float32Bytes(f float32) []byte {
	return binary.NativeEndian.AppendUint32(nil, math.Float32bits(f))
}

// Float32FromBytes is the inverse of Float32Bytes.
func Float32FromBytes(b []byte) (float32, error) {
	if len(b) != 4 {
		return 0, ErrByteLength.F("want 4 bytes, got %d", len(b))
	}
	return math.Float32frombits(binary.NativeEndian.Uint32(b)), nil
}

// WithSignBit sets the sign bit of f by writing into its byte view.
func WithSignBit(f float32) float32 {
	bs := Float32Bytes(f)
	bs[mostSignificantByte(len(bs))] |= 0b1000_0000
	v, _ := Float32FromBytes(bs)
	return v
}

func mostSignificantByte(n int) int {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return n - 1
	}
	return 0
}

// FormatBytes renders bs as space separated 8 digit binary groups.
func FormatBytes(bs []byte) string {
	groups := make([]string, 0, len(bs))
	for _, b := range bs {
		groups = append(groups, fmt.Sprintf("%08b", b))
	}
	return strings.Join(groups, " ")
}

// FprintFloat32 writes f followed by its byte view:
//
//	3.141592 - { 11011000 00001111 01001001 01000000 }
func FprintFloat32(w io.Writer, f float32) error {
	_, err := fmt.Fprintf(w, "%v - { %s }\n", f, FormatBytes(Float32Bytes(f)))
	return err
}
