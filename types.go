// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

import "unsafe"

// Integer is the set of fixed-width integer kinds accepted by the rotation
// and floor division primitives.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Word32 is the set of 32-bit payload types.
//
// Any type in this set can be reinterpreted as a uint32 with [Bits32] and
// stored atomically with [CAS32] or [Cell32]. Named types are accepted:
//
//	type Weight float32
//	var w Weight
//	cubits.CAS32(&w, 0, 1.5)
type Word32 interface {
	~int32 | ~uint32 | ~float32
}

// bitWidth returns the width of T in bits.
func bitWidth[T any]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}
