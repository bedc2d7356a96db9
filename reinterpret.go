// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

import (
	"math"
	"unsafe"
)

// Bits32 returns the bit pattern of x as a uint32.
//
// No numeric conversion takes place: Bits32(float32(1)) is 0x3f800000, and
// NaN payloads are preserved exactly. Native uint32, int32 and float32 take
// dedicated paths (float32 uses [math.Float32bits]); named payload types are
// bit-cast in place.
func Bits32[T Word32](x T) uint32 {
	switch v := any(x).(type) {
	case uint32:
		return v
	case int32:
		return uint32(v)
	case float32:
		return math.Float32bits(v)
	}
	return *(*uint32)(unsafe.Pointer(&x))
}

// FromBits32 returns the T whose bit pattern is u.
// FromBits32[T](Bits32(x)) is bit-identical to x.
func FromBits32[T Word32](u uint32) T {
	var zero T
	switch any(zero).(type) {
	case uint32:
		return any(u).(T)
	case int32:
		return any(int32(u)).(T)
	case float32:
		return any(math.Float32frombits(u)).(T)
	}
	return *(*T)(unsafe.Pointer(&u))
}

// Bits64 returns the bit pattern of x as a uint64.
//
// Floating-point payloads are only accepted on [TierWide]; see [Word64].
func Bits64[T Word64](x T) uint64 {
	if u, ok := nativeBits64(any(x)); ok {
		return u
	}
	return *(*uint64)(unsafe.Pointer(&x))
}

// FromBits64 returns the T whose bit pattern is u.
// FromBits64[T](Bits64(x)) is bit-identical to x.
func FromBits64[T Word64](u uint64) T {
	var zero T
	if v, ok := nativeFromBits64(any(zero), u); ok {
		return v.(T)
	}
	return *(*T)(unsafe.Pointer(&u))
}
