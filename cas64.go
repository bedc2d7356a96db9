// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cubits_narrow

package cubits

import (
	"unsafe"

	"code.hybscloud.com/cubits/internal/asm"
	"code.hybscloud.com/spin"
)

// CAS64 is the 64-bit form of [CAS32].
//
// CAS64 is only available on [TierWide]. addr must be non-nil and 8-byte
// aligned; on 32-bit platforms the first word of an allocated variable,
// array or struct is.
func CAS64[T Word64](addr *T, expected, desired T) T {
	switch p := any(addr).(type) {
	case *uint64:
		return any(asm.CompareExchange64(p, any(expected).(uint64), any(desired).(uint64))).(T)
	case *int64:
		prev := asm.CompareExchange64((*uint64)(unsafe.Pointer(p)), uint64(any(expected).(int64)), uint64(any(desired).(int64)))
		return any(int64(prev)).(T)
	}
	prev := asm.CompareExchange64((*uint64)(unsafe.Pointer(addr)), Bits64(expected), Bits64(desired))
	return FromBits64[T](prev)
}

// Load64 atomically loads *addr.
func Load64[T Word64](addr *T) T {
	return FromBits64[T](asm.Load64((*uint64)(unsafe.Pointer(addr))))
}

// Update64 is the 64-bit form of [Update32].
func Update64[T Word64](addr *T, fn func(T) T) T {
	p := (*uint64)(unsafe.Pointer(addr))
	sw := spin.Wait{}
	old := asm.Load64(p)
	for {
		next := Bits64(fn(FromBits64[T](old)))
		prev := asm.CompareExchange64(p, old, next)
		if prev == old {
			return FromBits64[T](next)
		}
		old = prev
		sw.Once()
	}
}

// TryUpdate64 is the 64-bit form of [TryUpdate32].
func TryUpdate64[T Word64](addr *T, fn func(T) T) (T, error) {
	p := (*uint64)(unsafe.Pointer(addr))
	old := asm.Load64(p)
	next := Bits64(fn(FromBits64[T](old)))
	if prev := asm.CompareExchange64(p, old, next); prev != old {
		return FromBits64[T](prev), ErrWouldBlock
	}
	return FromBits64[T](next), nil
}
