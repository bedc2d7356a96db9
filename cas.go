// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

import (
	"unsafe"

	"code.hybscloud.com/cubits/internal/asm"
	"code.hybscloud.com/spin"
)

// CAS32 atomically compares *addr with expected and, if they are equal,
// stores desired. It always returns the value *addr held immediately
// before the operation.
//
// The caller detects success by comparing the result with expected:
//
//	if prev := cubits.CAS32(&x, old, new); cubits.Bits32(prev) == cubits.Bits32(old) {
//	    // swapped
//	}
//
// Comparison is bit-for-bit: for floating-point payloads +0 and -0 are
// different values, and a NaN matches only the identical NaN pattern.
//
// CAS32 does not retry. Among concurrent callers passing the same expected
// value, exactly one observes expected as the result.
//
// addr must be non-nil and 4-byte aligned.
func CAS32[T Word32](addr *T, expected, desired T) T {
	switch p := any(addr).(type) {
	case *uint32:
		return any(asm.CompareExchange32(p, any(expected).(uint32), any(desired).(uint32))).(T)
	case *int32:
		prev := asm.CompareExchange32((*uint32)(unsafe.Pointer(p)), uint32(any(expected).(int32)), uint32(any(desired).(int32)))
		return any(int32(prev)).(T)
	}
	prev := asm.CompareExchange32((*uint32)(unsafe.Pointer(addr)), Bits32(expected), Bits32(desired))
	return FromBits32[T](prev)
}

// Load32 atomically loads *addr.
func Load32[T Word32](addr *T) T {
	return FromBits32[T](asm.Load32((*uint32)(unsafe.Pointer(addr))))
}

// Update32 atomically replaces *addr with fn(*addr) and returns the value
// it installed.
//
// Update32 is the CAS retry loop of a lock-free accumulator: it reads the
// current value, applies fn, and retries with a CPU pause until its CAS
// wins. fn may be called more than once and must not have side effects.
//
//	var sum float32
//	cubits.Update32(&sum, func(v float32) float32 { return v + x })
func Update32[T Word32](addr *T, fn func(T) T) T {
	p := (*uint32)(unsafe.Pointer(addr))
	sw := spin.Wait{}
	old := asm.Load32(p)
	for {
		next := Bits32(fn(FromBits32[T](old)))
		prev := asm.CompareExchange32(p, old, next)
		if prev == old {
			return FromBits32[T](next)
		}
		old = prev
		sw.Once()
	}
}

// TryUpdate32 makes a single attempt to replace *addr with fn(*addr).
//
// On success it returns the installed value and nil. If another writer
// changed *addr between the read and the CAS, it returns the value that
// writer left behind and [ErrWouldBlock].
func TryUpdate32[T Word32](addr *T, fn func(T) T) (T, error) {
	p := (*uint32)(unsafe.Pointer(addr))
	old := asm.Load32(p)
	next := Bits32(fn(FromBits32[T](old)))
	if prev := asm.CompareExchange32(p, old, next); prev != old {
		return FromBits32[T](prev), ErrWouldBlock
	}
	return FromBits32[T](next), nil
}
