// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asm

import "sync/atomic"

// compareExchange32 emulates compare-exchange with sync/atomic.
//
// A failed CompareAndSwap means *addr changed after the load; the loop
// re-reads until it either observes a value different from old (the
// linearization point of a failed exchange) or wins the swap.
func compareExchange32(addr *uint32, old, new uint32) uint32 {
	for {
		cur := atomic.LoadUint32(addr)
		if cur != old {
			return cur
		}
		if atomic.CompareAndSwapUint32(addr, old, new) {
			return old
		}
	}
}

// compareExchange64 is the 64-bit form of compareExchange32.
func compareExchange64(addr *uint64, old, new uint64) uint64 {
	for {
		cur := atomic.LoadUint64(addr)
		if cur != old {
			return cur
		}
		if atomic.CompareAndSwapUint64(addr, old, new) {
			return old
		}
	}
}

// Load32 atomically loads *addr.
func Load32(addr *uint32) uint32 {
	return atomic.LoadUint32(addr)
}

// Load64 atomically loads *addr.
func Load64(addr *uint64) uint64 {
	return atomic.LoadUint64(addr)
}
