// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64

package asm

// Backend names the compare-exchange implementation in use.
const Backend = "sync/atomic"

// CompareExchange32 atomically replaces *addr with new if it equals old.
// Returns the previous value of *addr.
func CompareExchange32(addr *uint32, old, new uint32) (prev uint32) {
	return compareExchange32(addr, old, new)
}

// CompareExchange64 atomically replaces *addr with new if it equals old.
// Returns the previous value of *addr.
func CompareExchange64(addr *uint64, old, new uint64) (prev uint64) {
	return compareExchange64(addr, old, new)
}
