// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package asm

// Backend names the compare-exchange implementation in use.
const Backend = "amd64 LOCK CMPXCHG"

// CompareExchange32 atomically replaces *addr with new if it equals old.
// Returns the previous value of *addr.
//
// Implemented as LOCK CMPXCHGL: AX carries old in and the prior value out.
// addr must be 4-byte aligned.
//
//go:noescape
func CompareExchange32(addr *uint32, old, new uint32) (prev uint32)

// CompareExchange64 atomically replaces *addr with new if it equals old.
// Returns the previous value of *addr.
//
// Implemented as LOCK CMPXCHGQ. addr must be 8-byte aligned.
//
//go:noescape
func CompareExchange64(addr *uint64, old, new uint64) (prev uint64)
