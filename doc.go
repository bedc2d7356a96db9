// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cubits provides the numeric and atomic primitives called by
// generated array kernels.
//
// The package supplies operations that execution units do not provide
// natively but generated code needs:
//
//   - Rotation: circular bit rotation over fixed-width integers
//   - Floor division: quotient and modulus rounded toward negative infinity
//   - Reinterpretation: lossless bit casts between payloads and words
//   - Compare-and-swap: CAS over 32/64-bit cells holding any payload type
//
// Every function is stateless. Only the CAS family touches shared memory,
// and only the single address passed to it.
//
// # Quick Start
//
//	cubits.RotateLeft(uint32(0x8000_0001), 4)   // 0x0000_0018
//	cubits.FloorDiv(-7, 2)                      // -4
//	cubits.FloorMod(-7, 2)                      // 1
//	cubits.Bits32(float32(1))                   // 0x3f80_0000
//
//	var x float32 = 1.5
//	prev := cubits.CAS32(&x, 1.5, 2.5)          // prev == 1.5, x == 2.5
//
// # Rotation
//
// RotateLeft and RotateRight treat x as a circular buffer of W bits where W
// is the width of its type. The shift amount is normalized to i mod W, so
// negative and oversized amounts are valid:
//
//	cubits.RotateLeft(x, 33) == cubits.RotateLeft(x, 1)  // x is 32-bit
//	cubits.RotateLeft(x, -1) == cubits.RotateRight(x, 1)
//
// # Floor Division
//
// Go's / and % truncate toward zero. FloorDiv and FloorMod round toward
// negative infinity instead, so the modulus takes the sign of the divisor:
//
//	x / y, x % y                       // -7, 2  →  -3, -1
//	cubits.FloorDivMod(x, y)           // -7, 2  →  -4,  1
//
// The divisor must be nonzero. No check is made beyond the runtime's own
// division-by-zero panic.
//
// # Reinterpretation
//
// Bits32 and Bits64 return the raw bit pattern of a payload; FromBits32 and
// FromBits64 invert them. Floating-point payloads go through
// [math.Float32bits] and [math.Float64bits], and NaN payloads survive a
// round trip unchanged.
//
// Payload types are restricted at compile time by [Word32] and [Word64]:
// a payload that is not exactly 32 or 64 bits wide does not type-check.
//
// # Compare-and-Swap
//
// CAS32 and CAS64 follow the classic CAS contract: they return the prior
// value whether or not the swap happened, and the caller compares it with
// the expected value to learn the outcome.
//
//	var cell int32 = 10
//	cubits.CAS32(&cell, 10, 20)  // returns 10, cell == 20
//	cubits.CAS32(&cell, 10, 30)  // returns 20, cell unchanged
//
// Comparison is bitwise. For floats this means +0 and -0 differ and a NaN
// matches an identical NaN.
//
// CAS never retries. Lock-free accumulators build a loop on top of it;
// [Update32] and [Update64] provide that loop:
//
//	// Many goroutines adding into one float cell
//	cubits.Update32(&sum, func(v float32) float32 { return v + x })
//
// [TryUpdate32] and [TryUpdate64] make a single attempt and return
// [ErrWouldBlock] when they lose the round.
//
// For memory owned by Go code, [Cell32] and [Cell64] wrap the same
// operations around atomix storage with acquire/release ordering, and
// [PaddedCell32] / [PaddedCell64] keep hot cells on separate cache lines.
//
// # Capability Tiers
//
// 64-bit floating-point reinterpretation and the 64-bit CAS family require
// [TierWide]. The tier is chosen at compile time:
//
//	go build ./...                      // TierWide (default)
//	go build -tags cubits_narrow ./...  // TierNarrow
//
// On TierNarrow, CAS64, Load64, Update64, TryUpdate64, Cell64 and
// PaddedCell64 do not exist and [Word64] excludes floats, so kernels that
// use them fail to build for that target.
//
// # Error Handling
//
// The primitives report no errors. Zero divisors, nil or misaligned
// addresses and other precondition violations are undefined behavior, as
// they are for the machine instructions these functions stand in for.
//
// The single-attempt updates return [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox]:
//
//	cubits.IsWouldBlock(err)  // true if the CAS round was lost
//	cubits.IsSemantic(err)    // true if control flow signal
//	cubits.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Race Detection
//
// On amd64 the word compare-exchange is written in assembly and is not
// instrumented by the race detector. Cell tests that rely on atomix
// ordering are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for cell storage with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions in retry loops, [code.hybscloud.com/iox] for semantic
// errors, and [golang.org/x/sys/cpu] for cache line padding.
package cubits
