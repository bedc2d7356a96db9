// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cubits_narrow

package cubits

import "math"

const currentTier = TierWide

// Word64 is the set of 64-bit payload types.
//
// On [TierWide] it includes floating-point payloads; on [TierNarrow] it is
// restricted to integers.
type Word64 interface {
	~int64 | ~uint64 | ~float64
}

// nativeBits64 is the fast path of [Bits64] for unnamed payload types.
func nativeBits64(x any) (uint64, bool) {
	switch v := x.(type) {
	case uint64:
		return v, true
	case int64:
		return uint64(v), true
	case float64:
		return math.Float64bits(v), true
	}
	return 0, false
}

// nativeFromBits64 is the fast path of [FromBits64] for unnamed payload types.
func nativeFromBits64(zero any, u uint64) (any, bool) {
	switch zero.(type) {
	case uint64:
		return u, true
	case int64:
		return int64(u), true
	case float64:
		return math.Float64frombits(u), true
	}
	return nil, false
}
