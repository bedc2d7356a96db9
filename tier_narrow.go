// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cubits_narrow

package cubits

const currentTier = TierNarrow

// Word64 is the set of 64-bit payload types.
//
// On [TierNarrow] only integer payloads are supported.
type Word64 interface {
	~int64 | ~uint64
}

// nativeBits64 is the fast path of [Bits64] for unnamed payload types.
func nativeBits64(x any) (uint64, bool) {
	switch v := x.(type) {
	case uint64:
		return v, true
	case int64:
		return uint64(v), true
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
	}
	return nil, false
}
