// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

// RotateLeft rotates the bits of x left by i positions.
//
// x is treated as a circular buffer of W = 8*sizeof(T) bits. The effective
// shift is i mod W, so any i is valid: negative amounts rotate right and
// amounts of W or more wrap around. Signed values rotate their
// two's-complement bit pattern.
//
//	cubits.RotateLeft(uint8(0b1000_0001), 1)  // 0b0000_0011
//	cubits.RotateLeft(uint8(0b1000_0001), -1) // 0b1100_0000
func RotateLeft[T Integer](x T, i int) T {
	w := bitWidth[T]()
	k := uint(i) & (w - 1)
	if k == 0 {
		return x
	}
	u := uint64(x) & widthMask(w)
	return T(u<<k | u>>(w-k))
}

// RotateRight rotates the bits of x right by i positions.
// RotateRight(x, i) is the inverse of RotateLeft(x, i).
func RotateRight[T Integer](x T, i int) T {
	w := bitWidth[T]()
	k := uint(i) & (w - 1)
	if k == 0 {
		return x
	}
	u := uint64(x) & widthMask(w)
	return T(u>>k | u<<(w-k))
}

// widthMask returns a mask of the low w bits.
// Drops the sign extension of narrow signed values widened to uint64.
func widthMask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}
