// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

// FloorDiv returns x/y rounded toward negative infinity.
//
// Go's / truncates toward zero; FloorDiv differs when the operands have
// opposite signs and the division is inexact:
//
//	-7 / 2                  // -3
//	cubits.FloorDiv(-7, 2)  // -4
//
// y must be nonzero. As with native division, a zero divisor panics and
// MinInt / -1 wraps to MinInt.
func FloorDiv[T Integer](x, y T) T {
	q, _ := FloorDivMod(x, y)
	return q
}

// FloorMod returns the remainder of floored division of x by y.
//
// The result is zero or has the sign of y, and
// FloorDiv(x, y)*y + FloorMod(x, y) == x:
//
//	-7 % 2                  // -1
//	cubits.FloorMod(-7, 2)  // 1
//
// y must be nonzero.
func FloorMod[T Integer](x, y T) T {
	_, r := FloorDivMod(x, y)
	return r
}

// FloorDivMod returns FloorDiv(x, y) and FloorMod(x, y) with a single
// native division.
func FloorDivMod[T Integer](x, y T) (q, r T) {
	q, r = x/y, x%y
	// A nonzero truncated remainder carries the sign of x.
	if r != 0 && (r < 0) != (y < 0) {
		q--
		r += y
	}
	return q, r
}
