// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cubits_narrow

package cubits

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// Cell64 is the 64-bit form of [Cell32].
//
// Cell64 is only available on [TierWide].
type Cell64[T Word64] struct {
	v atomix.Uint64
}

// Load returns the current value.
func (c *Cell64[T]) Load() T {
	return FromBits64[T](c.v.LoadAcquire())
}

// Store sets the value.
func (c *Cell64[T]) Store(x T) {
	c.v.StoreRelease(Bits64(x))
}

// CompareAndSwap stores desired if the cell holds expected (compared
// bit-for-bit) and returns the value held before the operation.
func (c *Cell64[T]) CompareAndSwap(expected, desired T) T {
	e, d := Bits64(expected), Bits64(desired)
	sw := spin.Wait{}
	for {
		cur := c.v.LoadAcquire()
		if cur != e {
			return FromBits64[T](cur)
		}
		if c.v.CompareAndSwapAcqRel(e, d) {
			return FromBits64[T](e)
		}
		sw.Once()
	}
}

// Update replaces the value with fn(value), retrying until it wins, and
// returns the installed value.
func (c *Cell64[T]) Update(fn func(T) T) T {
	sw := spin.Wait{}
	for {
		old := c.v.LoadAcquire()
		next := Bits64(fn(FromBits64[T](old)))
		if c.v.CompareAndSwapAcqRel(old, next) {
			return FromBits64[T](next)
		}
		sw.Once()
	}
}

// TryUpdate makes a single attempt to replace the value with fn(value).
func (c *Cell64[T]) TryUpdate(fn func(T) T) (T, error) {
	old := c.v.LoadAcquire()
	next := Bits64(fn(FromBits64[T](old)))
	if !c.v.CompareAndSwapAcqRel(old, next) {
		return FromBits64[T](c.v.LoadAcquire()), ErrWouldBlock
	}
	return FromBits64[T](next), nil
}

// PaddedCell64 is a [Cell64] isolated on its own cache line.
type PaddedCell64[T Word64] struct {
	_ cpu.CacheLinePad
	Cell64[T]
	_ cpu.CacheLinePad
}
