// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// Cell32 is an atomic cell holding a 32-bit payload.
//
// Cell32 offers the same operations as the address-based [CAS32] family for
// memory owned by Go code, with acquire/release ordering: a Store or a
// successful CompareAndSwap publishes all writes made before it to any
// goroutine that subsequently loads the stored value.
//
// The zero value holds the payload whose bit pattern is zero.
// A Cell32 must not be copied after first use.
//
// Example:
//
//	var hits cubits.Cell32[float32]
//	hits.Update(func(v float32) float32 { return v + 0.5 })
type Cell32[T Word32] struct {
	v atomix.Int32
}

// Load returns the current value.
func (c *Cell32[T]) Load() T {
	return FromBits32[T](uint32(c.v.LoadAcquire()))
}

// Store sets the value.
func (c *Cell32[T]) Store(x T) {
	c.v.StoreRelease(int32(Bits32(x)))
}

// CompareAndSwap stores desired if the cell holds expected (compared
// bit-for-bit) and returns the value held before the operation.
// See [CAS32] for the success convention.
func (c *Cell32[T]) CompareAndSwap(expected, desired T) T {
	e, d := int32(Bits32(expected)), int32(Bits32(desired))
	sw := spin.Wait{}
	for {
		cur := c.v.LoadAcquire()
		if cur != e {
			return FromBits32[T](uint32(cur))
		}
		if c.v.CompareAndSwapAcqRel(e, d) {
			return FromBits32[T](uint32(e))
		}
		sw.Once()
	}
}

// Update replaces the value with fn(value), retrying until it wins, and
// returns the installed value. fn may be called more than once.
func (c *Cell32[T]) Update(fn func(T) T) T {
	sw := spin.Wait{}
	for {
		old := c.v.LoadAcquire()
		next := int32(Bits32(fn(FromBits32[T](uint32(old)))))
		if c.v.CompareAndSwapAcqRel(old, next) {
			return FromBits32[T](uint32(next))
		}
		sw.Once()
	}
}

// TryUpdate makes a single attempt to replace the value with fn(value).
// Returns the installed value, or the current value and [ErrWouldBlock] if
// another writer won the race.
func (c *Cell32[T]) TryUpdate(fn func(T) T) (T, error) {
	old := c.v.LoadAcquire()
	next := int32(Bits32(fn(FromBits32[T](uint32(old)))))
	if !c.v.CompareAndSwapAcqRel(old, next) {
		return FromBits32[T](uint32(c.v.LoadAcquire())), ErrWouldBlock
	}
	return FromBits32[T](uint32(next)), nil
}

// PaddedCell32 is a [Cell32] isolated on its own cache line.
//
// Use it for hot cells that sit next to other frequently written data,
// such as an array of per-bucket accumulators.
type PaddedCell32[T Word32] struct {
	_ cpu.CacheLinePad
	Cell32[T]
	_ cpu.CacheLinePad
}
