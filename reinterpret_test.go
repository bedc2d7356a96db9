// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/cubits"
)

// Named payload types exercise the generic bit-cast path.
type (
	weight32 float32
	index32  int32
	mask32   uint32
	ticks64  int64
	flags64  uint64
)

// =============================================================================
// 32-bit Reinterpretation
// =============================================================================

func TestBits32KnownValues(t *testing.T) {
	if got := cubits.Bits32(float32(1)); got != 0x3f80_0000 {
		t.Fatalf("Bits32(float32(1)): got %#x, want 0x3f800000", got)
	}
	if got := cubits.Bits32(float32(math.Copysign(0, -1))); got != 0x8000_0000 {
		t.Fatalf("Bits32(-0): got %#x, want 0x80000000", got)
	}
	if got := cubits.Bits32(float32(math.Inf(-1))); got != 0xff80_0000 {
		t.Fatalf("Bits32(-Inf): got %#x, want 0xff800000", got)
	}
	if got := cubits.Bits32(int32(-1)); got != math.MaxUint32 {
		t.Fatalf("Bits32(int32(-1)): got %#x, want 0xffffffff", got)
	}
	if got := cubits.Bits32(uint32(42)); got != 42 {
		t.Fatalf("Bits32(uint32(42)): got %d, want 42", got)
	}
	if got := cubits.FromBits32[int32](0x8000_0000); got != math.MinInt32 {
		t.Fatalf("FromBits32[int32](0x80000000): got %d, want MinInt32", got)
	}
}

// TestBits32NaNPayload checks that NaN payloads survive a round trip bit
// for bit, including signaling NaNs and the sign bit.
func TestBits32NaNPayload(t *testing.T) {
	for _, u := range []uint32{0x7fc0_0000, 0x7fc0_0001, 0xffc0_1234, 0x7f80_0001, 0xff80_0001, 0x7fbf_ffff} {
		f := math.Float32frombits(u)
		if got := cubits.Bits32(f); got != u {
			t.Fatalf("Bits32(NaN %#x): got %#x", u, got)
		}
		if got := math.Float32bits(cubits.FromBits32[float32](u)); got != u {
			t.Fatalf("FromBits32[float32](%#x): bits %#x", u, got)
		}
		if got := cubits.Bits32(cubits.FromBits32[weight32](u)); got != u {
			t.Fatalf("named NaN round trip %#x: got %#x", u, got)
		}
	}
}

// TestBits32PathsAgree checks that the native fast paths and the generic
// bit-cast path return identical patterns for the same bits.
func TestBits32PathsAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	for range 20000 {
		u := r.Uint32()

		f := math.Float32frombits(u)
		if a, b := cubits.Bits32(f), cubits.Bits32(weight32(f)); a != u || b != u {
			t.Fatalf("float32 paths for %#x: native=%#x generic=%#x", u, a, b)
		}
		if a, b := cubits.Bits32(int32(u)), cubits.Bits32(index32(u)); a != u || b != u {
			t.Fatalf("int32 paths for %#x: native=%#x generic=%#x", u, a, b)
		}
		if a, b := cubits.Bits32(u), cubits.Bits32(mask32(u)); a != u || b != u {
			t.Fatalf("uint32 paths for %#x: native=%#x generic=%#x", u, a, b)
		}

		if got := cubits.FromBits32[index32](u); got != index32(int32(u)) {
			t.Fatalf("FromBits32[index32](%#x): got %d", u, got)
		}
		if got := cubits.FromBits32[int32](u); got != int32(u) {
			t.Fatalf("FromBits32[int32](%#x): got %d", u, got)
		}
	}
}

// =============================================================================
// 64-bit Integer Reinterpretation (all tiers)
// =============================================================================

func TestBits64Integers(t *testing.T) {
	r := rand.New(rand.NewPCG(19, 23))
	for range 20000 {
		u := r.Uint64()
		if got := cubits.Bits64(int64(u)); got != u {
			t.Fatalf("Bits64(int64): got %#x, want %#x", got, u)
		}
		if got := cubits.Bits64(ticks64(u)); got != u {
			t.Fatalf("Bits64(ticks64): got %#x, want %#x", got, u)
		}
		if got := cubits.Bits64(flags64(u)); got != u {
			t.Fatalf("Bits64(flags64): got %#x, want %#x", got, u)
		}
		if got := cubits.FromBits64[int64](u); got != int64(u) {
			t.Fatalf("FromBits64[int64](%#x): got %d", u, got)
		}
		if got := cubits.FromBits64[ticks64](u); got != ticks64(u) {
			t.Fatalf("FromBits64[ticks64](%#x): got %d", u, got)
		}
		if got := cubits.FromBits64[uint64](u); got != u {
			t.Fatalf("FromBits64[uint64](%#x): got %#x", u, got)
		}
	}
}
