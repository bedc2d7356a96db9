// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/cubits"
)

// ExampleRotateLeft demonstrates shift normalization.
func ExampleRotateLeft() {
	x := uint8(0b1001_0110)

	fmt.Printf("%08b\n", cubits.RotateLeft(x, 3))
	fmt.Printf("%08b\n", cubits.RotateLeft(x, 11)) // 11 mod 8 == 3
	fmt.Printf("%08b\n", cubits.RotateLeft(x, -5)) // -5 mod 8 == 3
	fmt.Printf("%08b\n", cubits.RotateRight(x, 3))

	// Output:
	// 10110100
	// 10110100
	// 10110100
	// 11010010
}

// ExampleFloorDivMod contrasts floored and truncated division.
func ExampleFloorDivMod() {
	for _, p := range [][2]int{{7, 2}, {-7, 2}, {7, -2}, {-7, -2}} {
		x, y := p[0], p[1]
		q, r := cubits.FloorDivMod(x, y)
		fmt.Printf("%2d, %2d: floor (%2d, %2d)  trunc (%2d, %2d)\n", x, y, q, r, x/y, x%y)
	}

	// Output:
	//  7,  2: floor ( 3,  1)  trunc ( 3,  1)
	// -7,  2: floor (-4,  1)  trunc (-3, -1)
	//  7, -2: floor (-4, -1)  trunc (-3,  1)
	// -7, -2: floor ( 3, -1)  trunc ( 3, -1)
}

// ExampleBits32 shows that reinterpretation copies bits, not values.
func ExampleBits32() {
	fmt.Printf("%#08x\n", cubits.Bits32(float32(1)))
	fmt.Printf("%#08x\n", cubits.Bits32(int32(-2)))
	fmt.Println(cubits.FromBits32[float32](0x4049_0fdb))

	// Output:
	// 0x3f800000
	// 0xfffffffe
	// 3.1415927
}

// ExampleCAS32 demonstrates the prior-value contract.
func ExampleCAS32() {
	cell := float32(1)

	prev := cubits.CAS32(&cell, 1, 2)
	fmt.Println(prev, prev == 1, cell)

	// Stale expectation: no swap, current value returned
	prev = cubits.CAS32(&cell, 1, 3)
	fmt.Println(prev, prev == 1, cell)

	// Output:
	// 1 true 2
	// 2 false 2
}

// ExampleUpdate32 builds a lock-free histogram from concurrent workers.
func ExampleUpdate32() {
	bins := make([]uint32, 4)

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range 100 {
				b := cubits.FloorMod(i*w-7, len(bins))
				cubits.Update32(&bins[b], func(v uint32) uint32 { return v + 1 })
			}
		}(w)
	}
	wg.Wait()

	var total uint32
	for i := range bins {
		total += cubits.Load32(&bins[i])
	}
	fmt.Println(total)

	// Output:
	// 400
}
