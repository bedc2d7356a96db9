// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command wideuser uses the 64-bit float operations. It type-checks on the
// wide tier and must not type-check with -tags cubits_narrow.
package main

import (
	"fmt"

	"code.hybscloud.com/cubits"
)

func main() {
	x := 1.5
	prev := cubits.CAS64(&x, 1.5, 2.5)
	fmt.Println(prev, cubits.Bits64(x))
}
