// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command widefloat reinterprets float64 payloads without any 64-bit CAS.
// It type-checks on the wide tier and must not type-check with
// -tags cubits_narrow.
package main

import (
	"fmt"

	"code.hybscloud.com/cubits"
)

func main() {
	fmt.Println(cubits.Bits64(1.5), cubits.FromBits64[float64](0))
}
