// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command cubitsinfo prints the capability tier cubits was compiled for and
// the atomic features the CPU reports at run time.
//
// Build it with the same tags as the kernels it describes:
//
//	go run ./cmd/cubitsinfo
//	go run -tags cubits_narrow ./cmd/cubitsinfo
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"code.hybscloud.com/cubits"
	"code.hybscloud.com/cubits/internal/asm"
)

func main() {
	report(os.Stdout)
}

// report writes the build and CPU report to w.
func report(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "cubits tier: %s\n", cubits.CurrentTier)
	fmt.Fprintf(w, "cubits 64-bit CAS: %v\n", cubits.CurrentTier.Has64())
	fmt.Fprintf(w, "cubits CAS backend: %s\n", asm.Backend)
	fmt.Fprintf(w, "cubits race detector: %v\n", cubits.RaceEnabled)
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64", "386":
		printX86Features(w)
	default:
		fmt.Fprintln(w, "no atomic feature report for this architecture")
	}
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasATOMICS: %v (LSE CAS/SWP instructions)\n", cpu.ARM64.HasATOMICS)
	fmt.Fprintf(w, "  HasFP:      %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
}

func printX86Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasCX16:   %v (CMPXCHG16B)\n", cpu.X86.HasCX16)
	fmt.Fprintf(w, "  HasSSE2:   %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasPOPCNT: %v\n", cpu.X86.HasPOPCNT)
	fmt.Fprintf(w, "  HasBMI2:   %v (RORX)\n", cpu.X86.HasBMI2)
}
