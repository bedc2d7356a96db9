// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cubits

// RaceEnabled is true when the race detector is active.
// Used by tests to skip stress tests of [Cell32] and [Cell64], whose atomix
// operations are reported as plain memory accesses by the detector.
const RaceEnabled = true
