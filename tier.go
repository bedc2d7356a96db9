// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

// Tier is a platform capability tier.
//
// The tier is fixed at compile time by build tags and gates the 64-bit
// floating-point and 64-bit atomic operations:
//
//	go build ./...                      // TierWide
//	go build -tags cubits_narrow ./...  // TierNarrow
//
// On TierNarrow the 64-bit operations are omitted entirely, so code that
// calls them fails to compile instead of misbehaving at run time.
type Tier uint8

const (
	// TierNarrow provides 32-bit CAS for every [Word32] payload and
	// integer-only 64-bit reinterpretation.
	TierNarrow Tier = iota + 1

	// TierWide adds float64 reinterpretation and the 64-bit CAS family:
	// [CAS64], [Update64], [TryUpdate64], [Cell64] and [PaddedCell64].
	TierWide
)

// CurrentTier is the capability tier this package was compiled for.
const CurrentTier = currentTier

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierNarrow:
		return "narrow"
	case TierWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Has64 reports whether t provides 64-bit CAS and float64 reinterpretation.
func (t Tier) Has64() bool {
	return t >= TierWide
}
