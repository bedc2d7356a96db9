// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cubits

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates that a single-attempt update lost its CAS round
// to a concurrent writer.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// recompute from the returned current value and retry (with backoff or
// yield), or fall back to the looping [Update32]/[Update64].
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    _, err := cubits.TryUpdate32(&total, add)
//	    if err == nil {
//	        break
//	    }
//	    backoff.Wait()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates a lost CAS round.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err asks the caller to retry rather than fail.
// A lost CAS round from TryUpdate is semantic; the cell is still consistent
// and the returned value is current. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether a TryUpdate result left the cell in a valid
// state: nil for an installed update, ErrWouldBlock for a lost round.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
