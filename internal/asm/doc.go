// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides the word-sized compare-exchange primitives that the
// typed CAS operations are built on.
//
// Contract:
// CompareExchange32 and CompareExchange64 atomically compare *addr with old,
// store new if they are equal, and return the value *addr held before the
// operation whether or not the store happened.
//
// On amd64 they are single LOCK CMPXCHG instructions. Other architectures
// emulate the prior-value result on top of sync/atomic; the emulation is
// linearizable and observably equivalent, which tests verify on
// architectures where both backends are available.
package asm
