// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package expand implements the expand_message_xmd and expand_message_xof
// constructions of RFC 9380 section 5.3: deriving a pseudorandom byte string
// of a requested length from a short input, with a bit-precise
// domain-separation prefix.
package expand

import (
	"errors"
)

var (
	// ErrZeroLengthDST is the value checkDST panics with when the caller
	// supplies an empty domain-separation tag; RFC 9380 forbids it outright.
	ErrZeroLengthDST = errors.New("expand: zero-length DST")

	// ErrOutputTooLarge panics (via Expander.Expand) when the requested
	// output length exceeds the 2^16-1 bound the length field can encode,
	// or when that length would need more hash blocks than ell=255 allows.
	ErrOutputTooLarge = errors.New("expand: requested output length too large")
)

// Expander derives a pseudorandom byte string of exactly n bytes from msg,
// domain-separated by dst. Both the XMD and XOF constructions share this
// contract (spec.md section 4.1).
type Expander interface {
	// Expand returns exactly n bytes of pseudorandom output. It panics if n
	// exceeds config.MaxExpandLength or would need more than config.MaxEll
	// hash blocks (XMD only) — these are caller/programmer errors, not
	// data-dependent failures, per the fail-fast policy in spec.md section 7.
	Expand(msg []byte, n uint16) []byte

	// DST returns the canonicalised DST_prime this expander derived from the
	// DST it was constructed with. The derivation happens once and is
	// reused by every subsequent Expand call (spec.md section 3, "DST-prime").
	DST() []byte
}

// i2osp2 big-endian encodes value into exactly two bytes, per RFC 9380's
// I2OSP(value, 2).
func i2osp2(value int) []byte {
	return []byte{byte(value >> 8), byte(value)}
}

// i2osp1 big-endian encodes value into exactly one byte.
func i2osp1(value int) []byte {
	return []byte{byte(value)}
}

func checkDST(dst []byte) {
	if len(dst) == 0 {
		panic(ErrZeroLengthDST)
	}
	// Shorter than config.DSTRecommendedMinLength is accepted, not refused:
	// RFC 9380 only recommends a floor, it does not mandate one.
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}

	return buf
}

// dstPrime appends the one-byte length suffix RFC 9380 requires of every
// DST_prime, whether or not the DST itself was already folded through the
// oversize-DST hash.
func dstPrime(dst []byte) []byte {
	return append(append([]byte{}, dst...), byte(len(dst)))
}
