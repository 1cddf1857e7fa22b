// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package expand

import (
	"golang.org/x/crypto/sha3"

	"github.com/armfazh/h2c-go-ref/internal/config"
)

// XofID names an extendable-output function supported by XOF.
type XofID int

const (
	// SHAKE128 targets a 128-bit security level.
	SHAKE128 XofID = iota
	// SHAKE256 targets security levels above 128 bits (192, 224, 256).
	SHAKE256
)

func (id XofID) newShake() sha3.ShakeHash {
	switch id {
	case SHAKE128:
		return sha3.NewShake128()
	case SHAKE256:
		return sha3.NewShake256()
	default:
		panic("expand: unknown XOF identifier")
	}
}

// XOF implements expand_message_xof (RFC 9380 section 5.3.2), grounded on
// golang.org/x/crypto/sha3's sha3.ShakeHash, the same XOF surface
// Yawning-edwards25519-extra's h2c package absorbs and squeezes through.
type XOF struct {
	id       XofID
	dstPrime []byte
}

// NewXOF constructs an XOF expander bound to dst. Like NewXMD, DST_prime is
// derived eagerly at construction time.
func NewXOF(id XofID, dst []byte) *XOF {
	checkDST(dst)
	return &XOF{id: id, dstPrime: vetDSTXOF(id, dst)}
}

// DST returns the canonicalised DST_prime.
func (x *XOF) DST() []byte {
	return x.dstPrime
}

// Expand absorbs msg || I2OSP(n, 2) || DST_prime once and squeezes exactly n
// bytes.
func (x *XOF) Expand(msg []byte, n uint16) []byte {
	length := int(n)
	if length > config.MaxExpandLength {
		panic(ErrOutputTooLarge)
	}

	h := x.id.newShake()
	_, _ = h.Write(msg)
	_, _ = h.Write(i2osp2(length))
	_, _ = h.Write(x.dstPrime)

	out := make([]byte, length)
	_, _ = h.Read(out)

	return out
}

// vetDSTXOF folds dst through the oversize-DST squeeze when it exceeds
// config.DSTMaxLength. The squeeze length is ceil(2*k/8); k is not known
// to the expander in isolation, so callers that need the exact RFC 9380
// squeeze width construct it via NewXOFWithSecurityLevel instead.
func vetDSTXOF(id XofID, dst []byte) []byte {
	if len(dst) <= config.DSTMaxLength {
		return dstPrime(dst)
	}

	// Default to a 128-bit security target (32-byte squeeze) when the
	// caller used the bare constructor; NewXOFWithSecurityLevel overrides
	// this with the suite's own k.
	return dstPrime(squeezeOversizeDST(id, dst, 32))
}

// NewXOFWithSecurityLevel constructs an XOF expander whose oversize-DST
// squeeze width is pinned to securityBytes = ceil(2*k/8), the exact
// width RFC 9380 section 5.3.3 specifies for the XOF oversize prefix.
func NewXOFWithSecurityLevel(id XofID, dst []byte, securityBytes int) *XOF {
	checkDST(dst)

	if len(dst) <= config.DSTMaxLength {
		return &XOF{id: id, dstPrime: dstPrime(dst)}
	}

	return &XOF{id: id, dstPrime: dstPrime(squeezeOversizeDST(id, dst, securityBytes))}
}

func squeezeOversizeDST(id XofID, dst []byte, n int) []byte {
	h := id.newShake()
	_, _ = h.Write([]byte(config.OversizeDSTPrefixXOF))
	_, _ = h.Write(dst)

	out := make([]byte, n)
	_, _ = h.Read(out)

	return out
}
