// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package expand

import (
	"crypto"
	"hash"
	"math"

	"github.com/armfazh/h2c-go-ref/internal/config"
)

// XMD implements expand_message_xmd (RFC 9380 section 5.3.1) for a fixed
// Merkle-Damgard hash, e.g. crypto.SHA256, crypto.SHA384 or crypto.SHA512.
// Ported from the teacher's single-hash expandXMD, generalized to carry the
// crypto.Hash and its own DST-prime cache instead of hardcoding SHA-256.
type XMD struct {
	id       crypto.Hash
	dstPrime []byte
}

// NewXMD constructs an XMD expander bound to dst. DST_prime is derived
// eagerly here (spec.md section 9's "lazy DST-prime cache" design note,
// option (a)): the computation is pure and cheap, and an eager derivation
// removes the interior-mutability question entirely, making Expander safe
// to share across goroutines without synchronization.
func NewXMD(id crypto.Hash, dst []byte) *XMD {
	checkDST(dst)

	h := id.New()
	return &XMD{id: id, dstPrime: vetDSTXMD(h, dst)}
}

// DST returns the canonicalised DST_prime.
func (x *XMD) DST() []byte {
	return x.dstPrime
}

// Expand returns exactly n bytes of pseudorandom output.
func (x *XMD) Expand(msg []byte, n uint16) []byte {
	length := int(n)
	if length > config.MaxExpandLength {
		panic(ErrOutputTooLarge)
	}

	h := x.id.New()
	bLen := x.id.Size()
	blockSize := h.BlockSize()

	ell := int(math.Ceil(float64(length) / float64(bLen)))
	if ell > config.MaxEll {
		panic(ErrOutputTooLarge)
	}

	zPad := make([]byte, blockSize)
	lIBStr := i2osp2(length)

	b0 := hashAll(h, zPad, msg, lIBStr, []byte{0}, x.dstPrime)
	b1 := hashAll(h, b0, []byte{1}, x.dstPrime)

	if ell < 2 {
		return b1[:length]
	}

	return xmdExpand(h, b0, b1, x.dstPrime, ell, length)
}

// xmdExpand derives b_2..b_ell and concatenates b_1..b_ell, truncated to
// length, following spec.md section 4.1.1 steps 5-6.
func xmdExpand(h hash.Hash, b0, b1, dstPrime []byte, ell, length int) []byte {
	uniformBytes := make([]byte, 0, ell*len(b1))
	uniformBytes = append(uniformBytes, b1...)

	bi := make([]byte, len(b1))
	copy(bi, b1)

	for i := 2; i <= ell; i++ {
		xorSlices(bi, b0)
		bi = hashAll(h, bi, []byte{byte(i)}, dstPrime)
		uniformBytes = append(uniformBytes, bi...)
	}

	return uniformBytes[:length]
}

func xorSlices(bi, b0 []byte) {
	for i := range bi {
		bi[i] ^= b0[i]
	}
}

// vetDSTXMD folds dst through the oversize-DST hash when it exceeds
// config.DSTMaxLength, then appends the one-byte length suffix.
func vetDSTXMD(h hash.Hash, dst []byte) []byte {
	if len(dst) > config.DSTMaxLength {
		dst = hashAll(h, []byte(config.OversizeDSTPrefixXMD), dst)
	}

	return dstPrime(dst)
}

func hashAll(h hash.Hash, parts ...[]byte) []byte {
	h.Reset()
	for _, p := range parts {
		_, _ = h.Write(p)
	}

	return h.Sum(nil)
}
