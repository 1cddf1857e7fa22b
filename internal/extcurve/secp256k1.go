// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package extcurve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/armfazh/h2c-go-ref/mapping"
)

// Secp256k1Prime is the secp256k1 field characteristic 2^256 - 2^32 - 977.
var Secp256k1Prime = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex constant: " + s)
	}

	return n
}

// ToSecp256k1 parses an affine point into decred's secp256k1.PublicKey, the
// same uncompressed SEC1 encoding (0x04 || X || Y) this module's NIST
// adapter uses, since secp256k1 is also a short-Weierstrass curve with
// cofactor 1 and never needs cofactor clearing before this step.
func ToSecp256k1(p mapping.AffinePoint) *secp256k1.PublicKey {
	buf := make([]byte, 65)
	buf[0] = 0x04
	p.X.FillBytes(buf[1:33])
	p.Y.FillBytes(buf[33:65])

	pub, err := secp256k1.ParsePubKey(buf)
	if err != nil {
		panic(err)
	}

	return pub
}
