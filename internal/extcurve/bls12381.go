// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package extcurve

import (
	bls12381 "github.com/kilic/bls12-381"

	"github.com/armfazh/h2c-go-ref/mapping"
)

// BLS12381G1Prime is the BLS12-381 base field characteristic.
var BLS12381G1Prime = mustHex("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")

// ToBLS12381G1 parses an affine point into kilic's bls12381.PointG1, via
// that package's concatenated affine byte encoding (X || Y, each field
// element big-endian and left-padded to 48 bytes; no SEC1 tag byte, unlike
// the NIST and secp256k1 adapters). Cofactor clearing has already happened
// in curve.Weierstrass.ClearCofactor before this function ever sees a point;
// the map itself is this module's SVDW (mapping/svdw.go), not kilic's own
// hash-to-curve.
func ToBLS12381G1(p mapping.AffinePoint) *bls12381.PointG1 {
	g1 := bls12381.NewG1()

	if p.Infinity {
		return g1.Zero()
	}

	buf := make([]byte, 96)
	p.X.FillBytes(buf[0:48])
	p.Y.FillBytes(buf[48:96])

	pt, err := g1.FromBytes(buf)
	if err != nil {
		panic(err)
	}

	return pt
}
