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

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/armfazh/h2c-go-ref/curve"
)

// Edwards25519Prime is 2^255 - 19.
var Edwards25519Prime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

func bigToFieldElement(x *big.Int) *field.Element {
	buf := make([]byte, 32)
	x.FillBytes(buf) // big-endian, 32 bytes
	reverse(buf)      // field.Element.SetBytes wants little-endian

	fe, err := new(field.Element).SetBytes(buf)
	if err != nil {
		panic("extcurve: failed to decode edwards25519 field element: " + err.Error())
	}

	return fe
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ToEdwards25519 converts an already cofactor-cleared twisted Edwards affine
// point into filippo.io/edwards25519's extended-coordinate Point, via the
// same SetExtendedCoordinates(x, y, 1, x*y) construction Yawning's
// edwards25519-extra newEdwardsFromXY helper uses.
func ToEdwards25519(p curve.EdwardsPoint) *edwards25519.Point {
	if p.Infinity {
		return edwards25519.NewIdentityPoint()
	}

	x := bigToFieldElement(p.X)
	y := bigToFieldElement(p.Y)
	z := new(field.Element).One()
	t := new(field.Element).Multiply(x, y)

	pt, err := new(edwards25519.Point).SetExtendedCoordinates(x, y, z, t)
	if err != nil {
		panic("extcurve: failed to build edwards25519 point: " + err.Error())
	}

	return pt
}
