// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package extcurve binds the affine points mapping and curve compute to the
// real, externally-maintained point/group types a production caller would
// actually want back: filippo.io/nistec for the NIST curves, decred's
// secp256k1 for secp256k1, kilic's bls12-381 for BLS12-381 G1, and
// filippo.io/edwards25519 for edwards25519 (curve25519 and the two 448-bit
// curves get plain byte encodings, with no library bound). This is the external
// collaborator boundary spec.md section 6.2 draws: everything upstream of
// this package (expand, hash2field, mapping, curve) only ever touches
// math/big, and everything in this package only ever touches the affine
// (x, y) or (u, v) a map produced.
package extcurve

import (
	"math/big"

	"filippo.io/nistec"

	"github.com/armfazh/h2c-go-ref/mapping"
)

// nistPoint is the common surface nistec.P256Point/P384Point/P521Point all
// satisfy, mirroring bytemare-hash2curve's nist package's nistECPoint[point]
// constraint.
type nistPoint[P any] interface {
	Add(p1, p2 P) P
	Bytes() []byte
	SetBytes(b []byte) (P, error)
}

// AffineToNISTPoint encodes an affine point as an uncompressed SEC1 point
// (0x04 || X || Y, each field element left-padded to byteLen) and parses it
// through the curve's own SetBytes, exactly as bytemare-hash2curve's
// affineToPoint does for the same three curves. newPoint must return a
// fresh zero-value point of the target type (nistec.NewP256Point and its
// P384/P521 siblings).
func AffineToNISTPoint[P nistPoint[P]](p mapping.AffinePoint, byteLen int, newPoint func() P) P {
	if p.Infinity {
		// The identity element's SEC1 encoding is the single byte 0x00;
		// every nistec SetBytes implementation accepts it.
		pt, err := newPoint().SetBytes([]byte{0x00})
		if err != nil {
			panic(err)
		}
		return pt
	}

	buf := make([]byte, 1+2*byteLen)
	buf[0] = 0x04
	p.X.FillBytes(buf[1 : 1+byteLen])
	p.Y.FillBytes(buf[1+byteLen:])

	pt, err := newPoint().SetBytes(buf)
	if err != nil {
		panic(err)
	}

	return pt
}

// ToP256, ToP384, ToP521 give callers a concretely-typed conversion without
// repeating the generic instantiation at every call site.
func ToP256(p mapping.AffinePoint) *nistec.P256Point {
	return AffineToNISTPoint[*nistec.P256Point](p, 32, nistec.NewP256Point)
}

func ToP384(p mapping.AffinePoint) *nistec.P384Point {
	return AffineToNISTPoint[*nistec.P384Point](p, 48, nistec.NewP384Point)
}

func ToP521(p mapping.AffinePoint) *nistec.P521Point {
	return AffineToNISTPoint[*nistec.P521Point](p, 66, nistec.NewP521Point)
}

// P256Prime, P384Prime, P521Prime are the NIST curve field characteristics,
// copied from bytemare-hash2curve's nist package's byte-literal form.
var (
	P256Prime = new(big.Int).SetBytes([]byte{
		255, 255, 255, 255, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	})
	P384Prime = new(big.Int).SetBytes([]byte{
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 254, 255, 255,
		255, 255, 0, 0, 0, 0, 0, 0, 0, 0, 255, 255, 255, 255,
	})
	P521Prime = new(big.Int).SetBytes([]byte{
		1, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	})
)
