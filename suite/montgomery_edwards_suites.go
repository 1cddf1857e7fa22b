// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package suite

import (
	"crypto"
	_ "crypto/sha512"
	"math/big"

	"github.com/armfazh/h2c-go-ref/curve"
	"github.com/armfazh/h2c-go-ref/expand"
	"github.com/armfazh/h2c-go-ref/hash2field"
	"github.com/armfazh/h2c-go-ref/internal/bigfield"
	"github.com/armfazh/h2c-go-ref/internal/extcurve"
	"github.com/armfazh/h2c-go-ref/mapping"
)

// montgomeryPipeline wires expand -> hash2field -> ELL2 -> a birational map
// to the equivalent twisted Edwards curve, where cofactor clearing runs
// (curve.Montgomery.ClearCofactor round-trips through curve.TwistedEdwards),
// the same shape bytemare-hash2curve's nist pipeline uses for Weierstrass
// curves and Yawning-edwards25519-extra's hashToCurve/encodeToCurve use for
// this family specifically.
func montgomeryPipeline(
	newExpander func(dst []byte) expand.Expander,
	l int,
	mode Mode,
	f *bigfield.Field,
	a, z *big.Int,
	m *curve.Montgomery,
	e *curve.TwistedEdwards,
	sqrtMinusAM2 *big.Int,
	toExt func(mapping.MontgomeryPoint) Point,
) func(msg, dst []byte) Point {
	count := 1
	if mode == RandomOracle {
		count = 2
	}

	ell2 := func(u *big.Int) mapping.MontgomeryPoint {
		return mapping.ELL2(f, a, z, u, bigfield.Sgn0LE)
	}

	return func(msg, dst []byte) Point {
		exp := newExpander(dst)
		us := hash2field.HashToField(exp, msg, count, l, f.Order())

		q0 := ell2(us[0])
		var q mapping.MontgomeryPoint
		if count == 2 {
			q1 := ell2(us[1])
			e0 := curve.ToEdwards(f, sqrtMinusAM2, q0)
			e1 := curve.ToEdwards(f, sqrtMinusAM2, q1)
			sum := e.Add(e0, e1)
			q = curve.FromEdwards(f, sqrtMinusAM2, sum)
		} else {
			q = q0
		}

		q = m.ClearCofactor(e, sqrtMinusAM2, q)

		return toExt(q)
	}
}

// leBytesToBigInt converts the little-endian field-element byte encoding
// filippo.io/edwards25519/field.Element.SetBytes accepts into a big.Int.
func leBytesToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}

	return new(big.Int).SetBytes(be)
}

func xmdExpanderFactoryForDST(id crypto.Hash) func(dst []byte) expand.Expander {
	return func(dst []byte) expand.Expander { return expand.NewXMD(id, dst) }
}

// curve25519SqrtMinusAPlus2 is sqrt(-(486662+2)) in GF(2^255-19), copied
// from Yawning-edwards25519-extra's elligator2.go
// constMONTGOMERY_SQRT_NEG_A_PLUS_TWO (there stored little-endian for
// filippo.io/edwards25519/field.Element.SetBytes).
var curve25519SqrtMinusAPlus2 = leBytesToBigInt([]byte{
	0x06, 0x7e, 0x45, 0xff, 0xaa, 0x04, 0x6e, 0xcc, 0x82, 0x1a, 0x7d, 0x4b, 0xd1, 0xd3, 0xa1, 0xc5,
	0x7e, 0x4f, 0xfc, 0x03, 0xdc, 0x08, 0x7b, 0xd2, 0xbb, 0x06, 0xa0, 0x60, 0xf4, 0xed, 0x26, 0x0f,
})

func init() {
	registerCurve25519AndEdwards25519()
}

func registerCurve25519AndEdwards25519() {
	f := bigfield.NewField(extcurve.Edwards25519Prime)
	a := big.NewInt(486662)
	z := big.NewInt(2)
	sqrtMinusAM2 := curve25519SqrtMinusAPlus2

	m := &curve.Montgomery{Field: f, A: a, Cofactor: big.NewInt(8)}
	// edwards25519: -x^2 + y^2 = 1 + d*x^2*y^2, d = -121665/121666.
	d := f.Mul(f.Neg(big.NewInt(121665)), f.Invert(big.NewInt(121666)))
	e := &curve.TwistedEdwards{Field: f, A: big.NewInt(-1), D: d, Cofactor: big.NewInt(8)}

	toCurve25519 := func(p mapping.MontgomeryPoint) Point {
		if p.Infinity {
			return extcurve.Curve25519UCoordinate(big.NewInt(0))
		}
		return extcurve.Curve25519UCoordinate(p.U)
	}
	toEdwards25519 := func(p mapping.MontgomeryPoint) Point {
		ep := curve.ToEdwards(f, sqrtMinusAM2, p)
		return extcurve.ToEdwards25519(ep)
	}

	register(&Suite{
		Name: "curve25519_XMD:SHA-512_ELL2_RO_", Mode: RandomOracle, SecurityLevel: 128, L: 48,
		hash: montgomeryPipeline(xmdExpanderFactoryForDST(crypto.SHA512), 48, RandomOracle, f, a, z, m, e, sqrtMinusAM2, toCurve25519),
	})
	register(&Suite{
		Name: "curve25519_XMD:SHA-512_ELL2_NU_", Mode: NonUniform, SecurityLevel: 128, L: 48,
		hash: montgomeryPipeline(xmdExpanderFactoryForDST(crypto.SHA512), 48, NonUniform, f, a, z, m, e, sqrtMinusAM2, toCurve25519),
	})

	// edwards25519 shares every constant with curve25519 (they are
	// birationally equivalent); only the final external-type conversion
	// differs.
	register(&Suite{
		Name: "edwards25519_XMD:SHA-512_ELL2_RO_", Mode: RandomOracle, SecurityLevel: 128, L: 48,
		hash: montgomeryPipeline(xmdExpanderFactoryForDST(crypto.SHA512), 48, RandomOracle, f, a, z, m, e, sqrtMinusAM2, toEdwards25519),
	})
	register(&Suite{
		Name: "edwards25519_XMD:SHA-512_ELL2_NU_", Mode: NonUniform, SecurityLevel: 128, L: 48,
		hash: montgomeryPipeline(xmdExpanderFactoryForDST(crypto.SHA512), 48, NonUniform, f, a, z, m, e, sqrtMinusAM2, toEdwards25519),
	})
}
