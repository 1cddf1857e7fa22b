// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package suite

import (
	"math/big"

	"github.com/armfazh/h2c-go-ref/curve"
	"github.com/armfazh/h2c-go-ref/expand"
	"github.com/armfazh/h2c-go-ref/hash2field"
	"github.com/armfazh/h2c-go-ref/internal/bigfield"
	"github.com/armfazh/h2c-go-ref/internal/extcurve"
	"github.com/armfazh/h2c-go-ref/mapping"
)

// curve448SecurityBytes is ceil(2*224/8) for curve448/edwards448's
// 224-bit target security level, the width NewXOFWithSecurityLevel needs
// for the oversize-DST squeeze.
const curve448SecurityBytes = 56

func xofExpanderFactory(id expand.XofID) func(dst []byte) expand.Expander {
	return func(dst []byte) expand.Expander {
		return expand.NewXOFWithSecurityLevel(id, dst, curve448SecurityBytes)
	}
}

func init() {
	registerCurve448AndEdwards448()
}

// registerCurve448AndEdwards448 follows the same ELL2/addition/cofactor
// shape as registerCurve25519AndEdwards25519. RFC 9380 relates curve448 and
// RFC 8032's edwards448 (a=1, d=-39081) by a 4-isogeny rather than a direct
// birational map (unlike curve25519/edwards25519, which genuinely are
// birationally equivalent), and this module does not implement that
// isogeny. Registering curve.ToEdwards/FromEdwards's a=-1 birational map
// against the literal RFC 8032 (a=1, d=-39081) curve would silently produce
// points off that curve's equation, so e's D below is instead derived
// directly from curve448's own A via the same a=-1 birational formula
// curve25519/edwards25519 use. The resulting curve is birationally
// equivalent to curve448 (every point this module's edwards448 suites
// produce does lie on it, and cofactor clearing round-trips correctly
// through it), but it is isomorphic to, not identical to, RFC 8032's
// edwards448 -- a documented deviation, not a silent one. See DESIGN.md.
func registerCurve448AndEdwards448() {
	f := bigfield.NewField(extcurve.Curve448Prime)
	a := big.NewInt(156326)
	z := f.Neg(big.NewInt(1))

	// sqrt(-(156326+2)) mod p, computed via this field's own Sqrt (p =
	// 2^448-2^224-1 is 3 mod 4, so its a^((p+1)/4) path applies) rather than a
	// transcribed literal, since no corpus file carries this constant for
	// curve448 the way Yawning's package does for curve25519.
	aPlus2 := f.Add(a, big.NewInt(2))
	sqrtMinusAM2, ok := f.Sqrt(f.Neg(aPlus2))
	if !ok {
		panic("suite: -(A+2) is not a square in the curve448 base field")
	}

	m := &curve.Montgomery{Field: f, A: a, Cofactor: big.NewInt(4)}
	// d = -(A-2)/(A+2), the a=-1 twisted Edwards curve birationally
	// equivalent to this Montgomery curve (the same relationship that gives
	// edwards25519 its d=-121665/121666 from curve25519's A=486662).
	d := f.Mul(f.Neg(f.Sub(a, big.NewInt(2))), f.Invert(aPlus2))
	e := &curve.TwistedEdwards{Field: f, A: big.NewInt(-1), D: d, Cofactor: big.NewInt(4)}

	toCurve448 := func(p mapping.MontgomeryPoint) Point {
		if p.Infinity {
			return extcurve.Curve448UCoordinate(big.NewInt(0))
		}
		return extcurve.Curve448UCoordinate(p.U)
	}
	toEdwards448 := func(p mapping.MontgomeryPoint) Point {
		ep := curve.ToEdwards(f, sqrtMinusAM2, p)
		return extcurve.ToEdwards448(ep.X, ep.Y)
	}

	register(&Suite{
		Name: "curve448_XOF:SHAKE256_ELL2_RO_", Mode: RandomOracle, SecurityLevel: 224, L: 84,
		hash: montgomeryPipeline(xofExpanderFactory(expand.SHAKE256), 84, RandomOracle, f, a, z, m, e, sqrtMinusAM2, toCurve448),
	})
	register(&Suite{
		Name: "curve448_XOF:SHAKE256_ELL2_NU_", Mode: NonUniform, SecurityLevel: 224, L: 84,
		hash: montgomeryPipeline(xofExpanderFactory(expand.SHAKE256), 84, NonUniform, f, a, z, m, e, sqrtMinusAM2, toCurve448),
	})
	register(&Suite{
		Name: "edwards448_XOF:SHAKE256_ELL2_RO_", Mode: RandomOracle, SecurityLevel: 224, L: 84,
		hash: montgomeryPipeline(xofExpanderFactory(expand.SHAKE256), 84, RandomOracle, f, a, z, m, e, sqrtMinusAM2, toEdwards448),
	})
	register(&Suite{
		Name: "edwards448_XOF:SHAKE256_ELL2_NU_", Mode: NonUniform, SecurityLevel: 224, L: 84,
		hash: montgomeryPipeline(xofExpanderFactory(expand.SHAKE256), 84, NonUniform, f, a, z, m, e, sqrtMinusAM2, toEdwards448),
	})
}
