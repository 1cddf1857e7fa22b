// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import (
	"math/big"

	"github.com/armfazh/h2c-go-ref/internal/bigfield"
	"github.com/armfazh/h2c-go-ref/mapping"
)

// TwistedEdwards describes a*x^2 + y^2 = 1 + d*x^2*y^2 over Field. Both
// suites this module registers on this family (edwards25519, edwards448)
// use a=-1; A is kept explicit rather than assumed.
type TwistedEdwards struct {
	Field    *bigfield.Field
	A, D     *big.Int
	Cofactor *big.Int
}

// EdwardsPoint is an affine twisted Edwards point, with Infinity meaning the
// neutral element (0, 1), which the complete addition law below handles
// without a separate branch; it is kept only so callers can express "no
// point yet" before the first map.
type EdwardsPoint struct {
	X, Y     *big.Int
	Infinity bool
}

func (e *TwistedEdwards) neutral() EdwardsPoint {
	return EdwardsPoint{X: e.Field.Zero(), Y: e.Field.One()}
}

// Add implements the unified twisted Edwards addition law (the same formula
// serves doubling). It is complete when A is a square and D a non-square in
// Field, which holds for edwards25519. The curve registered for edwards448
// has A=-1, a non-square modulo 2^448-2^224-1, and a square D, so there the
// law is not complete: for input pairs that make a denominator zero,
// Invert returns zero and the result is not the true sum.
func (e *TwistedEdwards) Add(p, q EdwardsPoint) EdwardsPoint {
	f := e.Field

	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}

	x1y2 := f.Mul(p.X, q.Y)
	y1x2 := f.Mul(p.Y, q.X)
	y1y2 := f.Mul(p.Y, q.Y)
	x1x2 := f.Mul(p.X, q.X)
	dx1x2y1y2 := f.Mul(e.D, f.Mul(x1x2, y1y2))

	x3 := f.Mul(f.Add(x1y2, y1x2), f.Invert(f.Add(f.One(), dx1x2y1y2)))
	y3 := f.Mul(f.Sub(y1y2, f.Mul(e.A, x1x2)), f.Invert(f.Sub(f.One(), dx1x2y1y2)))

	return EdwardsPoint{X: x3, Y: y3}
}

// ScalarMul computes k*p via double-and-add, variable-time (used only for
// cofactor clearing, consistent with curve.Weierstrass.ScalarMul).
func (e *TwistedEdwards) ScalarMul(p EdwardsPoint, k *big.Int) EdwardsPoint {
	acc := e.neutral()
	base := p

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc = e.Add(acc, base)
		}
		base = e.Add(base, base)
	}

	return acc
}

// ClearCofactor multiplies p by the curve's cofactor (8 for edwards25519 and
// 4 for edwards448 in this module).
func (e *TwistedEdwards) ClearCofactor(p EdwardsPoint) EdwardsPoint {
	if e.Cofactor.Cmp(big.NewInt(1)) == 0 {
		return p
	}

	return e.ScalarMul(p, e.Cofactor)
}

// FromMontgomery converts a Montgomery-form point (u, v) on v^2 = u^3 +
// A_M*u^2 + u to the birationally equivalent twisted Edwards point, via
// x = sqrtMinusAM2*u/v, y = (u-1)/(u+1), the standard curve25519<->edwards25519
// map (RFC 9380 Appendix E's "4.1 Equivalence with Montgomery curves").
// sqrtMinusAM2 must equal a square root of -(A_M+2) in Field; suite.go
// supplies this as a fixed per-curve constant.
func FromMontgomery(f *bigfield.Field, sqrtMinusAM2 *big.Int, p mapping.MontgomeryPoint) EdwardsPoint {
	if p.Infinity {
		return EdwardsPoint{X: f.Zero(), Y: f.One()}
	}

	if f.IsZero(p.V) {
		// v=0 makes x's u/v form undefined, so resolve directly: the
		// 2-torsion point u=0 maps to (0, -1), and any other v=0 point is
		// returned as the neutral element (0, 1).
		if f.IsZero(p.U) {
			return EdwardsPoint{X: f.Zero(), Y: f.Neg(f.One())}
		}
		return EdwardsPoint{X: f.Zero(), Y: f.One()}
	}

	x := f.Mul(sqrtMinusAM2, f.Mul(p.U, f.Invert(p.V)))
	y := f.Mul(f.Sub(p.U, f.One()), f.Invert(f.Add(p.U, f.One())))

	return EdwardsPoint{X: x, Y: y}
}
