// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package mapping

import (
	"math/big"

	"github.com/armfazh/h2c-go-ref/internal/bigfield"
)

// Isogeny is a rational map between two short-Weierstrass curves, given as
// four coefficient lists (x numerator, x denominator, y numerator, y
// denominator) in ascending degree, per RFC 9380 Appendix E's iso_map
// presentation. Applied to an SSWU output on an isogenous curve with nonzero
// A, B, it lands on a target curve that may have A=0 or B=0; no registered
// suite does this, and this module ships no isogeny coefficients.
//
// Generalized from the teacher's IsogenySecp256k13iso, which hardcoded a
// single degree-3 map's twelve named constants (_k10.._k42); here the same
// Horner evaluation runs over coefficient slices of any degree.
type Isogeny struct {
	XNum, XDen []*big.Int
	YNum, YDen []*big.Int
}

// Apply evaluates the isogeny at the affine point p, returning the point at
// infinity when either denominator evaluates to zero (RFC 9380 section
// 4.3's "point at infinity" exceptional case).
func (iso *Isogeny) Apply(f *bigfield.Field, p AffinePoint) AffinePoint {
	if p.Infinity {
		return AffinePoint{Infinity: true}
	}

	xNum := evalPoly(f, iso.XNum, p.X)
	xDen := evalPoly(f, iso.XDen, p.X)
	yNum := evalPoly(f, iso.YNum, p.X)
	yDen := evalPoly(f, iso.YDen, p.X)

	if f.IsZero(xDen) || f.IsZero(yDen) {
		return AffinePoint{Infinity: true}
	}

	x := f.Mul(xNum, f.Invert(xDen))
	y := f.Mul(p.Y, f.Mul(yNum, f.Invert(yDen)))

	return AffinePoint{X: x, Y: y}
}

// evalPoly evaluates sum(coeffs[i] * x^i) via Horner's method, ascending
// degree in coeffs.
func evalPoly(f *bigfield.Field, coeffs []*big.Int, x *big.Int) *big.Int {
	if len(coeffs) == 0 {
		return f.Zero()
	}

	acc := new(big.Int).Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = f.Mul(acc, x)
		acc = f.Add(acc, coeffs[i])
	}

	return acc
}
