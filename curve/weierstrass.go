// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve describes the three curve families spec.md section 4.5
// names (short-Weierstrass, Montgomery, twisted Edwards) as thin,
// coefficient-holding structs over internal/bigfield, plus the affine point
// addition and cofactor-clearing scalar multiplication the encoding
// pipeline needs before handing a point to internal/extcurve for its final,
// externally-typed representation.
package curve

import (
	"math/big"

	"github.com/armfazh/h2c-go-ref/internal/bigfield"
	"github.com/armfazh/h2c-go-ref/mapping"
)

// Weierstrass describes y^2 = x^3 + A*x + B over Field.
type Weierstrass struct {
	Field    *bigfield.Field
	A, B     *big.Int
	Cofactor *big.Int
}

// Add implements the complete short-Weierstrass affine addition law,
// including doubling (p == q) and the identity cases.
func (w *Weierstrass) Add(p, q mapping.AffinePoint) mapping.AffinePoint {
	f := w.Field

	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}

	if f.Equal(p.X, q.X) {
		if !f.Equal(p.Y, q.Y) || f.IsZero(p.Y) {
			return mapping.AffinePoint{Infinity: true}
		}

		return w.double(p)
	}

	lambda := f.Mul(f.Sub(q.Y, p.Y), f.Invert(f.Sub(q.X, p.X)))
	x3 := f.Sub(f.Sub(f.Square(lambda), p.X), q.X)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)

	return mapping.AffinePoint{X: x3, Y: y3}
}

func (w *Weierstrass) double(p mapping.AffinePoint) mapping.AffinePoint {
	f := w.Field

	if f.IsZero(p.Y) {
		return mapping.AffinePoint{Infinity: true}
	}

	num := f.Add(f.Mul(big.NewInt(3), f.Square(p.X)), w.A)
	den := f.Mul(big.NewInt(2), p.Y)
	lambda := f.Mul(num, f.Invert(den))

	x3 := f.Sub(f.Square(lambda), f.Mul(big.NewInt(2), p.X))
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)

	return mapping.AffinePoint{X: x3, Y: y3}
}

// ScalarMul computes k*p via double-and-add. Used only for cofactor
// clearing in this module, so variable-time execution is acceptable
// (spec.md's Non-goals explicitly exclude side-channel resistance).
func (w *Weierstrass) ScalarMul(p mapping.AffinePoint, k *big.Int) mapping.AffinePoint {
	acc := mapping.AffinePoint{Infinity: true}
	base := p

	for _, bit := range bitsLSBFirst(k) {
		if bit {
			acc = w.Add(acc, base)
		}
		base = w.double(base)
	}

	return acc
}

func bitsLSBFirst(k *big.Int) []bool {
	bits := make([]bool, k.BitLen())
	for i := range bits {
		bits[i] = k.Bit(i) == 1
	}

	return bits
}

// ClearCofactor multiplies p by the curve's cofactor. A cofactor of 1 (every
// Weierstrass suite this module registers, secp256k1 included, except
// BLS12-381 G1, the only one with cofactor > 1) is a no-op, matching the
// teacher's "We can save cofactor clearing because it is 1" comment in
// bytemare-hash2curve's nist package.
func (w *Weierstrass) ClearCofactor(p mapping.AffinePoint) mapping.AffinePoint {
	if w.Cofactor.Cmp(big.NewInt(1)) == 0 {
		return p
	}

	return w.ScalarMul(p, w.Cofactor)
}
