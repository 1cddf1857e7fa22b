// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package mapping implements three of the algebraic maps RFC 9380 defines
// from a field element to a curve point: SSWU, SVDW, and ELL2, plus an
// Isogeny type whose Apply can be run on an SSWU output. The package has no
// SSWU_AB0 function that composes the two, and no registered suite uses an
// isogeny. Each map operates over an internal/bigfield.Field and returns
// affine (x, y) coordinates; composing those into a final, externally-typed
// curve point is curve.go's and internal/extcurve's job.
//
// Ported from the teacher's mapping.go SSWU (originally specialized to
// secp256k1's Fiat-Crypto Montgomery-domain Element), generalized here to
// run over any prime via bigfield.Field. Its registered callers are P-256,
// P-384 and P-521; the secp256k1 and BLS12-381 G1 suites use SVDW instead.
package mapping

import (
	"math/big"

	"github.com/armfazh/h2c-go-ref/internal/bigfield"
)

// AffinePoint is an affine curve point, or the point at infinity when
// Infinity is true.
type AffinePoint struct {
	X, Y     *big.Int
	Infinity bool
}

// Sgn0 selects between the little-endian and big-endian sign conventions
// RFC 9380 uses to fix the sign of y across its maps. Every suite in this
// module's catalogue uses Sgn0LE except BLS12-381 G1, which uses Sgn0BE
// (spec.md section 4.3).
type Sgn0 func(f *bigfield.Field, a *big.Int) int

// SSWU implements the Simplified Shallue-van de Woestijne-Ulas map (RFC 9380
// section 6.6.2) for a short-Weierstrass curve y^2 = x^3 + A*x + B with
// A, B both nonzero, and a fixed non-square constant Z.
func SSWU(f *bigfield.Field, a, b, z *big.Int, u *big.Int, sgn0 Sgn0) AffinePoint {
	tv1 := f.Square(u)           // 1. tv1 = u^2
	tv1 = f.Mul(z, tv1)          // 2. tv1 = Z * tv1
	tv2 := f.Square(tv1)         // 3. tv2 = tv1^2
	tv2 = f.Add(tv2, tv1)        // 4. tv2 = tv2 + tv1
	tv3 := f.Add(tv2, f.One())   // 5. tv3 = tv2 + 1
	tv3 = f.Mul(b, tv3)          // 6. tv3 = B * tv3
	tv2Zero := f.IsZero(tv2)
	negTv2 := f.Neg(tv2)
	tv4 := f.CMov(z, negTv2, !tv2Zero) // 7. tv4 = CMOV(Z, -tv2, tv2 != 0)
	tv4 = f.Mul(a, tv4)                // 8. tv4 = A * tv4
	tv2b := f.Square(tv3)              // 9. tv2 = tv3^2
	tv6 := f.Square(tv4)               // 10. tv6 = tv4^2
	tv5 := f.Mul(a, tv6)               // 11. tv5 = A * tv6
	tv2b = f.Add(tv2b, tv5)            // 12. tv2 = tv2 + tv5
	tv2b = f.Mul(tv2b, tv3)            // 13. tv2 = tv2 * tv3
	tv6 = f.Mul(tv6, tv4)              // 14. tv6 = tv6 * tv4
	tv5 = f.Mul(b, tv6)                // 15. tv5 = B * tv6
	tv2b = f.Add(tv2b, tv5)            // 16. tv2 = tv2 + tv5
	x := f.Mul(tv1, tv3)               // 17. x = tv1 * tv3

	y1, isGx1Square := f.SqrtRatio(tv2b, tv6, z) // 18. (isGx1Square, y1) = sqrt_ratio(tv2, tv6)

	y := f.Mul(tv1, u) // 19. y = tv1 * u
	y = f.Mul(y, y1)   // 20. y = y * y1

	x = f.CMov(x, tv3, isGx1Square) // 21. x = CMOV(x, tv3, isGx1Square)
	y = f.CMov(y, y1, isGx1Square)  // 22. y = CMOV(y, y1, isGx1Square)

	e1 := sgn0(f, u) == sgn0(f, y) // 23. e1 = sgn0(u) == sgn0(y)
	negY := f.Neg(y)
	y = f.CMov(negY, y, e1) // 24. y = CMOV(-y, y, e1)

	tv4Inv := f.Invert(tv4)
	x = f.Mul(x, tv4Inv) // 26. x = x / tv4

	return AffinePoint{X: x, Y: y}
}
