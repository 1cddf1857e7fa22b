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

// Montgomery describes v^2 = u^3 + A*u^2 + u over Field. Neither curve25519
// nor curve448's suites in this module add points directly on this form:
// ELL2 produces a Montgomery point, and cofactor clearing runs on the
// birationally equivalent twisted Edwards curve via ClearCofactor below,
// which is how RFC 9380 section 6.7.1's reference implementations do it too.
type Montgomery struct {
	Field    *bigfield.Field
	A        *big.Int
	Cofactor *big.Int
}

// ToEdwards converts a Montgomery point to its twisted Edwards equivalent.
// sqrtMinusAM2 is a fixed square root of -(A+2) in Field, supplied by the
// suite registration alongside the rest of a curve's constants. The target
// TwistedEdwards this lands on always has A=-1 and D=-(A_M-2)/(A_M+2); a
// caller that clears a cofactor through ToEdwards/FromEdwards must register
// its TwistedEdwards with exactly that D, not an unrelated curve's
// (a, d) pair, or the round trip silently operates on points off-curve.
func ToEdwards(f *bigfield.Field, sqrtMinusAM2 *big.Int, p mapping.MontgomeryPoint) EdwardsPoint {
	return FromMontgomery(f, sqrtMinusAM2, p)
}

// FromEdwards is ToEdwards's inverse: x = sqrtMinusAM2*u/v, y = (u-1)/(u+1)
// rearranges to u = (1+y)/(1-y), v = sqrtMinusAM2*u/x.
func FromEdwards(f *bigfield.Field, sqrtMinusAM2 *big.Int, p EdwardsPoint) mapping.MontgomeryPoint {
	if p.Infinity || (f.IsZero(p.X) && f.Equal(p.Y, f.One())) {
		return mapping.MontgomeryPoint{Infinity: true}
	}

	u := f.Mul(f.Add(f.One(), p.Y), f.Invert(f.Sub(f.One(), p.Y)))

	if f.IsZero(p.X) {
		return mapping.MontgomeryPoint{U: u, V: f.Zero()}
	}

	v := f.Mul(sqrtMinusAM2, f.Mul(u, f.Invert(p.X)))

	return mapping.MontgomeryPoint{U: u, V: v}
}

// ClearCofactor clears the curve's cofactor by round-tripping through the
// birationally equivalent twisted Edwards group, where the addition law is
// complete and the generic double-and-add in edwards.go applies directly.
func (m *Montgomery) ClearCofactor(e *TwistedEdwards, sqrtMinusAM2 *big.Int, p mapping.MontgomeryPoint) mapping.MontgomeryPoint {
	ep := ToEdwards(m.Field, sqrtMinusAM2, p)
	ep = e.ClearCofactor(ep)

	return FromEdwards(m.Field, sqrtMinusAM2, ep)
}
