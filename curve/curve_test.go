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
	"testing"

	"github.com/armfazh/h2c-go-ref/internal/bigfield"
	"github.com/armfazh/h2c-go-ref/mapping"
)

func toyField(t *testing.T) *bigfield.Field {
	t.Helper()
	return bigfield.NewField(big.NewInt(131))
}

func weierstrassRHS(f *bigfield.Field, a, b, x *big.Int) *big.Int {
	x3 := f.Mul(f.Square(x), x)
	return f.Add(f.Add(x3, f.Mul(a, x)), b)
}

func TestWeierstrass_AddAssociativeViaDoubling(t *testing.T) {
	f := toyField(t)
	w := &Weierstrass{Field: f, A: big.NewInt(2), B: big.NewInt(3), Cofactor: big.NewInt(1)}

	p := mapping.AffinePoint{X: big.NewInt(2), Y: nil}
	rhs := weierstrassRHS(f, w.A, w.B, p.X)
	y, ok := f.Sqrt(rhs)
	if !ok {
		t.Skip("x=2 is not on this toy curve, pick another fixture")
	}
	p.Y = y

	doubled := w.Add(p, p)
	viaScalar := w.ScalarMul(p, big.NewInt(2))

	if doubled.Infinity != viaScalar.Infinity {
		t.Fatalf("infinity mismatch: doubled=%v scalar=%v", doubled.Infinity, viaScalar.Infinity)
	}
	if !doubled.Infinity && (!f.Equal(doubled.X, viaScalar.X) || !f.Equal(doubled.Y, viaScalar.Y)) {
		t.Fatalf("2P via Add(P,P) = (%v,%v), via ScalarMul(P,2) = (%v,%v)", doubled.X, doubled.Y, viaScalar.X, viaScalar.Y)
	}

	lhs := f.Square(doubled.Y)
	onCurve := weierstrassRHS(f, w.A, w.B, doubled.X)
	if !doubled.Infinity && !f.Equal(lhs, onCurve) {
		t.Fatalf("2P is not on curve: y^2=%v, rhs=%v", lhs, onCurve)
	}
}

func TestWeierstrass_ClearCofactorNoOpWhenOne(t *testing.T) {
	f := toyField(t)
	w := &Weierstrass{Field: f, A: big.NewInt(2), B: big.NewInt(3), Cofactor: big.NewInt(1)}

	p := mapping.AffinePoint{X: big.NewInt(1), Y: big.NewInt(1)}
	q := w.ClearCofactor(p)

	if !f.Equal(p.X, q.X) || !f.Equal(p.Y, q.Y) {
		t.Fatal("cofactor 1 must be a no-op")
	}
}

func TestMontgomeryEdwards_RoundTrip(t *testing.T) {
	f := toyField(t)
	a := big.NewInt(4)

	sqrtMinusAM2, ok := f.Sqrt(f.Neg(f.Add(a, big.NewInt(2))))
	if !ok {
		t.Skip("-(A+2) is not a square in this toy field, pick another fixture")
	}

	mp := mapping.MontgomeryPoint{U: big.NewInt(4), V: nil}
	u3AU2U := f.Add(f.Add(f.Mul(f.Square(mp.U), mp.U), f.Mul(a, f.Square(mp.U))), mp.U)
	v, ok := f.Sqrt(u3AU2U)
	if !ok {
		t.Skip("u=4 is not on this toy Montgomery curve, pick another fixture")
	}
	mp.V = v

	ep := ToEdwards(f, sqrtMinusAM2, mp)
	back := FromEdwards(f, sqrtMinusAM2, ep)

	if back.Infinity {
		t.Fatal("round trip produced infinity for a finite point")
	}
	if !f.Equal(mp.U, back.U) || !f.Equal(mp.V, back.V) {
		t.Fatalf("round trip mismatch: started (%v,%v), got back (%v,%v)", mp.U, mp.V, back.U, back.V)
	}
}

func TestEdwards_AddWithNeutralIsIdentity(t *testing.T) {
	f := toyField(t)
	e := &TwistedEdwards{Field: f, A: big.NewInt(-1), D: big.NewInt(37), Cofactor: big.NewInt(4)}

	neutral := e.neutral()
	p := EdwardsPoint{X: big.NewInt(3), Y: big.NewInt(5)}

	got := e.Add(p, neutral)
	if !f.Equal(got.X, p.X) || !f.Equal(got.Y, p.Y) {
		t.Fatalf("P + neutral != P: got (%v,%v)", got.X, got.Y)
	}
}
