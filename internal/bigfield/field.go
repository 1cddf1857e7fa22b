// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package bigfield is the minimal prime-field substrate the mapping and
// curve packages run their algebra on: a math/big-backed modulus plus the
// handful of operations RFC 9380's maps need (inversion, square roots with
// sign selection, constant-named conditional move). It is deliberately NOT
// a general elliptic-curve arithmetic library — it has no notion of a
// curve, a point, or a scalar multiplication — which is the external
// collaborator boundary spec.md section 6.2 draws; the real curve/point
// types come from internal/extcurve instead.
//
// Grounded on the generic field.NewField(prime)/fp.Order() API that an
// earlier revision of the teacher repository (visible in its curve.go)
// used before migrating secp256k1 specifically to a Fiat-Crypto
// representation; that migration is specific to one 256-bit prime and does
// not generalize to the seven distinct primes this module's suites need.
package bigfield

import "math/big"

// Field is a prime field GF(p).
type Field struct {
	p *big.Int
}

// NewField returns the field GF(p).
func NewField(p *big.Int) *Field {
	return &Field{p: new(big.Int).Set(p)}
}

// Order returns the field's characteristic p.
func (f *Field) Order() *big.Int {
	return new(big.Int).Set(f.p)
}

// Elt reduces x modulo p and returns the result as a field element.
func (f *Field) Elt(x *big.Int) *big.Int {
	e := new(big.Int).Mod(x, f.p)
	return e
}

// Zero returns the additive identity.
func (f *Field) Zero() *big.Int {
	return big.NewInt(0)
}

// One returns the multiplicative identity.
func (f *Field) One() *big.Int {
	return big.NewInt(1)
}

// Add returns a+b mod p.
func (f *Field) Add(a, b *big.Int) *big.Int {
	return f.Elt(new(big.Int).Add(a, b))
}

// Sub returns a-b mod p.
func (f *Field) Sub(a, b *big.Int) *big.Int {
	return f.Elt(new(big.Int).Sub(a, b))
}

// Neg returns -a mod p.
func (f *Field) Neg(a *big.Int) *big.Int {
	return f.Elt(new(big.Int).Neg(a))
}

// Mul returns a*b mod p.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	return f.Elt(new(big.Int).Mul(a, b))
}

// Square returns a^2 mod p.
func (f *Field) Square(a *big.Int) *big.Int {
	return f.Mul(a, a)
}

// Pow returns a^e mod p.
func (f *Field) Pow(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, f.p)
}

// Invert returns a^-1 mod p, or zero if a is zero.
func (f *Field) Invert(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}

	return new(big.Int).ModInverse(a, f.p)
}

// IsZero reports whether a is the zero element.
func (f *Field) IsZero(a *big.Int) bool {
	return a.Sign() == 0
}

// Equal reports whether a and b are the same reduced element.
func (f *Field) Equal(a, b *big.Int) bool {
	return f.Elt(a).Cmp(f.Elt(b)) == 0
}

// IsSquare reports whether a is zero or a quadratic residue, using Euler's
// criterion a^((p-1)/2) == 1 for nonzero a.
func (f *Field) IsSquare(a *big.Int) bool {
	if f.IsZero(a) {
		return true
	}

	e := new(big.Int).Rsh(new(big.Int).Sub(f.p, big.NewInt(1)), 1)

	return f.Pow(a, e).Cmp(big.NewInt(1)) == 0
}

// CMov returns u if cond is false, and v if cond is true. Named after the
// teacher's CMove / CMOV steps in RFC 9380 pseudocode; this reference
// implementation makes no timing-safety claim (spec.md's Non-goals
// explicitly exclude side-channel resistance), so the branch is an
// ordinary Go conditional rather than a bitmask select.
func (f *Field) CMov(u, v *big.Int, cond bool) *big.Int {
	if cond {
		return new(big.Int).Set(v)
	}

	return new(big.Int).Set(u)
}
