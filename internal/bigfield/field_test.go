// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bigfield_test

import (
	"math/big"
	"testing"

	"github.com/armfazh/h2c-go-ref/internal/bigfield"
)

func TestSqrt_3Mod4(t *testing.T) {
	// secp256k1 field order, p = 3 mod 4.
	p, _ := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	f := bigfield.NewField(p)

	a := big.NewInt(25)
	root, ok := f.Sqrt(a)
	if !ok {
		t.Fatal("25 must be a square")
	}

	if f.Square(root).Cmp(f.Elt(a)) != 0 {
		t.Fatalf("sqrt(25)^2 = %s, want 25", f.Square(root).String())
	}
}

func TestSqrt_5Mod8(t *testing.T) {
	// curve25519 field order 2^255-19, p = 5 mod 8.
	p, _ := new(big.Int).SetString(
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	f := bigfield.NewField(p)

	a := big.NewInt(16)
	root, ok := f.Sqrt(a)
	if !ok {
		t.Fatal("16 must be a square")
	}

	if f.Square(root).Cmp(f.Elt(a)) != 0 {
		t.Fatalf("sqrt(16)^2 = %s, want 16", f.Square(root).String())
	}
}

func TestSqrt_TonelliShanks_Generic(t *testing.T) {
	// A prime that is 1 mod 8, forcing the general-case path.
	p := big.NewInt(17)
	f := bigfield.NewField(p)

	a := big.NewInt(9)
	root, ok := f.Sqrt(a)
	if !ok {
		t.Fatal("9 must be a square mod 17")
	}

	if f.Square(root).Cmp(f.Elt(a)) != 0 {
		t.Fatalf("sqrt(9)^2 mod 17 = %s, want 9", f.Square(root).String())
	}
}

func TestSqrt_NonResidueReportsFalse(t *testing.T) {
	p := big.NewInt(17)
	f := bigfield.NewField(p)

	// 3 is a quadratic non-residue mod 17.
	if _, ok := f.Sqrt(big.NewInt(3)); ok {
		t.Fatal("3 must not be reported as a square mod 17")
	}
}

func TestSgn0LE_Parity(t *testing.T) {
	p := big.NewInt(101)
	f := bigfield.NewField(p)

	if f.Sgn0LE(big.NewInt(4)) != 0 {
		t.Fatal("sgn0 of an even representative must be 0")
	}

	if f.Sgn0LE(big.NewInt(5)) != 1 {
		t.Fatal("sgn0 of an odd representative must be 1")
	}
}

func TestInvert_RoundTrip(t *testing.T) {
	p := big.NewInt(101)
	f := bigfield.NewField(p)

	a := big.NewInt(7)
	inv := f.Invert(a)

	if f.Mul(a, inv).Cmp(big.NewInt(1)) != 0 {
		t.Fatal("a * a^-1 must be 1")
	}
}
