// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash2field_test

import (
	"crypto"
	_ "crypto/sha256"
	"math/big"
	"testing"

	"github.com/armfazh/h2c-go-ref/expand"
	"github.com/armfazh/h2c-go-ref/hash2field"
)

func p256Order() *big.Int {
	p, _ := new(big.Int).SetString(
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	return p
}

func TestHashToField_BoundedByCharacteristic(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-P256_XMD:SHA-256_SSWU_RO_")
	x := expand.NewXMD(crypto.SHA256, dst)
	p := p256Order()

	elts := hash2field.HashToField(x, []byte("abc"), 2, 48, p)
	if len(elts) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elts))
	}

	for i, e := range elts {
		if e.Sign() < 0 || e.Cmp(p) >= 0 {
			t.Fatalf("element %d out of field range: %s", i, e.String())
		}
	}
}

func TestHashToField_Deterministic(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-P256_XMD:SHA-256_SSWU_RO_")
	p := p256Order()

	a := hash2field.HashToField(expand.NewXMD(crypto.SHA256, dst), []byte("abc"), 2, 48, p)
	b := hash2field.HashToField(expand.NewXMD(crypto.SHA256, dst), []byte("abc"), 2, 48, p)

	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			t.Fatalf("element %d differs across calls", i)
		}
	}
}

func TestHashToField_CountOneVsTwoDrawDifferentSlices(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-P256_XMD:SHA-256_SSWU_RO_")
	p := p256Order()

	two := hash2field.HashToField(expand.NewXMD(crypto.SHA256, dst), []byte("abc"), 2, 48, p)
	one := hash2field.HashToField(expand.NewXMD(crypto.SHA256, dst), []byte("abc"), 1, 48, p)

	if two[0].Cmp(one[0]) == 0 {
		t.Fatal("count=1 and count=2 must draw from different expander outputs, not a shared prefix")
	}
}
