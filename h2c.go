// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package h2c is the public entry point: a fixed SuiteID per RFC 9380
// ciphersuite, and a uniform Point wrapper over whatever concrete type
// internal/extcurve produced for that suite. Internally it is a thin facade
// over the suite package's registry; the algebra lives in expand,
// hash2field, mapping and curve, and the externally-typed output lives in
// internal/extcurve.
package h2c

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	bls12381 "github.com/kilic/bls12-381"

	"github.com/armfazh/h2c-go-ref/internal/extcurve"
	"github.com/armfazh/h2c-go-ref/suite"
)

// SuiteID names one of this module's registered RFC 9380 ciphersuites.
type SuiteID string

// Registered suite identifiers, named after the real upstream
// armfazh/h2c-go-ref package this module's go.mod module path and
// TEACHER.txt selection are grounded on.
const (
	P256_XMDSHA256_SSWU_RO_ SuiteID = "P256_XMD:SHA-256_SSWU_RO_"
	P256_XMDSHA256_SSWU_NU_ SuiteID = "P256_XMD:SHA-256_SSWU_NU_"
	P384_XMDSHA384_SSWU_RO_ SuiteID = "P384_XMD:SHA-384_SSWU_RO_"
	P384_XMDSHA384_SSWU_NU_ SuiteID = "P384_XMD:SHA-384_SSWU_NU_"
	P521_XMDSHA512_SSWU_RO_ SuiteID = "P521_XMD:SHA-512_SSWU_RO_"
	P521_XMDSHA512_SSWU_NU_ SuiteID = "P521_XMD:SHA-512_SSWU_NU_"

	Secp256k1_XMDSHA256_SVDW_RO_ SuiteID = "secp256k1_XMD:SHA-256_SVDW_RO_"
	Secp256k1_XMDSHA256_SVDW_NU_ SuiteID = "secp256k1_XMD:SHA-256_SVDW_NU_"

	BLS12381G1_XMDSHA256_SVDW_RO_ SuiteID = "BLS12381G1_XMD:SHA-256_SVDW_RO_"
	BLS12381G1_XMDSHA256_SVDW_NU_ SuiteID = "BLS12381G1_XMD:SHA-256_SVDW_NU_"

	Curve25519_XMDSHA512_ELL2_RO_ SuiteID = "curve25519_XMD:SHA-512_ELL2_RO_"
	Curve25519_XMDSHA512_ELL2_NU_ SuiteID = "curve25519_XMD:SHA-512_ELL2_NU_"
	Edwards25519_XMDSHA512_ELL2_RO_ SuiteID = "edwards25519_XMD:SHA-512_ELL2_RO_"
	Edwards25519_XMDSHA512_ELL2_NU_ SuiteID = "edwards25519_XMD:SHA-512_ELL2_NU_"

	Curve448_XOFSHAKE256_ELL2_RO_ SuiteID = "curve448_XOF:SHAKE256_ELL2_RO_"
	Curve448_XOFSHAKE256_ELL2_NU_ SuiteID = "curve448_XOF:SHAKE256_ELL2_NU_"
	Edwards448_XOFSHAKE256_ELL2_RO_ SuiteID = "edwards448_XOF:SHAKE256_ELL2_RO_"
	Edwards448_XOFSHAKE256_ELL2_NU_ SuiteID = "edwards448_XOF:SHAKE256_ELL2_NU_"
)

// HashToPoint hashes a message to a Point under a fixed domain separation
// tag, per RFC 9380's hash_to_curve (when the suite is a random-oracle
// suite) or encode_to_curve (when it is non-uniform).
type HashToPoint interface {
	Hash(msg []byte) Point
}

// Point wraps the concrete output internal/extcurve produced for a given
// suite (a *nistec.PXXXPoint, a *secp256k1.PublicKey, a *bls12381.PointG1,
// a *edwards25519.Point, or a fixed-size byte array for the two
// u-coordinate-only suites) behind a single Bytes method.
type Point struct {
	raw suite.Point
}

// Raw returns the underlying, suite-specific point value for callers that
// need the concrete type (e.g. to feed a *nistec.P256Point into further
// NIST-curve arithmetic).
func (p Point) Raw() any {
	return p.raw
}

// Bytes returns the point's canonical serialization: SEC1 uncompressed for
// the short-Weierstrass curves, kilic's uncompressed 96-byte X || Y form for
// BLS12-381 G1, the library's 32-byte compressed form for edwards25519, the
// RFC 7748 little-endian u-coordinate for curve448/curve25519, and
// little-endian X || Y for edwards448.
func (p Point) Bytes() []byte {
	switch v := p.raw.(type) {
	case interface{ Bytes() []byte }: // *nistec.P256/P384/P521Point, *edwards25519.Point
		return v.Bytes()
	case *secp256k1.PublicKey:
		return v.SerializeUncompressed()
	case *bls12381.PointG1:
		return bls12381.NewG1().ToBytes(v)
	case extcurve.Edwards448Point:
		b := make([]byte, 0, len(v.X)+len(v.Y))
		b = append(b, v.X[:]...)
		b = append(b, v.Y[:]...)
		return b
	case [32]byte:
		b := make([]byte, 32)
		copy(b, v[:])
		return b
	case [56]byte:
		b := make([]byte, 56)
		copy(b, v[:])
		return b
	default:
		panic(fmt.Sprintf("h2c: suite produced an unrecognized point type %T", p.raw))
	}
}

// Get resolves id to its HashToPoint, returning an error if the ID is not
// one of this package's registered constants.
func (id SuiteID) Get(dst []byte) (HashToPoint, error) {
	s, err := suite.Lookup(string(id))
	if err != nil {
		return nil, fmt.Errorf("h2c: %w: %s", err, id)
	}

	return &encoding{enc: s.Get(dst)}, nil
}

type encoding struct {
	enc *suite.Encoding
}

func (e *encoding) Hash(msg []byte) Point {
	return Point{raw: e.enc.Hash(msg)}
}
