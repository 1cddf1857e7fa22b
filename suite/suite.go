// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package suite is the frozen RFC 9380 suite catalogue: for each of the
// nine curves this module registers, the field characteristic, curve
// coefficients, Z constant, expander choice and security level, wired
// together into a single Hash closure that the root h2c package exposes by
// name. Everything upstream (expand, hash2field, mapping, curve,
// internal/extcurve) is generic; this package is where the generic pieces
// become nine concrete, irreversible choices.
package suite

import (
	"errors"
	"strings"
)

// ErrUnknownSuite is returned by Lookup for a name not in the registry. It
// is a plain returned error rather than a panic, unlike expand's internal
// invariant violations, because an unrecognized suite name is caller data,
// not a programming error on this module's part.
var ErrUnknownSuite = errors.New("suite: unknown suite identifier")

// Mode distinguishes RFC 9380's random-oracle encoding (two field elements,
// summed after mapping) from its non-uniform encoding (one field element).
type Mode int

const (
	RandomOracle Mode = iota
	NonUniform
)

// Point is the result of a Suite's Hash call. Its concrete dynamic type
// varies by curve family (see internal/extcurve): *nistec.P256Point,
// *nistec.P384Point, *nistec.P521Point, *secp256k1.PublicKey,
// *bls12381.PointG1, *edwards25519.Point, [32]byte, [56]byte or
// extcurve.Edwards448Point. Suite.Get's caller knows which curve it asked
// for and can type-assert directly; the root h2c package additionally
// wraps this in a uniform Point type with a Bytes method for callers that
// want one encoding across every suite.
type Point any

// Suite is a single frozen RFC 9380 ciphersuite: a name, a security level,
// and the Hash closure that runs expand -> hash2field -> mapping ->
// curve/extcurve for that specific curve, expander and map.
type Suite struct {
	Name          string
	Mode          Mode
	SecurityLevel int
	L             int
	hash          func(msg, dst []byte) Point
}

// Hash runs the suite's full pipeline once, input msg and dst, dst validated
// and folded by the chosen expander exactly as expand.vetDSTXMD/vetDSTXOF do.
func (s *Suite) Hash(msg, dst []byte) Point {
	return s.hash(msg, dst)
}

// Encoding binds a Suite to a fixed DST, the shape callers that hash many
// messages under one domain separator actually want (mirrors the
// real-world armfazh/h2c-go-ref SuiteID.Get(dst) API this module's
// TEACHER.txt selection and go.mod module path are grounded on).
type Encoding struct {
	suite *Suite
	dst   []byte
}

// Get returns an Encoding binding s to dst. Per RFC 9380 section 3.1, dst
// should be at least 16 bytes and is folded through the expander's own
// oversize-DST rule (spec's section 6.3) when it exceeds 255 bytes; Get
// itself does no validation; the first Hash call surfaces that via the
// expander's own panics.
func (s *Suite) Get(dst []byte) *Encoding {
	return &Encoding{suite: s, dst: dst}
}

// Hash hashes msg under the Encoding's fixed DST.
func (e *Encoding) Hash(msg []byte) Point {
	return e.suite.Hash(msg, e.dst)
}

// Curve returns the suite's curve name, e.g. "secp256k1" or "edwards25519".
func (s *Suite) Curve() string {
	name, _, _ := strings.Cut(s.Name, "_")
	return name
}

// IsRandomOracle reports whether this suite implements hash_to_curve's
// random-oracle encoding (true) or encode_to_curve's non-uniform encoding
// (false).
func (s *Suite) IsRandomOracle() bool {
	return s.Mode == RandomOracle
}

var registry = map[string]*Suite{}

func register(s *Suite) *Suite {
	registry[s.Name] = s
	return s
}

// Lookup returns the registered suite for name, per RFC 9380's canonical
// ciphersuite ID strings (e.g. "secp256k1_XMD:SHA-256_SVDW_RO_").
func Lookup(name string) (*Suite, error) {
	s, ok := registry[name]
	if !ok {
		return nil, ErrUnknownSuite
	}

	return s, nil
}
