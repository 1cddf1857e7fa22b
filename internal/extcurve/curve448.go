// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package extcurve

import "math/big"

// Curve448Prime is 2^448 - 2^224 - 1.
var Curve448Prime = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 448)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 224))
	p.Sub(p, big.NewInt(1))
	return p
}()

// Curve448UCoordinate and Edwards448Point are plain byte encodings rather
// than bindings to a third-party point type: no published Go module in this
// module's dependency pack (or, to this author's knowledge, the broader
// ecosystem) implements 448-bit Montgomery/Edwards point arithmetic the way
// filippo.io/nistec, decred's secp256k1, kilic's bls12-381 and
// filippo.io/edwards25519 do for the other six curves this module
// registers. bytemare-crypto's internal/decaf448 package (grounding for
// this suite's field parameters, h=4, XOF:SHAKE256) stops at Decaf's
// cofactor-one quotient group and does not expose raw Edwards448 points
// either, so this module falls back to the same internal/bigfield,
// curve.TwistedEdwards/Montgomery affine arithmetic every other curve uses
// for its algebra, and only skips the external, concretely-typed output
// stage for these two suites. See DESIGN.md.
func Curve448UCoordinate(u *big.Int) [56]byte {
	var out [56]byte

	buf := make([]byte, 56)
	u.FillBytes(buf)
	reverseInto(out[:], buf)

	return out
}

func reverseInto(dst, src []byte) {
	for i, j := 0, len(src)-1; j >= 0; i, j = i+1, j-1 {
		dst[i] = src[j]
	}
}
