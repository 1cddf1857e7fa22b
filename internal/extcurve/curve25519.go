// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package extcurve

import "math/big"

// Curve25519UCoordinate encodes a Montgomery u-coordinate the way RFC 7748
// and golang.org/x/crypto/curve25519 do: 32 bytes, little-endian. Unlike the
// other curves this module registers, curve25519's own point type is just
// this encoded scalar, so no external point library is bound here; the
// cofactor-cleared arithmetic already happened in curve.Montgomery.
func Curve25519UCoordinate(u *big.Int) [32]byte {
	var out [32]byte

	buf := make([]byte, 32)
	u.FillBytes(buf)
	reverse(buf)
	copy(out[:], buf)

	return out
}
