// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package extcurve

import "math/big"

// Edwards448Point is a plain (x, y) byte encoding, 57 bytes each in the
// same width RFC 8032's edwards448 points use. The coordinates encoded are
// affine points on the twisted Edwards curve suite.go derives as
// birationally equivalent to this module's curve448 (see
// registerCurve448AndEdwards448's doc comment), not necessarily points on
// RFC 8032's own (a=1, d=-39081) edwards448 curve. See curve448.go's doc
// comment for why this suite has no bound external point type either way.
type Edwards448Point struct {
	X, Y [57]byte
}

func ToEdwards448(x, y *big.Int) Edwards448Point {
	var out Edwards448Point

	xBuf := make([]byte, 57)
	x.FillBytes(xBuf)
	reverseInto(out.X[:], xBuf)

	yBuf := make([]byte, 57)
	y.FillBytes(yBuf)
	reverseInto(out.Y[:], yBuf)

	return out
}
