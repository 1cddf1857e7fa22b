// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package extcurve

import (
	"math/big"
	"testing"
)

func TestCurve25519UCoordinate_LittleEndian(t *testing.T) {
	u := big.NewInt(1)
	out := Curve25519UCoordinate(u)

	if out[0] != 1 {
		t.Fatalf("expected little-endian encoding of 1 to have byte[0]=1, got %v", out)
	}
	for i := 1; i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("expected remaining bytes to be zero, got %v", out)
		}
	}
}

func TestCurve448UCoordinate_LittleEndian(t *testing.T) {
	u := big.NewInt(256)
	out := Curve448UCoordinate(u)

	if out[0] != 0 || out[1] != 1 {
		t.Fatalf("expected little-endian encoding of 256, got %v", out)
	}
}

func TestReverse_RoundTrip(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	reverse(b)
	if b[0] != 5 || b[4] != 1 {
		t.Fatalf("reverse did not flip the slice: %v", b)
	}
	reverse(b)
	if b[0] != 1 || b[4] != 5 {
		t.Fatalf("double reverse did not restore the slice: %v", b)
	}
}
