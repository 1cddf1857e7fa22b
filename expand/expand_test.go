// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package expand_test

import (
	"bytes"
	"crypto"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"strings"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/armfazh/h2c-go-ref/expand"
)

func TestXMD_OutputLength(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	x := expand.NewXMD(crypto.SHA256, dst)

	for _, n := range []uint16{1, 32, 48, 128, 8160} {
		out := x.Expand([]byte("hello"), n)
		if len(out) != int(n) {
			t.Fatalf("Expand(%d) returned %d bytes", n, len(out))
		}
	}
}

func TestXMD_Deterministic(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	x := expand.NewXMD(crypto.SHA256, dst)

	a := x.Expand([]byte("abc"), 64)
	b := x.Expand([]byte("abc"), 64)

	if !bytes.Equal(a, b) {
		t.Fatal("expand_message_xmd is not deterministic")
	}
}

func TestXMD_ShortDST(t *testing.T) {
	dst := []byte("short")
	x := expand.NewXMD(crypto.SHA256, dst)

	got := x.DST()
	want := append(append([]byte{}, dst...), byte(len(dst)))

	if !bytes.Equal(got, want) {
		t.Fatalf("DST_prime = %x, want %x", got, want)
	}
}

func TestXMD_OversizeDST(t *testing.T) {
	dst := []byte(strings.Repeat("a", 256))
	x := expand.NewXMD(crypto.SHA256, dst)

	h := crypto.SHA256.New()
	_, _ = h.Write([]byte("H2C-OVERSIZE-DST"))
	_, _ = h.Write(dst)
	digest := h.Sum(nil)

	want := append(digest, byte(len(digest)))

	if !bytes.Equal(x.DST(), want) {
		t.Fatalf("oversize DST_prime mismatch:\n got  %x\n want %x", x.DST(), want)
	}
}

func TestXMD_ZeroLengthDSTPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero-length DST")
		}
	}()

	expand.NewXMD(crypto.SHA256, []byte(""))
}

func TestXMD_OutputTooLargePanics(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	x := expand.NewXMD(crypto.SHA256, dst)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on oversized output request")
		}
	}()

	x.Expand([]byte("input"), 0xffff)
	_ = x
}

func TestXOF_OutputLength(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHAKE128")
	x := expand.NewXOF(expand.SHAKE128, dst)

	for _, n := range []uint16{1, 32, 48, 128} {
		out := x.Expand([]byte("hello"), n)
		if len(out) != int(n) {
			t.Fatalf("Expand(%d) returned %d bytes", n, len(out))
		}
	}
}

func TestXOF_OversizeDSTUsesSeventeenByteWithDashPrefix(t *testing.T) {
	dst := []byte(strings.Repeat("b", 300))

	xof := expand.NewXOFWithSecurityLevel(expand.SHAKE128, dst, 16)
	xmd := expand.NewXMD(crypto.SHA256, dst)

	// The two expanders use different oversize prefixes (17 bytes with a
	// trailing dash for XOF, 16 bytes without for XMD) and different hash
	// primitives, so their folded DST_prime bytes must differ even though
	// both derive from the same oversize dst.
	if bytes.Equal(xof.DST(), xmd.DST()) {
		t.Fatal("XOF and XMD must not fold an oversize DST to the same bytes")
	}

	h := sha3.NewShake128()
	_, _ = h.Write([]byte("H2C-OVERSIZE-DST-"))
	_, _ = h.Write(dst)
	folded := make([]byte, 16)
	_, _ = h.Read(folded)
	want := append(folded, byte(len(folded)))

	if !bytes.Equal(xof.DST(), want) {
		t.Fatalf("XOF oversize DST_prime mismatch:\n got  %x\n want %x", xof.DST(), want)
	}
}

func TestExpander_RODifferentFromNUSlices(t *testing.T) {
	// Scenario 6 from spec.md section 8: the RO path's field-hash(count=2)
	// and the NU path's field-hash(count=1) must draw from different
	// expander output slices, not a shared prefix reused across both calls.
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	x := expand.NewXMD(crypto.SHA256, dst)

	l := 48
	ro := x.Expand([]byte("abc"), uint16(2*l))
	nu := x.Expand([]byte("abc"), uint16(l))

	if bytes.Equal(ro[:l], nu) {
		t.Fatal("the RO and NU requests must not share an output prefix: the requested length is hashed into b_0")
	}
}
