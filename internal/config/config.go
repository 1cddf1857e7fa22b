// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package config freezes the process-wide constants that the rest of the
// module reads instead of repeating as magic numbers: the RFC revision this
// implementation is pinned to, and the hard bounds RFC 9380 places on
// expander inputs.
package config

const (
	// RFC is the draft revision every suite table and expander bound in this
	// module is pinned to. Earlier snapshots of the reference source used
	// l=96 for P-521 and an XMD:SHA-512 variant for the 448-bit curves; this
	// module follows the final RFC values (l=98, XOF:SHAKE256) instead.
	RFC = "RFC 9380"

	// DSTMaxLength is the largest domain-separation tag expand_message
	// accepts before folding it through the oversize-DST hash.
	DSTMaxLength = 255

	// DSTRecommendedMinLength is the shortest DST RFC 9380 recommends;
	// a shorter non-empty DST is accepted without error or warning (see
	// expand.checkDST).
	DSTRecommendedMinLength = 16

	// MaxExpandLength is the largest output expand_message may produce
	// (2^16 - 1 bytes, the width of the length field encoded in the input).
	MaxExpandLength = 1<<16 - 1

	// MaxEll is the largest number of hash blocks expand_message_xmd may
	// concatenate; RFC 9380 fails if ceil(len/b_len) exceeds this.
	MaxEll = 255

	// OversizeDSTPrefixXMD is prepended, verbatim, to an oversize DST before
	// hashing it down with the XMD's underlying fixed-output hash. It is the
	// bare 16-byte ASCII literal, with no trailing dash.
	OversizeDSTPrefixXMD = "H2C-OVERSIZE-DST"

	// OversizeDSTPrefixXOF is the 17-byte form used by the XOF expander: the
	// same literal as OversizeDSTPrefixXMD plus a trailing dash. An early
	// snapshot of the source this module is ported from used the 16-byte
	// form for XOF too; that was a bug RFC 9380 corrected, and the two
	// constants are kept distinct (rather than aliased) so that distinction
	// stays visible at the call site.
	OversizeDSTPrefixXOF = "H2C-OVERSIZE-DST-"
)
