// SPDX-License-Identifier: MIT
//
// Copyright (c) 2025 The h2c-go-ref Authors.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash2field slices an expander's pseudorandom output into uniformly
// distributed field elements (RFC 9380 section 5.2, hash_to_field with
// m=1 — extension fields of degree greater than one are out of scope, as
// spec.md section 1 states explicitly).
package hash2field

import (
	"math/big"

	"github.com/armfazh/h2c-go-ref/expand"
)

// HashToField draws count field elements of L bytes each from
// exp.Expand(msg, count*l), reducing each L-byte big-endian slice modulo p.
// The slices are disjoint and in order: element i reads bytes
// [i*l, (i+1)*l) of the expander output, never overlapping and never
// reused across two different HashToField calls with different counts
// (spec.md section 8, scenario 6).
func HashToField(exp expand.Expander, msg []byte, count, l int, p *big.Int) []*big.Int {
	length := count * l
	if length > 0xffff {
		panic(expand.ErrOutputTooLarge)
	}

	pseudo := exp.Expand(msg, uint16(length))

	out := make([]*big.Int, count)
	for i := 0; i < count; i++ {
		slice := pseudo[i*l : (i+1)*l]
		e := new(big.Int).SetBytes(slice)
		e.Mod(e, p)
		out[i] = e
	}

	return out
}
