// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bigval

import "math/big"

// piDigitCount is how many fractional decimal digits of pi are precomputed
// at package init. spec.md §4.G calls for a table "of sufficient length
// (several thousand digits is ample)" so that check/check-full — which
// sweep q without bound — don't hit the table's end on any ordinary run.
const piDigitCount = 5000

// piGuardDigits absorbs the truncation error of the fixed-point arctan
// series below; it is discarded before piDigits is formed.
const piGuardDigits = 30

// piDigits holds "3." followed by piDigitCount correct fractional digits of
// pi, computed once at init via Machin's formula rather than typed in as a
// literal: a many-thousand-digit literal is one transcription slip away
// from silently wrong arithmetic, while the arctan series below is correct
// by construction for any requested length.
var piDigits = computePiDigits(piDigitCount)

// computePiDigits returns "3." plus n correct fractional digits of pi,
// using Machin's formula pi = 16*arctan(1/5) - 4*arctan(1/239) evaluated in
// fixed-point big.Int arithmetic (the classic integer spigot for this
// formula; math/big is stdlib, and there is no arbitrary-precision-pi
// library anywhere in the pack to wire instead).
func computePiDigits(n int) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n+piGuardDigits)), nil)

	arctanInv := func(x int64) *big.Int {
		sum := new(big.Int)
		x2 := big.NewInt(x * x)
		term := new(big.Int).Div(scale, big.NewInt(x))
		for k := int64(1); term.Sign() != 0; k += 2 {
			t := new(big.Int).Div(term, big.NewInt(k))
			if k%4 == 1 {
				sum.Add(sum, t)
			} else {
				sum.Sub(sum, t)
			}
			term.Div(term, x2)
		}
		return sum
	}

	pi := new(big.Int).Mul(big.NewInt(16), arctanInv(5))
	pi.Sub(pi, new(big.Int).Mul(big.NewInt(4), arctanInv(239)))
	pi.Div(pi, new(big.Int).Exp(big.NewInt(10), big.NewInt(piGuardDigits), nil))

	s := pi.String()
	return "3." + s[1:]
}

// piPrefix returns pi truncated to n digits after the decimal point (plus
// the leading "3."), suitable for parsing with apd. It panics if the table
// doesn't hold that many digits — requesting more than the precomputed
// table provides is a programmer error (spec.md §7).
func piPrefix(n int) string {
	if n < 0 {
		n = 0
	}
	// "3." plus n fractional digits.
	need := 2 + n
	if need > len(piDigits) {
		panic("bigval: pi table exhausted: need more digits of pi than are compiled in")
	}
	return piDigits[:need]
}
