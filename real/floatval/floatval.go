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

// Package floatval implements the fixed-precision real.Value backend on
// top of machine float64, grounded on the original implementation's
// `impl Appr for f64`.
package floatval

import (
	"math"
	"strconv"
)

// V is a real.Value backed by a float64. Precision is whatever float64
// gives you; accu parameters are accepted for interface conformance and
// ignored.
type V float64

// Backend implements real.Backend[V]. It has no state; use the zero value.
type Backend struct{}

func (Backend) Zero() V           { return 0 }
func (Backend) One() V            { return 1 }
func (Backend) FromInt(n int64) V { return V(n) }

// Eps returns the fixed bisection tolerance used for float64 root
// refinement, independent of accu.
func (Backend) Eps(int) V { return 1e-14 }

// CosRationalTimes2 returns 2*cos(pi*p/q) computed directly from
// math.Cos; accu is ignored.
func (Backend) CosRationalTimes2(p, q int64, _ int) V {
	pr, qr, sign := reduceArgs(p, q)
	v := 2 * math.Cos(math.Pi*float64(pr)/float64(qr))
	if sign < 0 {
		v = -v
	}
	return V(v)
}

// reduceArgs maps (p, q) to (p', q', sign) with 0 <= 2p' <= q', matching
// spec.md §4.A's cos_rational reduction.
func reduceArgs(p, q int64) (pr, qr uint64, sign int) {
	if q == 0 {
		panic("floatval: cos_rational_times_2: q must not be zero")
	}
	qr = abs64(q)
	pr = abs64(p) % (2 * qr)
	sign = 1
	if pr >= qr {
		pr -= qr
		sign = -1
	}
	if 2*pr > qr {
		pr = qr - pr
		sign = -sign
	}
	return pr, qr, sign
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

func (v V) Zero() V { return 0 }
func (v V) One() V  { return 1 }

func (v V) Add(x V) V { return v + x }
func (v V) Sub(x V) V { return v - x }
func (v V) Mul(x V) V { return v * x }
func (v V) Quo(x V) V { return v / x }
func (v V) Neg() V    { return -v }
func (v V) Sqrt() V   { return V(math.Sqrt(float64(v))) }

func (v V) Cmp(x V) int {
	switch {
	case v < x:
		return -1
	case v > x:
		return 1
	default:
		return 0
	}
}

func (v V) Sign() int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func (v V) IsZero() bool     { return v == 0 }
func (v V) IsOne() bool      { return v == 1 }
func (v V) IsPositive() bool { return v > 0 }

// Round is the identity: the fixed-precision backend has no notion of a
// variable accu.
func (v V) Round(int) V { return v }

func (v V) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
