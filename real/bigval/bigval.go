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

// Package bigval implements the arbitrary-precision real.Value backend on
// top of github.com/cockroachdb/apd, grounded on the original
// implementation's `impl Appr for BigDecimal`.
package bigval

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// workingPrecision bounds every field operation performed while building a
// V. It stands in for the unbounded precision of the original's BigDecimal
// arithmetic: large enough that no realistic accu (the explicit rounding
// points — Round, the cosine Taylor sum, trq's coefficient rounding) ever
// runs into it. Field ops round only at that bound (e.g. a non-terminating
// quotient); rounding to a number of fractional digits happens only in
// Round, via Quantize.
const workingPrecision = 4096

var workingContext = apd.Context{
	Precision:   workingPrecision,
	Rounding:    apd.RoundHalfEven,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
}

// V is a real.Value backed by an apd.Decimal.
type V struct {
	d apd.Decimal
}

func fromDecimal(d *apd.Decimal) V {
	var v V
	v.d.Set(d)
	return v
}

// Backend implements real.Backend[V]. It has no state; use the zero value.
type Backend struct{}

func (Backend) Zero() V           { return fromDecimal(apd.New(0, 0)) }
func (Backend) One() V            { return fromDecimal(apd.New(1, 0)) }
func (Backend) FromInt(n int64) V { return fromDecimal(apd.New(n, 0)) }

// Eps returns 10^(-accu), matching spec.md §4.A.
func (Backend) Eps(accu int) V { return fromDecimal(apd.New(1, -int32(accu))) }

// CosRationalTimes2 returns 2*cos(pi*p/q) rounded to accu fractional
// digits, via the Taylor-series algorithm of spec.md §4.A (MPFR
// algorithms.pdf §4.1, k=0, rounded to nearest throughout rather than
// directed — the acknowledged imprecision the adaptive-precision outer
// loop in package spectrum is designed to mask).
func (Backend) CosRationalTimes2(p, q int64, accu int) V {
	pr, qr, sign := reduceArgs(p, q)
	if pr == 0 {
		return fromInt64(2 * int64(sign))
	}
	if 2*pr == qr {
		return fromInt64(0)
	}

	waccu := accu + 2
	if accu <= 0 {
		waccu = 2
	}

	pi, err := apd.NewFromString(piPrefix(waccu + 1))
	if err != nil {
		panic(errors.Wrap(err, "bigval: parsing pi digits"))
	}

	x := new(apd.Decimal)
	mustOp(workingContext.Mul(x, pi, apd.New(int64(pr), 0)))
	mustOp(workingContext.Quo(x, x, apd.New(int64(qr), 0)))

	r := new(apd.Decimal)
	mustOp(workingContext.Mul(r, x, x))
	roundExp(r, waccu)

	s := apd.New(1, 0)
	t := apd.New(1, 0)
	for l := int64(1); ; l++ {
		if adjustedExponent(t) < int64(-waccu) {
			break
		}
		mustOp(workingContext.Mul(t, t, r))
		roundExp(t, waccu)
		mustOp(workingContext.Quo(t, t, apd.New(2*l*(2*l-1), 0)))
		if l%2 == 0 {
			mustOp(workingContext.Add(s, s, t))
		} else {
			mustOp(workingContext.Sub(s, s, t))
		}
	}

	mustOp(workingContext.Mul(s, s, apd.New(2, 0)))
	if sign < 0 {
		mustOp(workingContext.Neg(s, s))
	}
	roundExp(s, accu)
	return fromDecimal(s)
}

func fromInt64(n int64) V { return fromDecimal(apd.New(n, 0)) }

// reduceArgs maps (p, q) to (p', q', sign) with 0 <= 2p' <= q', matching
// spec.md §4.A's cos_rational reduction.
func reduceArgs(p, q int64) (pr, qr uint64, sign int) {
	if q == 0 {
		panic("bigval: cos_rational_times_2: q must not be zero")
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

// adjustedExponent returns the decimal's adjusted exponent (exponent +
// digit count - 1), the same quantity apd's own rounder uses internally to
// decide subnormality. A value is smaller in magnitude than 10^n exactly
// when its adjusted exponent is less than n.
func adjustedExponent(d *apd.Decimal) int64 {
	if d.Sign() == 0 {
		return -(1 << 62)
	}
	return int64(d.Exponent) + d.NumDigits() - 1
}

// roundExp quantizes d in place to at most accu fractional decimal
// digits — the Round(accu) operation of spec.md §4.A, applied at the
// explicit points the Taylor recurrence calls for.
func roundExp(d *apd.Decimal, accu int) {
	shape := apd.New(1, -int32(accu))
	mustOp(workingContext.Quantize(d, d, shape))
}

func mustOp(_ apd.Condition, err error) {
	if err != nil {
		panic(errors.Wrap(err, "bigval: decimal operation failed"))
	}
}

func (v V) Zero() V { return fromDecimal(apd.New(0, 0)) }
func (v V) One() V  { return fromDecimal(apd.New(1, 0)) }

func (v V) Add(x V) V { var r V; mustOp(workingContext.Add(&r.d, &v.d, &x.d)); return r }
func (v V) Sub(x V) V { var r V; mustOp(workingContext.Sub(&r.d, &v.d, &x.d)); return r }
func (v V) Mul(x V) V { var r V; mustOp(workingContext.Mul(&r.d, &v.d, &x.d)); return r }
func (v V) Quo(x V) V { var r V; mustOp(workingContext.Quo(&r.d, &v.d, &x.d)); return r }
func (v V) Neg() V    { var r V; mustOp(workingContext.Neg(&r.d, &v.d)); return r }
func (v V) Sqrt() V   { var r V; mustOp(workingContext.Sqrt(&r.d, &v.d)); return r }

func (v V) Cmp(x V) int { return v.d.Cmp(&x.d) }

func (v V) Sign() int        { return v.d.Sign() }
func (v V) IsZero() bool     { return v.d.Sign() == 0 }
func (v V) IsOne() bool      { return v.d.Cmp(apd.New(1, 0)) == 0 }
func (v V) IsPositive() bool { return v.d.Sign() > 0 }

// Round returns v rounded to at most accu fractional decimal digits.
func (v V) Round(accu int) V {
	var r V
	r.d.Set(&v.d)
	roundExp(&r.d, accu)
	return r
}

func (v V) String() string { return v.d.String() }
