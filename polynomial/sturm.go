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

package polynomial

import (
	"fmt"

	"github.com/colt-browning/hofstadter-butterfly/real"
)

// SturmSequence returns p, p', and successive negated remainders
// (s_i = -(s_{i-2} mod s_{i-1})) until a degree-0 term is produced. p is
// assumed square-free over the interval the sequence will be evaluated on.
func (p Polynomial[T]) SturmSequence() []Polynomial[T] {
	if p.Degree() == 0 {
		return []Polynomial[T]{p}
	}
	seq := []Polynomial[T]{p, p.Derivative()}
	for seq[len(seq)-1].Degree() > 0 {
		next := seq[len(seq)-2].Rem(seq[len(seq)-1]).Neg()
		seq = append(seq, next)
	}
	return seq
}

// RootCountMismatch is returned by TryLocalizeRoots when the observed
// number of roots in (left, right] does not match the expected count, per
// spec.md §7's "root-count mismatch" error kind. Count is the number
// actually observed.
type RootCountMismatch struct {
	Count int
}

func (e *RootCountMismatch) Error() string {
	return fmt.Sprintf("polynomial: expected a different number of roots, found %d", e.Count)
}

// LocalizeRoots enumerates disjoint sub-intervals of (left, right], each
// containing exactly one real root of p, via Sturm's theorem and recursive
// bisection (spec.md §4.B "Real-root isolation"). It returns nil if
// right <= left.
func (p Polynomial[T]) LocalizeRoots(left, right T) [][2]T {
	if right.Cmp(left) <= 0 {
		return nil
	}
	out, _ := p.tryLocalizeRoots(left, right, nil)
	return out
}

// TryLocalizeRoots is LocalizeRoots with an expected root count: if the
// count of roots in (left, right] (by Sturm's theorem) differs from
// expected, it returns a *RootCountMismatch carrying the observed count
// instead of a result.
func (p Polynomial[T]) TryLocalizeRoots(left, right T, expected int) ([][2]T, error) {
	return p.tryLocalizeRoots(left, right, &expected)
}

func (p Polynomial[T]) tryLocalizeRoots(left, right T, expected *int) ([][2]T, error) {
	ss := p.SturmSequence()
	csl := signChangeCount(ss, left)
	csr := signChangeCount(ss, right)
	if expected != nil && csl-csr != *expected {
		return nil, &RootCountMismatch{Count: csl - csr}
	}
	return localizeRootsRec(ss, left, right, csl, csr), nil
}

// signChangeCount evaluates every member of a Sturm sequence at x and
// counts adjacent sign changes. Zero evaluations get no special handling:
// a zero counts as non-positive, the same convention FindRoots uses when
// it bisects an isolating interval.
func signChangeCount[T real.Value[T]](ss []Polynomial[T], x T) int {
	positive := make([]bool, len(ss))
	for i, s := range ss {
		positive[i] = s.Eval(x).IsPositive()
	}
	count := 0
	for i := 1; i < len(positive); i++ {
		if positive[i] != positive[i-1] {
			count++
		}
	}
	return count
}

func localizeRootsRec[T real.Value[T]](ss []Polynomial[T], left, right T, csl, csr int) [][2]T {
	if csl == csr {
		return nil
	}
	if csl-csr == 1 {
		return [][2]T{{left, right}}
	}
	two := left.One().Add(left.One())
	middle := right.Add(left).Quo(two)
	csm := signChangeCount(ss, middle)
	lrl := localizeRootsRec(ss, left, middle, csl, csm)
	lrr := localizeRootsRec(ss, middle, right, csm, csr)
	return append(lrl, lrr...)
}

// FindRoots returns one refined root per isolating interval of p in
// (left, right], plus, upfront, one zero root per factor of x that p has
// (extracted by trimming leading zero coefficients — spec.md §4.E).
// Isolating intervals are each bisected until their width is at most eps.
// The returned order is unspecified; callers that need an ordering (e.g.
// package spectrum) sort.
func (p Polynomial[T]) FindRoots(left, right, eps T) []T {
	zero := p.zeroOf()
	coeffs := append([]T(nil), p.coeffs...)
	var roots []T
	for len(coeffs) > 1 && coeffs[0].IsZero() {
		roots = append(roots, zero)
		coeffs = coeffs[1:]
	}
	reduced := Polynomial[T]{coeffs: trim(coeffs, zero)}
	for _, iv := range reduced.LocalizeRoots(left, right) {
		l, r := iv[0], iv[1]
		refSign := reduced.Eval(r).IsPositive()
		two := l.One().Add(l.One())
		for r.Sub(l).Cmp(eps) > 0 {
			m := r.Add(l).Quo(two)
			if reduced.Eval(m).IsPositive() == refSign {
				r = m
			} else {
				l = m
			}
		}
		roots = append(roots, r)
	}
	return roots
}
