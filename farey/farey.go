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

// Package farey provides the two small number-theoretic helpers the
// butterfly CLI uses to choose which flux values p/q to sweep:
// coprimality testing and Stern-Brocot mediant insertion between 0/1
// and 1/2, grounded on original_source/src/bin/main.rs's `coprime` and
// `farey`.
package farey

import "sort"

// Fraction is a flux value p/q in lowest terms, q > 0.
type Fraction struct {
	P, Q uint
}

// Coprime reports whether p and q share no common factor, via the
// Euclidean algorithm. Coprime(0, 1), Coprime(1, 0) and Coprime(n, 1)
// are all true, matching the original's test suite.
func Coprime(p, q uint) bool {
	l, m := p, q
	for l > 0 {
		l, m = m%l, l
	}
	return m == 1
}

// Sequence builds the Farey-mediant closure of [0/1, 1/2] after n
// insertion rounds: starting from {0/1, 1/2}, each round inserts the
// mediant (p1+p2)/(q1+q2) between every adjacent pair, then the result
// is sorted by denominator (matching the original's sort_by_key on q,
// which is a stable sort and so preserves mediant-insertion order
// among equal denominators).
func Sequence(n int) []Fraction {
	f := []Fraction{{0, 1}, {1, 2}}
	for i := 0; i < n; i++ {
		nf := make([]Fraction, 0, 2*len(f)-1)
		for i := 0; i < len(f)-1; i++ {
			nf = append(nf, f[i])
			a, b := f[i], f[i+1]
			nf = append(nf, Fraction{a.P + b.P, a.Q + b.Q})
		}
		nf = append(nf, f[len(f)-1])
		f = nf
	}
	sort.SliceStable(f, func(i, j int) bool { return f[i].Q < f[j].Q })
	return f
}
