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
	"testing"

	"github.com/colt-browning/hofstadter-butterfly/real/floatval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poly(coeffs ...floatval.V) Polynomial[floatval.V] {
	return New(coeffs, floatval.V(0))
}

func TestRem(t *testing.T) {
	// (3 + 5.1x + 7.2x^2 + 2x^3) mod (1.5 + x) = 4.8, within 1e-14.
	p := poly(3, 5.1, 7.2, 2)
	q := poly(1.5, 1)
	r := p.Rem(q)
	require.Equal(t, 0, r.Degree())
	assert.InDelta(t, 4.8, float64(r.Coeff(0, 0)), 1e-14)
}

func TestGcd(t *testing.T) {
	// gcd(x^2-9, x^2+x-6) = x+3
	p := poly(-9, 0, 1)
	q := poly(-6, 1, 1)
	g := p.Gcd(q)
	require.Equal(t, 1, g.Degree())
	assert.InDelta(t, 3, float64(g.Coeff(0, 0)), 1e-9)
	assert.InDelta(t, 1, float64(g.Coeff(1, 0)), 1e-9)
}

func TestSturmSequence(t *testing.T) {
	// x^4+x^3-x-1 -> [x^4+x^3-x-1, 4x^3+3x^2-1, 3/16 x^2+3/4 x+15/16, -32x-64, -3/16]
	p := poly(-1, -1, 0, 1, 1)
	seq := p.SturmSequence()
	require.Len(t, seq, 5)

	assertCoeffs := func(i int, want ...float64) {
		t.Helper()
		got := seq[i].Coeffs()
		require.Len(t, got, len(want))
		for j, w := range want {
			assert.InDelta(t, w, float64(got[j]), 1e-9)
		}
	}
	assertCoeffs(0, -1, -1, 0, 1, 1)
	assertCoeffs(1, -1, 0, 3, 4)
	assertCoeffs(2, 15.0/16, 3.0/4, 3.0/16)
	assertCoeffs(3, -64, -32)
	assertCoeffs(4, -3.0/16)
}

func TestFindRoots(t *testing.T) {
	// x^2 - 4 has roots at -2 and 2.
	p := poly(-4, 0, 1)
	roots := p.FindRoots(-10, 10, 1e-10)
	require.Len(t, roots, 2)
	a, b := float64(roots[0]), float64(roots[1])
	if a > b {
		a, b = b, a
	}
	assert.InDelta(t, -2, a, 1e-9)
	assert.InDelta(t, 2, b, 1e-9)
}

func TestEvalAndString(t *testing.T) {
	p := poly(0, 2, 0, -5, 1) // 2x - 5x^3 + x^4
	assert.Equal(t, "2x-5x3+x4", p.String())
	assert.InDelta(t, 2-5+1, float64(p.Eval(1)), 1e-12)
}

func TestZeroOneMakeOddOrEven(t *testing.T) {
	p := poly(1, 2, 3)
	assert.False(t, p.IsZero())
	assert.True(t, p.Zero().IsZero())
	assert.True(t, p.One().IsOne())

	odd := poly(5, 2, 9, 4).MakeOddOrEven() // degree 3 -> odd indices only
	assert.Equal(t, []floatval.V{0, 2, 0, 4}, odd.Coeffs())
}
