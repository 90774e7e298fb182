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

// Package polynomial implements univariate polynomials over any type
// satisfying real.Value, grounded on original_source/src/polynomial.rs.
package polynomial

import (
	"strconv"
	"strings"

	"github.com/colt-browning/hofstadter-butterfly/real"
)

// Polynomial is a₀ + a₁x + ... + a_d x^d for a value type T. The
// coefficient slice is always trimmed: a_d is nonzero unless the
// polynomial is the canonical zero polynomial [zero].
type Polynomial[T real.Value[T]] struct {
	coeffs []T
}

// New builds a polynomial from a coefficient slice (constant term first),
// trimming trailing zeros. zero is the additive identity, needed because
// trimming an all-zero slice must still produce a one-element [zero].
func New[T real.Value[T]](coeffs []T, zero T) Polynomial[T] {
	return Polynomial[T]{coeffs: trim(append([]T(nil), coeffs...), zero)}
}

// Monomial returns factor * x^n (or the zero polynomial if factor is
// zero).
func Monomial[T real.Value[T]](n int, factor T, zero T) Polynomial[T] {
	if factor.IsZero() {
		return Polynomial[T]{coeffs: []T{zero}}
	}
	coeffs := make([]T, n+1)
	for i := range coeffs {
		coeffs[i] = zero
	}
	coeffs[n] = factor
	return Polynomial[T]{coeffs: coeffs}
}

func trim[T real.Value[T]](coeffs []T, zero T) []T {
	for len(coeffs) > 1 && coeffs[len(coeffs)-1].IsZero() {
		coeffs = coeffs[:len(coeffs)-1]
	}
	if len(coeffs) == 0 {
		coeffs = []T{zero}
	}
	return coeffs
}

// Degree returns the polynomial's degree. The zero polynomial has degree
// 0, matching the Rust source's convention (factors.len()-1 with a single
// zero coefficient).
func (p Polynomial[T]) Degree() int { return len(p.coeffs) - 1 }

// Coeffs returns the (trimmed) coefficient slice, constant term first. The
// caller must not mutate it.
func (p Polynomial[T]) Coeffs() []T { return p.coeffs }

// Coeff returns the coefficient of x^n, or zero if n exceeds the degree.
func (p Polynomial[T]) Coeff(n int, zero T) T {
	if n < 0 || n >= len(p.coeffs) {
		return zero
	}
	return p.coeffs[n]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return p.Degree() == 0 && p.coeffs[0].IsZero()
}

// Zero returns the zero polynomial shaped like p's own coefficient type.
// Together with One, this lets Polynomial[T] itself satisfy
// matrix.Ring[Polynomial[T]] — the trq discriminant builder works with
// matrices whose entries are polynomials.
func (p Polynomial[T]) Zero() Polynomial[T] {
	return Polynomial[T]{coeffs: []T{p.zeroOf()}}
}

// One returns the constant polynomial 1, shaped like p's own coefficient
// type.
func (p Polynomial[T]) One() Polynomial[T] {
	return Polynomial[T]{coeffs: []T{p.oneOf()}}
}

// IsOne reports whether p is the constant polynomial 1.
func (p Polynomial[T]) IsOne() bool {
	return p.Degree() == 0 && p.coeffs[0].IsOne()
}

func extend[T real.Value[T]](coeffs []T, n int, zero T) []T {
	if len(coeffs) >= n {
		return coeffs
	}
	out := make([]T, n)
	copy(out, coeffs)
	for i := len(coeffs); i < n; i++ {
		out[i] = zero
	}
	return out
}

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	zero := p.zeroOf()
	n := max(len(p.coeffs), len(q.coeffs))
	a, b := extend(p.coeffs, n, zero), extend(q.coeffs, n, zero)
	out := make([]T, n)
	for i := range out {
		out[i] = a[i].Add(b[i])
	}
	return Polynomial[T]{coeffs: trim(out, zero)}
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	zero := p.zeroOf()
	n := max(len(p.coeffs), len(q.coeffs))
	a, b := extend(p.coeffs, n, zero), extend(q.coeffs, n, zero)
	out := make([]T, n)
	for i := range out {
		out[i] = a[i].Sub(b[i])
	}
	return Polynomial[T]{coeffs: trim(out, zero)}
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Neg()
	}
	return Polynomial[T]{coeffs: out}
}

// AddScalar returns p + c (c added to the constant term).
func (p Polynomial[T]) AddScalar(c T) Polynomial[T] {
	return p.Add(Monomial(0, c, p.zeroOf()))
}

// SubScalar returns p - c.
func (p Polynomial[T]) SubScalar(c T) Polynomial[T] {
	return p.AddScalar(c.Neg())
}

// MulScalar returns p * c.
func (p Polynomial[T]) MulScalar(c T) Polynomial[T] {
	zero := p.zeroOf()
	out := make([]T, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return Polynomial[T]{coeffs: trim(out, zero)}
}

// Mul returns p * q by convolution.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	zero := p.zeroOf()
	if p.IsZero() || q.IsZero() {
		return Polynomial[T]{coeffs: []T{zero}}
	}
	out := make([]T, p.Degree()+q.Degree()+1)
	for i := range out {
		out[i] = zero
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial[T]{coeffs: trim(out, zero)}
}

// Rem returns p mod q (polynomial long division remainder). It panics if q
// is the zero polynomial. After each subtraction step the new leading
// coefficient is forced to zero and dropped — spec.md §4.B notes it may be
// a tiny nonzero residual from inexact arithmetic rather than an exact
// cancellation.
func (p Polynomial[T]) Rem(q Polynomial[T]) Polynomial[T] {
	if q.IsZero() {
		panic("polynomial: Rem by the zero polynomial")
	}
	zero := p.zeroOf()
	self := Polynomial[T]{coeffs: append([]T(nil), p.coeffs...)}
	qLead := q.coeffs[len(q.coeffs)-1]
	for self.Degree() >= q.Degree() && !self.IsZero() {
		shift := self.Degree() - q.Degree()
		shifted := make([]T, shift+len(q.coeffs))
		for i := range shifted {
			shifted[i] = zero
		}
		copy(shifted[shift:], q.coeffs)
		selfLead := self.coeffs[len(self.coeffs)-1]
		factor := selfLead.Quo(qLead)
		selfDegree := self.Degree()
		self = self.Sub(Polynomial[T]{coeffs: shifted}.MulScalar(factor))
		if self.Degree() == selfDegree {
			// Leading terms didn't cancel exactly; drop the residual.
			self = Polynomial[T]{coeffs: trim(self.coeffs[:len(self.coeffs)-1], zero)}
		}
	}
	return self
}

// Gcd returns the monic greatest common divisor of p and q via the
// Euclidean algorithm, grounded on polynomial.rs's _gcd (there test-only;
// exposed here since it falls out of Rem for free).
func (p Polynomial[T]) Gcd(q Polynomial[T]) Polynomial[T] {
	a, b := p, q
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	lead := a.coeffs[len(a.coeffs)-1]
	one := p.oneOf()
	return a.MulScalar(one.Quo(lead))
}

// Derivative returns p'. The derivative of a degree-0 polynomial is 0.
func (p Polynomial[T]) Derivative() Polynomial[T] {
	zero := p.zeroOf()
	if p.Degree() == 0 {
		return Polynomial[T]{coeffs: []T{zero}}
	}
	out := make([]T, p.Degree())
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = p.coeffs[i].Mul(p.intOf(int64(i)))
	}
	return Polynomial[T]{coeffs: trim(out, zero)}
}

// MakeOddOrEven zeros every coefficient whose index parity disagrees with
// the polynomial's degree parity, matching spec.md §4.B / §9: it encodes
// that trq's result must have the parity of q and suppresses numerically
// tiny wrong-parity residues.
func (p Polynomial[T]) MakeOddOrEven() Polynomial[T] {
	zero := p.zeroOf()
	parity := p.Degree() % 2
	out := append([]T(nil), p.coeffs...)
	for i := range out {
		if i%2 != parity {
			out[i] = zero
		}
	}
	return Polynomial[T]{coeffs: trim(out, zero)}
}

// Eval evaluates p at x using Horner's method, over the same ring T.
func (p Polynomial[T]) Eval(x T) T {
	zero := p.zeroOf()
	sum := zero
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		sum = sum.Mul(x).Add(p.coeffs[i])
	}
	return sum
}

// Ring is the minimal capability Matrix[T] needs from an entry type: +, x,
// and the two identities. EvalIn lets a Polynomial[T] be evaluated at an
// argument living in any such ring — e.g. a Matrix[Polynomial[R]]
// (grounded on polynomial.rs's eval_mul).
type Ring[X any] interface {
	Add(X) X
	Mul(X) X
	Zero() X
	One() X
}

// EvalIn evaluates p at x using the direct monomial form (Σ aᵢ xⁱ) rather
// than Horner's method, so it works for non-commuting or merely-additive
// rings such as matrices; lift maps each coefficient from T into X.
func EvalIn[T real.Value[T], X Ring[X]](p Polynomial[T], x X, lift func(T) X) X {
	sum := x.Zero()
	xp := x.One()
	for _, a := range p.coeffs {
		sum = sum.Add(xp.Mul(lift(a)))
		xp = xp.Mul(x)
	}
	return sum
}

// String renders p in the original's "2x-5x3+x4" style: no spaces, "x"
// instead of "x1", the coefficient elided when it is 1 (but not for the
// constant term), zero coefficients skipped.
func (p Polynomial[T]) String() string {
	if p.IsZero() {
		return p.coeffs[0].String()
	}
	var b strings.Builder
	empty := true
	for n, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		if !empty && a.IsPositive() {
			b.WriteByte('+')
		}
		empty = false
		if n == 0 || !a.IsOne() {
			b.WriteString(a.String())
		}
		switch n {
		case 0:
		case 1:
			b.WriteByte('x')
		default:
			b.WriteByte('x')
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

func (p Polynomial[T]) zeroOf() T { return p.coeffs[0].Zero() }
func (p Polynomial[T]) oneOf() T  { return p.coeffs[0].One() }

// intOf returns the ring element corresponding to the small non-negative
// integer n (used by Derivative to multiply by the coefficient index).
func (p Polynomial[T]) intOf(n int64) T {
	zero, one := p.zeroOf(), p.oneOf()
	out := zero
	for i := int64(0); i < n; i++ {
		out = out.Add(one)
	}
	return out
}
