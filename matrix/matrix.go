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

// Package matrix implements 2x2 matrices over any ring, grounded on
// original_source/src/matrix2x2.rs. The only instantiation the spectrum
// pipeline needs is Matrix[Polynomial[R]], but nothing here is specific to
// polynomials.
package matrix

// Ring is the capability set a matrix entry type must provide: +, x, and
// the additive/multiplicative identities (needed to build Identity()).
// Deliberately narrower than real.Value — division and ordering are never
// used by matrix algebra.
type Ring[T any] interface {
	Add(T) T
	Mul(T) T
	Zero() T
	One() T
}

// Matrix is a dense 2x2 matrix:
//
//	[ a b ]
//	[ c d ]
type Matrix[T Ring[T]] struct {
	A, B, C, D T
}

// New builds a matrix from its four entries, row-major.
func New[T Ring[T]](a, b, c, d T) Matrix[T] {
	return Matrix[T]{A: a, B: b, C: c, D: d}
}

// Identity returns the 2x2 identity matrix over T.
func Identity[T Ring[T]](zero, one T) Matrix[T] {
	return Matrix[T]{A: one, B: zero, C: zero, D: one}
}

// Trace returns m.A + m.D.
func (m Matrix[T]) Trace() T {
	return m.A.Add(m.D)
}

// Add returns m + n elementwise.
func (m Matrix[T]) Add(n Matrix[T]) Matrix[T] {
	return Matrix[T]{
		A: m.A.Add(n.A), B: m.B.Add(n.B),
		C: m.C.Add(n.C), D: m.D.Add(n.D),
	}
}

// Mul returns m * n using the standard 2x2 matrix product.
func (m Matrix[T]) Mul(n Matrix[T]) Matrix[T] {
	return Matrix[T]{
		A: m.A.Mul(n.A).Add(m.B.Mul(n.C)),
		B: m.A.Mul(n.B).Add(m.B.Mul(n.D)),
		C: m.C.Mul(n.A).Add(m.D.Mul(n.C)),
		D: m.C.Mul(n.B).Add(m.D.Mul(n.D)),
	}
}

// Zero returns the zero matrix (needed so Matrix[T] itself can serve as
// the X argument to polynomial.EvalIn).
func (m Matrix[T]) Zero() Matrix[T] {
	z := m.A.Zero()
	return Matrix[T]{A: z, B: z, C: z, D: z}
}

// One returns the identity matrix, shaped like m's own entries.
func (m Matrix[T]) One() Matrix[T] {
	z, o := m.A.Zero(), m.A.One()
	return Matrix[T]{A: o, B: z, C: z, D: o}
}
