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

// Package real abstracts the two numeric backends the spectrum pipeline
// runs on: machine float64 and arbitrary-precision decimal. Both carry the
// same field-operation surface; only the arbitrary-precision one does
// anything with the accu (accuracy) parameter threaded through Round, Eps
// and CosRationalTimes2.
package real

// Value is the field-operation surface of a real number R, satisfied by a
// concrete backend type referring to itself (e.g. floatval.V implements
// Value[floatval.V]). Factories (zero, one, from_int, eps,
// cos_rational_times_2) are not methods here: they don't need a receiver,
// and Go has no static dispatch through a type parameter, so they live on a
// separate Backend value instead of being forced onto every Value.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	Sqrt() T

	// Zero and One return the additive and multiplicative identities of
	// T's ring, independent of the receiver's own value. They exist as
	// instance methods (rather than on Backend) purely so generic code
	// holding a T, but no Backend, can still manufacture identities.
	Zero() T
	One() T

	// Cmp returns -1, 0 or 1 as the receiver is less than, equal to, or
	// greater than x.
	Cmp(x T) int
	Sign() int
	IsZero() bool
	IsOne() bool
	IsPositive() bool

	// Round returns the nearest value with at most accu fractional decimal
	// digits. The fixed-precision backend ignores accu and returns the
	// receiver unchanged.
	Round(accu int) T

	String() string
}

// Backend supplies the factories spec.md §4.A groups with the field
// operations: zero, one, from_int, eps and the cos_rational_times_2
// transcendental primitive. It is passed explicitly wherever a generic
// algorithm needs to manufacture a T from nothing, rather than being baked
// into the Value constraint.
type Backend[T any] interface {
	Zero() T
	One() T
	FromInt(n int64) T

	// Eps returns a positive value equal to 10^(-accu), used as a
	// bisection tolerance.
	Eps(accu int) T

	// CosRationalTimes2 returns 2*cos(pi*p/q) rounded to accu fractional
	// digits. q must not be zero.
	CosRationalTimes2(p, q int64, accu int) T
}
