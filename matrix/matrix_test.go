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

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scalar is a trivial Ring[scalar] backed by float64, used to exercise
// Matrix without pulling in package polynomial.
type scalar float64

func (s scalar) Add(x scalar) scalar { return s + x }
func (s scalar) Mul(x scalar) scalar { return s * x }
func (s scalar) Zero() scalar        { return 0 }
func (s scalar) One() scalar         { return 1 }

func TestIdentityAndTrace(t *testing.T) {
	id := Identity[scalar](0, 1)
	assert.Equal(t, scalar(2), id.Trace())
}

func TestMul(t *testing.T) {
	a := New[scalar](1, 2, 3, 4)
	b := New[scalar](5, 6, 7, 8)
	got := a.Mul(b)
	assert.Equal(t, New[scalar](19, 22, 43, 50), got)
}

func TestAdd(t *testing.T) {
	a := New[scalar](1, 2, 3, 4)
	b := New[scalar](1, 1, 1, 1)
	assert.Equal(t, New[scalar](2, 3, 4, 5), a.Add(b))
}

func TestZeroOne(t *testing.T) {
	a := New[scalar](1, 2, 3, 4)
	assert.Equal(t, New[scalar](0, 0, 0, 0), a.Zero())
	assert.Equal(t, New[scalar](1, 0, 0, 1), a.One())
}
