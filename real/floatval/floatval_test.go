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

package floatval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosRationalTimes2(t *testing.T) {
	b := Backend{}
	assert.InDelta(t, 2, float64(b.CosRationalTimes2(0, 1, 10)), 1e-12)
	assert.InDelta(t, -2, float64(b.CosRationalTimes2(1, 1, 10)), 1e-12)
	assert.InDelta(t, 0, float64(b.CosRationalTimes2(1, 2, 10)), 1e-12)
	assert.InDelta(t, 1, float64(b.CosRationalTimes2(1, 3, 10)), 1e-12)
}

func TestFieldOps(t *testing.T) {
	var a, c V = 3, 4
	assert.Equal(t, V(7), a.Add(c))
	assert.Equal(t, V(-1), a.Sub(c))
	assert.Equal(t, V(12), a.Mul(c))
	assert.Equal(t, V(2), c.Sqrt())
}

func TestCmpSignPredicates(t *testing.T) {
	assert.Equal(t, -1, V(1).Cmp(V(2)))
	assert.Equal(t, 0, V(2).Cmp(V(2)))
	assert.Equal(t, 1, V(3).Cmp(V(2)))
	assert.True(t, V(0).IsZero())
	assert.True(t, V(1).IsOne())
	assert.True(t, V(5).IsPositive())
	assert.False(t, V(-5).IsPositive())
}
