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

package bigval

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFloat(t *testing.T, v V) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(v.String(), 64)
	require.NoError(t, err)
	return f
}

func TestCosRationalTimes2(t *testing.T) {
	b := Backend{}
	assert.InDelta(t, 2, mustFloat(t, b.CosRationalTimes2(0, 1, 15)), 1e-12)
	assert.InDelta(t, -2, mustFloat(t, b.CosRationalTimes2(1, 1, 15)), 1e-12)
	assert.InDelta(t, 0, mustFloat(t, b.CosRationalTimes2(1, 2, 15)), 1e-12)
	assert.InDelta(t, 1, mustFloat(t, b.CosRationalTimes2(1, 3, 15)), 1e-12)
}

func TestFieldOpsAndRound(t *testing.T) {
	b := Backend{}
	three, seven := b.FromInt(3), b.FromInt(7)
	assert.Equal(t, 0, three.Add(seven).Cmp(b.FromInt(10)))
	assert.Equal(t, 0, seven.Sub(three).Cmp(b.FromInt(4)))
	assert.Equal(t, 0, three.Mul(seven).Cmp(b.FromInt(21)))

	one := b.One()
	third := one.Quo(three)
	rounded := third.Round(4)
	assert.Equal(t, "0.3333", rounded.String())
}

func TestPredicates(t *testing.T) {
	b := Backend{}
	assert.True(t, b.Zero().IsZero())
	assert.True(t, b.One().IsOne())
	assert.True(t, b.FromInt(5).IsPositive())
	assert.False(t, b.FromInt(-5).IsPositive())
	assert.Equal(t, -1, b.FromInt(1).Cmp(b.FromInt(2)))
}
