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

package spectrum

import (
	"sort"
	"testing"

	"github.com/colt-browning/hofstadter-butterfly/real/floatval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrqDegreeAndParity(t *testing.T) {
	// trq(p, q) is monic of degree exactly q with the parity of q.
	for _, q := range []uint{1, 2, 3, 4, 5, 6, 7} {
		tr := Trq[floatval.V](floatval.Backend{}, 1, q, 0)
		require.Equal(t, int(q), tr.Degree(), "q=%d", q)
		lead := tr.Coeffs()[tr.Degree()]
		assert.InDelta(t, 1, float64(lead), 1e-9, "q=%d", q)
		for i, c := range tr.Coeffs() {
			if i%2 != int(q)%2 {
				assert.InDelta(t, 0, float64(c), 1e-9, "q=%d coeff %d", q, i)
			}
		}
	}
}

func TestTrqSymmetry(t *testing.T) {
	// trq(p, q) == trq(q-p, q).
	for _, pq := range [][2]uint{{1, 5}, {2, 7}, {3, 8}} {
		p, q := pq[0], pq[1]
		a := Trq[floatval.V](floatval.Backend{}, p, q, 0)
		b := Trq[floatval.V](floatval.Backend{}, q-p, q, 0)
		require.Equal(t, a.Degree(), b.Degree())
		for i := range a.Coeffs() {
			assert.InDelta(t, float64(a.Coeffs()[i]), float64(b.Coeffs()[i]), 1e-9)
		}
	}
}

func TestIntervalsTrivial(t *testing.T) {
	// intervals(0, 1) = [(-4, 4)].
	bands := Intervals[floatval.V](floatval.Backend{}, 0, 1, 0)
	require.Len(t, bands, 1)
	assert.InDelta(t, -4, float64(bands[0].Lo), 1e-9)
	assert.InDelta(t, 4, float64(bands[0].Hi), 1e-9)
}

func sortedBounds(bands []Band[floatval.V]) []float64 {
	var out []float64
	for _, b := range bands {
		out = append(out, float64(b.Lo), float64(b.Hi))
	}
	sort.Float64s(out)
	return out
}

func TestIntervalsOneHalf(t *testing.T) {
	// intervals(1, 2): two bands symmetric about 0.
	bands := Intervals[floatval.V](floatval.Backend{}, 1, 2, 0)
	require.Len(t, bands, 2)
	bounds := sortedBounds(bands)
	for i := 0; i < len(bounds)/2; i++ {
		assert.InDelta(t, -bounds[len(bounds)-1-i], bounds[i], 1e-6)
	}
}

func TestIntervalsOneThird(t *testing.T) {
	// intervals(1, 3): three bands, endpoints symmetric about 0.
	bands := Intervals[floatval.V](floatval.Backend{}, 1, 3, 0)
	require.Len(t, bands, 3)
	bounds := sortedBounds(bands)
	for i := 0; i < len(bounds)/2; i++ {
		assert.InDelta(t, -bounds[len(bounds)-1-i], bounds[i], 1e-6)
	}
}

func TestIntervalsOneQuarter(t *testing.T) {
	// intervals(1, 4): q even, central gap closes -> q-1 = 3 bands.
	bands := Intervals[floatval.V](floatval.Backend{}, 1, 4, 0)
	assert.Len(t, bands, 3)
}
