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

package farey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoprime(t *testing.T) {
	assert.True(t, Coprime(2, 3))
	assert.True(t, Coprime(1, 4))
	assert.True(t, Coprime(3, 2))
	assert.True(t, Coprime(4, 1))
	assert.True(t, Coprime(0, 1))
	assert.True(t, Coprime(1, 0))
	assert.False(t, Coprime(6, 4))
	assert.False(t, Coprime(2, 4))
	assert.False(t, Coprime(0, 3))
	assert.True(t, Coprime(61, 1024))
	assert.False(t, Coprime(4, 6))
	assert.False(t, Coprime(4, 2))
	assert.False(t, Coprime(3, 0))
	assert.True(t, Coprime(1024, 61))
}

func TestSequence(t *testing.T) {
	want := []Fraction{
		{0, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 5}, {1, 6}, {2, 7}, {3, 7},
		{3, 8}, {2, 9}, {4, 9}, {3, 10}, {3, 11}, {4, 11}, {5, 12}, {5, 13},
	}
	assert.Equal(t, want, Sequence(4))
}
