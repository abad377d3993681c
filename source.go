// Copyright (C) 2025 Cohera Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqgen

import (
	"math/rand"
)

// Source adapts a Generator to math/rand, so rand.New(seqgen.NewSource(seed))
// gives reproducible Shuffle, Perm, and friends.
type Source struct {
	gen Generator
}

// Make sure Source is a rand.Source64
var _ rand.Source64 = (*Source)(nil)

// NewSource constructs a Source from a seed.
func NewSource(seed int64) *Source {
	return &Source{gen: Generator{state: uint64(seed) % modulus}}
}

// Uint64 returns a uint64. Three steps of the 31-bit state cover all 64
// bits.
func (s *Source) Uint64() (ret uint64) {
	ret = s.gen.step() << 33
	ret |= s.gen.step() << 2
	ret |= s.gen.step() & 3
	return ret
}

// Int63 returns a positive 63 bit integer in an int64.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed resets the state of the Source.
func (s *Source) Seed(seed int64) {
	s.gen = Generator{state: uint64(seed) % modulus}
}
