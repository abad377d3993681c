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

// See Numerical Recipes. The modulus is 2^31, so state*mul stays well
// under 2^52 and is exact in both uint64 and float64 arithmetic.
const (
	mul     = 1664525
	inc     = 1013904223
	modulus = 1 << 31
)

// Generator produces a deterministic sequence of bounded integers from a
// seed. Two Generators constructed with the same seed and given the same
// sequence of Draw calls return identical values. A Generator is owned by
// a single caller and is not safe for concurrent use; see Locked.
type Generator struct {
	state uint64
}

// New constructs a Generator from a seed. Any int64 seed is accepted;
// values outside [0, 2^31) wrap around the modulus.
func New(seed int64) *Generator {
	return &Generator{state: uint64(seed) % modulus}
}

// step advances the state and returns it. The state moves before every
// draw, so the raw seed is never observable through Draw.
func (g *Generator) step() uint64 {
	g.state = (g.state*mul + inc) % modulus
	return g.state
}

// Draw advances the generator and returns an integer in [min, max).
// It returns an InvalidRange error when max <= min, since no integer in
// [min, max) exists. The span max-min must fit in an int64.
//
// The scaling step divides in IEEE-754 double precision and truncates,
// which keeps the sequence identical across platforms. Seed 1 drawn four
// times with (1, 10) yields 5, 7, 1, 4.
func (g *Generator) Draw(min, max int64) (int64, error) {
	if max <= min {
		return 0, InvalidRange.New("min %d, max %d", min, max)
	}
	s := g.step()
	return int64(float64(s)/modulus*float64(max-min)) + min, nil
}
