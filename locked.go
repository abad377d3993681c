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
	"sync"
)

// Locked is a Generator safe for concurrent use. Draws are serialized, so
// the sequence as a whole stays deterministic but the interleaving across
// goroutines does not. Prefer one plain Generator per owner when
// reproducible per-caller sequences matter.
type Locked struct {
	mtx sync.Mutex
	gen Generator
}

// NewLocked constructs a Locked generator from a seed.
func NewLocked(seed int64) *Locked {
	return &Locked{gen: Generator{state: uint64(seed) % modulus}}
}

// Draw advances the generator and returns an integer in [min, max).
func (l *Locked) Draw(min, max int64) (int64, error) {
	l.mtx.Lock()
	v, err := l.gen.Draw(min, max)
	l.mtx.Unlock()
	return v, err
}
