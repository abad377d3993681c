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

// Package fixture derives deterministic example data from a seqgen
// Generator: fake IDs, counts, picks, and community-flavored names for
// documentation renders. The same seed always yields the same data.
package fixture

import (
	"fmt"

	"github.com/cohera-platform/seqgen"
)

// NoItems is returned by Pick when there is nothing to pick from.
var NoItems = seqgen.Error.NewClass("no items")

// Documentation IDs stay in a narrow range so they read as obviously fake.
const (
	idMin = 1000
	idMax = 10000
)

// Fixture generates example data. Each Fixture owns its Generator; create
// one per render or test case.
type Fixture struct {
	gen *seqgen.Generator
}

// New creates a Fixture from a seed.
func New(seed int64) *Fixture {
	return &Fixture{gen: seqgen.New(seed)}
}

// mustDraw draws with bounds known to be valid.
func (f *Fixture) mustDraw(min, max int64) int64 {
	v, err := f.gen.Draw(min, max)
	if err != nil {
		// This should be unreachable: callers pass constant valid bounds.
		panic(err)
	}
	return v
}

// ID returns a fake numeric ID in [1000, 10000).
func (f *Fixture) ID() int64 {
	return f.mustDraw(idMin, idMax)
}

// IDs returns n fake numeric IDs. The IDs are not guaranteed distinct.
// Non-positive n yields an empty slice.
func (f *Fixture) IDs(n int) []int64 {
	if n <= 0 {
		return nil
	}
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, f.ID())
	}
	return ids
}

// Count returns a small count in [0, max), for things like likes, replies,
// or member totals. Returns an error when max <= 0.
func (f *Fixture) Count(max int64) (int64, error) {
	return f.gen.Draw(0, max)
}

// Pick returns a deterministic choice from items.
func (f *Fixture) Pick(items []string) (string, error) {
	if len(items) == 0 {
		return "", NoItems.New("pick from empty list")
	}
	return items[f.mustDraw(0, int64(len(items)))], nil
}

// Perm returns a deterministic permutation of [0, n). Non-positive n
// yields an empty slice.
func (f *Fixture) Perm(n int) []int {
	if n <= 0 {
		return nil
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := f.mustDraw(0, int64(i)+1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Username returns an example member name.
func (f *Fixture) Username() string {
	return usernames[f.mustDraw(0, int64(len(usernames)))]
}

// CommunityName returns an example community name like "The Quiet Orchard".
func (f *Fixture) CommunityName() string {
	adj := communityAdjectives[f.mustDraw(0, int64(len(communityAdjectives)))]
	noun := communityNouns[f.mustDraw(0, int64(len(communityNouns)))]
	return fmt.Sprintf("The %s %s", adj, noun)
}

// TopicTitle returns an example discussion-topic title.
func (f *Fixture) TopicTitle() string {
	return topicTitles[f.mustDraw(0, int64(len(topicTitles)))]
}
