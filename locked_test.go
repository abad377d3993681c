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
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestLockedMatchesGenerator(t *testing.T) {
	locked, plain := NewLocked(9), New(9)
	for i := 0; i < 100; i++ {
		v1, err := locked.Draw(0, 1000)
		if err != nil {
			t.Fatal(err)
		}
		v2, err := plain.Draw(0, 1000)
		if err != nil {
			t.Fatal(err)
		}
		if v1 != v2 {
			t.Fatalf("draw %d: %d != %d", i, v1, v2)
		}
	}
}

func TestLockedConcurrentSafe(t *testing.T) {
	gen := NewLocked(1)

	var group errgroup.Group
	for i := 0; i < 10; i++ {
		group.Go(func() error {
			for j := 0; j < 1000; j++ {
				v, err := gen.Draw(5, 50)
				if err != nil {
					return err
				}
				if v < 5 || v >= 50 {
					return fmt.Errorf("value %d outside [5, 50)", v)
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatal(err)
	}
}
