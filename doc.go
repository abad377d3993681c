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

/*
Package seqgen generates deterministic, repeatable sequences of bounded
integers from a seed.

The generator behind the Cohera documentation uses it to produce fake IDs
and counts for rendered examples, so that every build of the docs shows
byte-identical data. A motivating example:

	package main

	import (
		"fmt"

		"github.com/cohera-platform/seqgen"
	)

	func main() {
		gen := seqgen.New(1)
		for i := 0; i < 4; i++ {
			v, err := gen.Draw(1, 10)
			if err != nil {
				panic(err)
			}
			fmt.Println(v)
		}
	}

This prints 5, 7, 1, 4 on every run, on every platform.

The sequence comes from a linear congruential generator with a modulus of
2^31, scaled to the requested range with double-precision division. It is
fast and reproducible, and nothing more: the output is not uniform enough
for statistics and nowhere near suitable for security-sensitive
randomness. Use crypto/rand for anything an attacker might care about.

Each Generator owns exactly one integer of state. Give every test case or
documentation render its own instance; if one must be shared across
goroutines, wrap it in a Locked. NewSource adapts a generator to
math/rand.Source64 so the standard library's Shuffle and Perm can run on
top of a reproducible stream.
*/
package seqgen
