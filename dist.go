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
	"sort"
)

const reservoirSize = 64

// IntDist summarizes drawn values: low/high/recent/average and approximate
// quantiles from a small reservoir. Not threadsafe. Construct with
// NewIntDist. Fields are expected to be read from but not written to.
//
// The reservoir is sampled with a Generator of its own, so a summary over
// a fixed stream is itself deterministic for a fixed seed.
type IntDist struct {
	// Low and High are the lowest and highest values observed since
	// construction or the last reset.
	Low, High int64

	// Recent is the last observed value.
	Recent int64

	// Count is the number of observed values since construction or the last
	// reset.
	Count int64

	// Sum is the sum of all the observed values since construction or the
	// last reset.
	Sum int64

	reservoir [reservoirSize]int64
	gen       Generator
	sorted    bool
}

// NewIntDist creates a distribution of int64s. The seed drives reservoir
// sampling only; it has no effect on low/high/average.
func NewIntDist(seed int64) *IntDist {
	return &IntDist{gen: Generator{state: uint64(seed) % modulus}}
}

// Insert adds a value to the distribution, updating appropriate values.
func (d *IntDist) Insert(val int64) {
	if d.Count != 0 {
		if val < d.Low {
			d.Low = val
		}
		if val > d.High {
			d.High = val
		}
	} else {
		d.Low = val
		d.High = val
	}
	d.Recent = val
	d.Sum += val

	index := d.Count
	d.Count += 1

	if index < reservoirSize {
		d.reservoir[index] = val
		d.sorted = false
	} else {
		// fast, but kind of biased. probably okay
		j := d.gen.step() % uint64(d.Count)
		if j < reservoirSize {
			d.reservoir[int(j)] = val
			d.sorted = false
		}
	}
}

// Average calculates and returns the average of inserted values.
func (d *IntDist) Average() float64 {
	if d.Count > 0 {
		return float64(d.Sum) / float64(d.Count)
	}
	return 0
}

// Query will return the approximate value at the given quantile, where
// 0 <= quantile <= 1.
func (d *IntDist) Query(quantile float64) int64 {
	if quantile <= 0 {
		return d.Low
	}
	if quantile >= 1 {
		return d.High
	}

	rlen := int(reservoirSize)
	if int64(rlen) > d.Count {
		rlen = int(d.Count)
	}

	if rlen < 2 {
		return d.reservoir[0]
	}

	idx_float := quantile * float64(rlen-1)
	idx := int(idx_float)

	reservoir := d.reservoir[:rlen]
	if !d.sorted {
		sort.Slice(reservoir, func(i, j int) bool {
			return reservoir[i] < reservoir[j]
		})
		d.sorted = true
	}
	diff := idx_float - float64(idx)
	prior := float64(reservoir[idx])
	return int64(prior + diff*(float64(reservoir[idx+1])-prior))
}

// Copy returns a full copy of the entire distribution.
func (d *IntDist) Copy() *IntDist {
	cp := *d
	return &cp
}

// Reset clears the aggregates. Resetting count also resets the quantile
// reservoir.
func (d *IntDist) Reset() {
	d.Low, d.High, d.Recent, d.Count, d.Sum = 0, 0, 0, 0, 0
}
