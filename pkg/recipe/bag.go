// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import "maps"

// Bag is a read-only numeric bag in which every absent key reads as zero.
// The zero value is an empty bag.
type Bag struct {
	m map[string]float64
}

// NewBag returns a bag holding a copy of m.
func NewBag(m map[string]float64) Bag {
	return Bag{m: maps.Clone(m)}
}

// Get returns the value stored under key, or 0 when key is absent.
func (b Bag) Get(key string) float64 {
	return b.m[key]
}

// Sum returns the total of the values stored under keys.
func (b Bag) Sum(keys ...string) float64 {
	var total float64
	for _, k := range keys {
		total += b.m[k]
	}
	return total
}

// Zero reports whether every key reads as zero.
func (b Bag) Zero(keys ...string) bool {
	for _, k := range keys {
		if b.m[k] != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of stored keys.
func (b Bag) Len() int {
	return len(b.m)
}

// Values returns a copy of the stored values.
func (b Bag) Values() map[string]float64 {
	out := make(map[string]float64, len(b.m))
	maps.Copy(out, b.m)
	return out
}
