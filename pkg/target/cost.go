// Copyright Trident Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package target

import "golang.org/x/exp/slices"

// CostRecord is the per-table row contribution of one IR node or one
// function (spec.md §3 "Cost record"), generalized from the default
// target's fixed six-table tuple to any named set of tables so a custom
// target can declare its own cost dimensions.
type CostRecord map[string]uint64

// Add returns the table-wise sum of c and o.
func (c CostRecord) Add(o CostRecord) CostRecord {
	out := make(CostRecord, len(c)+len(o))

	for k, v := range c {
		out[k] += v
	}

	for k, v := range o {
		out[k] += v
	}

	return out
}

// Scale returns c with every table multiplied by n, used when a bounded
// loop body's cost is charged once per iteration.
func (c CostRecord) Scale(n uint64) CostRecord {
	out := make(CostRecord, len(c))
	for k, v := range c {
		out[k] = v * n
	}

	return out
}

// Dominant returns the table name with the largest row count and that
// count; ties break on the lexicographically first table name so the
// result is deterministic.
func (c CostRecord) Dominant() (string, uint64) {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}

	slices.Sort(names)

	var bestName string

	var bestRows uint64

	for _, name := range names {
		if c[name] > bestRows {
			bestName = name
			bestRows = c[name]
		}
	}

	return bestName, bestRows
}
