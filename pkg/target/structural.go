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

// Structural's single execution table; a register target has no proving
// system behind it, so "rows" collapses to one instruction-count table.
const TableInstructions = "instructions"

// DefaultStructural is a register-architecture target used to exercise the
// inline-structural lowering strategy (spec.md §4.7, §9), the contract's
// alternative to the default deferred-subroutine strategy. It has no real
// zkVM behind it; its cost table counts emitted instructions only.
func DefaultStructural() Config {
	one := CostRecord{TableInstructions: 1}

	instructionCosts := map[string]CostRecord{
		"add": one, "mul": one, "push": one, "dup": one, "swap": one, "pop": one,
		"eq": one, "and": one, "xor": one, "split": one, "lt": one, "div_mod": one,
		"hash": one, "merkle_step": one, "read_io": one, "write_io": one,
		"divine": one, "read_mem": one, "write_mem": one, "call": one,
		"return": one, "skiz": one, "halt": one, "assert": one, "assert_vector": one,
	}

	instructionMap := InstructionMap{}
	for k := range instructionCosts {
		instructionMap[k] = k
	}

	return Config{
		Name:             "structural",
		Architecture:     RegisterArchitecture,
		StackDepth:       16,
		DigestWidth:      5,
		HashRate:         10,
		ExtensionDegree:  3,
		CostTableNames:   []string{TableInstructions},
		InstructionMap:   instructionMap,
		OutputExtension:  ".rasm",
		InstructionCosts: instructionCosts,
	}
}
