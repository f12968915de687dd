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

// Triton's six named execution tables (spec.md §3 "Cost record").
const (
	TableClockCycles = "clock_cycles"
	TableHashRows    = "hash_rows"
	TableU32Rows     = "u32_rows"
	TableOpStackRows = "op_stack_rows"
	TableRamRows     = "ram_rows"
	TableJumpRows    = "jump_stack_rows"
)

var tritonTables = []string{
	TableClockCycles, TableHashRows, TableU32Rows,
	TableOpStackRows, TableRamRows, TableJumpRows,
}

func cycles(n uint64) CostRecord { return CostRecord{TableClockCycles: n} }

// DefaultTriton is the compiler's built-in target: a stack-based zkVM with a
// 16-slot operand stack, 5-field-element digests and a rate-10 hash
// function, matching the "typical default-target values" spec.md §4.7
// describes.
func DefaultTriton() Config {
	instructionCosts := map[string]CostRecord{
		"add":          cycles(1),
		"mul":          cycles(1),
		"push":         cycles(1),
		"dup":          cycles(1),
		"swap":         cycles(1),
		"pop":          cycles(1),
		"eq":           cycles(1),
		"and":          {TableClockCycles: 1, TableU32Rows: 1},
		"xor":          {TableClockCycles: 1, TableU32Rows: 1},
		"split":        {TableClockCycles: 1, TableU32Rows: 2},
		"lt":           {TableClockCycles: 1, TableU32Rows: 1},
		"div_mod":      {TableClockCycles: 1, TableU32Rows: 2},
		"hash":         {TableClockCycles: 1, TableHashRows: 6},
		"merkle_step":  {TableClockCycles: 1, TableHashRows: 6, TableU32Rows: 33},
		"read_io":      cycles(1),
		"write_io":     cycles(1),
		"divine":       cycles(1),
		"read_mem":     {TableClockCycles: 1, TableRamRows: 1},
		"write_mem":    {TableClockCycles: 1, TableRamRows: 1},
		"call":         {TableClockCycles: 1, TableJumpRows: 1},
		"return":       {TableClockCycles: 1, TableJumpRows: 1},
		"skiz":         cycles(1),
		"halt":         cycles(1),
		"assert":       cycles(1),
		"assert_vector": {TableClockCycles: 1, TableHashRows: 1},
	}

	instructionMap := InstructionMap{
		"add": "add", "mul": "mul", "push": "push", "dup": "dup", "swap": "swap",
		"pop": "pop", "eq": "eq", "and": "and", "xor": "xor", "split": "split",
		"lt": "lt", "div_mod": "div_mod", "hash": "hash", "merkle_step": "merkle_step",
		"read_io": "read_io", "write_io": "write_io", "divine": "divine",
		"read_mem": "read_mem", "write_mem": "write_mem", "call": "call",
		"return": "return", "skiz": "skiz", "halt": "halt", "assert": "assert",
		"assert_vector": "assert_vector",
	}

	return Config{
		Name:             "triton",
		Architecture:     StackArchitecture,
		StackDepth:       16,
		DigestWidth:      5,
		HashRate:         10,
		ExtensionDegree:  3,
		CostTableNames:   tritonTables,
		InstructionMap:   instructionMap,
		OutputExtension:  ".tasm",
		InstructionCosts: instructionCosts,
	}
}
